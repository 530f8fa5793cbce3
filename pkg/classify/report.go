// pkg/classify/report.go
package classify

// Report describes the content of an archive without extracting it
type Report struct {
	HasPrimaryPayload bool     `json:"has_primary_payload"`
	HasScriptPayload  bool     `json:"has_script_payload"`
	EntryNames        []string `json:"entry_names"`
	SuspiciousEntries []string `json:"suspicious_entries"`
	TotalEntryCount   int      `json:"total_entry_count"`
}

// LikelyFake reports whether the archive carries neither primary nor script payload
func (r *Report) LikelyFake() bool {
	return !r.HasPrimaryPayload && !r.HasScriptPayload
}
