package classify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/creativeyann17/go-modkit/internal/testutil"
	"github.com/creativeyann17/go-modkit/pkg/modkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyScenario(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "mod.zip")
	testutil.WriteZip(t, archive, []testutil.Entry{
		{Name: "a/"},
		{Name: "a/data.bin", Data: []byte("0123456789abcdef")},
		{Name: "b.lnk"},
	})

	report, err := Classify(&Options{InputPath: archive})
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalEntryCount)
	assert.Equal(t, []string{"a/data.bin", "b.lnk"}, report.EntryNames)
	assert.Equal(t, []string{"b.lnk"}, report.SuspiciousEntries)
	assert.False(t, report.HasPrimaryPayload)
	assert.False(t, report.HasScriptPayload)
	assert.True(t, report.LikelyFake())
}

func TestClassifyReadmeWithoutPayload(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "fake.tar.gz")
	testutil.WriteTar(t, archive, testutil.Gzip, []testutil.Entry{
		{Name: "docs/"},
		{Name: "README.txt", Data: []byte("visit my page")},
	})

	report, err := Classify(&Options{InputPath: archive})
	require.NoError(t, err)

	assert.False(t, report.HasPrimaryPayload)
	assert.Equal(t, []string{"README.txt"}, report.SuspiciousEntries)
	assert.Equal(t, []string{"README.txt"}, report.EntryNames)
	assert.Equal(t, 2, report.TotalEntryCount)
}

func TestClassifyPrimaryAndSuspiciousAreIndependent(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "mixed.zip")
	testutil.WriteZip(t, archive, []testutil.Entry{
		{Name: "Mods/"},
		{Name: `Mods\Sub\`},
		{Name: "Mods/Hair.PACKAGE", Data: []byte("p")},
		{Name: "Mods/Discord_Hair.package", Data: []byte("p")},
		{Name: "Mods/core.ts4script", Data: []byte("s")},
		{Name: "Join us.URL", Data: []byte("[InternetShortcut]")},
	})

	report, err := Classify(&Options{InputPath: archive})
	require.NoError(t, err)

	assert.True(t, report.HasPrimaryPayload)
	assert.True(t, report.HasScriptPayload)
	assert.False(t, report.LikelyFake())
	assert.Equal(t, 6, report.TotalEntryCount)
	assert.Equal(t, []string{
		"Mods/Hair.PACKAGE",
		"Mods/Discord_Hair.package",
		"Mods/core.ts4script",
		"Join us.URL",
	}, report.EntryNames)
	assert.Equal(t, []string{"Mods/Discord_Hair.package", "Join us.URL"}, report.SuspiciousEntries)
}

func TestClassifyCustomRules(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "custom.tar.zst")
	testutil.WriteTar(t, archive, testutil.Zstd, []testutil.Entry{
		{Name: "plugin.dll", Data: []byte("x")},
		{Name: "bin/setup.exe", Data: []byte("x")},
		{Name: "readme.md", Data: []byte("x")},
	})

	report, err := Classify(&Options{
		InputPath:         archive,
		PrimaryExtensions: []string{".DLL"},
		SuspiciousNames:   []string{},
		SuspiciousGlobs:   []string{"**/*.exe"},
	})
	require.NoError(t, err)

	assert.True(t, report.HasPrimaryPayload)
	assert.Equal(t, []string{"bin/setup.exe"}, report.SuspiciousEntries)
}

func TestClassifyEmptyArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "empty.zip")
	testutil.WriteZip(t, archive, nil)

	report, err := Classify(&Options{InputPath: archive})
	require.NoError(t, err)
	assert.Zero(t, report.TotalEntryCount)
	assert.Empty(t, report.EntryNames)
	assert.NotNil(t, report.SuspiciousEntries)
}

func TestClassifyErrors(t *testing.T) {
	_, err := Classify(&Options{})
	assert.ErrorIs(t, err, ErrInputRequired)

	tmp := t.TempDir()
	_, err = Classify(&Options{InputPath: filepath.Join(tmp, "missing.zip")})
	var openErr *modkit.OpenError
	assert.True(t, errors.As(err, &openErr))

	notArchive := filepath.Join(tmp, "notes.txt")
	require.NoError(t, os.WriteFile(notArchive, []byte("just some text, not an archive"), 0644))
	_, err = Classify(&Options{InputPath: notArchive})
	var formatErr *modkit.FormatError
	assert.True(t, errors.As(err, &formatErr))

	_, err = Classify(&Options{InputPath: notArchive, SuspiciousGlobs: []string{"[unclosed"}})
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestRules(t *testing.T) {
	opts := DefaultOptions()
	opts.InputPath = "unused"
	require.NoError(t, opts.Validate())
	r := newRules(opts)

	tests := []struct {
		name       string
		primary    bool
		script     bool
		suspicious bool
	}{
		{"hair.package", true, false, false},
		{"mods/tool.ts4script", false, true, false},
		{"patreon_exclusive.package", true, false, true},
		{"shortcut.webloc", false, false, true},
		{"index.htm", false, false, true},
		{"links/readme.pdf", false, false, true},
		{"notes.txt", false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.primary, r.isPrimary(tc.name))
			assert.Equal(t, tc.script, r.isScript(tc.name))
			assert.Equal(t, tc.suspicious, r.isSuspicious(tc.name))
		})
	}
}
