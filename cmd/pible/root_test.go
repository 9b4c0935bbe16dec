package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/pible/pkg/data"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../pkg/sources/testdata/kjv_json"

// resetFlags undoes what earlier Execute calls parsed into the shared commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command against a throwaway config path.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	base := []string{"--config", filepath.Join(t.TempDir(), "config.yaml")}
	rootCmd.SetArgs(append(base, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBooksCommand(t *testing.T) {
	out, err := run(t, "books")
	require.NoError(t, err)
	assert.Contains(t, out, "66 books")
	assert.Contains(t, out, "Song of Solomon")
	assert.Contains(t, out, "Revelation")
}

func TestChaptersCommand(t *testing.T) {
	out, err := run(t, "chapters", "song", "of", "solomon")
	require.NoError(t, err)
	assert.Contains(t, out, "Song of Solomon has 8 chapters")
	assert.Contains(t, out, "1 2 3 4 5 6 7 8")

	_, err = run(t, "chapters", "Hezekiah")
	assert.ErrorIs(t, err, data.ErrInvalidBook)
}

func TestVerseCommand(t *testing.T) {
	out, err := run(t, "--data-dir", fixtures, "verse", "--plain", "John", "3:16")
	require.NoError(t, err)
	assert.Equal(t, "John 3:16 For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.\n", out)

	out, err = run(t, "--data-dir", fixtures, "read", "--plain", "Genesis 1:2-3")
	require.NoError(t, err)
	assert.Contains(t, out, "Genesis 1\n2 And the earth was without form")
	assert.Contains(t, out, "\n3 And God said, Let there be light")
}

func TestVerseCommandErrors(t *testing.T) {
	_, err := run(t, "--data-dir", fixtures, "verse", "John 3:99")
	assert.ErrorIs(t, err, data.ErrVerseOutOfRange)

	_, err = run(t, "--data-dir", fixtures, "--translation", "NIV", "verse", "John 3:16")
	assert.ErrorIs(t, err, data.ErrInvalidTranslation)

	t.Setenv("ESV_API_KEY", "")
	_, err = run(t, "--translation", "esv", "--api-key", "", "verse", "John 3:16")
	assert.ErrorIs(t, err, data.ErrMissingCredential)
}

func TestEPubCommand(t *testing.T) {
	outDir := t.TempDir()
	out, err := run(t, "--data-dir", fixtures, "epub", "Genesis", "--chapters", "1", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Genesis 1 (1/1)")
	assert.Contains(t, out, "EPUB created")

	_, err = os.Stat(filepath.Join(outDir, "Genesis (KJV).epub"))
	assert.NoError(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pible", "config.yaml")
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", path, "--translation", "ESV", "config", "init"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote "+path)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "translation: ESV")

	// A second init refuses to clobber the file.
	resetFlags(rootCmd)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, rootCmd.Execute())
}

func TestParseChapterRange(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		wantErr  bool
	}{
		{"", 0, 0, false},
		{"5", 5, 5, false},
		{"1-3", 1, 3, false},
		{" 2 - 4 ", 2, 4, false},
		{"3-1", 0, 0, true},
		{"0", 0, 0, true},
		{"a-b", 0, 0, true},
	}
	for _, tt := range tests {
		from, to, err := parseChapterRange(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.from, from, tt.in)
		assert.Equal(t, tt.to, to, tt.in)
	}
}
