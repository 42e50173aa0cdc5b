package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/helxplatform/ddindex/pkg/ddindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepositories(t *testing.T) {
	refs, err := parseRepositories([]string{"heal-studies", "bdc-studies:v2"})
	require.NoError(t, err)

	assert.Equal(t, []ddindex.RepositoryRef{
		{Name: "heal-studies", Ref: "main"},
		{Name: "bdc-studies", Ref: "v2"},
	}, refs)
}

func TestParseRepositories_EmptyNameIsConfigError(t *testing.T) {
	_, err := parseRepositories([]string{":main"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ddindex.ErrInvalidConfig)
}

func TestParseRepositories_EmptyRefIsConfigError(t *testing.T) {
	_, err := parseRepositories([]string{"heal-studies:"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ddindex.ErrInvalidConfig)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["duplicates"])
	assert.True(t, names["coverage"])
	assert.True(t, names["version"])
}

func TestOpenOutput_StdoutPassthrough(t *testing.T) {
	w, closeFn, err := openOutput("-")
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, os.Stdout, w)
}

func TestOpenOutput_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.csv")

	w, closeFn, err := openOutput(path)
	require.NoError(t, err)

	_, err = w.Write([]byte("HDPID,repository_count\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "HDPID,repository_count\n", string(content))
}

func TestStyled_PlainWhenColorDisabled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "done", styled(successStyle, "done"))
}
