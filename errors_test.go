package confedit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMalformedLine(t *testing.T) {
	t.Parallel()

	td := t.TempDir()
	configPath := filepath.Join(td, "config")

	content := "[core]\n\teditor = vim\n[broken\n\tpager = less\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	doc, err := Load(configPath)
	require.Error(t, err)
	assert.Nil(t, doc, "no partial document on a malformed line")

	var mlErr *MalformedLineError
	require.ErrorAs(t, err, &mlErr)
	assert.Equal(t, configPath, mlErr.Path)
	assert.Equal(t, 3, mlErr.Line)
	assert.Equal(t, 8, mlErr.Col)
	assert.NotEmpty(t, mlErr.Msg)
	assert.Contains(t, err.Error(), configPath+":3:8:")
}

func TestParseMalformedLine(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("[ok]\n\t1bad = x\n"))

	var mlErr *MalformedLineError
	require.ErrorAs(t, err, &mlErr)
	assert.Equal(t, 2, mlErr.Line)
	assert.Equal(t, 2, mlErr.Col)
}

func TestMultipleValuesErrorMessage(t *testing.T) {
	t.Parallel()

	err := &MultipleValuesError{Key: "remote.origin.fetch"}
	assert.Contains(t, err.Error(), `"remote.origin.fetch"`)
	assert.Contains(t, err.Error(), "UnSetAll")
}

func TestInvalidValueFilter(t *testing.T) {
	t.Parallel()

	in := "[a]\n\tx = 1\n"
	doc := mustParse(t, in)

	_, err := doc.Find("a", "", "x", "([")
	require.Error(t, err)

	require.Error(t, doc.SetAll("a", "", "x", "y", "(["))
	require.Error(t, doc.UnSetAll("a", "", "x", "!(["))
	assert.Equal(t, in, doc.String(), "a bad filter must not mutate the document")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	doc, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Empty(t, doc.Lines)
}

func TestLoadUnreadableFile(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	td := t.TempDir()
	configPath := filepath.Join(td, "config")
	require.NoError(t, os.WriteFile(configPath, []byte("[a]\n"), 0o000))

	_, err := Load(configPath)
	require.Error(t, err)
	assert.True(t, os.IsPermission(err))
}
