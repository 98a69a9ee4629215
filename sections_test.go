package confedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sectionsFixture = `[Core]
	editor = vim
[remote "origin"]
	url = a
[remote "backup"]
	url = b
[user]
	name = X
[core]
	pager = less
`

func TestSections(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sectionsFixture)
	assert.Equal(t, []string{"core", "remote", "user"}, doc.Sections())
}

func TestSubsections(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sectionsFixture)
	assert.Equal(t, []string{"backup", "origin"}, doc.Subsections("remote"))
	assert.Empty(t, doc.Subsections("user"))
	assert.Empty(t, doc.Subsections("nosuchsection"))
}

func TestSectionsMatching(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, sectionsFixture)

	got, err := doc.SectionsMatching("re*")
	require.NoError(t, err)
	assert.Equal(t, []string{"remote"}, got)

	got, err = doc.SectionsMatching("*")
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "remote", "user"}, got)

	_, err = doc.SectionsMatching("[")
	require.Error(t, err)
}
