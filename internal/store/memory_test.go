package store

import (
	"context"
	"io"
	"testing"

	"github.com/helxplatform/ddindex/pkg/ddindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ListRoot(t *testing.T) {
	m := NewMemoryStore()
	m.AddObject("heal-studies", "phs000001.xml", "<a/>")
	m.AddObject("heal-studies", "nested/phs000002.xml", "<b/>")
	m.AddObject("heal-studies", "nested/deeper/phs000003.xml", "<c/>")

	entries, err := m.List(context.Background(), "heal-studies", "main", "")
	require.NoError(t, err)

	assert.Equal(t, []ddindex.ObjectEntry{
		{Path: "nested/", Type: ddindex.EntryTypeDirectory},
		{Path: "phs000001.xml", Type: ddindex.EntryTypeObject},
	}, entries)
}

func TestMemoryStore_ListSubdirectory(t *testing.T) {
	m := NewMemoryStore()
	m.AddObject("heal-studies", "nested/phs000002.xml", "<b/>")
	m.AddObject("heal-studies", "nested/deeper/phs000003.xml", "<c/>")

	entries, err := m.List(context.Background(), "heal-studies", "main", "nested/")
	require.NoError(t, err)

	assert.Equal(t, []ddindex.ObjectEntry{
		{Path: "nested/deeper/", Type: ddindex.EntryTypeDirectory},
		{Path: "nested/phs000002.xml", Type: ddindex.EntryTypeObject},
	}, entries)
}

func TestMemoryStore_ListUnknownRepository(t *testing.T) {
	m := NewMemoryStore()

	_, err := m.List(context.Background(), "nope", "main", "")
	assert.ErrorIs(t, err, ddindex.ErrConnectionFailed)
}

func TestMemoryStore_Open(t *testing.T) {
	m := NewMemoryStore()
	m.AddObject("heal-studies", "phs000001.xml", "<data/>")

	r, err := m.Open(context.Background(), "heal-studies", "main", "phs000001.xml")
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<data/>", string(content))
}

func TestMemoryStore_OpenMissingObject(t *testing.T) {
	m := NewMemoryStore()
	m.AddObject("heal-studies", "phs000001.xml", "<data/>")

	_, err := m.Open(context.Background(), "heal-studies", "main", "missing.xml")
	assert.Error(t, err)
}

func TestMemoryStore_RawEntryInjection(t *testing.T) {
	m := NewMemoryStore()
	m.AddObject("heal-studies", "phs000001.xml", "<data/>")
	m.AddRawEntry("heal-studies", "strange-thing", ddindex.EntryType("symlink"))

	entries, err := m.List(context.Background(), "heal-studies", "main", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ddindex.EntryType("symlink"), entries[1].Type)
}
