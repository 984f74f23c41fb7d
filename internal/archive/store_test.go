package archive

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafa-project/pafa/internal/kv"
	"github.com/pafa-project/pafa/pkg/types"
)

// newTestStore creates a Store over a file backend in a temp dir. The dir is
// returned for tests that need to poke at the raw payloads.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	backing, err := kv.OpenFile(dir)
	require.NoError(t, err)
	t.Cleanup(func() { backing.Close() })
	return New(backing), dir
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.Add(types.Entry{Title: "First"})
	require.NoError(t, err)
	second, err := s.Add(types.Entry{Title: "Second"})
	require.NoError(t, err)

	assert.Equal(t, "PAFA-000001", first.ID)
	assert.Equal(t, "PAFA-000002", second.ID)

	// Submitted is stamped in RFC3339.
	_, err = time.Parse(time.RFC3339, first.Submitted)
	assert.NoError(t, err)

	// Newest first in raw storage.
	entries := s.Load()
	require.Len(t, entries, 2)
	assert.Equal(t, "PAFA-000002", entries[0].ID)
	assert.Equal(t, "PAFA-000001", entries[1].ID)
}

func TestIDMonotonicityAcrossDeletions(t *testing.T) {
	s, _ := newTestStore(t)

	var assigned []string
	for i := 0; i < 3; i++ {
		e, err := s.Add(types.Entry{Title: "entry"})
		require.NoError(t, err)
		assigned = append(assigned, e.ID)
	}

	// Deleting the highest id must not free its number for reuse.
	require.NoError(t, s.Remove("PAFA-000003"))
	e, err := s.Add(types.Entry{Title: "after delete"})
	require.NoError(t, err)
	assert.Equal(t, "PAFA-000004", e.ID)

	for _, id := range assigned {
		assert.Less(t, id, e.ID)
	}
}

func TestNextIDHandlesForeignIDs(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.Entry
		want    string
	}{
		{name: "empty collection", entries: nil, want: "PAFA-000001"},
		{
			name:    "unparseable ids ignored",
			entries: []types.Entry{{ID: "PAFA-PINNED-001"}, {ID: "legacy"}},
			want:    "PAFA-000001",
		},
		{
			name:    "imported high id raises the floor",
			entries: []types.Entry{{ID: "PAFA-000100"}, {ID: "PAFA-000002"}},
			want:    "PAFA-000101",
		},
		{
			name:    "mixed parseable and not",
			entries: []types.Entry{{ID: "PAFA-PINNED-001"}, {ID: "PAFA-000007"}},
			want:    "PAFA-000008",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextID(tt.entries))
		})
	}
}

func TestUpdatePinsIdentity(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.Add(types.Entry{Title: "Original", Description: "Kept as-is"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, map[string]any{
		"id":        "PAFA-999999",
		"submitted": "1999-01-01T00:00:00Z",
		"title":     "Replaced",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Submitted, updated.Submitted)
	assert.Equal(t, "Replaced", updated.Title)
	// Untouched fields survive the shallow merge.
	assert.Equal(t, "Kept as-is", updated.Description)

	// The merge is persisted, not just returned.
	entries := s.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, "Replaced", entries[0].Title)
	assert.Equal(t, created.Submitted, entries[0].Submitted)
}

func TestUpdateMergesPassthroughFields(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.Add(types.Entry{Title: "With extras"})
	require.NoError(t, err)

	updated, err := s.Update(created.ID, map[string]any{
		"case_number": "PBSO-2024-052700",
		"charges":     []any{"Disorderly Intoxication"},
	})
	require.NoError(t, err)

	assert.Equal(t, "PBSO-2024-052700", updated.Extra["case_number"])
	assert.Equal(t, []any{"Disorderly Intoxication"}, updated.Extra["charges"])
}

func TestUpdateNotFoundLeavesCollectionUntouched(t *testing.T) {
	s, _ := newTestStore(t)

	created, err := s.Add(types.Entry{Title: "Only entry"})
	require.NoError(t, err)

	_, err = s.Update("PAFA-004242", map[string]any{"title": "nope"})
	assert.ErrorIs(t, err, types.ErrNotFound)

	entries := s.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, created.Title, entries[0].Title)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.Add(types.Entry{Title: "First"})
	require.NoError(t, err)
	second, err := s.Add(types.Entry{Title: "Second"})
	require.NoError(t, err)

	require.NoError(t, s.Remove(first.ID))
	entries := s.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, second.ID, entries[0].ID)

	assert.ErrorIs(t, s.Remove(first.ID), types.ErrNotFound)
	assert.ErrorIs(t, s.Remove(""), types.ErrInvalidID)
}

func TestImportAssignsConsecutiveIDs(t *testing.T) {
	s, _ := newTestStore(t)

	imported, err := s.Import([]types.Entry{{Title: "A"}, {Title: "B"}}, true)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "PAFA-000001", imported[0].ID)
	assert.Equal(t, "PAFA-000002", imported[1].ID)
	for _, e := range imported {
		assert.NotEmpty(t, e.Submitted)
	}
}

func TestImportRepairsOnlyMissingFields(t *testing.T) {
	s, _ := newTestStore(t)

	given := types.Entry{
		ID:        "PAFA-000050",
		Title:     "Labeled",
		Submitted: "2023-03-03T03:03:03Z",
	}
	imported, err := s.Import([]types.Entry{given, {Title: "Unlabeled"}}, true)
	require.NoError(t, err)

	assert.Equal(t, "PAFA-000050", imported[0].ID)
	assert.Equal(t, "2023-03-03T03:03:03Z", imported[0].Submitted)
	// The unlabeled entry is assigned relative to the accumulating
	// collection, so the imported high id raises its floor.
	assert.Equal(t, "PAFA-000051", imported[1].ID)
}

func TestImportReplaceVersusAppend(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add(types.Entry{Title: "Existing"})
	require.NoError(t, err)

	_, err = s.Import([]types.Entry{{Title: "Appended"}}, false)
	require.NoError(t, err)
	assert.Len(t, s.Load(), 2)

	_, err = s.Import([]types.Entry{{Title: "Only one left"}}, true)
	require.NoError(t, err)

	entries := s.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, "Only one left", entries[0].Title)
	assert.Equal(t, "PAFA-000001", entries[0].ID)
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add(types.Entry{Title: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	loc := "Miami-Dade County, Florida"
	entries := []types.Entry{
		{
			ID:              "PAFA-000002",
			Title:           "Second",
			Category:        types.CategoryPolice,
			Location:        &loc,
			ContentWarnings: []string{"arrest"},
			Submitted:       "2024-09-14T08:00:00Z",
			Extra:           map[string]any{"footage_number": "MDPD-BWC-2024-091422-001"},
		},
		{ID: "PAFA-000001", Title: "First", Submitted: "2024-01-01T00:00:00Z"},
	}

	require.NoError(t, s.Save(entries))
	assert.Equal(t, entries, s.Load())
}

func TestLoadRecoversFromCorruptPayload(t *testing.T) {
	s, dir := newTestStore(t)

	_, err := s.Add(types.Entry{Title: "Will be clobbered"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pafa_entries.json"), []byte("{not json"), 0o644))
	assert.Empty(t, s.Load())
}

func TestExportAll(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add(types.Entry{Title: "Exported"})
	require.NoError(t, err)

	out, err := s.ExportAll()
	require.NoError(t, err)

	var parsed []types.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "Exported", parsed[0].Title)
	// Human-readable form, not a single line.
	assert.Contains(t, out, "\n")
}

func TestStats(t *testing.T) {
	s, _ := newTestStore(t)

	for _, cat := range []string{"bodycam", "bodycam", "police", "weird", ""} {
		_, err := s.Add(types.Entry{Title: "entry", Category: cat})
		require.NoError(t, err)
	}

	stats := s.Stats()
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ByCategory[types.CategoryBodycam])
	assert.Equal(t, 1, stats.ByCategory[types.CategoryPolice])
	// Unrecognized and empty categories bucket under other.
	assert.Equal(t, 2, stats.ByCategory[types.CategoryOther])
}

// failingKV simulates a backend that rejects every write.
type failingKV struct{}

func (failingKV) Get(string) ([]byte, bool, error) { return nil, false, nil }
func (failingKV) Set(string, []byte) error         { return errors.New("quota exceeded") }
func (failingKV) Delete(string) error              { return errors.New("quota exceeded") }
func (failingKV) Close() error                     { return nil }

func TestWriteFailuresWrapStorageError(t *testing.T) {
	s := New(failingKV{})

	_, err := s.Add(types.Entry{Title: "Doomed"})
	assert.ErrorIs(t, err, types.ErrStorage)

	assert.ErrorIs(t, s.Clear(), types.ErrStorage)
}
