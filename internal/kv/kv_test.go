package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafa-project/pafa/pkg/types"
)

// backends under test, each opened fresh in a temp dir.
var backends = []struct {
	name string
	open func(dir string) (Store, error)
}{
	{name: "file", open: OpenFile},
	{name: "sqlite", open: OpenSQLite},
}

func TestStoreGetSetDelete(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			store, err := be.open(t.TempDir())
			require.NoError(t, err)
			defer store.Close()

			// Absent key reads as not present, not as an error.
			_, ok, err := store.Get("pafa_entries")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set("pafa_entries", []byte(`[{"id":"PAFA-000001"}]`)))
			got, ok, err := store.Get("pafa_entries")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":"PAFA-000001"}]`, string(got))

			// Set replaces the payload in full.
			require.NoError(t, store.Set("pafa_entries", []byte(`[]`)))
			got, ok, err = store.Get("pafa_entries")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[]`, string(got))

			// Keys are independent.
			require.NoError(t, store.Set("pafa_reports", []byte(`[1]`)))
			got, ok, err = store.Get("pafa_entries")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[]`, string(got))

			require.NoError(t, store.Delete("pafa_entries"))
			_, ok, err = store.Get("pafa_entries")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting an absent key is not an error.
			require.NoError(t, store.Delete("pafa_entries"))
		})
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	for _, be := range backends {
		t.Run(be.name, func(t *testing.T) {
			dir := t.TempDir()

			store, err := be.open(dir)
			require.NoError(t, err)
			require.NoError(t, store.Set("pafa_entries", []byte(`["kept"]`)))
			require.NoError(t, store.Close())

			reopened, err := be.open(dir)
			require.NoError(t, err)
			defer reopened.Close()

			got, ok, err := reopened.Get("pafa_entries")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["kept"]`, string(got))
		})
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{name: "file", config: types.Config{Backend: types.BackendFile}},
		{name: "sqlite", config: types.Config{Backend: types.BackendSQLite}},
		{name: "unknown", config: types.Config{Backend: "redis"}, wantErr: types.ErrBackendUnknown},
		{name: "empty", config: types.Config{}, wantErr: types.ErrBackendEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.DataDir = t.TempDir()
			store, err := Open(tt.config)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, store.Close())
		})
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenFile(dir)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("pafa_entries", []byte(`[]`)))

	matches, err := filepath.Glob(filepath.Join(dir, ".kv-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The payload lands in a file named after the key.
	_, err = os.Stat(filepath.Join(dir, "pafa_entries.json"))
	assert.NoError(t, err)
}
