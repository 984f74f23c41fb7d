// Shared helpers for pafa CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pafa-project/pafa/internal/archive"
	"github.com/pafa-project/pafa/internal/kv"
	"github.com/pafa-project/pafa/pkg/types"
)

// openStore resolves the data directory, opens the configured storage
// backend, and wraps it in an archive store. The caller must call close when
// done.
func openStore() (store *archive.Store, close func() error, err error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = types.BackendFile
	}

	backing, err := kv.Open(types.Config{
		Backend: backend,
		DataDir: dataDir,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	return archive.New(backing), backing.Close, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// isNotFound returns true if the error wraps ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrNotFound)
}

// isStorageError returns true if the error wraps ErrStorage.
func isStorageError(err error) bool {
	return errors.Is(err, types.ErrStorage)
}

// fail prints a message to stderr and exits with the given code.
func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(code)
}
