// Package jsonfile implements the devacia-os stores on flat JSON files.
//
// Each logical store keeps its full state in memory and rewrites one file per
// mutation (read-entire-store, mutate, write-entire-store). A per-store mutex
// serializes the cycle, which closes the lost-update race between concurrent
// writers.
package jsonfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
)

// readJSONFile loads path into v. A missing file is not an error; the caller
// starts with an empty store.
func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode store file: %w", err)
	}
	return nil
}

// writeJSONFile writes v to path via a temp file and rename, so a failed
// write never leaves a truncated store behind.
func writeJSONFile(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}
