package store

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// readFile reads the file at path into b.
func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// writeFile writes b via a temp file in the same directory, then atomically
// replaces the target.
func writeFile(path string, b []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(b))
}
