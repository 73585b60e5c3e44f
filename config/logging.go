package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

// SetupLog points the standard logger at path, or at fallback when path is
// empty. The returned function closes the log file.
func SetupLog(path string, fallback io.Writer) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if path == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return func() {}, fmt.Errorf("config: opening log %s: %w", path, err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(fallback)
		f.Close()
	}, nil
}
