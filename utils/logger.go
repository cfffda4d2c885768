package utils

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
)

const logFlags = log.LstdFlags | log.Lmicroseconds

// NewLogger opens path for appending and logs to it. With an empty path the
// logger discards everything, since the terminal is owned by the screen.
// The returned closer must be closed when the logger is no longer used.
func NewLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard, "", logFlags), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[NewLogger] failed to open log file: %+v", path)
	}
	return log.New(f, "life ", logFlags), f, nil
}
