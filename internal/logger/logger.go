// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"curvearea/internal/config"
)

// Setup applies level, format and output from c. When c.LogFile is empty
// logs go to fallback; pass io.Discard while a full-screen UI owns the
// terminal. The returned closer releases the log file, if any.
func Setup(c config.Config, fallback io.Writer) (io.Closer, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log.SetLevel(lvl)
	if c.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if c.LogFile == "" {
		log.SetOutput(fallback)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
