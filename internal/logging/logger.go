// Package logging builds the structured logger used by interactive
// commands. The pager owns the terminal while it runs, so log output
// must never be written to it: debug output goes to a timestamped file
// when REGDIS_LOG_TO_FILE=1 and is discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is a charm logger plus the log file it may own.
type Logger struct {
	*log.Logger
	file *os.File
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// New builds a logger for a command. Interactive commands pass true and
// get a file-or-discard writer; non-interactive commands log to stderr.
// REGDIS_LOG_LEVEL selects the level (debug, info, warn, error).
func New(interactive bool) *Logger {
	var w io.Writer = os.Stderr
	var f *os.File

	if os.Getenv("REGDIS_LOG_TO_FILE") == "1" {
		name := fmt.Sprintf("regdis-%s-debug.log", time.Now().Format("20060102-150405"))
		if file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644); err == nil {
			w, f = file, file
		} else if interactive {
			w = io.Discard
		}
	} else if interactive {
		w = io.Discard
	}

	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "regdis",
	})
	switch os.Getenv("REGDIS_LOG_LEVEL") {
	case "debug":
		lg.SetLevel(log.DebugLevel)
	case "warn":
		lg.SetLevel(log.WarnLevel)
	case "error":
		lg.SetLevel(log.ErrorLevel)
	default:
		lg.SetLevel(log.InfoLevel)
	}

	return &Logger{Logger: lg, file: f}
}
