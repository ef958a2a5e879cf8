package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

var base = newBase()

func newBase() *log.Logger {
	base := log.New()
	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})
	base.SetOutput(os.Stderr)
	base.SetLevel(log.InfoLevel)
	return base
}

// NewLogger returns a logger whose entries carry the module name.
func NewLogger(module string) *Logger {
	baselogger := base.WithFields(
		log.Fields{
			"name": module,
		})
	return &Logger{baselogger}
}

// SetLevel changes the level of every logger, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

// SetOutput redirects the text output of every logger.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// Base exposes the shared logrus logger, for hooks.
func Base() *log.Logger {
	return base
}
