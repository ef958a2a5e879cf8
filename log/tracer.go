package log

import (
	"sync"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

type tracerKey struct {
	logger *log.Logger
	path   string
}

var (
	tracersMu sync.Mutex
	tracers   = make(map[tracerKey]bool)
)

// AddTracer mirrors debug, warning and error entries as JSON into
// path.debug, path.warn and path.error. A path already traced on logger is
// not hooked twice.
func AddTracer(logger *log.Logger, path string) {
	tracersMu.Lock()
	defer tracersMu.Unlock()
	key := tracerKey{logger: logger, path: path}
	if tracers[key] {
		return
	}
	tracers[key] = true

	pathMap := lfshook.PathMap{
		log.DebugLevel: path + ".debug",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".error",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	logger.Hooks.Add(hook)
}
