// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup sets level and output format of the standard logrus logger. Unknown
// levels fall back to info; format is "json" or anything else for text.
func Setup(level, format string) {
	log.SetOutput(os.Stderr)

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	if err != nil && level != "" {
		log.Warnf("unknown log level %q, using info", level)
	}
}
