package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer Setup("info", "text")

	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel log.Level
		wantJSON  bool
	}{
		{name: "debug json", level: "debug", format: "json", wantLevel: log.DebugLevel, wantJSON: true},
		{name: "warn text", level: "WARN", format: "text", wantLevel: log.WarnLevel},
		{name: "unknown level", level: "chatty", format: "", wantLevel: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.level, tt.format)
			assert.Equal(t, tt.wantLevel, log.GetLevel())
			_, isJSON := log.StandardLogger().Formatter.(*log.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}
