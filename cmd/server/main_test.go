package main

import (
	"net"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropcare/config"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	return config.AppConfig{
		Port:          "0",
		StaticDir:     dir,
		UploadMax:     "1M",
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(dir, "cropcare.db"),
		SessionCookie: "cropcare_session",
		SessionTTL:    time.Hour,
		SessionSweep:  "@every 15m",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}
}

func TestRunReturnsStartupErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.AppConfig)
		wantErr string
	}{
		{name: "unknown driver", mutate: func(c *config.AppConfig) { c.DBDriver = "oracle" }, wantErr: "database: unsupported DB_DRIVER"},
		{name: "bad sweep schedule", mutate: func(c *config.AppConfig) { c.SessionSweep = "whenever" }, wantErr: "session sweeper:"},
		{name: "missing crop seed file", mutate: func(c *config.AppConfig) { c.CropSeedFile = filepath.Join(c.StaticDir, "nope.csv") }, wantErr: "seed crops:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(&cfg)
			err := run(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunReturnsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig(t)
	cfg.Port = strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() { done <- run(cfg) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server:")
	case <-time.After(10 * time.Second):
		t.Fatal("run did not return after the listener failed")
	}
}
