package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLog(t *testing.T) {
	// must not panic in any combination
	setupLog(false, false)
	setupLog(true, false)
	setupLog(false, true)
	setupLog(true, true, "secret")
}

func TestRun_MissingConfig(t *testing.T) {
	err := run(context.Background(), Opts{Config: "/nonexistent/config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRun_StartsAndShutsDown(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yml")
	cfg := "database:\n  dsn: \"file:" + filepath.Join(dir, "test.db") + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: cfgPath, Listen: port})
	}()

	// wait until the server answers, then shut down
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://localhost" + port + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return fmt.Sprintf(":%d", l.Addr().(*net.TCPAddr).Port)
}
