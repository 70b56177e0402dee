package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sprintpilot/internal/client/config"
	"github.com/dmitrijs2005/sprintpilot/internal/client/export"
)

func TestIsLoggedIn(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false without an auth service")
	}

	app.authService = &fakeAuth{loggedIn: true}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a credential")
	}
}

func TestSetMode_ChangesAndPrintsOnce(t *testing.T) {
	app, out := newTestApp()

	app.setMode(ModeOnline)
	if app.currentMode() != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.currentMode())
	}
	if got := out.String(); got == "" {
		t.Fatalf("expected output on mode change, got empty")
	}

	out.Reset()

	app.setMode(ModeOnline)
	if got := out.String(); got != "" {
		t.Fatalf("expected no output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.currentMode())
	assert.Contains(t, out.String(), "Switched to offline mode")
}

func TestCheckOnline(t *testing.T) {
	f := &fakeAuth{}
	app, _ := newTestApp()
	app.authService = f

	app.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, app.currentMode())

	f.pingErr = errors.New("down")
	app.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, app.currentMode())
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	app, _ := newTestApp()
	app.authService = &fakeAuth{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.currentMode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestStartOnlineStatusWatcher_ZeroIntervalReturns(t *testing.T) {
	app, _ := newTestApp()
	app.StartOnlineStatusWatcher(context.Background(), 0)
	assert.Empty(t, app.currentMode())
}

func TestConfiguredSink(t *testing.T) {
	app, _ := newTestApp()
	app.config = &config.Config{ExportDir: t.TempDir()}

	s, err := app.configuredSink(context.Background(), "")
	require.NoError(t, err)
	assert.IsType(t, &export.DirSink{}, s)

	_, err = app.configuredSink(context.Background(), "s3")
	assert.Error(t, err)
}

func TestNewApp_RestoresNothingOnFreshDatabase(t *testing.T) {
	cfg := &config.Config{
		APIBaseURL:   "http://localhost:8000",
		DatabasePath: ":memory:",
		ExportDir:    t.TempDir(),
	}

	app, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.False(t, app.isLoggedIn())
	assert.Empty(t, app.getStatus())
}

func TestNewApp_BadURL(t *testing.T) {
	cfg := &config.Config{APIBaseURL: "localhost:8000", DatabasePath: ":memory:"}
	_, err := NewApp(context.Background(), cfg, nil)
	assert.Error(t, err)
}
