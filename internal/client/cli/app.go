package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/sprintpilot/internal/client/client"
	"github.com/dmitrijs2005/sprintpilot/internal/client/config"
	"github.com/dmitrijs2005/sprintpilot/internal/client/export"
	"github.com/dmitrijs2005/sprintpilot/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sprintpilot/internal/client/services"
	"github.com/dmitrijs2005/sprintpilot/internal/client/session"
	"github.com/dmitrijs2005/sprintpilot/internal/client/storage"
	"github.com/dmitrijs2005/sprintpilot/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config         *config.Config
	log            logging.Logger
	db             *sql.DB
	authService    services.AuthService
	projectService services.ProjectService
	planService    services.PlanService
	sprintService  services.SprintService
	exportService  services.ExportService

	// newSink picks the export destination; "s3" selects the bucket.
	newSink func(ctx context.Context, target string) (export.Sink, error)

	mu       sync.Mutex
	userName string
	mode     Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, restores the stored credential and wires
// the API services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sess := session.New(metadata.NewSQLiteRepository(db))
	if err := sess.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, sess, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:         c,
		log:            log,
		db:             db,
		authService:    services.NewAuthService(apiClient, db, sess),
		projectService: services.NewProjectService(apiClient, c.DefaultProvider),
		planService:    services.NewPlanService(apiClient),
		sprintService:  services.NewSprintService(apiClient),
		exportService:  services.NewExportService(apiClient),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}
	a.newSink = a.configuredSink

	if a.authService.LoggedIn() {
		if name, err := a.authService.UserName(ctx); err == nil {
			a.userName = name
		}
	}
	return a, nil
}

func (a *App) configuredSink(ctx context.Context, target string) (export.Sink, error) {
	if target != "s3" {
		return export.NewDirSink(a.config.ExportDir), nil
	}
	if !a.config.S3Enabled() {
		return nil, fmt.Errorf("no bucket configured, set SPRINTPILOT_S3_BUCKET")
	}
	return export.NewS3Sink(ctx, export.S3Config{
		Bucket:       a.config.S3Bucket,
		Region:       a.config.S3Region,
		BaseEndpoint: a.config.S3BaseEndpoint,
		AccessKey:    a.config.S3AccessKey,
		SecretKey:    a.config.S3SecretKey,
	})
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) logger() logging.Logger {
	if a.log == nil {
		return logging.Discard()
	}
	return a.log
}

func (a *App) isLoggedIn() bool {
	return a.authService != nil && a.authService.LoggedIn()
}

func (a *App) setUserName(name string) {
	a.mu.Lock()
	a.userName = name
	a.mu.Unlock()
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger().Info(context.Background(), "connectivity changed", "mode", string(mode))
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

// StartOnlineStatusWatcher pings the backend every interval and flips the
// prompt between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}
