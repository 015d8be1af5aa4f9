// Package quantwatch monitors quantitative finance firms for public
// activity: campus events, job postings, engineering blog posts,
// investor reports, and conference videos.
//
// Basic usage:
//
//	client, err := quantwatch.New(
//	    quantwatch.WithSQLite(".quantwatch/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// One monitoring pass: scrape everything enabled, then notify.
//	summary := client.Monitor.Run(ctx)
//	fmt.Println(summary.Events, "new events")
//
//	// Query stored content across every type.
//	items, err := client.Search.Query(ctx, "volatility")
package quantwatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/quantwatch/quantwatch/application/service"
	"github.com/quantwatch/quantwatch/domain/firm"
	"github.com/quantwatch/quantwatch/infrastructure/archive"
	"github.com/quantwatch/quantwatch/infrastructure/extractor"
	"github.com/quantwatch/quantwatch/infrastructure/notify"
	"github.com/quantwatch/quantwatch/infrastructure/pdfinfo"
	"github.com/quantwatch/quantwatch/infrastructure/persistence"
	"github.com/quantwatch/quantwatch/internal/config"
	"github.com/quantwatch/quantwatch/internal/database"
	"github.com/quantwatch/quantwatch/internal/log"
)

// ErrClientClosed is returned by Close when the client was already
// closed.
var ErrClientClosed = errors.New("quantwatch client closed")

// Client is the main entry point for the quantwatch library.
//
// Access the application services via struct fields:
//
//	client.Monitor.Run(ctx)
//	client.Search.Query(ctx, "volatility")
//	client.Schedule.Run(ctx, "08:00", true)
type Client struct {
	Monitor  *service.Monitor
	Search   *service.Search
	Schedule *service.Schedule
	Notifier *notify.Notifier

	cfg    config.AppConfig
	db     database.Database
	pdf    *pdfinfo.PdfiumExtractor
	logger *log.Logger
	closed atomic.Bool
}

// New creates a Client with the given options.
func New(opts ...Option) (*Client, error) {
	c := &clientConfig{}
	for _, opt := range opts {
		opt(c)
	}

	cfg := config.New(c.appOpts...)
	if c.appCfg != nil {
		cfg = *c.appCfg
	}

	logger := c.logger
	if logger == nil {
		logger = log.NewLogger(cfg)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("prepare data dir: %w", err)
	}

	ctx := context.Background()
	db, err := database.New(ctx, cfg.DBURL())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := persistence.AutoMigrate(ctx, db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	arch, err := archive.New(cfg.ArchiveDir())
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("prepare archive: %w", err), errClose)
	}

	pdf, err := pdfinfo.New()
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("init pdf extraction: %w", err), errClose)
	}

	firms := persistence.NewFirmStore(db)
	events := persistence.NewEventStore(db)
	jobs := persistence.NewJobStore(db)
	blogs := persistence.NewBlogStore(db)
	reports := persistence.NewReportStore(db)
	videos := persistence.NewVideoStore(db)
	logs := persistence.NewScrapeLogStore(db)

	registry := firm.NewRegistry()
	detector := firm.NewDetector(registry)

	httpClient := extractor.NewClient(cfg.HTTPTimeout())
	reportClient := extractor.NewClient(cfg.ReportTimeout())

	eventExt := extractor.NewEventExtractor(httpClient, detector, firms, events, logs, logger)
	jobExt := extractor.NewJobExtractor(httpClient, detector, firms, jobs, logs, logger)
	blogExt := extractor.NewBlogExtractor(httpClient, firms, blogs, arch, logger)
	reportExt := extractor.NewReportExtractor(reportClient, firms, reports, arch, pdf, logger)
	videoExt := extractor.NewVideoExtractor(httpClient, firms, videos, arch, logger)

	deliverer := notify.DelivererFor(cfg.Email(), c.console)
	notifier := notify.NewNotifier(firms, events, jobs, blogs, reports, videos, deliverer, logger)

	monitor := service.NewMonitor(cfg, registry, firms,
		eventExt, jobExt, blogExt, reportExt, videoExt, notifier, logger)

	client := &Client{
		Monitor:  monitor,
		Search:   service.NewSearch(firms, events, jobs, blogs, reports, videos, logs),
		Schedule: service.NewSchedule(monitor, logger),
		Notifier: notifier,
		cfg:      cfg,
		db:       db,
		pdf:      pdf,
		logger:   logger,
	}
	return client, nil
}

// Close releases the pdfium runtime and the database.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	var errs []error
	if err := c.pdf.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close pdf extraction: %w", err))
	}
	if err := c.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.logger.Info("quantwatch client closed")
	return nil
}

// Config returns the effective application configuration.
func (c *Client) Config() config.AppConfig {
	return c.cfg
}

// Logger returns the client's logger.
func (c *Client) Logger() *log.Logger {
	return c.logger
}
