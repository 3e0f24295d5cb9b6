package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"contributorsboard/config"
	"contributorsboard/internal/domain"
	"contributorsboard/internal/repository/postgres"
	"contributorsboard/internal/repository/static"
	"contributorsboard/internal/services"
)

// board is the loaded configuration plus the service over the selected data source.
type board struct {
	cfg     *config.Config
	logger  *slog.Logger
	service domain.BoardService
	close   func() error
}

// loadBoard reads the configuration and opens the configured data source.
func loadBoard(ctx context.Context) (*board, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	b := &board{cfg: cfg, logger: logger, close: func() error { return nil }}
	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := openDB(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		b.close = db.Close
		b.service = services.NewBoardService(
			postgres.NewRoleRepository(db),
			postgres.NewContributorRepository(db),
			postgres.NewTownHallRepository(db),
			cfg.RequestTimeout,
		)
	default:
		ds, err := loadDataset(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		repo := static.NewRepository(ds)
		b.service = services.NewBoardService(repo, repo, repo, cfg.RequestTimeout)
	}
	logger.Debug("board loaded", "data_source", cfg.DataSource)
	return b, nil
}

// loadDataset reads path, or the embedded dataset when path is empty.
func loadDataset(path string) (*domain.Dataset, error) {
	if path == "" {
		return static.Default()
	}
	return static.LoadFile(path)
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
