package store

import (
	"strings"

	"log/slog"

	coreconfig "github.com/hksports/sportsbuddy/core/config"
	"github.com/hksports/sportsbuddy/core/database"
	"github.com/hksports/sportsbuddy/core/logger"
)

// Open selects the activity store backend once at startup.
// With a configured database host it runs migrations and connects to
// postgres; on any failure, or with no host at all, it degrades to the
// in-memory backend so the bot keeps working without persistence.
func Open(cfg *coreconfig.Config) Backend {
	if cfg == nil || strings.TrimSpace(cfg.Database.Host) == "" {
		logger.DB.Warn("using in-memory activity store",
			slog.String("event", "store.select"),
			slog.String("backend", "memory"),
			slog.String("reason", "no_db_host"),
		)
		return NewMemory()
	}

	dbCfg := database.FromCore(cfg.Database)
	if err := database.RunMigrations(dbCfg); err != nil {
		logger.DB.Error("migrations failed, falling back to in-memory store",
			slog.String("event", "store.select"),
			slog.String("backend", "memory"),
			slog.String("err", err.Error()),
		)
		return NewMemory()
	}

	db, err := database.Connect(dbCfg)
	if err != nil {
		logger.DB.Error("db connect failed, falling back to in-memory store",
			slog.String("event", "store.select"),
			slog.String("backend", "memory"),
			slog.String("err", err.Error()),
		)
		return NewMemory()
	}

	logger.DB.Info("activity store ready",
		slog.String("event", "store.select"),
		slog.String("backend", "postgres"),
	)
	return NewPostgres(db)
}
