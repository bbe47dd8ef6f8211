package database

import (
	stdlog "log"
	"time"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// RestrictedTables always run on the restricted role, writes included.
var RestrictedTables = []any{"contacts", "hero_content", "web_skills", "certificates"}

// Open connects with the elevated role and, when configured, registers the
// restricted role as the read replica and as the source for public tables.
func Open(s *config.Settings) (*gorm.DB, error) {
	gormLogger := logger.New(
		stdlog.New(log.Logger, "", 0),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector(s.DSN(s.Elevated)), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, err
	}

	if s.HasRestrictedRole() {
		restricted := dialector(s.DSN(s.Restricted))
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{restricted},
			Policy:   dbresolver.RandomPolicy{},
		}).Register(dbresolver.Config{
			Sources: []gorm.Dialector{restricted},
		}, RestrictedTables...).
			SetConnMaxIdleTime(time.Hour).
			SetMaxOpenConns(10)
		if err := db.Use(resolver); err != nil {
			return nil, err
		}
		log.Info().Msg("restricted role registered for public reads")
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, err
	}
	return db, nil
}

func dialector(dsn string) gorm.Dialector {
	return postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	})
}
