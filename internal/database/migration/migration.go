package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// SentinelTable is checked before migrating. When it exists the schema is assumed complete.
const SentinelTable = "public.alerts"

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_alerts",
		SQL: `CREATE TABLE IF NOT EXISTS alerts (
  id              SERIAL  PRIMARY KEY,
  title           VARCHAR NOT NULL,
  severity        VARCHAR,
  "date"          DATE,
  "time"          TIME,
  description     TEXT,
  location        VARCHAR,
  source          VARCHAR,
  recommendations TEXT[]
);`,
	},
	{
		Name: "create_index_alerts_severity",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_alerts_severity ON alerts (severity);`,
	},
	{
		Name: "create_index_alerts_location",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_alerts_location ON alerts (location);`,
	},
	{
		Name: "create_table_news",
		SQL: `CREATE TABLE IF NOT EXISTS news (
  id       SERIAL  PRIMARY KEY,
  title    VARCHAR NOT NULL,
  summary  TEXT,
  "date"   DATE,
  source   VARCHAR,
  category VARCHAR,
  verified BOOLEAN DEFAULT TRUE,
  url      VARCHAR
);`,
	},
	{
		Name: "create_index_news_category",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_news_category ON news (category);`,
	},
	{
		Name: "create_table_support_points",
		SQL: `CREATE TABLE IF NOT EXISTS support_points (
  id           SERIAL         PRIMARY KEY,
  name         VARCHAR        NOT NULL,
  type         VARCHAR        NOT NULL,
  address      VARCHAR,
  phone        VARCHAR,
  services     TEXT[],
  capacity     VARCHAR,
  status       VARCHAR,
  hours        VARCHAR,
  needed_items TEXT[],
  latitude     DECIMAL(10, 8),
  longitude    DECIMAL(11, 8)
);`,
	},
	{
		Name: "create_index_support_points_type",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_support_points_type ON support_points (type);`,
	},
	{
		Name: "create_table_organizations",
		SQL: `CREATE TABLE IF NOT EXISTS organizations (
  id          SERIAL  PRIMARY KEY,
  name        VARCHAR NOT NULL,
  description TEXT,
  focus       VARCHAR,
  website     VARCHAR,
  verified    BOOLEAN DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_supply_needs",
		SQL: `CREATE TABLE IF NOT EXISTS supply_needs (
  id            SERIAL  PRIMARY KEY,
  organization  VARCHAR NOT NULL,
  items         TEXT[]  NOT NULL,
  urgency       VARCHAR,
  location      VARCHAR,
  contact       VARCHAR,
  delivery_info TEXT
);`,
	},
	{
		Name: "create_index_supply_needs_location",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_supply_needs_location ON supply_needs (location);`,
	},
	{
		Name: "create_table_volunteer_jobs",
		SQL: `CREATE TABLE IF NOT EXISTS volunteer_jobs (
  id              SERIAL  PRIMARY KEY,
  organization    VARCHAR NOT NULL,
  role            VARCHAR NOT NULL,
  description     TEXT,
  requirements    TEXT[],
  location        VARCHAR,
  time_commitment VARCHAR,
  contact         VARCHAR,
  urgent          BOOLEAN DEFAULT FALSE
);`,
	},
	{
		Name: "create_index_volunteer_jobs_location",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_volunteer_jobs_location ON volunteer_jobs (location);`,
	},
	{
		Name: "create_table_guides",
		SQL: `CREATE TABLE IF NOT EXISTS guides (
  id             SERIAL  PRIMARY KEY,
  title          VARCHAR NOT NULL,
  category       VARCHAR,
  difficulty     VARCHAR,
  estimated_time VARCHAR,
  description    TEXT,
  content_md     TEXT
);`,
	},
	{
		Name: "create_index_guides_category",
		SQL:  `CREATE INDEX IF NOT EXISTS ix_guides_category ON guides (category);`,
	},
}

// EnsureMigrated creates the schema when the sentinel table is missing.
// Every step is idempotent, so a partially applied schema is completed on the next run.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", SentinelTable).Scan(&exists)
	if err != nil {
		log.Error("db_migration_failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Int("steps", len(steps)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
