// Package migrator 使用 golang-migrate 执行内嵌的 SQL 迁移。
package migrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bionicotaku/lingo-services-tube/migrations"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	iofs "github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// DefaultSchema 是迁移版本表所在的 schema。
const DefaultSchema = "tube"

// Options 控制迁移行为。
type Options struct {
	Schema          string
	MigrationsTable string
	// Steps 为 0 时执行全部 Up；负数表示回滚对应步数。
	Steps int
}

// Result 描述迁移前后的版本。
type Result struct {
	FromVersion uint
	ToVersion   uint
	Changed     bool
}

// Run 在 pool 上执行迁移，返回前后版本。
func Run(ctx context.Context, pool *pgxpool.Pool, opts Options, logger log.Logger) (result Result, err error) {
	helper := log.NewHelper(log.With(logger, "component", "migrator"))
	schema := strings.TrimSpace(opts.Schema)
	if schema == "" {
		schema = DefaultSchema
	}
	table := strings.TrimSpace(opts.MigrationsTable)
	if table == "" {
		table = "schema_migrations"
	}

	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return result, fmt.Errorf("read migration directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			helper.Debugf("found migration file: %s", entry.Name())
		}
	}

	if _, err := pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoteIdent(schema)); err != nil {
		return result, fmt.Errorf("ensure schema %s: %w", schema, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return result, fmt.Errorf("acquire dedicated connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{
		MigrationsTable: table,
		SchemaName:      schema,
	})
	if err != nil {
		_ = conn.Close()
		return result, fmt.Errorf("initialize postgres driver: %w", err)
	}
	defer func() {
		if closeErr := driver.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close migration connection: %w", closeErr)
		}
	}()

	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return result, fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = source.Close()
		return result, fmt.Errorf("create migrator: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		helper.Info("no migrations have been applied yet")
	case err != nil:
		return result, fmt.Errorf("read migration version: %w", err)
	case dirty:
		return result, fmt.Errorf("database is dirty at version %d, fix manually and force", version)
	}
	result.FromVersion = version

	if opts.Steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(opts.Steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		helper.Errorf("apply migrations failed: err=%v", err)
		return result, fmt.Errorf("apply migrations: %w", err)
	}

	finalVersion, _, versionErr := m.Version()
	if versionErr != nil && !errors.Is(versionErr, migrate.ErrNilVersion) {
		return result, fmt.Errorf("read migration version: %w", versionErr)
	}
	result.ToVersion = finalVersion
	result.Changed = result.FromVersion != result.ToVersion
	helper.Infof("migrations applied: from=%d to=%d", result.FromVersion, result.ToVersion)
	return result, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
