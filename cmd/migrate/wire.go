//go:build wireinject
// +build wireinject

// Package main 为迁移 CLI 提供 Wire 依赖注入定义。
package main

import (
	"context"

	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"

	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate go run github.com/google/wire/cmd/wire

func wireMigrate(context.Context, configloader.Params) (*migrateApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		pgxpoolx.ProviderSet,
		newMigrateApp,
	))
}

func newMigrateApp(pool *pgxpool.Pool, logger log.Logger, db configloader.DatabaseConfig) *migrateApp {
	return &migrateApp{Pool: pool, Logger: logger, Schema: db.Schema}
}
