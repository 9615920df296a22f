// Package main 提供数据库迁移入口：默认执行全部 Up，-steps 为负数时回滚。
package main

import (
	"context"
	"flag"
	"os"

	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/migrator"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/jackc/pgx/v5/pgxpool"
)

type migrateApp struct {
	Pool   *pgxpool.Pool
	Logger log.Logger
	Schema string
}

func main() {
	ctx := context.Background()

	confFlag := flag.String("conf", "", "config path or directory, eg: -conf configs/config.yaml")
	steps := flag.Int("steps", 0, "number of migrations to apply, negative to roll back, 0 for all")
	flag.Parse()

	app, cleanup, err := wireMigrate(ctx, configloader.Params{ConfPath: *confFlag})
	if err != nil {
		panic(err)
	}
	defer cleanup()

	helper := log.NewHelper(app.Logger)
	result, err := migrator.Run(ctx, app.Pool, migrator.Options{Schema: app.Schema, Steps: *steps}, app.Logger)
	if err != nil {
		helper.Errorf("migrate failed: %v", err)
		os.Exit(1)
	}
	helper.Infof("migrate done: from=%d to=%d changed=%t", result.FromVersion, result.ToVersion, result.Changed)
}
