//go:build wireinject
// +build wireinject

// Package main 为孤儿媒体回收任务提供 Wire 依赖注入定义。
package main

import (
	"context"
	"fmt"

	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	mediasweep "github.com/bionicotaku/lingo-services-tube/internal/tasks/media_sweep"

	"github.com/bionicotaku/lingo-utils/gclog"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

//go:generate go run github.com/google/wire/cmd/wire

var sweepSet = wire.NewSet(
	repositories.NewMediaOrphanRepository,
	wire.Bind(new(services.MediaOrphanRepo), new(*repositories.MediaOrphanRepository)),
	services.NewMediaSweepService,
)

func wireMediaSweepTask(context.Context, configloader.Params) (*mediaSweepApp, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		mediastore.ProviderSet,
		sweepSet,
		mediasweep.ProvideRunner,
		newMediaSweepApp,
	))
}

func newMediaSweepApp(_ *obswire.Component, logger log.Logger, runner *mediasweep.Runner) (*mediaSweepApp, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	return &mediaSweepApp{Runner: runner, Logger: logger}, nil
}
