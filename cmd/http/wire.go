//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

//go:generate go run github.com/google/wire/cmd/wire

package main

import (
	"context"

	"github.com/bionicotaku/lingo-services-tube/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	httpserver "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/http_server"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
	"github.com/bionicotaku/lingo-services-tube/internal/repositories"
	"github.com/bionicotaku/lingo-services-tube/internal/services"
	mediasweep "github.com/bionicotaku/lingo-services-tube/internal/tasks/media_sweep"
	outboxtasks "github.com/bionicotaku/lingo-services-tube/internal/tasks/outbox"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	"github.com/bionicotaku/lingo-utils/gclog"
	"github.com/bionicotaku/lingo-utils/gcpubsub"
	obswire "github.com/bionicotaku/lingo-utils/observability"
	"github.com/bionicotaku/lingo-utils/pgxpoolx"
	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2"
	"github.com/google/wire"
)

// wireApp 构建整个 Kratos 应用。
//
// 依赖注入顺序:
//  1. 配置加载: configloader.ProviderSet 解析 YAML 并派生各组件配置
//  2. 基础设施: gclog → observability → gcjwt → pgxpoolx → txmanager → mediastore → gcpubsub
//  3. 业务层: repositories → services → controllers
//  4. 服务器: httpserver.ProviderSet 组装 HTTP Server
//  5. 后台 worker: Outbox 发布器与孤儿媒体回收
//  6. 应用: newApp 创建 Kratos App
func wireApp(context.Context, configloader.Params) (*kratos.App, func(), error) {
	panic(wire.Build(
		configloader.ProviderSet,
		gclog.ProviderSet,
		gcjwt.ProviderSet,
		obswire.ProviderSet,
		pgxpoolx.ProviderSet,
		txmanager.ProviderSet,
		gcpubsub.ProviderSet,
		mediastore.ProviderSet,
		httpserver.ProviderSet,
		repositories.ProviderSet,
		wire.Bind(new(services.VideoRepo), new(*repositories.VideoRepository)),
		wire.Bind(new(services.CommentRepo), new(*repositories.CommentRepository)),
		wire.Bind(new(services.UserVideosRepo), new(*repositories.UserVideosRepository)),
		wire.Bind(new(services.MediaOrphanRepo), new(*repositories.MediaOrphanRepository)),
		wire.Bind(new(services.OutboxEnqueuer), new(*repositories.OutboxRepository)),
		services.ProviderSet,
		wire.Bind(new(services.VideoLifecycleServiceInterface), new(*services.VideoLifecycleService)),
		wire.Bind(new(services.VideoQueryServiceInterface), new(*services.VideoQueryService)),
		controllers.ProviderSet,
		outboxtasks.ProvideRunner,
		mediasweep.ProvideRunner,
		newApp,
	))
}
