// Package httpserver 负责装配入站 HTTP Server 及其中间件栈。
// 包括：追踪、日志、限流、恢复等中间件，以及可选的指标采集与本地媒体托管。
package httpserver

import (
	"net/http"

	"github.com/bionicotaku/lingo-services-tube/internal/controllers"
	configloader "github.com/bionicotaku/lingo-services-tube/internal/infrastructure/configloader"
	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"

	"github.com/bionicotaku/lingo-utils/gcjwt"
	obsTrace "github.com/bionicotaku/lingo-utils/observability/tracing"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/metadata"
	"github.com/go-kratos/kratos/v2/middleware/ratelimit"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

// HealthPath 为探活路由，不经过业务中间件，也不计入 HTTP 指标。
const HealthPath = "/healthz"

// NewHTTPServer 构造配置完整的 Kratos HTTP Server 实例。
//
// 中间件链（按执行顺序）：
// 1. obsTrace.Server() - OpenTelemetry 追踪
// 2. recovery.Recovery() - Panic 恢复
// 3. metadata.Server() - 按前缀传播 header
// 4. jwt（可选）
// 5. ratelimit.Server() - 限流保护
// 6. logging.Server() - 结构化日志
//
// cfg.MetricsEnabled 为 true 时挂载 otelhttp 过滤器采集请求指标。
// cfg.ServeMedia 为 true 时在公开地址的路径前缀下托管本地媒体目录。
func NewHTTPServer(
	cfg configloader.ServerConfig,
	media mediastore.Config,
	jwt gcjwt.ServerMiddleware,
	lifecycle *controllers.LifecycleHandler,
	query *controllers.VideoQueryHandler,
	logger log.Logger,
) *khttp.Server {
	mws := []middleware.Middleware{
		obsTrace.Server(),
		recovery.Recovery(),
		metadata.Server(metadata.WithPropagatedPrefix(cfg.MetadataKeys...)),
	}
	if jwt != nil {
		mws = append(mws, middleware.Middleware(jwt))
	}
	mws = append(mws,
		ratelimit.Server(),
		logging.Server(logger),
	)

	opts := []khttp.ServerOption{
		khttp.Middleware(mws...),
	}
	if cfg.MetricsEnabled {
		opts = append(opts, khttp.Filter(newMetricsFilter()))
	}
	if cfg.Network != "" {
		opts = append(opts, khttp.Network(cfg.Network))
	}
	if cfg.Address != "" {
		opts = append(opts, khttp.Address(cfg.Address))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, khttp.Timeout(cfg.Timeout))
	}
	srv := khttp.NewServer(opts...)

	srv.HandleFunc(HealthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router := srv.Route("/")
	if query != nil {
		query.RegisterRoutes(router)
	}
	if lifecycle != nil {
		lifecycle.RegisterRoutes(router)
	}

	if cfg.ServeMedia {
		mountLocalMedia(srv, media, log.NewHelper(logger))
	}
	return srv
}

// newMetricsFilter 用 otelhttp 包裹整条 HTTP 处理链，探活请求不产生指标。
func newMetricsFilter() khttp.FilterFunc {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "tube.http",
			otelhttp.WithMeterProvider(otel.GetMeterProvider()),
			otelhttp.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != HealthPath
			}),
		)
	}
}

func mountLocalMedia(srv *khttp.Server, media mediastore.Config, helper *log.Helper) {
	prefix, err := mediastore.PublicPathPrefix(media)
	if err != nil {
		helper.Warnw("msg", "skip serving local media", "error", err)
		return
	}
	if prefix == "/" {
		// 根路径会覆盖 API 路由
		helper.Warn("skip serving local media: public base url has no path prefix")
		return
	}
	srv.HandlePrefix(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(media.LocalRoot))))
	helper.Infof("serving local media: prefix=%s root=%s", prefix, media.LocalRoot)
}
