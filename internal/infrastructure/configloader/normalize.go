package configloader

import (
	"time"

	"github.com/bionicotaku/lingo-services-tube/internal/infrastructure/mediastore"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultHTTPTimeout    = 60 * time.Second
	defaultHandlerTimeout = 5 * time.Second
	defaultCommandTimeout = 30 * time.Second
	defaultQueryTimeout   = 3 * time.Second
	defaultMaxUploadBytes = 512 << 20
	defaultSchema         = "tube"
	defaultSweepInterval  = time.Minute
	defaultLocalRoot      = "data/media"
	defaultLocalBaseURL   = "http://localhost:8080/media"
)

func fromBootstrap(b *Bootstrap) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	rt := RuntimeConfig{
		Server:        serverFromBootstrap(b.Server),
		Database:      databaseFromBootstrap(b.Data.Postgres),
		Media:         mediaFromBootstrap(b.Media),
		Observability: observabilityFromBootstrap(b.Observability),
		Messaging:     messagingFromBootstrap(b.Messaging, b.Data.Postgres),
		Sweep:         sweepFromBootstrap(b.Sweep),
	}
	rt.Server.MetricsEnabled = rt.Observability.Metrics.HTTPEnabled
	// 仅本地后端需要由服务自身托管媒体文件
	rt.Server.ServeMedia = b.Media.ServeLocal && rt.Media.Backend == mediastore.BackendLocal
	return rt
}

func serverFromBootstrap(s ServerSection) ServerConfig {
	server := ServerConfig{
		Network:        s.HTTP.Network,
		Address:        firstNonEmpty(s.HTTP.Addr, defaultHTTPAddr),
		Timeout:        firstNonZero(parseDuration(s.HTTP.Timeout), defaultHTTPTimeout),
		MaxUploadBytes: s.HTTP.MaxUploadBytes,
		Handlers:       handlerTimeoutFromBootstrap(s.Handlers),
		MetadataKeys:   append([]string(nil), s.MetadataKeys...),
	}
	if server.MaxUploadBytes <= 0 {
		server.MaxUploadBytes = defaultMaxUploadBytes
	}
	if jwt := s.JWT; jwt != nil {
		server.JWT = ServerJWTConfig{
			Enabled:          true,
			ExpectedAudience: jwt.ExpectedAudience,
			SkipValidate:     jwt.SkipValidate,
			Required:         jwt.Required,
			HeaderKey:        firstNonEmpty(jwt.HeaderKey, "authorization"),
		}
	}
	return server
}

func handlerTimeoutFromBootstrap(h HandlersSection) HandlerTimeoutConfig {
	cfg := HandlerTimeoutConfig{
		Default: firstNonZero(parseDuration(h.DefaultTimeout), defaultHandlerTimeout),
	}
	// 上传走 Command 超时，默认放宽
	cfg.Command = firstNonZero(parseDuration(h.CommandTimeout), defaultCommandTimeout)
	cfg.Query = firstNonZero(parseDuration(h.QueryTimeout), defaultQueryTimeout)
	return cfg
}

func databaseFromBootstrap(pg PostgresSection) DatabaseConfig {
	cfg := DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   parseDuration(pg.MaxConnLifetime),
		MaxConnIdleTime:   parseDuration(pg.MaxConnIdleTime),
		HealthCheckPeriod: parseDuration(pg.HealthCheckPeriod),
		Schema:            firstNonEmpty(pg.Schema, defaultSchema),
		PreparedStmts:     pg.PreparedStatementsEnabled,
		PoolMetrics:       pg.PoolMetricsEnabled,
	}
	if tx := pg.Transaction; tx != nil {
		cfg.Transaction = TransactionConfig{
			DefaultIsolation: tx.DefaultIsolation,
			DefaultTimeout:   parseDuration(tx.DefaultTimeout),
			LockTimeout:      parseDuration(tx.LockTimeout),
			MaxRetries:       tx.MaxRetries,
			MetricsEnabled:   tx.MetricsEnabled,
		}
	}
	return cfg
}

func mediaFromBootstrap(m MediaSection) mediastore.Config {
	cfg := mediastore.Config{
		Backend:         firstNonEmpty(m.Backend, mediastore.BackendLocal),
		Bucket:          m.Bucket,
		Region:          m.Region,
		Endpoint:        m.Endpoint,
		AccessKeyID:     m.AccessKeyID,
		SecretAccessKey: m.SecretAccessKey,
		UsePathStyle:    m.UsePathStyle,
		PublicBaseURL:   m.PublicBaseURL,
		LocalRoot:       m.LocalRoot,
	}
	if cfg.Backend == mediastore.BackendLocal {
		cfg.LocalRoot = firstNonEmpty(cfg.LocalRoot, defaultLocalRoot)
		cfg.PublicBaseURL = firstNonEmpty(cfg.PublicBaseURL, defaultLocalBaseURL)
	}
	return cfg
}

func observabilityFromBootstrap(obs ObservabilitySection) ObservabilityConfig {
	cfg := ObservabilityConfig{GlobalAttributes: mapCopy(obs.GlobalAttributes)}
	if t := obs.Tracing; t != nil {
		cfg.Tracing = TracingConfig{
			Enabled:            t.Enabled,
			Exporter:           t.Exporter,
			Endpoint:           t.Endpoint,
			Headers:            mapCopy(t.Headers),
			Insecure:           t.Insecure,
			SamplingRatio:      t.SamplingRatio,
			BatchTimeout:       parseDuration(t.BatchTimeout),
			ExportTimeout:      parseDuration(t.ExportTimeout),
			MaxQueueSize:       t.MaxQueueSize,
			MaxExportBatchSize: t.MaxExportBatchSize,
			Required:           t.Required,
			Attributes:         mapCopy(t.Attributes),
		}
	}
	if m := obs.Metrics; m != nil {
		cfg.Metrics = MetricsConfig{
			Enabled:             m.Enabled,
			Exporter:            m.Exporter,
			Endpoint:            m.Endpoint,
			Headers:             mapCopy(m.Headers),
			Insecure:            m.Insecure,
			Interval:            parseDuration(m.Interval),
			DisableRuntimeStats: m.DisableRuntimeStats,
			Required:            m.Required,
			ResourceAttributes:  mapCopy(m.ResourceAttributes),
			HTTPEnabled:         m.HTTPEnabled,
		}
	}
	return cfg
}

func messagingFromBootstrap(msg MessagingSection, pg PostgresSection) MessagingConfig {
	cfg := MessagingConfig{Schema: firstNonEmpty(pg.Schema, defaultSchema)}
	if ps := msg.PubSub; ps != nil {
		cfg.PubSub = PubSubConfig{
			ProjectID:           ps.ProjectID,
			TopicID:             ps.TopicID,
			OrderingKeyEnabled:  ps.OrderingKeyEnabled,
			LoggingEnabled:      ps.LoggingEnabled,
			MetricsEnabled:      ps.MetricsEnabled,
			EmulatorEndpoint:    ps.EmulatorEndpoint,
			PublishTimeout:      parseDuration(ps.PublishTimeout),
			ExactlyOnceDelivery: ps.ExactlyOnceDelivery,
		}
	}
	if ob := msg.Outbox; ob != nil {
		cfg.Outbox = OutboxPublisherConfig{
			BatchSize:      ob.BatchSize,
			TickInterval:   parseDuration(ob.TickInterval),
			InitialBackoff: parseDuration(ob.InitialBackoff),
			MaxBackoff:     parseDuration(ob.MaxBackoff),
			MaxAttempts:    ob.MaxAttempts,
			PublishTimeout: parseDuration(ob.PublishTimeout),
			Workers:        ob.Workers,
			LockTTL:        parseDuration(ob.LockTTL),
			LoggingEnabled: ob.LoggingEnabled,
			MetricsEnabled: ob.MetricsEnabled,
		}
	}
	return cfg
}

func sweepFromBootstrap(s SweepSection) SweepConfig {
	return SweepConfig{
		Interval:      firstNonZero(parseDuration(s.Interval), defaultSweepInterval),
		BatchSize:     s.BatchSize,
		MaxAttempts:   s.MaxAttempts,
		Concurrency:   s.Concurrency,
		LeaseDuration: parseDuration(s.LeaseDuration),
		RetryBackoff:  parseDuration(s.RetryBackoff),
		MaxBackoff:    parseDuration(s.MaxBackoff),
	}
}

// parseDuration 在校验之后调用，非法值已被拦截。
func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}

func mapCopy(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func firstNonZero(durations ...time.Duration) time.Duration {
	for _, d := range durations {
		if d > 0 {
			return d
		}
	}
	return 0
}

func fillDefaults(cfg *RuntimeConfig) {
	if cfg.Server.JWT.HeaderKey == "" {
		cfg.Server.JWT.HeaderKey = "authorization"
	}
	defaultKeys := []string{
		"x-apigateway-api-userinfo",
		"x-md-",
	}
	if len(cfg.Server.MetadataKeys) == 0 {
		cfg.Server.MetadataKeys = append([]string(nil), defaultKeys...)
	}
}
