package configloader

// Bootstrap 对应 configs/config.yaml 的结构，由 kratos config Scan 以 JSON 方式解码。
// 时长字段统一使用 time.ParseDuration 可解析的字符串。
type Bootstrap struct {
	Server        ServerSection        `json:"server"`
	Data          DataSection          `json:"data"`
	Media         MediaSection         `json:"media"`
	Observability ObservabilitySection `json:"observability"`
	Messaging     MessagingSection     `json:"messaging"`
	Sweep         SweepSection         `json:"sweep"`
}

// ServerSection 描述入站 HTTP 服务。
type ServerSection struct {
	HTTP         HTTPSection     `json:"http"`
	Handlers     HandlersSection `json:"handlers"`
	JWT          *JWTSection     `json:"jwt"`
	MetadataKeys []string        `json:"metadata_keys"`
}

// HTTPSection 描述监听地址与请求级限制。
type HTTPSection struct {
	Network        string `json:"network" validate:"omitempty,oneof=tcp tcp4 tcp6 unix"`
	Addr           string `json:"addr"`
	Timeout        string `json:"timeout" validate:"omitempty,duration"`
	MaxUploadBytes int64  `json:"max_upload_bytes" validate:"gte=0"`
}

// HandlersSection 描述 Handler 超时。
type HandlersSection struct {
	DefaultTimeout string `json:"default_timeout" validate:"omitempty,duration"`
	CommandTimeout string `json:"command_timeout" validate:"omitempty,duration"`
	QueryTimeout   string `json:"query_timeout" validate:"omitempty,duration"`
}

// JWTSection 描述入站 JWT 校验。
type JWTSection struct {
	ExpectedAudience string `json:"expected_audience"`
	SkipValidate     bool   `json:"skip_validate"`
	Required         bool   `json:"required"`
	HeaderKey        string `json:"header_key"`
}

// DataSection 聚合数据源。
type DataSection struct {
	Postgres PostgresSection `json:"postgres"`
}

// PostgresSection 描述连接池与事务默认值。
type PostgresSection struct {
	DSN                       string              `json:"dsn" validate:"required"`
	MaxOpenConns              int                 `json:"max_open_conns" validate:"gte=0"`
	MinOpenConns              int                 `json:"min_open_conns" validate:"gte=0"`
	MaxConnLifetime           string              `json:"max_conn_lifetime" validate:"omitempty,duration"`
	MaxConnIdleTime           string              `json:"max_conn_idle_time" validate:"omitempty,duration"`
	HealthCheckPeriod         string              `json:"health_check_period" validate:"omitempty,duration"`
	Schema                    string              `json:"schema"`
	PreparedStatementsEnabled bool                `json:"prepared_statements_enabled"`
	PoolMetricsEnabled        bool                `json:"pool_metrics_enabled"`
	Transaction               *TransactionSection `json:"transaction"`
}

// TransactionSection 描述事务默认行为。
type TransactionSection struct {
	DefaultIsolation string `json:"default_isolation"`
	DefaultTimeout   string `json:"default_timeout" validate:"omitempty,duration"`
	LockTimeout      string `json:"lock_timeout" validate:"omitempty,duration"`
	MaxRetries       int    `json:"max_retries" validate:"gte=0"`
	MetricsEnabled   bool   `json:"metrics_enabled"`
}

// MediaSection 描述媒体存储后端。
type MediaSection struct {
	Backend         string `json:"backend" validate:"omitempty,oneof=s3 local"`
	Bucket          string `json:"bucket" validate:"required_if=Backend s3"`
	Region          string `json:"region"`
	Endpoint        string `json:"endpoint" validate:"omitempty,url"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	UsePathStyle    bool   `json:"use_path_style"`
	PublicBaseURL   string `json:"public_base_url" validate:"omitempty,url"`
	LocalRoot       string `json:"local_root"`
	ServeLocal      bool   `json:"serve_local"`
}

// ObservabilitySection 描述 tracing 与 metrics。
type ObservabilitySection struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          *TracingSection   `json:"tracing"`
	Metrics          *MetricsSection   `json:"metrics"`
}

// TracingSection 对应 OpenTelemetry 追踪导出。
type TracingSection struct {
	Enabled            bool              `json:"enabled"`
	Exporter           string            `json:"exporter"`
	Endpoint           string            `json:"endpoint"`
	Headers            map[string]string `json:"headers"`
	Insecure           bool              `json:"insecure"`
	SamplingRatio      float64           `json:"sampling_ratio" validate:"gte=0,lte=1"`
	BatchTimeout       string            `json:"batch_timeout" validate:"omitempty,duration"`
	ExportTimeout      string            `json:"export_timeout" validate:"omitempty,duration"`
	MaxQueueSize       int               `json:"max_queue_size" validate:"gte=0"`
	MaxExportBatchSize int               `json:"max_export_batch_size" validate:"gte=0"`
	Required           bool              `json:"required"`
	Attributes         map[string]string `json:"attributes"`
}

// MetricsSection 对应 OpenTelemetry 指标导出。
type MetricsSection struct {
	Enabled             bool              `json:"enabled"`
	Exporter            string            `json:"exporter"`
	Endpoint            string            `json:"endpoint"`
	Headers             map[string]string `json:"headers"`
	Insecure            bool              `json:"insecure"`
	Interval            string            `json:"interval" validate:"omitempty,duration"`
	DisableRuntimeStats bool              `json:"disable_runtime_stats"`
	Required            bool              `json:"required"`
	ResourceAttributes  map[string]string `json:"resource_attributes"`
	HTTPEnabled         bool              `json:"http_enabled"`
}

// MessagingSection 描述 Pub/Sub 与 Outbox 发布器。
type MessagingSection struct {
	PubSub *PubSubSection `json:"pubsub"`
	Outbox *OutboxSection `json:"outbox"`
}

// PubSubSection 对应 GCP Pub/Sub 设置。
type PubSubSection struct {
	ProjectID           string `json:"project_id"`
	TopicID             string `json:"topic_id" validate:"required_with=ProjectID"`
	OrderingKeyEnabled  bool   `json:"ordering_key_enabled"`
	LoggingEnabled      bool   `json:"logging_enabled"`
	MetricsEnabled      bool   `json:"metrics_enabled"`
	EmulatorEndpoint    string `json:"emulator_endpoint"`
	PublishTimeout      string `json:"publish_timeout" validate:"omitempty,duration"`
	ExactlyOnceDelivery bool   `json:"exactly_once_delivery"`
}

// OutboxSection 对应 Outbox 发布器参数。
type OutboxSection struct {
	BatchSize      int    `json:"batch_size" validate:"gte=0"`
	TickInterval   string `json:"tick_interval" validate:"omitempty,duration"`
	InitialBackoff string `json:"initial_backoff" validate:"omitempty,duration"`
	MaxBackoff     string `json:"max_backoff" validate:"omitempty,duration"`
	MaxAttempts    int    `json:"max_attempts" validate:"gte=0"`
	PublishTimeout string `json:"publish_timeout" validate:"omitempty,duration"`
	Workers        int    `json:"workers" validate:"gte=0"`
	LockTTL        string `json:"lock_ttl" validate:"omitempty,duration"`
	LoggingEnabled *bool  `json:"logging_enabled"`
	MetricsEnabled *bool  `json:"metrics_enabled"`
}

// SweepSection 描述孤儿媒体回收任务。
type SweepSection struct {
	Interval      string `json:"interval" validate:"omitempty,duration"`
	BatchSize     int    `json:"batch_size" validate:"gte=0"`
	MaxAttempts   int    `json:"max_attempts" validate:"gte=0"`
	Concurrency   int    `json:"concurrency" validate:"gte=0,lte=64"`
	LeaseDuration string `json:"lease_duration" validate:"omitempty,duration"`
	RetryBackoff  string `json:"retry_backoff" validate:"omitempty,duration"`
	MaxBackoff    string `json:"max_backoff" validate:"omitempty,duration"`
}
