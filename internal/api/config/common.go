package config

// Config 配置主体
type Config struct {
	Server             ServerConfig       `mapstructure:"server"`
	DB                 DBConfig           `mapstructure:"database"`
	Redis              RedisConfig        `mapstructure:"redis"`
	MinIO              MinIOConfig        `mapstructure:"minio"`
	Logstash           LogstashConfig     `mapstructure:"logstash"`
	Kafka              KafkaConfig        `mapstructure:"kafka"`
	KafkaEventConsumer KafkaEventConsumer `mapstructure:"kafka_event_consumer"`
	Analytics          AnalyticsConfig    `mapstructure:"analytics"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置（游戏目录，HOT 标记同步用）
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MinIOConfig MinIO配置，endpoint 为空时不启用制品上传
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// LogstashConfig 远程日志配置，address 为空时仅输出到 stdout
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaEventConsumer 服务端埋点事件消费者
type KafkaEventConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// AnalyticsConfig 埋点统计配置，进程启动时装配一次，按值传入各组件
type AnalyticsConfig struct {
	RetentionDays          int           `mapstructure:"retention_days"`
	DefaultQueryDays       int           `mapstructure:"default_query_days"`
	MaxQueryDays           int           `mapstructure:"max_query_days"`
	TimestampSkewHours     int           `mapstructure:"timestamp_skew_hours"`
	RateLimitWindowSeconds int           `mapstructure:"rate_limit_window_seconds"`
	RateLimitMaxRequests   int           `mapstructure:"rate_limit_max_requests"`
	HotPeriodDays          int           `mapstructure:"hot_period_days"`
	HotCount               int           `mapstructure:"hot_count"`
	HotOutputPath          string        `mapstructure:"hot_output_path"`
	HotCronSpec            string        `mapstructure:"hot_cron_spec"`
	Weights                WeightsConfig `mapstructure:"weights"`
}

// WeightsConfig 评分权重，四项之和应为 1.0
type WeightsConfig struct {
	PV        float64 `mapstructure:"pv"`
	CardClick float64 `mapstructure:"card_click"`
	GameStart float64 `mapstructure:"game_start"`
	TimeSpent float64 `mapstructure:"time_spent"`
}
