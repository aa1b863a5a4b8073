package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Cache    CacheConfig    `yaml:"cache"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	API      APIConfig      `yaml:"api"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RatePerMinute   int           `yaml:"rate_per_minute"  env:"SERVER_RATE_PER_MINUTE"  env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	Migrate         bool          `yaml:"migrate"            env:"DATABASE_MIGRATE"            env-default:"true"`
}

// RedisConfig holds Redis cache connection settings. The cache is optional:
// with Enabled=false, or when the server is unreachable, every lookup is a miss.
type RedisConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"REDIS_ENABLED"         env-default:"true"`
	Addr           string        `yaml:"addr"            env:"REDIS_ADDR"            env-default:"localhost:6379"`
	DB             int           `yaml:"db"              env:"REDIS_DB"              env-default:"0"`
	Password       string        `yaml:"password"        env:"REDIS_PASSWORD"`
	OpTimeout      time.Duration `yaml:"op_timeout"      env:"REDIS_OP_TIMEOUT"      env-default:"300ms"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ProbeInterval  time.Duration `yaml:"probe_interval"  env:"REDIS_PROBE_INTERVAL"  env-default:"30s"`
}

// CacheConfig holds settings for the users-dict cache entry.
type CacheConfig struct {
	UsersDictTTL time.Duration `yaml:"users_dict_ttl" env:"CACHE_USERS_DICT_TTL" env-default:"1h"`
}

// KafkaConfig holds broker settings for the alert relay.
type KafkaConfig struct {
	Enabled          bool     `yaml:"enabled"           env:"KAFKA_ENABLED"           env-default:"false"`
	Brokers          []string `yaml:"brokers"           env:"KAFKA_BROKERS"           env-default:"localhost:9092"`
	Topic            string   `yaml:"topic"             env:"KAFKA_TOPIC"             env-default:"person_reid_alerts"`
	GroupID          string   `yaml:"group_id"          env:"KAFKA_GROUP_ID"          env-default:"reid-backend"`
	RelayBufferSize  int      `yaml:"relay_buffer_size" env:"KAFKA_RELAY_BUFFER_SIZE" env-default:"100"`
}

// APIConfig holds request-level limits.
type APIConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"API_DEFAULT_PAGE_SIZE" env-default:"100"`
	MaxPageSize     int `yaml:"max_page_size"     env:"API_MAX_PAGE_SIZE"     env-default:"1000"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
