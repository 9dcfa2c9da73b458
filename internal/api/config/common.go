package config

// Config 配置主体
type Config struct {
	Gateway GatewayConfig `mapstructure:"gateway"`
	Posts   PostsConfig   `mapstructure:"posts"`
	DB      DBConfig      `mapstructure:"database"`
	Redis   RedisConfig   `mapstructure:"redis"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	UserSvc UserSvcConfig `mapstructure:"user_service"`
}

// GatewayConfig 网关 HTTP 服务配置
type GatewayConfig struct {
	Port int `mapstructure:"port"`
}

// PostsConfig 帖子 gRPC 服务配置
type PostsConfig struct {
	Port int    `mapstructure:"port"`
	Addr string `mapstructure:"addr"` // 网关侧连接地址，如 posts:50051
}

// DBConfig 数据库配置
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

// JWTConfig 网关侧只做验签，签发在用户服务
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// UserSvcConfig 用户服务反向代理目标
type UserSvcConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Producer ProducerConfig `mapstructure:"producer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ProducerConfig struct {
	Timeout    int `mapstructure:"timeout"`     // 秒，单次发送的有界等待
	MaxRetries int `mapstructure:"max_retries"` // 同步重试次数，发布失败不回滚业务
}
