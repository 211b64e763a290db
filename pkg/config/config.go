package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Execution ExecutionConfig
	Logging   LoggingConfig
	Database  DatabaseConfig
	Redis     RedisConfig
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Env          string        `mapstructure:"env"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	RateLimitRPS float64       `mapstructure:"rate_limit_rps"`
	RateBurst    int           `mapstructure:"rate_burst"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type ExecutionConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// DatabaseConfig and RedisConfig are declared for deployment parity but no
// code path uses them yet: all records live in memory and reset on restart.
// Durable storage is a roadmap item.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/autoflow/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("AUTOFLOW")
	viper.AutomaticEnv()

	// Plain env names kept for compatibility with existing deployments.
	_ = viper.BindEnv("server.port", "PORT")
	_ = viper.BindEnv("server.env", "NODE_ENV")
	_ = viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	_ = viper.BindEnv("database.url", "DATABASE_URL")
	_ = viper.BindEnv("redis.url", "REDIS_URL")

	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.env", "development")
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.rate_limit_rps", 100)
	viper.SetDefault("server.rate_burst", 200)
	viper.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("execution.delay", "3s")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
