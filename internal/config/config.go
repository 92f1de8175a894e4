package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const AppName = "meetup-sync"

type Config struct {
	Server         ServerConfig         `yaml:"server"         validate:"required"`
	Logger         LoggerConfig         `yaml:"logger"         validate:"required"`
	Gin            GinConfig            `yaml:"gin"            validate:"required"`
	Postgres       PostgresConfig       `yaml:"postgres"       validate:"required"`
	Session        SessionConfig        `yaml:"session"        validate:"required"`
	Auth           AuthConfig           `yaml:"auth"           validate:"required"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	Telegram       TelegramConfig       `yaml:"telegram"`
	CORS           CORSConfig           `yaml:"cors"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"60s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto logger.Level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
	Env    string `yaml:"env"    env:"APP_ENV"    env-default:"local"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"meetups"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

const (
	SessionBackendMemory   = "memory"
	SessionBackendDynamoDB = "dynamodb"
)

type SessionConfig struct {
	Backend       string         `yaml:"backend"        env:"SESSION_BACKEND"        env-default:"memory" validate:"required,oneof=memory dynamodb"`
	TTL           time.Duration  `yaml:"ttl"            env:"SESSION_TTL"            env-default:"2h"     validate:"gt=0"`
	SweepInterval time.Duration  `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1m"     validate:"gt=0"`
	DynamoDB      DynamoDBConfig `yaml:"dynamodb"`
}

type DynamoDBConfig struct {
	Table    string `yaml:"table"    env:"DYNAMODB_SESSION_TABLE" env-default:"meetup_sessions"`
	Region   string `yaml:"region"   env:"AWS_REGION"             env-default:"me-central-1"`
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"      env-default:""`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
	Issuer    string `yaml:"issuer"     env:"AUTH_ISSUER"     env-default:""`
}

type RecommendationConfig struct {
	APIKey    string        `yaml:"api_key"    env:"ANTHROPIC_API_KEY"        env-default:""`
	BaseURL   string        `yaml:"base_url"   env:"RECOMMENDATION_BASE_URL"  env-default:"https://api.anthropic.com"`
	Model     string        `yaml:"model"      env:"RECOMMENDATION_MODEL"     env-default:"claude-sonnet-4-20250514"`
	MaxTokens int           `yaml:"max_tokens" env:"RECOMMENDATION_MAX_TOKENS" env-default:"1000" validate:"min=1"`
	Timeout   time.Duration `yaml:"timeout"    env:"RECOMMENDATION_TIMEOUT"   env-default:"45s"  validate:"gt=0"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
