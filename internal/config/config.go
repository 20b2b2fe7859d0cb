package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

type Config struct {
	Service    Service
	Postgres   Postgres
	Logger     Logger
	Metrics    Metrics
	Kafka      Kafka
	Centrifuge Centrifuge
	Platform   Platform
}

type Service struct {
	Port string `env:"MESSENGER_SERVICE_PORT" env-default:"8080"`
	Name string `env:"MESSENGER_SERVICE_NAME" env-default:"messenger-service"`
}

type Postgres struct {
	User     string `env:"MESSENGER_SERVICE_POSTGRES_USER" env-required:"true"`
	Password string `env:"MESSENGER_SERVICE_POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"MESSENGER_SERVICE_POSTGRES_DB" env-required:"true"`
	Host     string `env:"MESSENGER_SERVICE_POSTGRES_HOST" env-required:"true"`
	Port     string `env:"MESSENGER_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Logger struct {
	Host string `env:"PLATFORM_LOGGER_HOST"`
	Port string `env:"PLATFORM_LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"PLATFORM_GRAPHITE_HOST"`
	Port int    `env:"PLATFORM_GRAPHITE_PORT"`
}

type Kafka struct {
	Host            string `env:"PLATFORM_KAFKA_HOST"`
	Port            string `env:"PLATFORM_KAFKA_PORT"`
	UserTopic       string `env:"MESSENGER_SERVICE_KAFKA_USER_TOPIC" env-default:"user.updated"`
	NewMessageTopic string `env:"MESSENGER_SERVICE_KAFKA_NEW_MESSAGE_TOPIC" env-default:"messenger.message.new"`
}

type Centrifuge struct {
	BaseURL   string        `env:"MESSENGER_SERVICE_CENTRIFUGO_URL"`
	APIKey    string        `env:"MESSENGER_SERVICE_CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"MESSENGER_SERVICE_CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"MESSENGER_SERVICE_CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Platform struct {
	Env string `env:"PLATFORM_ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}
