package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvironmentProduction = "production"

	TokenTransportHeader = "header"
	TokenTransportCookie = "cookie"
)

type Config struct {
	Environment    string
	ServicePort    string
	MetricsPort    string
	LogLevel       string
	JWTSecret      string
	TokenTransport string
	MongoDBConfig  MongoDBConfig
	KafkaConfig    KafkaConfig
	TracingConfig  TracingConfig
	SellerConfig   SellerConfig
	CORSConfig     CORSConfig
	StorageConfig  StorageConfig
	RedisConfig    RedisConfig
	SearchConfig   SearchConfig
	SMTPConfig     SMTPConfig
	MidtransConfig MidtransConfig
	OrderConfig    OrderConfig
}

type MongoDBConfig struct {
	URI      string
	Database string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
	ConsumerGroup   string
}

type TracingConfig struct {
	CollectorHost string
}

type SellerConfig struct {
	Email    string
	Password string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StorageConfig struct {
	BucketURL     string
	PublicBaseURL string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
	TTL      time.Duration
}

type SearchConfig struct {
	ElasticsearchHost string
	Index             string
}

type SMTPConfig struct {
	Server   string
	Port     int
	Sender   string
	Password string
}

type MidtransConfig struct {
	ServerKey  string
	Production bool
}

type OrderConfig struct {
	TaxRate        float64
	PaymentTimeout time.Duration
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServicePort:    getEnv("SERVICE_PORT", "4000"),
		MetricsPort:    getEnv("METRICS_PORT", "9090"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTransport: strings.ToLower(getEnv("TOKEN_TRANSPORT", TokenTransportHeader)),
		MongoDBConfig: MongoDBConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "greennest"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     getEnv("BROKER_TOPIC", "green-nest-events"),
			BrokerPartition: getEnvInt("BROKER_PARTITION", 0),
			ConsumerGroup:   getEnv("BROKER_CONSUMER_GROUP", "green-nest-notifier"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		SellerConfig: SellerConfig{
			Email:    os.Getenv("SELLER_EMAIL"),
			Password: os.Getenv("SELLER_PASSWORD"),
		},
		CORSConfig: CORSConfig{
			AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		StorageConfig: StorageConfig{
			BucketURL:     getEnv("STORAGE_BUCKET_URL", "file:///tmp/green-nest-uploads"),
			PublicBaseURL: strings.TrimRight(getEnv("STORAGE_PUBLIC_BASE_URL", "http://localhost:4000/uploads"), "/"),
		},
		RedisConfig: RedisConfig{
			Address:  os.Getenv("REDIS_ADDRESS"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
		SearchConfig: SearchConfig{
			ElasticsearchHost: strings.TrimRight(os.Getenv("ELASTICSEARCH_HOST"), "/"),
			Index:             getEnv("ELASTICSEARCH_INDEX", "products"),
		},
		SMTPConfig: SMTPConfig{
			Server:   os.Getenv("SMTP_SERVER"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		MidtransConfig: MidtransConfig{
			ServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
			Production: os.Getenv("MIDTRANS_ENVIRONMENT") == EnvironmentProduction,
		},
		OrderConfig: OrderConfig{
			TaxRate:        getEnvFloat("ORDER_TAX_RATE", 0.02),
			PaymentTimeout: getEnvDuration("ORDER_PAYMENT_TIMEOUT", 15*time.Minute),
		},
	}

	if conf.TokenTransport != TokenTransportCookie {
		conf.TokenTransport = TokenTransportHeader
	}

	return &conf
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
