package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// CMS points at the structured-content store. An empty ProjectID means no
// documents are configured and every read falls back.
type CMS struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	BaseURL    string
	Timeout    time.Duration
}

type Admin struct {
	Secret              string
	SecretHash          string
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	DefaultAuthor       string
}

// RabbitMQ describes a topic exchange. Bindings are the patterns that route
// events into QueueName; each event is published under its own type.
type RabbitMQ struct {
	URL       string
	Exchange  string
	QueueName string
	Bindings  []string
}

type Config struct {
	ServerPort     int
	LogLevel       string
	MigrationsPath string
	MaxUploadSize  int64
	DB             DB
	MinIO          MinIO
	CMS            CMS
	Admin          Admin
	RabbitMQ       RabbitMQ
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "portfolio"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadCMS() CMS {
	return CMS{
		ProjectID:  getEnv("CMS_PROJECT_ID", ""),
		Dataset:    getEnv("CMS_DATASET", "production"),
		APIVersion: getEnv("CMS_API_VERSION", "2024-01-01"),
		Token:      getEnv("CMS_TOKEN", ""),
		BaseURL:    getEnv("CMS_BASE_URL", ""),
		Timeout:    parseDuration(getEnv("CMS_TIMEOUT", "10s"), 10*time.Second),
	}
}

func LoadAdmin() Admin {
	return Admin{
		Secret:              getEnv("ADMIN_SECRET", ""),
		SecretHash:          getEnv("ADMIN_SECRET_HASH", ""),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "12h"), 12*time.Hour),
		DefaultAuthor:       getEnv("DEFAULT_AUTHOR", "Site Owner"),
	}
}

func LoadRabbitMQ() RabbitMQ {
	return RabbitMQ{
		URL:       getEnv("RABBITMQ_URL", ""),
		Exchange:  getEnv("RABBITMQ_EXCHANGE", "portfolio.events"),
		QueueName: getEnv("RABBITMQ_QUEUE", "portfolio_events"),
		Bindings:  splitList(getEnv("RABBITMQ_BINDINGS", "post.#,contact.#")),
	}
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort:     getEnvAsInt("SERVER_PORT", 8080),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
		MaxUploadSize:  parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		DB:             LoadDB(),
		MinIO:          LoadMinIO(),
		CMS:            LoadCMS(),
		Admin:          LoadAdmin(),
		RabbitMQ:       LoadRabbitMQ(),
	}
}

// DSN builds the lib/pq connection string.
func (d DB) DSN() string {
	return "host=" + d.DbHOST +
		" port=" + d.DbPORT +
		" user=" + d.DbUSER +
		" password=" + d.DbPASSWORD +
		" dbname=" + d.DbNAME +
		" sslmode=" + d.DbSSLMODE
}
