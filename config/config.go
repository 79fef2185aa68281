package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	MySQL  MySQLConfig
	Upload UploadConfig
	Report ReportConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
}

type ServerConfig struct {
	AppEnv          string
	HTTPPort        string
	BodyLimit       int
	CORSOrigins     string
	ShutdownTimeout int
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type MySQLConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type UploadConfig struct {
	Dir       string
	URLPrefix string
	MaxBytes  int64
}

type ReportConfig struct {
	CompanyName    string
	CompanyTagline string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyWebsite string
	LogoPath       string
	ImageBaseURL   string
	FetchTimeout   int
	FetchWorkers   int
}

// RedisConfig is optional; an empty Addr disables the product list cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig is optional; no brokers disables order events.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:          getEnv("APP_ENV", "dev"),
			HTTPPort:        getEnv("PORT", "5000"),
			BodyLimit:       getEnvInt("SERVER_BODY_LIMIT", 6*1024*1024),
			CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
			ShutdownTimeout: getEnvInt("SERVER_SHUTDOWN_TIMEOUT", 15),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		MySQL: MySQLConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "3306"),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			DBName:          getEnv("DB_NAME", "furniture_db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("DB_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("DB_CONN_MAX_IDLE_TIME", 60),
		},
		Upload: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "./uploads-furniture"),
			URLPrefix: getEnv("UPLOAD_URL_PREFIX", "/uploads-furniture"),
			MaxBytes:  int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		},
		Report: ReportConfig{
			CompanyName:    getEnv("REPORT_COMPANY_NAME", "CV Kayu Manis"),
			CompanyTagline: getEnv("REPORT_COMPANY_TAGLINE", "Furniture Manufacturer & Exporter"),
			CompanyAddress: getEnv("REPORT_COMPANY_ADDRESS", ""),
			CompanyPhone:   getEnv("REPORT_COMPANY_PHONE", ""),
			CompanyEmail:   getEnv("REPORT_COMPANY_EMAIL", ""),
			CompanyWebsite: getEnv("REPORT_COMPANY_WEBSITE", ""),
			LogoPath:       getEnv("REPORT_LOGO_PATH", ""),
			ImageBaseURL:   getEnv("REPORT_IMAGE_BASE_URL", "http://localhost:5000"),
			FetchTimeout:   getEnvInt("REPORT_IMAGE_FETCH_TIMEOUT", 10),
			FetchWorkers:   getEnvInt("REPORT_IMAGE_FETCH_WORKERS", 4),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC_ORDERS", "furniture.orders"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return fallback
}
