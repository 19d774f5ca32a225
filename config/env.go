package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	DatabaseURL  string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLMode    string
	DBMaxConns   int
	RedisURL     string
	RedisAddr    string
	RedisPass    string
	JWTSecret    string
	JWTExpiry    string
	OriginURL    string
	MigrationDir string

	// terminal side
	APIURL      string
	APIToken    string
	TerminalID  string
	CartKey     string
	SaleTimeout time.Duration
}

var AppConfig *Config

// LoadConfig loads the server configuration into AppConfig.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = Load()

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

// Load reads the environment without touching AppConfig or logging. The pdv
// terminal uses it so command output stays clean.
func Load() *Config {
	saleTimeout, err := time.ParseDuration(os.Getenv("SALE_TIMEOUT"))
	if err != nil || saleTimeout <= 0 {
		saleTimeout = 30 * time.Second
	}

	return &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("APP_PORT", getEnv("PORT", "5001")),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "turma_do_forno"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:   getEnvInt("DB_MAX_CONNS", 25),
		RedisURL:     os.Getenv("REDIS_URL"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		JWTExpiry:    getEnv("JWT_EXPIRY", "12h"),
		OriginURL:    os.Getenv("ORIGIN_URL"),
		MigrationDir: getEnv("MIGRATION_DIR", "database/migration"),
		APIURL:       getEnv("PDV_API_URL", "http://localhost:5001"),
		APIToken:     os.Getenv("PDV_TOKEN"),
		TerminalID:   os.Getenv("PDV_TERMINAL"),
		CartKey:      getEnv("CART_KEY", "carrinho"),
		SaleTimeout:  saleTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}
