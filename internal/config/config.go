package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port         int
	MaxWorkers   int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Logging
	Environment string
	LogLevel    string
	LogFormat   string
	LogBodies   bool

	// Storage configuration
	PostgresURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DraftTTL      time.Duration

	// Authentication
	JWTSecret            string
	JWTAccessExpiration  time.Duration
	JWTRefreshExpiration time.Duration

	// Output
	PrintSettleDelay time.Duration

	// Rendered-document archive
	S3Endpoint        string
	S3AccessKeyID     string
	S3AccessKeySecret string
	S3Bucket          string
	S3Region          string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	loadDotEnv()

	config := &Config{
		Port:         getEnvInt("PORT", 8080),
		MaxWorkers:   getEnvInt("MAX_WORKERS", 5),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 30)) * time.Second,
		CORSOrigins:  getEnvStringSlice("CORS_ALLOWED_ORIGINS", nil),

		Environment: getEnvString("ENVIRONMENT", "development"),
		LogLevel:    getEnvString("LOG_LEVEL", "info"),
		LogFormat:   getEnvString("LOG_FORMAT", "json"),
		LogBodies:   getEnvBool("LOG_BODIES", false),

		PostgresURL:   os.Getenv("POSTGRES_DB_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		DraftTTL:      time.Duration(getEnvInt("DRAFT_TTL_HOURS", 24)) * time.Hour,

		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTAccessExpiration:  time.Duration(getEnvInt("JWT_ACCESS_EXPIRATION_MINUTES", 60)) * time.Minute,
		JWTRefreshExpiration: time.Duration(getEnvInt("JWT_REFRESH_EXPIRATION_HOURS", 24*7)) * time.Hour,

		PrintSettleDelay: time.Duration(getEnvInt("PRINT_SETTLE_DELAY_MS", 250)) * time.Millisecond,

		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3AccessKeySecret: os.Getenv("S3_ACCESS_KEY_SECRET"),
		S3Bucket:          getEnvString("S3_BUCKET", "invoices"),
		S3Region:          getEnvString("S3_REGION", "us-east-1"),
	}

	validateConfig(config)

	return config, nil
}

// loadDotEnv loads .env from the project root, falling back to the working directory
func loadDotEnv() {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Could not determine executable path: %v", err)
	}

	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading .env file. Using environment variables.")
		} else {
			log.Println("Loaded environment variables from current directory .env file")
		}
	} else {
		log.Printf("Loaded environment variables from %s", envPath)
	}
}

// validateConfig logs warnings for missing optional backends and fills
// values the service cannot run without
func validateConfig(config *Config) {
	if config.JWTSecret == "" {
		log.Println("Warning: No JWT_SECRET provided. Using an insecure development secret.")
		config.JWTSecret = "development-secret"
	}

	if config.PostgresURL == "" {
		log.Println("Warning: No POSTGRES_DB_URL provided. Users and invoices are kept in memory.")
	}

	if config.RedisAddr == "" {
		log.Println("Warning: No REDIS_ADDR provided. Drafts are kept in memory.")
	}

	if config.S3Endpoint == "" || config.S3AccessKeyID == "" {
		log.Println("Warning: S3 storage not configured. Saved invoices will not be archived.")
	}

	if config.MaxWorkers < 1 {
		log.Printf("Invalid MAX_WORKERS %d, using 1", config.MaxWorkers)
		config.MaxWorkers = 1
	}
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
