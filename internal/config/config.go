package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort      string // Application port
	DBDriver     string // Database driver: mysql, postgres or sqlite
	DBUser       string // Database user
	DBPassword   string // Database password
	DBHost       string // Database host
	DBPort       string // Database port
	DBName       string // Database name
	DBPath       string // SQLite database file (sqlite driver only)
	RedisAddr    string // Redis server address, empty disables the token cache
	RedisPass    string // Redis password
	RedisDB      int    // Redis database number
	NodeID       int64  // Snowflake node used for department codes
	IsProd       bool   // Is production environment
	OTLPEndpoint string // OTLP HTTP endpoint, empty disables tracing
	ServiceName  string // Service name reported to tracing and metrics
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	nodeID, err := strconv.ParseInt(os.Getenv("NODE_ID"), 10, 64)
	if err != nil {
		nodeID = 1 // Single instance default
	}
	return &Config{
		AppPort:      getenv("APP_PORT", "8080"),               // Application port
		DBDriver:     getenv("DB_DRIVER", "mysql"),             // Database driver
		DBUser:       os.Getenv("DB_USER"),                     // Database user
		DBPassword:   os.Getenv("DB_PASSWORD"),                 // Database password
		DBHost:       getenv("DB_HOST", "127.0.0.1"),           // Database host
		DBPort:       os.Getenv("DB_PORT"),                     // Database port
		DBName:       getenv("DB_NAME", "neighlink"),           // Database name
		DBPath:       getenv("DB_PATH", "neighlink.db"),        // SQLite file
		RedisAddr:    os.Getenv("REDIS_ADDR"),                  // Redis server address
		RedisPass:    os.Getenv("REDIS_PASS"),                  // Redis password
		RedisDB:      redisDB,                                  // Redis database number
		NodeID:       nodeID,                                   // Snowflake node
		IsProd:       os.Getenv("IS_PROD") == "true",           // Is production environment
		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"), // Tracing exporter
		ServiceName:  getenv("SERVICE_NAME", "neighlink-api"),  // Service name
	}
}

// getenv returns the value of k or def when it is unset
func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
