package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	DBHost           string // Hostname or IP address for the database
	DBPort           int    // Port number for the database
	DBUser           string // Username for the database
	DBPassword       string // Password for the database
	DBName           string // Name of the database
	RedisAddr        string // host:port of the Redis server backing the maze cache
	RedisPassword    string // Password for Redis, empty when none
	CacheTTLSeconds  int    // Lifetime of cached mazes
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret        string // Secret key for JWT signing
	JWTIssuer        string // Issuer claim for JWTs
	MaxDimension     int    // Largest width or height a request may ask for
	DefaultAlgorithm string // Generator used when a request names none
}

const (
	defaultCacheTTLSeconds  = 600
	defaultMaxDimension     = 200
	defaultAlgorithm        = "wilson"
	defaultGinMode          = "release"
	defaultRedisAddress     = "localhost:6379"
	defaultMazeDatabaseName = "mazes"
)

// Load reads the configuration from the environment.
// A .env file in the working directory is loaded first when present.
func Load() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           mustGetEnv("HOST_IP"),
		RESTPort:         mustGetEnvAsInt("REST_PORT"),
		DBHost:           mustGetEnv("DB_HOST"),
		DBPort:           mustGetEnvAsInt("DB_PORT"),
		DBUser:           mustGetEnv("DB_USER"),
		DBPassword:       mustGetEnv("DB_PASS"),
		DBName:           getEnvWithDefault("DB_NAME", defaultMazeDatabaseName),
		RedisAddr:        getEnvWithDefault("REDIS_ADDR", defaultRedisAddress),
		RedisPassword:    getEnvWithDefault("REDIS_PASS", ""),
		CacheTTLSeconds:  getEnvAsIntWithDefault("CACHE_TTL_SECONDS", defaultCacheTTLSeconds),
		GinMode:          getEnvWithDefault("GIN_MODE", defaultGinMode),
		JWTSecret:        mustGetEnv("JWT_SECRET"),
		JWTIssuer:        mustGetEnv("JWT_ISSUER"),
		MaxDimension:     getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", defaultMaxDimension),
		DefaultAlgorithm: getEnvWithDefault("MAZE_DEFAULT_ALGORITHM", defaultAlgorithm),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers. Unparsable values fall back to the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s is not an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return parsed
}
