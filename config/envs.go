package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	InputFile string // Path of the grid file read by the CLI
	HostIP    string // Host IP for the server
	RESTPort  int    // Port for the REST API
	GinMode   string // Mode for the Gin framework (e.g., release, debug, test)
	JWTIssuer string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		InputFile: getEnvWithDefault("INPUT_FILE", "Day6.txt"),
		HostIP:    getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:  getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:   getEnvWithDefault("GIN_MODE", "release"),
		JWTIssuer: getEnvWithDefault("JWT_ISSUER", "vinom-guard"),
	}
}

// MustJWTSecret returns the JWT signing secret. Only the API server needs it,
// so it is not part of Envs.
func MustJWTSecret() string {
	return mustGetEnv("JWT_SECRET")
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// falling back to defaultValue when unset. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
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
