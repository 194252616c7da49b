package config // package config loads application configuration from environment variables

import (
	"log"     // log reports when an optional .env file is picked up
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration values

	"github.com/joho/godotenv" // godotenv loads variables from a local .env file
)

// Config holds the runtime configuration of the HTTP server.  The
// service has no required external dependency: Redis and RabbitMQ are
// optional collaborators with their own loaders in this package, so
// every value here falls back to a sensible default instead of
// aborting startup.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on
}

// Load reads the optional .env file and then the environment.  Missing
// variables fall back to defaults: port 3000 (the port the service has
// always used) and the "dev" environment.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("config: loaded .env file")
	}
	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: getenv("APP_PORT", "3000"),
	}
}

// Environment helpers shared by every loader in this package.  Each
// returns the default when the variable is unset or unparsable.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
