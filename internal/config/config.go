package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds the runtime configuration of the API server.  Each field
// corresponds to an environment variable.  Database and JWT settings
// are required; everything else has a sensible default so a bare dev
// environment starts with just the DB variables set.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DBUser          string // database username
	DBPass          string // database password (optional)
	DBHost          string // database host address
	DBPort          string // database port number
	DBName          string // database name
	JWTSecret       string // secret used to sign JWTs
	AccessTTLMin    int    // access token time-to-live in minutes
	BcryptCost      int    // bcrypt cost for password hashing
	UploadDir       string // directory where uploaded images are stored
	AuthRequired    bool   // when true, content mutations require a valid JWT
	DefaultAuthorID uint64 // author id assigned when no principal is present
	AdminEmail      string // seed admin account email
	AdminName       string // seed admin account display name
	AdminPassword   string // seed admin account password (dev default only)
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "dev"),
		Port:            getenv("APP_PORT", "3001"),
		DBUser:          must("DB_USER"),
		DBPass:          os.Getenv("DB_PASS"),
		DBHost:          must("DB_HOST"),
		DBPort:          must("DB_PORT"),
		DBName:          must("DB_NAME"),
		JWTSecret:       must("JWT_SECRET"),
		AccessTTLMin:    intenv("ACCESS_TOKEN_TTL_MIN", 60),
		BcryptCost:      intenv("BCRYPT_COST", 10),
		UploadDir:       getenv("UPLOAD_DIR", "uploads"),
		AuthRequired:    getenv("AUTH_REQUIRED", "false") == "true",
		DefaultAuthorID: uint64(intenv("DEFAULT_AUTHOR_ID", 1)),
		AdminEmail:      getenv("ADMIN_EMAIL", "admin@localhost"),
		AdminName:       getenv("ADMIN_NAME", "Administrator"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "admin123"),
	}
}

// WebConfig holds the runtime configuration of the frontend server.
type WebConfig struct {
	Port        string // HTTP port for the web server
	APIBaseURL  string // base URL of the backend API, e.g. http://localhost:3001
	PollSeconds int    // interval for client-side content polling
	CacheTTLSec int    // TTL for the in-process tag cache on admin reads
}

// LoadWeb reads frontend settings.  Everything defaults so the web
// binary runs against a local API out of the box.
func LoadWeb() WebConfig {
	return WebConfig{
		Port:        getenv("WEB_PORT", "3000"),
		APIBaseURL:  getenv("API_URL", "http://localhost:3001"),
		PollSeconds: intenv("POLL_SECONDS", 5),
		CacheTTLSec: intenv("WEB_CACHE_TTL_SEC", 30),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or def when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// intenv parses an integer env var, logging and returning def when the
// value is unset or malformed.  A typo in a TTL must never yield zero.
func intenv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return i
}
