package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-only-session-secret-change-me"

type Config struct {
	Env  string
	Port string
	// Record store (cmd/api)
	StorePort        string
	StoreDriver      string // memory, postgres or sqlite
	DBUrl            string
	SQLitePath       string
	StoreCollections []string
	StoreSeedFile    string
	AllowedOrigins   []string
	// Portal (cmd/web)
	StoreURL             string
	SessionDriver        string // cookie, redis or memory
	SessionSecret        string
	SessionCookieName    string
	SessionTTLHours      int
	SessionTokenPrefix   string
	CookieSecure         bool
	CSRFEnabled          bool
	AdminEmail           string
	AdminPassword        string
	SuccessRedirectSecs  int
	PublicJobsActiveOnly bool
	// Defaults stamped on jobs created from the admin form
	DefaultCompany  string
	DefaultLocation string
	DefaultLogo     string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; missing file is not an error
	_ = godotenv.Load()

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		// Record store
		StorePort:        getEnv("STORE_PORT", "3001"),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", "memory")),
		DBUrl:            getEnv("DATABASE_URL", ""),
		SQLitePath:       getEnv("SQLITE_PATH", "jobboard.db"),
		StoreCollections: getEnvList("STORE_COLLECTIONS", []string{"users", "jobs", "jobapplications"}),
		StoreSeedFile:    getEnv("STORE_SEED_FILE", ""),
		AllowedOrigins:   getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"}),
		// Portal
		StoreURL:             strings.TrimRight(getEnv("STORE_URL", "http://localhost:3001"), "/"),
		SessionDriver:        strings.ToLower(getEnv("SESSION_DRIVER", "cookie")),
		SessionSecret:        getEnv("SESSION_SECRET", ""),
		SessionCookieName:    getEnv("SESSION_COOKIE_NAME", "jobboard_session"),
		SessionTTLHours:      getEnvInt("SESSION_TTL_HOURS", 24*7),
		SessionTokenPrefix:   getEnv("SESSION_TOKEN_PREFIX", "mock-token-"),
		CookieSecure:         getEnvBool("COOKIE_SECURE", false),
		CSRFEnabled:          getEnvBool("CSRF_ENABLED", true),
		AdminEmail:           getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "123456"),
		SuccessRedirectSecs:  getEnvInt("SUCCESS_REDIRECT_SECONDS", 5),
		PublicJobsActiveOnly: getEnvBool("PUBLIC_JOBS_ACTIVE_ONLY", false),
		DefaultCompany:       getEnv("DEFAULT_COMPANY", "Rakamin"),
		DefaultLocation:      getEnv("DEFAULT_LOCATION", "Jakarta"),
		DefaultLogo:          getEnv("DEFAULT_LOGO", "/static/logo.svg"),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if cfg.StoreDriver == "postgres" && cfg.DBUrl == "" {
		log.Println("WARNING: STORE_DRIVER=postgres but DATABASE_URL is missing. Store may fail to connect.")
	}

	if cfg.SessionDriver == "redis" && cfg.RedisURL == "" {
		log.Println("WARNING: SESSION_DRIVER=redis but REDIS_URL not configured. Falling back to cookie sessions.")
		cfg.SessionDriver = "cookie"
	}

	if cfg.SessionSecret == "" {
		if cfg.Env == "production" {
			// Production cookies are never signed with the dev secret.
			if cfg.SessionDriver == "cookie" {
				log.Println("WARNING: SESSION_SECRET not configured in production. Using server-side memory sessions instead of signed cookies.")
				cfg.SessionDriver = "memory"
			}
		} else {
			log.Println("WARNING: SESSION_SECRET not configured. Using an insecure development secret.")
			cfg.SessionSecret = devSessionSecret
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
