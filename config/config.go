package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment (and .env when present).
type Config struct {
	Env  string
	Port string

	DataDir   string
	UploadDir string

	// Daily copy of UploadDir; empty UploadBackupDir disables it.
	UploadBackupDir       string
	UploadBackupHour      int
	UploadBackupRetention time.Duration

	// auto | mongo | file | sql
	StoreBackend        string
	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
	SQLDriver           string
	DatabaseURL         string
	FileStoreLocking    bool
	SeedDemoData        bool

	SessionSecret string
	AdminAPIKey   string
	CORSOrigins   []string
	MaxUploadMB   int64
}

// Load reads .env (ignored when missing) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:                   getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8080"),
		DataDir:               getEnv("DATA_DIR", "./data"),
		UploadDir:             getEnv("UPLOAD_DIR", "./uploads"),
		UploadBackupDir:       os.Getenv("UPLOAD_BACKUP_DIR"),
		UploadBackupHour:      getHour("UPLOAD_BACKUP_HOUR", 2),
		UploadBackupRetention: getDuration("UPLOAD_BACKUP_RETENTION", 96*time.Hour),
		StoreBackend:          strings.ToLower(getEnv("STORE_BACKEND", "auto")),
		MongoURI:              os.Getenv("MONGODB_URI"),
		MongoDatabase:         getEnv("MONGODB_DATABASE", "bihari_delicacies"),
		MongoConnectTimeout:   getDuration("MONGO_CONNECT_TIMEOUT", 3*time.Second),
		SQLDriver:             strings.ToLower(getEnv("SQL_DRIVER", "sqlite")),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		FileStoreLocking:      getBool("FILE_STORE_LOCKING", false),
		SeedDemoData:          getBool("SEED_DEMO_DATA", true),
		SessionSecret:         os.Getenv("SESSION_SECRET"),
		AdminAPIKey:           os.Getenv("ADMIN_API_KEY"),
		CORSOrigins:           getList("CORS_ORIGINS", []string{"http://localhost:5173"}),
		MaxUploadMB:           int64(getInt("MAX_UPLOAD_MB", 10)),
	}
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getHour(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 || v > 23 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
