package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	// Ledger
	DataFile  string
	BackupDir string
	// Login gate
	AuthEnabled bool
	DBPath      string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Deadline digest
	DigestSchedule   string
	DigestRecipients []string
	Timezone         string
	// Other
	AllowedOrigins []string
	// Cloudflare R2 Storage (backups)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "5000"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		DataFile:          getEnv("DATA_FILE", "dados/processos.xlsx"),
		BackupDir:         getEnv("BACKUP_DIR", "backups"),
		AuthEnabled:       getEnvBool("AUTH_ENABLED", false),
		DBPath:            getEnv("DB_PATH", "dados/sessions.db"),
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		EmailFrom:         getEnv("EMAIL_FROM", "prazos@escritorio.adv.br"),
		EmailFromName:     getEnv("EMAIL_FROM_NAME", "Escritório - Controle de Prazos"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		DigestSchedule:    getEnv("DIGEST_SCHEDULE", "0 8 * * 1-5"),
		DigestRecipients:  splitList(getEnv("DIGEST_RECIPIENTS", "")),
		Timezone:          getEnv("TIMEZONE", "America/Sao_Paulo"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "*")),
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
	}
}

// IsProduction reports whether cookies and logging should use production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DigestEnabled reports whether the deadline digest job should be scheduled
func (c *Config) DigestEnabled() bool {
	schedule := strings.TrimSpace(strings.ToLower(c.DigestSchedule))
	return schedule != "" && schedule != "off"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// splitList splits a comma separated value, dropping empty entries
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
