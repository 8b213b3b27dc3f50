package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Chat     ChatConfig
	Payment  PaymentConfig
	Keys     APIKeys
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	OrderInbox string // internal copy of every order confirmation
}

// ChatConfig is the single knob set that used to be spread across the
// product's bot variants: which collaborators are enabled and how strict
// checkout is.
type ChatConfig struct {
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	// CheckoutPolicy is "name" (only a customer name is required) or "full"
	// (complete contact and pickup details before checkout).
	CheckoutPolicy       string
	LLMEnabled           bool
	NotificationsEnabled bool
	LLMTimeout           time.Duration
}

type PaymentConfig struct {
	ServerKey  string
	Production bool
	FinishURL  string
}

type APIKeys struct {
	GoogleGemini string
}

const (
	CheckoutPolicyName = "name"
	CheckoutPolicyFull = "full"
)

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "valetkleen"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ValetKleen"),
			OrderInbox: getEnv("SMTP_ORDER_INBOX", ""),
		},
		Chat: ChatConfig{
			SessionTTL:           getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CleanupInterval:      getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 30*time.Minute),
			CheckoutPolicy:       getEnv("CHECKOUT_POLICY", CheckoutPolicyName),
			LLMEnabled:           getEnvAsBool("LLM_INTENT_ENABLED", false),
			NotificationsEnabled: getEnvAsBool("ORDER_NOTIFICATIONS_ENABLED", true),
			LLMTimeout:           getEnvAsDuration("LLM_TIMEOUT", 5*time.Second),
		},
		Payment: PaymentConfig{
			ServerKey:  getEnv("MIDTRANS_SERVER_KEY", ""),
			Production: getEnvAsBool("MIDTRANS_IS_PRODUCTION", false),
			FinishURL:  getEnv("PAYMENT_FINISH_URL", "http://localhost:5173/order?payment=success"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
