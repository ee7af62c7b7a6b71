package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Ai       AIConfig
	Payment  PaymentConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	CompanyEmail       string
	// ExposeOTP echoes generated OTPs in API responses. Never enable in production.
	ExposeOTP   bool
	OtelEnabled bool
	BodyLimitMB int
}

type DatabaseConfig struct {
	Connection string
	Debug      bool
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
}

type AIConfig struct {
	LLMProvider    string // "gemini", "ollama" or "huggingface"
	LLMModel       string
	OllamaBaseURL  string
	RequestTimeout time.Duration
}

type PaymentConfig struct {
	MidtransServerKey   string
	MidtransEnvironment string // "sandbox" or "production"
	PremiumPrice        int64
	RemoveAdsPrice      int64
	Currency            string
}

type AuthConfig struct {
	JWTSecret            string
	TokenTTL             time.Duration
	OTPTTL               time.Duration
	AdminDefaultUsername string
	AdminDefaultPassword string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	env := getEnv("GO_ENV", "development")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        env,
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			CompanyEmail:       getEnv("COMPANY_EMAIL", "support@samvidhanai.in"),
			ExposeOTP:          getEnvAsBool("APP_EXPOSE_OTP", env != "production"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			BodyLimitMB:        getEnvAsInt("APP_BODY_LIMIT_MB", 50),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Debug:      getEnvAsBool("DB_DEBUG", false),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "SamvidhanAI"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:    getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:       getEnv("LLM_MODEL", "gemini-2.5-flash"),
			OllamaBaseURL:  getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			RequestTimeout: getEnvAsDuration("AI_REQUEST_TIMEOUT", 30*time.Second),
		},
		Payment: PaymentConfig{
			MidtransServerKey:   getEnv("MIDTRANS_SERVER_KEY", ""),
			MidtransEnvironment: getEnv("MIDTRANS_ENV", "sandbox"),
			PremiumPrice:        int64(getEnvAsInt("PREMIUM_PRICE", 2999)),
			RemoveAdsPrice:      int64(getEnvAsInt("REMOVE_ADS_PRICE", 199)),
			Currency:            getEnv("PAYMENT_CURRENCY", "INR"),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("JWT_SECRET", "samvidhanai_secret_key_2026"),
			TokenTTL:             getEnvAsDuration("JWT_TTL", 7*24*time.Hour),
			OTPTTL:               getEnvAsDuration("OTP_TTL", 10*time.Minute),
			AdminDefaultUsername: getEnv("ADMIN_DEFAULT_USERNAME", "samvidhan"),
			AdminDefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", "samvidhanai"),
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
	if value, err := time.ParseDuration(strValue); err == nil && value > 0 {
		return value
	}
	return fallback
}
