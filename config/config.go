package config

import (
	"os"
	"strconv"
)

var (
	ApiPort = GetEnv("API_PORT", "8080")

	MongoURI = GetEnv("MONGO_URI", "mongodb://mongodb:27017")
	MongoDB  = GetEnv("MONGO_DB", "fitapi")

	KafkaBroker   = GetEnv("KAFKA_BROKER", "kafka:9092")
	ChatTopic     = GetEnv("KAFKA_CHAT_TOPIC", "fit-chat")
	ActivityTopic = GetEnv("KAFKA_ACTIVITY_TOPIC", "fit-activity")
	DLQTopic      = GetEnv("KAFKA_DLQ_TOPIC", "fit-chat-dlq")

	OIDCIssuer      = GetEnv("OIDC_ISSUER_URL", "http://dex:5556/dex")
	ClientID        = GetEnv("OIDC_CLIENT_ID", "fitapi")
	Audience        = GetEnv("OIDC_AUDIENCE", "fitapi")
	OIDCMaxAttempts = GetEnv("OIDC_MAX_ATTEMPTS", "8")

	GeminiAPIKey  = GetEnv("GEMINI_API_KEY", "")
	GeminiBaseURL = GetEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models")
	GeminiModel   = GetEnv("GEMINI_MODEL", "gemini-2.0-flash")

	FeedCap    = GetEnvInt("FEED_CAP", 3)
	ChatMaxLen = GetEnvInt("CHAT_MAX_LENGTH", 1000)
)

// GetEnv returns the value of the environment variable or a default value
func GetEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// GetEnvInt returns the environment variable parsed as a positive integer, or the default
func GetEnvInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultVal
}
