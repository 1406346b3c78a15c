package config

import (
	"os"
	"strings"
)

// Load reads the server configuration from the environment. Call godotenv
// beforehand if a .env file should be honored.
func Load() *ServerCfg {
	return &ServerCfg{
		Database: Database{
			Url: getEnv("DATABASE_URL", "local_dev.db"),
		},
		Server: Server{
			Port:      getEnv("PORT", "5000"),
			Debug:     parseBool(getEnv("DEBUG", "false")),
			JwtSecret: getEnv("JWT_SECRET_KEY", "dev-secret"),
		},
		Nutritionix: Nutritionix{
			AppId:  os.Getenv("NUTRITIONIX_APP_ID"),
			AppKey: nutritionixKey(),
		},
	}
}

// NUTRITIONIX_API_KEY is accepted as a legacy name for the app key.
func nutritionixKey() string {
	if key := os.Getenv("NUTRITIONIX_APP_KEY"); key != "" {
		return key
	}
	return os.Getenv("NUTRITIONIX_API_KEY")
}

func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	}
	return false
}
