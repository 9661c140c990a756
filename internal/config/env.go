package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvPath returns the path to the dotenv file in the config directory.
func EnvPath() string {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, EnvFile)
}

// loadEnvFiles loads .env from the working directory and from the config
// directory. Variables already set in the environment win; missing files are ignored.
func loadEnvFiles() {
	_ = godotenv.Load()
	if path := EnvPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

// GetConfigValue returns the environment variable if set, otherwise configValue.
func GetConfigValue(envKey, configValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return configValue
}
