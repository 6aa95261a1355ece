package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config reads a key from the environment, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Warning: .env file not found, reading from system environment variables")
		}
	})

	return os.Getenv(key)
}

// MustConfig is Config for keys the server cannot run without, such as
// JWT_SECRET. There is deliberately no fallback value.
func MustConfig(key string) string {
	value := Config(key)
	if value == "" {
		log.Fatalf("🔥 Required environment variable %s is not set", key)
	}
	return value
}
