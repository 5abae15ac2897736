package config

import (
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultDataURL = "https://opendata.ecdc.europa.eu/covid19/casedistribution/json/"

type Config struct {
	DataURL      string
	ListenAddr   string
	FetchTimeout time.Duration
	PageSize     int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig возвращает singleton экземпляр конфигурации
func GetConfig() *Config {
	once.Do(func() {
		// .env is optional here, every key has a usable default
		_ = godotenv.Load()

		config = &Config{
			DataURL:      getenv("DATA_URL", defaultDataURL),
			ListenAddr:   getenv("LISTEN_ADDR", ":8005"),
			FetchTimeout: time.Duration(getenvInt("FETCH_TIMEOUT_SEC", 60)) * time.Second,
			PageSize:     getenvInt("PAGE_SIZE", 20),
		}
	})
	return config
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
