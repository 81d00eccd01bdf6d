package config

import (
	"os"
	"strconv"
)

const defaultMaxInputBytes = 64 << 20

type Config struct {
	Port          string
	DatabaseURL   string // 비어 있으면 in-memory 저장소
	MaxInputBytes int64
	LogLevel      string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MaxInputBytes: getenvInt("MAX_INPUT_BYTES", defaultMaxInputBytes),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
