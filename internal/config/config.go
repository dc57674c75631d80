package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is resolved once at process start and injected everywhere;
// nothing below main reads the environment directly.
type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// operator catalogue store
	StoreURL        string
	StoreTimeout    time.Duration
	StoreMaxConns   int
	StoreFetchLimit int
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8083"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	timeout, _ := strconv.Atoi(getenv("STORE_TIMEOUT_SEC", "10"))
	conns, _ := strconv.Atoi(getenv("STORE_MAX_CONNS", "4"))
	limit, _ := strconv.Atoi(getenv("STORE_FETCH_LIMIT", "50000"))
	return Config{
		Host:            getenv("HOST", "127.0.0.1"),
		Port:            port,
		AllowOrigins:    origins,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		MaxUploadMB:     mb,
		LogFile:         getenv("LOG_FILE", "logs/catalogue-recon.log"),
		StoreURL:        getenv("STORE_URL", ""),
		StoreTimeout:    time.Duration(timeout) * time.Second,
		StoreMaxConns:   conns,
		StoreFetchLimit: limit,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
