package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by STRATCHECK_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("STRATCHECK_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// OutlierStratLevel returns the default lookahead depth for detection.
// Values other than 2 or 3 fall back to 3.
func OutlierStratLevel() int {
	level, err := strconv.Atoi(os.Getenv("OUTLIER_STRAT_LEVEL"))
	if err != nil || (level != 2 && level != 3) {
		return 3
	}
	return level
}

// OutlierExcludeEnds returns the default end-of-transect policy.
// Defaults to false, which flags end samples.
func OutlierExcludeEnds() bool {
	v, err := strconv.ParseBool(os.Getenv("OUTLIER_EXCLUDE_ENDS"))
	if err != nil {
		return false
	}
	return v
}

// BatchConcurrency returns how many files the CLI batch command checks at once.
// Defaults to 4 if not set.
func BatchConcurrency() int {
	n, err := strconv.Atoi(os.Getenv("BATCH_CONCURRENCY"))
	if err != nil || n <= 0 {
		return 4
	}
	return n
}
