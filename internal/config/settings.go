package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// maxFeedLimit is the hard cap on a feed page.
const maxFeedLimit = 100

// Settings is the typed view over the process environment.
type Settings struct {
	Env  string
	Port string

	DBDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	FeedLimit        int
	ContentMaxLength int
	RateLimitMax     int
	RateLimitWindow  time.Duration
	IdentityTimeout  time.Duration
}

// Load reads .env (if present) and the environment into Settings.
// DB_DSN, REDIS_ADDR and JWT_SECRET are required.
func Load() (*Settings, error) {
	// .env is optional; system environment variables win when both are set
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("FEED_LIMIT", 100)
	v.SetDefault("CONTENT_MAX_LENGTH", 280)
	v.SetDefault("RATE_LIMIT_MAX", 3)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
	v.SetDefault("IDENTITY_TIMEOUT", 2*time.Second)

	s := &Settings{
		Env:              v.GetString("APP_ENV"),
		Port:             v.GetString("APP_PORT"),
		DBDSN:            v.GetString("DB_DSN"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		FeedLimit:        v.GetInt("FEED_LIMIT"),
		ContentMaxLength: v.GetInt("CONTENT_MAX_LENGTH"),
		RateLimitMax:     v.GetInt("RATE_LIMIT_MAX"),
		RateLimitWindow:  v.GetDuration("RATE_LIMIT_WINDOW"),
		IdentityTimeout:  v.GetDuration("IDENTITY_TIMEOUT"),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	var errs []error
	if s.DBDSN == "" {
		errs = append(errs, errors.New("DB_DSN is not set"))
	}
	if s.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is not set"))
	}
	if s.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is not set"))
	}
	if s.FeedLimit <= 0 || s.FeedLimit > maxFeedLimit {
		errs = append(errs, fmt.Errorf("FEED_LIMIT must be between 1 and %d, got %d", maxFeedLimit, s.FeedLimit))
	}
	if s.ContentMaxLength <= 0 {
		errs = append(errs, fmt.Errorf("CONTENT_MAX_LENGTH must be positive, got %d", s.ContentMaxLength))
	}
	if s.RateLimitMax <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", s.RateLimitMax))
	}
	if s.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", s.RateLimitWindow))
	}
	return errors.Join(errs...)
}
