package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Leave      LeaveConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds the attendance policy knobs. Timezone is the single
// organizational timezone used for calendar-day computation; LateCutoff is a
// local wall-clock time ("HH:MM") after which a check-in counts as late.
type AttendanceConfig struct {
	Timezone   string
	LateCutoff string
}

// LeaveConfig bounds the free-text reason on leave applications.
type LeaveConfig struct {
	ReasonMinLen int
	ReasonMaxLen int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_app"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Attendance = AttendanceConfig{
		Timezone:   getEnv("ORG_TIMEZONE", "UTC"),
		LateCutoff: getEnv("LATE_CUTOFF", "09:15"),
	}

	reasonMin, err := strconv.Atoi(getEnv("LEAVE_REASON_MIN", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_REASON_MIN: %w", err)
	}
	reasonMax, err := strconv.Atoi(getEnv("LEAVE_REASON_MAX", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEAVE_REASON_MAX: %w", err)
	}
	config.Leave = LeaveConfig{
		ReasonMinLen: reasonMin,
		ReasonMaxLen: reasonMax,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
		return fmt.Errorf("invalid ORG_TIMEZONE: %w", err)
	}
	if _, err := c.Attendance.LateCutoffMinutes(); err != nil {
		return err
	}
	if c.Leave.ReasonMinLen < 1 || c.Leave.ReasonMaxLen < c.Leave.ReasonMinLen {
		return fmt.Errorf("LEAVE_REASON_MIN/LEAVE_REASON_MAX must satisfy 1 <= min <= max")
	}
	return nil
}

// Location resolves the organizational timezone.
func (a AttendanceConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// LateCutoffMinutes parses LateCutoff ("HH:MM") into minutes after midnight.
func (a AttendanceConfig) LateCutoffMinutes() (int, error) {
	t, err := time.Parse("15:04", a.LateCutoff)
	if err != nil {
		return 0, fmt.Errorf("invalid LATE_CUTOFF %q: %w", a.LateCutoff, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
