package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	AppPort        string `yaml:"APP_PORT"`
	AppPrintRoutes string `yaml:"APP_PRINT_ROUTES"`

	// Database configuration
	DBDriver     string `yaml:"DB_DRIVER"`
	DBUser       string `yaml:"DB_USER"`
	DBName       string `yaml:"DB_NAME"`
	DBPassword   string `yaml:"DB_PASSWORD"`
	DBPort       string `yaml:"DB_PORT"`
	DBHost       string `yaml:"DB_HOST"`
	DBSQLitePath string `yaml:"DB_SQLITE_PATH"`

	// Logging
	LogLevel      string `yaml:"LOG_LEVEL"`
	LogFormat     string `yaml:"LOG_FORMAT"`
	LogOutput     string `yaml:"LOG_OUTPUT"`
	AccessLogFile string `yaml:"ACCESS_LOG_FILE"`

	RateLimitMax string `yaml:"RATE_LIMIT_MAX"`
	BcryptCost   string `yaml:"BCRYPT_COST"`

	// AWS S3 configuration, used for fixtures
	AWSS3Bucket    string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region    string `yaml:"AWS_S3_REGION"`
	AWSAccessKey   string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey   string `yaml:"AWS_SECRET_KEY"`
	FixturesPrefix string `yaml:"FIXTURES_PREFIX"`
}

var config Config

// LoadConfig reads the YAML file at path. A missing file yields an error
// wrapping fs.ErrNotExist, which callers may treat as environment-only
// configuration.
func LoadConfig(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(file, &loaded); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	config = loaded
	return nil
}

// GetConfig returns the value for key. An environment variable with the same
// name takes precedence over the YAML file.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_PRINT_ROUTES":
		return config.AppPrintRoutes
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SQLITE_PATH":
		return config.DBSQLitePath
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FORMAT":
		return config.LogFormat
	case "LOG_OUTPUT":
		return config.LogOutput
	case "ACCESS_LOG_FILE":
		return config.AccessLogFile
	case "RATE_LIMIT_MAX":
		return config.RateLimitMax
	case "BCRYPT_COST":
		return config.BcryptCost
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "FIXTURES_PREFIX":
		return config.FixturesPrefix
	default:
		return ""
	}
}

// GetConfigOrDefault returns fallback when key is unset or empty.
func GetConfigOrDefault(key, fallback string) string {
	if v := GetConfig(key); v != "" {
		return v
	}
	return fallback
}

// GetConfigInt returns fallback when key is unset or not an integer.
func GetConfigInt(key string, fallback int) int {
	v := GetConfig(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid integer for %s: %q\n", key, v)
		return fallback
	}
	return n
}
