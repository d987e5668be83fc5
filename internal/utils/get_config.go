package utils

import (
	"os"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Server
	AppPort string `yaml:"APP_PORT"`
	AppEnv  string `yaml:"APP_ENV"` // development or production
}

var config Config

// LoadConfig reads config.yaml when present and falls back to environment
// variables (optionally from a .env file) for any missing key.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &config); err != nil {
			log.Errorf("error parsing YAML file: %s", err)
		}
	}

	os.Setenv("JWT_SECRET", GetConfig("JWT_SECRET"))
}

func GetConfig(key string) string {
	var v string
	switch key {
	case "DB_USER":
		v = config.DBUser
	case "DB_NAME":
		v = config.DBName
	case "DB_PASSWORD":
		v = config.DBPassword
	case "DB_PORT":
		v = config.DBPort
	case "DB_HOST":
		v = config.DBHost
	case "JWT_SECRET":
		v = config.JWTSecret
	case "APP_PORT":
		v = config.AppPort
	case "APP_ENV":
		v = config.AppEnv
	}
	if v == "" {
		v = os.Getenv(key)
	}
	return v
}
