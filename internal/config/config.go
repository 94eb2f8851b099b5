package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultDeliveryCharge is applied when DELIVERY_CHARGE is unset or
// malformed. Value is in currency minor units.
const DefaultDeliveryCharge = 50

type Config struct {
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	AppPort        string
	AppEnv         string
	DeliveryCharge int64
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPort:         os.Getenv("DB_PORT"),
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		DeliveryCharge: loadDeliveryCharge(),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}

func loadDeliveryCharge() int64 {
	raw := os.Getenv("DELIVERY_CHARGE")
	if raw == "" {
		return DefaultDeliveryCharge
	}

	charge, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || charge < 0 {
		log.Printf("Invalid DELIVERY_CHARGE %q, using default %d", raw, DefaultDeliveryCharge)
		return DefaultDeliveryCharge
	}

	return charge
}
