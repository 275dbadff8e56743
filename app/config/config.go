package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB       *sql.DB
	UnitFee  float64
	AuthMode string // "password" or "email"
	Port     string
}

var AppConfig *Config

// DefaultUnitFee is the fare collected per paid student per day.
const DefaultUnitFee = 5.00

// Load reads .env (if present) and environment variables, opens the
// database connection and initializes the global config.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		DB:       initDB(),
		UnitFee:  unitFeeFromEnv(),
		AuthMode: authModeFromEnv(),
		Port:     envOr("PORT", "8080"),
	}
	log.Printf("Unit fee set to %.2f, auth mode %q", AppConfig.UnitFee, AppConfig.AuthMode)
}

func initDB() *sql.DB {
	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := envOr("DB_HOST", "localhost")
		port := envOr("DB_PORT", "5432")
		user := envOr("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := envOr("DB_NAME", "feecollect")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			psqlInfo += " password=" + password
		}
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	log.Println("Database connected successfully")
	return db
}

func unitFeeFromEnv() float64 {
	raw := os.Getenv("UNIT_FEE")
	if raw == "" {
		return DefaultUnitFee
	}
	fee, err := strconv.ParseFloat(raw, 64)
	if err != nil || fee <= 0 {
		log.Printf("Invalid UNIT_FEE %q, falling back to %.2f", raw, DefaultUnitFee)
		return DefaultUnitFee
	}
	return fee
}

func authModeFromEnv() string {
	mode := os.Getenv("AUTH_MODE")
	switch mode {
	case "", "password":
		return "password"
	case "email":
		return "email"
	default:
		log.Printf("Unknown AUTH_MODE %q, falling back to password", mode)
		return "password"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// UnitFee returns the configured per-student daily fare.
func UnitFee() float64 {
	return AppConfig.UnitFee
}
