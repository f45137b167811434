package fursan_db

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"fursan/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func InitDBConnection(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, NewDatabaseConfigFromEnv().BuildConnectionString())
	if err != nil {
		logger.Logger.Error("Failed to create connection pool", "error", err)
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		logger.Logger.Error("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.Logger.Info("Connected to database", "database", os.Getenv("DB_NAME"))

	return pool, nil
}

// DatabaseConfig holds connection parameters for the document store.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	MaxConns int
}

func NewDatabaseConfigFromEnv() *DatabaseConfig {
	// .env is optional; environment variables win when both are present.
	_ = godotenv.Load()

	return &DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "devuser"),
		Password: getEnvOrDefault("DB_PASSWORD", "devpassword"),
		DBName:   getEnvOrDefault("DB_NAME", "fursan"),
		MaxConns: getEnvIntOrDefault("DB_MAX_CONNS", 20),
	}
}

func (dc *DatabaseConfig) BuildConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable pool_max_conns=%d",
		dc.Host, dc.Port, dc.User, dc.Password, dc.DBName, dc.MaxConns,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
