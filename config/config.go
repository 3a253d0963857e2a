package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Query   QueryConfig
	Cart    CartConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CatalogConfig struct {
	// Size is the number of products generated at startup.
	Size int
}

type QueryConfig struct {
	// SearchDebounce is the quiet period before a search edit is committed.
	SearchDebounce time.Duration
	// DisplayLimit caps how many products a listing response carries.
	DisplayLimit int
}

type CartConfig struct {
	// StorageKey is the key the cart is persisted under.
	StorageKey string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Catalog: CatalogConfig{
			Size: parseInt(getEnv("CATALOG_SIZE", "5000"), 5000),
		},
		Query: QueryConfig{
			SearchDebounce: parseDuration(getEnv("SEARCH_DEBOUNCE", "300ms"), 300*time.Millisecond),
			DisplayLimit:   parseInt(getEnv("DISPLAY_LIMIT", "100"), 100),
		},
		Cart: CartConfig{
			StorageKey: getEnv("CART_STORAGE_KEY", "storefront:cart"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %q, using default %d", s, defaultValue)
		return defaultValue
	}
	return value
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %q, using default %s", s, defaultValue)
		return defaultValue
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
