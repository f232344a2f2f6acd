package config

import (
	"os"
)

type Config struct {
	Env      string
	HTTPPort string
	MongoURI string
	MongoDB  string
}

func Load() Config {
	return Config{
		Env:      get("APP_ENV", "dev"),
		HTTPPort: get("PORT", "3000"),
		MongoURI: get("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  get("MONGO_DB", "usersdb"),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
