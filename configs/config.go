package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	MongoURI            string
	DBName              string
	SeedRandom          bool
	SeedCount           int
	AuditExportInterval int // seconds
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	var seedCount int
	if val := os.Getenv("SEED_COUNT"); val != "" {
		if _, err := fmt.Sscanf(val, "%d", &seedCount); err != nil {
			log.Fatalf("Invalid SEED_COUNT: %v", err)
		}
	}
	if seedCount <= 0 {
		seedCount = 500
	}

	var exportInterval int
	fmt.Sscanf(os.Getenv("AUDIT_EXPORT_INTERVAL_SECONDS"), "%d", &exportInterval)
	if exportInterval <= 0 {
		exportInterval = 30
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost/bookshelf"
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "bookshelf"
	}

	return Config{
		Port:                port,
		MongoURI:            mongoURI,
		DBName:              dbName,
		SeedRandom:          os.Getenv("SEED_RANDOM") != "",
		SeedCount:           seedCount,
		AuditExportInterval: exportInterval,
	}
}
