package config

import (
	"os"
	"strconv"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Database string
		Username string
		Password string
		Port     string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		Bucket       string
		PublicURL    string
		UseSSL       bool
	}
	Upload struct {
		Dir string
	}
	CORS struct {
		AllowDomains string
	}
	Server struct {
		Port string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = os.Getenv("POSTGRES_HOST")
	if config.Postgres.Host == "" {
		config.Postgres.Host = "localhost"
	}
	config.Postgres.Database = os.Getenv("POSTGRES_DB")
	if config.Postgres.Database == "" {
		config.Postgres.Database = "superheroes"
	}
	config.Postgres.Username = os.Getenv("POSTGRES_USER")
	if config.Postgres.Username == "" {
		config.Postgres.Username = "postgres"
	}
	config.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	config.Postgres.Port = os.Getenv("POSTGRES_PORT")
	if config.Postgres.Port == "" {
		config.Postgres.Port = "5432"
	}

	// Redis (optional cache, skipped when host is unset)
	config.Redis.Host = os.Getenv("REDIS_HOST")
	config.Redis.Port = os.Getenv("REDIS_PORT")
	if config.Redis.Port == "" {
		config.Redis.Port = "6379"
	}
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	// MinIO (optional storage driver, local disk is used when endpoint is unset)
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.Bucket = os.Getenv("MINIO_BUCKET")
	if config.Minio.Bucket == "" {
		config.Minio.Bucket = "superhero-uploads"
	}
	config.Minio.PublicURL = os.Getenv("MINIO_PUBLIC_URL")
	config.Minio.UseSSL = os.Getenv("MINIO_USE_SSL") == "true"

	config.Upload.Dir = os.Getenv("UPLOAD_DIR")
	if config.Upload.Dir == "" {
		config.Upload.Dir = "uploads"
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")
	if config.CORS.AllowDomains == "" {
		config.CORS.AllowDomains = "http://localhost:3000,http://127.0.0.1:3000"
	}

	config.Server.Port = os.Getenv("PORT")
	if config.Server.Port == "" {
		config.Server.Port = "3001"
	}

	config.Environment.Mode = os.Getenv("DEPLOY_ENV")
	if config.Environment.Mode == "" {
		config.Environment.Mode = "development"
	}

	return &config
}
