package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jinzhu/copier"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-scim/pkg/config"
	"github.com/tendant/simple-scim/pkg/scim"
	scimapi "github.com/tendant/simple-scim/pkg/scim/api"
)

type Config struct {
	DbConfig                 config.DatabaseConfig
	AppConfig                app.AppConfig
	ScimConfig               config.ScimConfig
	AuthConfig               config.AuthConfig
	TablesConfig             config.TablesConfig
	UserColumnsConfig        config.UserColumnsConfig
	EntitlementColumnsConfig config.EntitlementColumnsConfig
}

// loadEnvFile loads environment variables from a .env file if one exists
// next to the executable or in the working directory. Variables already set
// in the environment win.
func loadEnvFile() {
	envFile := ".env"
	if execPath, err := os.Executable(); err == nil {
		execEnv := filepath.Join(filepath.Dir(execPath), ".env")
		if _, err := os.Stat(execEnv); err == nil {
			envFile = execEnv
		}
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Error("Failed to load .env file", "error", err, "path", envFile)
		return
	}
	slog.Info("Configuration loaded from .env file", "path", envFile)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	loadEnvFile()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	version, err := scim.ParseVersion(cfg.ScimConfig.Version)
	if err != nil {
		slog.Error("Invalid SCIM version configured", "error", err)
		os.Exit(-1)
	}
	if err := cfg.AuthConfig.Validate(); err != nil {
		slog.Error("Invalid SCIM auth configuration", "error", err)
		os.Exit(-1)
	}
	if err := cfg.DbConfig.Validate(); err != nil {
		slog.Error("Invalid database configuration", "error", err)
		os.Exit(-1)
	}

	requestTimeout, err := time.ParseDuration(cfg.ScimConfig.RequestTimeout)
	if err != nil {
		slog.Error("Invalid request timeout", "error", err, "value", cfg.ScimConfig.RequestTimeout)
		os.Exit(-1)
	}

	dbConfig := cfg.DbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(-1)
	}
	defer pool.Close()

	// Schema mapping is assembled once here and shared read-only by every
	// request.
	mapping := scim.Mapping{}
	copier.Copy(&mapping.User, &cfg.UserColumnsConfig)
	copier.Copy(&mapping.Entitlement, &cfg.EntitlementColumnsConfig)
	copier.Copy(&mapping.Tables, &cfg.TablesConfig)

	repo := scim.NewPostgresScimRepository(pool, mapping)
	scimService := scim.NewScimService(repo, mapping, version,
		scim.WithEntitlements(cfg.ScimConfig.EntitlementsEnabled),
	)

	server := app.DefaultApp()
	server.R.Use(middleware.Timeout(requestTimeout))
	app.RoutesHealthz(server.R)

	handle := scimapi.NewHandle(scimService, cfg.AuthConfig.Username, cfg.AuthConfig.Password)
	server.R.Mount("/scim/v2", scimapi.Handler(handle))
	server.R.Get("/health", handle.Health)
	server.R.Get("/", handle.Root)

	slog.Info("Starting SCIM gateway",
		"scimVersion", version.Label(),
		"entitlements", cfg.ScimConfig.EntitlementsEnabled,
		"db", dbConfig.Database, "host", dbConfig.Host,
		"userTable", cfg.TablesConfig.Users,
		"authUser", cfg.AuthConfig.Username)
	if cfg.ScimConfig.EntitlementsEnabled {
		slog.Info("Entitlements extension enabled",
			"entitlementTable", cfg.TablesConfig.Entitlements,
			"userEntitlementTable", cfg.TablesConfig.UserEntitlements)
	}

	server.Run()
}
