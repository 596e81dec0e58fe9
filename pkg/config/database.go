package config

import (
	"fmt"

	dbutils "github.com/tendant/db-utils/db"
)

// DatabaseConfig holds PostgreSQL database configuration.
// The gateway holds no data of its own; this points at the database that
// owns the user table being exported over SCIM.
type DatabaseConfig struct {
	Host     string `env:"SCIM_PG_HOST" env-default:"localhost"`
	Port     uint16 `env:"SCIM_PG_PORT" env-default:"5432"`
	Database string `env:"SCIM_PG_DATABASE" env-default:"scim_db"`
	User     string `env:"SCIM_PG_USER" env-default:"scim"`
	Password string `env:"SCIM_PG_PASSWORD" env-default:"pwd"`
	Schema   string `env:"SCIM_PG_SCHEMA" env-default:"public"`
}

// ToDatabaseURL converts the config to a PostgreSQL connection URL
func (d DatabaseConfig) ToDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable&search_path=%s,public",
		d.User, d.Password, d.Host, d.Port, d.Database, d.Schema)
}

// ToDbConfig converts the config to a db-utils DbConfig
func (d DatabaseConfig) ToDbConfig() dbutils.DbConfig {
	return dbutils.DbConfig{
		Host:     d.Host,
		Port:     d.Port,
		Database: d.Database,
		User:     d.User,
		Password: d.Password,
	}
}

// Validate checks that required connection parameters are present.
// Missing parameters fail fast at startup rather than on the first request.
func (d DatabaseConfig) Validate() error {
	if d.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if d.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if d.User == "" {
		return fmt.Errorf("database user is required")
	}
	return nil
}
