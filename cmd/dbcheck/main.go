// Command dbcheck verifies database connectivity with the same
// configuration and queries the gateway uses: it pings the database,
// counts the user table, and prints the returned columns plus a small
// sample page. Intended for manual setup verification before pointing a
// provisioning agent at the gateway.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jinzhu/copier"
	"github.com/joho/godotenv"
	dbutils "github.com/tendant/db-utils/db"
	"github.com/tendant/simple-scim/pkg/config"
	"github.com/tendant/simple-scim/pkg/scim"
)

const sampleRows = 5

type Config struct {
	DbConfig                 config.DatabaseConfig
	TablesConfig             config.TablesConfig
	UserColumnsConfig        config.UserColumnsConfig
	EntitlementColumnsConfig config.EntitlementColumnsConfig
}

func main() {
	godotenv.Load()

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbConfig := cfg.DbConfig.ToDbConfig()
	fmt.Printf("Connecting to %s@%s:%d/%s ...\n", dbConfig.User, dbConfig.Host, dbConfig.Port, dbConfig.Database)

	pool, err := dbutils.NewDbPool(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	mapping := scim.Mapping{}
	copier.Copy(&mapping.User, &cfg.UserColumnsConfig)
	copier.Copy(&mapping.Entitlement, &cfg.EntitlementColumnsConfig)
	copier.Copy(&mapping.Tables, &cfg.TablesConfig)

	repo := scim.NewPostgresScimRepository(pool, mapping)

	if err := repo.Ping(ctx); err != nil {
		slog.Error("Database ping failed", "err", err)
		os.Exit(1)
	}
	fmt.Println("Connection OK")

	total, err := repo.CountUsers(ctx)
	if err != nil {
		slog.Error("Failed counting user table", "table", cfg.TablesConfig.Users, "err", err)
		os.Exit(1)
	}
	fmt.Printf("Table %q: %d rows\n", cfg.TablesConfig.Users, total)

	rs, err := repo.ListUsers(ctx, 0, sampleRows)
	if err != nil {
		slog.Error("Failed reading sample rows", "table", cfg.TablesConfig.Users, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Columns: %v\n", rs.Columns)
	checkMappedColumns(mapping.User, rs.Columns)

	for i, row := range rs.Rows {
		fmt.Printf("Row %d: %v\n", i+1, row)
	}

	if _, err := repo.CountEntitlements(ctx); err != nil {
		fmt.Printf("Entitlement table %q not readable (extension will degrade to empty lists): %v\n",
			cfg.TablesConfig.Entitlements, err)
	} else {
		fmt.Printf("Entitlement table %q readable\n", cfg.TablesConfig.Entitlements)
	}
}

// checkMappedColumns warns about configured columns the table does not
// return; those attributes would be served with their defaults.
func checkMappedColumns(cols scim.UserColumns, returned []string) {
	present := make(map[string]bool, len(returned))
	for _, c := range returned {
		present[c] = true
	}
	mapped := map[string]string{
		"id":           cols.ID,
		"username":     cols.Username,
		"email":        cols.Email,
		"first_name":   cols.FirstName,
		"last_name":    cols.LastName,
		"display_name": cols.DisplayName,
		"active":       cols.Active,
		"external_id":  cols.ExternalID,
	}
	for logical, physical := range mapped {
		if !present[physical] {
			fmt.Printf("Warning: mapped column %q (%s) not in result set\n", physical, logical)
		}
	}
}
