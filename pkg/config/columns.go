package config

// TablesConfig names the tables the gateway reads. Table and column names
// are trusted startup configuration: they are interpolated into SQL as
// quoted identifiers, never taken from request input.
type TablesConfig struct {
	Users            string `env:"SQL_TABLE" env-default:"users"`
	Entitlements     string `env:"SQL_ENTITLEMENTS_TABLE" env-default:"entitlements"`
	UserEntitlements string `env:"SQL_USER_ENTITLEMENTS_TABLE" env-default:"user_entitlements"`

	// Join columns of the user-entitlement association table.
	UserEntitlementUserID        string `env:"SQL_USER_ENTITLEMENTS_USER_ID_COLUMN" env-default:"user_id"`
	UserEntitlementEntitlementID string `env:"SQL_USER_ENTITLEMENTS_ENTITLEMENT_ID_COLUMN" env-default:"entitlement_id"`
}

// UserColumnsConfig maps logical SCIM user attributes onto physical column
// names of the user table. Lookups against the result set are case-sensitive.
type UserColumnsConfig struct {
	ID          string `env:"DB_COLUMN_ID" env-default:"id"`
	Username    string `env:"DB_COLUMN_USERNAME" env-default:"username"`
	Email       string `env:"DB_COLUMN_EMAIL" env-default:"email"`
	FirstName   string `env:"DB_COLUMN_FIRST_NAME" env-default:"first_name"`
	LastName    string `env:"DB_COLUMN_LAST_NAME" env-default:"last_name"`
	DisplayName string `env:"DB_COLUMN_DISPLAY_NAME" env-default:"display_name"`
	Active      string `env:"DB_COLUMN_ACTIVE" env-default:"active"`
	ExternalID  string `env:"DB_COLUMN_EXTERNAL_ID" env-default:"external_id"`
}

// EntitlementColumnsConfig maps logical SCIM entitlement attributes onto
// physical column names of the entitlement table.
type EntitlementColumnsConfig struct {
	ID      string `env:"ENTITLEMENT_COLUMN_ID" env-default:"id"`
	Value   string `env:"ENTITLEMENT_COLUMN_VALUE" env-default:"value"`
	Display string `env:"ENTITLEMENT_COLUMN_DISPLAY" env-default:"display"`
	Type    string `env:"ENTITLEMENT_COLUMN_TYPE" env-default:"type"`
}
