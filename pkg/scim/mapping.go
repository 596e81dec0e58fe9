package scim

// Mapping associates logical SCIM attributes with physical column names and
// names the tables the gateway reads. It is built once at startup from
// configuration and never mutated afterwards, so it is safe for concurrent
// reads across requests.
type Mapping struct {
	User        UserColumns
	Entitlement EntitlementColumns
	Tables      Tables
}

// UserColumns holds the physical column name for each logical user
// attribute. An empty or misconfigured column simply never matches the
// result set, which makes the mapper fall back to the attribute's default.
type UserColumns struct {
	ID          string
	Username    string
	Email       string
	FirstName   string
	LastName    string
	DisplayName string
	Active      string
	ExternalID  string
}

// EntitlementColumns holds the physical column name for each logical
// entitlement attribute.
type EntitlementColumns struct {
	ID      string
	Value   string
	Display string
	Type    string
}

// Tables names the user table, the entitlement table, and the
// user-entitlement association table with its two join columns.
type Tables struct {
	Users            string
	Entitlements     string
	UserEntitlements string

	UserEntitlementUserID        string
	UserEntitlementEntitlementID string
}
