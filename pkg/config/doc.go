// Package config holds the environment-driven configuration for the SCIM
// gateway: database connection parameters, the SCIM protocol variant, the
// agent's Basic credentials, and the schema mapping between logical SCIM
// attributes and physical table/column names.
//
// All structs are read once at startup with cleanenv and passed explicitly
// to the components that need them; nothing in this package is mutated after
// startup.
package config
