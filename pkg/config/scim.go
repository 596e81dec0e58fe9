package config

import "fmt"

// ScimConfig selects the protocol variant and optional features.
type ScimConfig struct {
	// Version is the SCIM protocol variant served: "1.1" or "2.0".
	Version string `env:"SCIM_VERSION" env-default:"2.0"`

	// EntitlementsEnabled turns on the entitlements extension: the
	// /Entitlements endpoints and the per-user entitlement merge.
	EntitlementsEnabled bool `env:"SCIM_ENTITLEMENTS_ENABLED" env-default:"false"`

	// RequestTimeout bounds the total time spent serving one request,
	// including all database round trips.
	RequestTimeout string `env:"SCIM_REQUEST_TIMEOUT" env-default:"30s"`
}

// AuthConfig holds the HTTP Basic credentials the provisioning agent
// presents on every protected request.
type AuthConfig struct {
	Username string `env:"SCIM_USERNAME" env-default:"okta_import"`
	Password string `env:"SCIM_PASSWORD"`
}

// Validate rejects an empty shared secret; running without one would leave
// the user table readable by anyone who can reach the port.
func (a AuthConfig) Validate() error {
	if a.Username == "" {
		return fmt.Errorf("SCIM_USERNAME is required")
	}
	if a.Password == "" {
		return fmt.Errorf("SCIM_PASSWORD is required")
	}
	return nil
}
