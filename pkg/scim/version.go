package scim

import "fmt"

// Version is the SCIM protocol variant served by the gateway.
//
// The two variants differ only structurally: 2.0 resources and envelopes
// carry a "schemas" URN array and use the RFC 7644 error shape, 1.1 omits
// the schemas array and uses the Errors-list error shape. All mapping logic
// is shared and parameterized by Version to keep the variants from drifting.
type Version string

const (
	V11 Version = "1.1"
	V20 Version = "2.0"
)

// ParseVersion validates a configured version string.
func ParseVersion(s string) (Version, error) {
	switch Version(s) {
	case V11, V20:
		return Version(s), nil
	}
	return "", fmt.Errorf("unsupported SCIM version %q (want \"1.1\" or \"2.0\")", s)
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return string(v)
}

// Label returns the human-readable protocol label used in health and info
// documents, e.g. "SCIM 2.0".
func (v Version) Label() string {
	return "SCIM " + string(v)
}

// SCIM 2.0 schema URNs. SCIM 1.1 responses carry no URNs at all.
const (
	UserSchemaURN            = "urn:ietf:params:scim:schemas:core:2.0:User"
	EnterpriseUserSchemaURN  = "urn:ietf:params:scim:schemas:extension:enterprise:2.0:User"
	EntitlementSchemaURN     = "urn:ietf:params:scim:schemas:core:2.0:Entitlement"
	ListResponseSchemaURN    = "urn:ietf:params:scim:api:messages:2.0:ListResponse"
	ErrorSchemaURN           = "urn:ietf:params:scim:api:messages:2.0:Error"
	SchemaSchemaURN          = "urn:ietf:params:scim:schemas:core:2.0:Schema"
	ResourceTypeSchemaURN    = "urn:ietf:params:scim:schemas:core:2.0:ResourceType"
	ServiceProviderConfigURN = "urn:ietf:params:scim:schemas:core:2.0:ServiceProviderConfig"
)

// Resource locations are synthesized under the v2 path for both protocol
// variants; provisioning agents resolve them against the configured base URL.
const (
	UsersBasePath        = "/scim/v2/Users"
	EntitlementsBasePath = "/scim/v2/Entitlements"
)
