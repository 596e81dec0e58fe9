package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/tendant/simple-scim/pkg/scim"
)

// Capability documents. These are static per configuration: the protocol
// variant decides the envelope shape (2.0 carries schemas URN arrays and
// uses *Uri keys, 1.1 omits the URNs and uses the legacy *Url keys), and
// the entitlements toggle decides whether the entitlement schema and
// resource type are advertised.

// Schemas handles GET /Schemas.
func (h Handle) Schemas(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, SchemasDocument(h.version(), h.scimService.EntitlementsEnabled()))
}

// ResourceTypes handles GET /ResourceTypes.
func (h Handle) ResourceTypes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ResourceTypesDocument(h.version(), h.scimService.EntitlementsEnabled()))
}

// ServiceProviderConfig handles GET /ServiceProviderConfig.
func (h Handle) ServiceProviderConfig(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ServiceProviderConfigDocument(h.version()))
}

// SchemasDocument lists the resource schemas the gateway serves.
func SchemasDocument(v scim.Version, entitlements bool) map[string]any {
	resources := []map[string]any{
		schemaEntry(v, scim.UserSchemaURN, "User", "User Account"),
		schemaEntry(v, scim.EnterpriseUserSchemaURN, "EnterpriseUser", "Enterprise User"),
	}
	if entitlements {
		resources = append(resources,
			schemaEntry(v, scim.EntitlementSchemaURN, "Entitlement", "Entitlement (Role, Permission, Group)"))
	}

	doc := map[string]any{
		"totalResults": len(resources),
		"Resources":    resources,
	}
	if v == scim.V20 {
		doc["schemas"] = []string{scim.ListResponseSchemaURN}
	}
	return doc
}

func schemaEntry(v scim.Version, id, name, description string) map[string]any {
	entry := map[string]any{
		"id":          id,
		"name":        name,
		"description": description,
	}
	if v == scim.V20 {
		entry["schemas"] = []string{scim.SchemaSchemaURN}
	}
	return entry
}

// ResourceTypesDocument lists the resource types and their endpoints.
func ResourceTypesDocument(v scim.Version, entitlements bool) map[string]any {
	userType := map[string]any{
		"id":          "User",
		"name":        "User",
		"endpoint":    "/Users",
		"description": "User Account",
		"schema":      scim.UserSchemaURN,
		"schemaExtensions": []map[string]any{
			{"schema": scim.EnterpriseUserSchemaURN, "required": false},
		},
	}
	if v == scim.V20 {
		userType["schemas"] = []string{scim.ResourceTypeSchemaURN}
	}

	resources := []map[string]any{userType}
	if entitlements {
		entType := map[string]any{
			"id":          "Entitlement",
			"name":        "Entitlement",
			"endpoint":    "/Entitlements",
			"description": "Entitlement (Role, Permission, Group)",
			"schema":      scim.EntitlementSchemaURN,
		}
		if v == scim.V20 {
			entType["schemas"] = []string{scim.ResourceTypeSchemaURN}
		}
		resources = append(resources, entType)
	}

	doc := map[string]any{
		"totalResults": len(resources),
		"Resources":    resources,
	}
	if v == scim.V20 {
		doc["schemas"] = []string{scim.ListResponseSchemaURN}
	}
	return doc
}

// ServiceProviderConfigDocument describes the gateway's capabilities.
// Read-only: patch, bulk, changePassword and etag are unsupported. Filter
// support is advertised for agent compatibility even though list requests
// are served unfiltered.
func ServiceProviderConfigDocument(v scim.Version) map[string]any {
	doc := map[string]any{
		"patch":          map[string]any{"supported": false},
		"changePassword": map[string]any{"supported": false},
		"sort":           map[string]any{"supported": true},
		"etag":           map[string]any{"supported": false},
		"filter": map[string]any{
			"supported":  true,
			"maxResults": 200,
		},
	}

	if v == scim.V20 {
		doc["schemas"] = []string{scim.ServiceProviderConfigURN}
		doc["documentationUri"] = "https://tools.ietf.org/html/rfc7644"
		doc["bulk"] = map[string]any{
			"supported":      false,
			"maxOperations":  0,
			"maxPayloadSize": 0,
		}
		doc["authenticationSchemes"] = []map[string]any{
			{
				"type":             "httpbasic",
				"name":             "HTTP Basic",
				"description":      "Authentication via HTTP Basic",
				"specUri":          "http://www.rfc-editor.org/info/rfc2617",
				"documentationUri": "https://tools.ietf.org/html/rfc7617",
			},
		}
		return doc
	}

	doc["documentationUrl"] = "https://tools.ietf.org/html/rfc7644"
	doc["bulk"] = map[string]any{"supported": false}
	doc["authenticationSchemes"] = []map[string]any{
		{
			"type":        "httpbasic",
			"name":        "HTTP Basic",
			"description": "Authentication via HTTP Basic",
			"specUrl":     "http://www.rfc-editor.org/info/rfc2617",
		},
	}
	return doc
}

// RootDocument is the informational document served at the service root.
func RootDocument(v scim.Version, entitlements bool) map[string]any {
	endpoints := map[string]any{
		"users":         scim.UsersBasePath,
		"schemas":       "/scim/v2/Schemas",
		"resourceTypes": "/scim/v2/ResourceTypes",
		"config":        "/scim/v2/ServiceProviderConfig",
		"health":        "/health",
	}
	doc := map[string]any{
		"message":     "SCIM SQL Gateway",
		"scimVersion": v.String(),
		"endpoints":   endpoints,
	}
	if entitlements {
		endpoints["entitlements"] = scim.EntitlementsBasePath
		doc["features"] = []string{"users", "entitlements", "identity-governance"}
	}
	return doc
}
