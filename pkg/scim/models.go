package scim

import "strconv"

// Name is the SCIM user name sub-attribute.
type Name struct {
	GivenName  string `json:"givenName"`
	FamilyName string `json:"familyName"`
	Formatted  string `json:"formatted"`
}

// Email is a SCIM email entry. The gateway always emits exactly one,
// typed "work" and marked primary, since the source schema has a single
// email column.
type Email struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Primary bool   `json:"primary"`
}

// Meta is the SCIM resource metadata block. Created and LastModified are
// the response-time UTC timestamp: the source tables carry no audit
// columns, so persisted times are not available. Known limitation.
type Meta struct {
	ResourceType string `json:"resourceType"`
	Created      string `json:"created"`
	LastModified string `json:"lastModified"`
	Location     string `json:"location"`
}

// UserResource is a SCIM user document derived from one relational row.
// Schemas is populated for SCIM 2.0 only.
type UserResource struct {
	Schemas      []string             `json:"schemas,omitempty"`
	ID           string               `json:"id"`
	UserName     string               `json:"userName"`
	Name         Name                 `json:"name"`
	Emails       []Email              `json:"emails"`
	DisplayName  string               `json:"displayName,omitempty"`
	ExternalID   string               `json:"externalId,omitempty"`
	Active       bool                 `json:"active"`
	Entitlements []EntitlementSummary `json:"entitlements,omitempty"`
	Meta         Meta                 `json:"meta"`
}

// EntitlementResource is a full SCIM entitlement document served from the
// /Entitlements endpoints.
type EntitlementResource struct {
	Schemas []string `json:"schemas,omitempty"`
	ID      string   `json:"id"`
	Value   string   `json:"value"`
	Display string   `json:"display,omitempty"`
	Type    string   `json:"type"`
	Meta    Meta     `json:"meta"`
}

// EntitlementSummary is the short form embedded in a user resource:
// value and type, plus display when the source row has one.
type EntitlementSummary struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Display string `json:"display,omitempty"`
}

// ListResponse is the SCIM multi-resource envelope. TotalResults is the
// unpaginated row count, ItemsPerPage the number of resources actually
// returned, and StartIndex echoes the caller's requested 1-based start
// even when it is out of range.
type ListResponse struct {
	Schemas      []string `json:"schemas,omitempty"`
	TotalResults int      `json:"totalResults"`
	StartIndex   int      `json:"startIndex"`
	ItemsPerPage int      `json:"itemsPerPage"`
	Resources    []any    `json:"Resources"`
}

// ErrorDetail is one entry of the SCIM 1.1 error envelope.
type ErrorDetail struct {
	Description string `json:"description"`
	Code        string `json:"code"`
}

// ErrorResponseV1 is the SCIM 1.1 error envelope.
type ErrorResponseV1 struct {
	Errors []ErrorDetail `json:"Errors"`
}

// ErrorResponseV2 is the SCIM 2.0 (RFC 7644) error envelope.
type ErrorResponseV2 struct {
	Schemas []string `json:"schemas"`
	Status  string   `json:"status"`
	Detail  string   `json:"detail"`
}

// NewErrorResponse builds the error envelope matching the active protocol
// variant. Every failure path responds with one of these, never a bare
// message body.
func NewErrorResponse(v Version, status int, detail string) any {
	if v == V11 {
		return ErrorResponseV1{
			Errors: []ErrorDetail{{Description: detail, Code: strconv.Itoa(status)}},
		}
	}
	return ErrorResponseV2{
		Schemas: []string{ErrorSchemaURN},
		Status:  strconv.Itoa(status),
		Detail:  detail,
	}
}
