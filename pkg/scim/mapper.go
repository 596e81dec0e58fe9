package scim

import (
	"fmt"
	"strings"
	"time"
)

// rowView indexes one relational row by the column names the query actually
// returned. The queries use SELECT *, so the returned columns may be a
// superset or subset of the configured mapping; an attribute is mapped only
// when its configured column is present here, case-sensitively.
type rowView struct {
	row []any
	idx map[string]int
}

func newRowView(row []any, columns []string) rowView {
	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		idx[name] = i
	}
	return rowView{row: row, idx: idx}
}

// has reports whether the column is present in the result set.
func (v rowView) has(column string) bool {
	i, ok := v.idx[column]
	return ok && i < len(v.row)
}

// str returns the string form of the column value, or "" when the column is
// absent or the value is NULL.
func (v rowView) str(column string) string {
	if !v.has(column) {
		return ""
	}
	return stringValue(v.row[v.idx[column]])
}

// boolOr returns the column value coerced to bool, or def when the column
// is absent. A present NULL is false, matching the source behavior.
func (v rowView) boolOr(column string, def bool) bool {
	if !v.has(column) {
		return def
	}
	return boolValue(v.row[v.idx[column]])
}

func stringValue(val any) string {
	switch x := val.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func boolValue(val any) bool {
	switch x := val.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case string:
		switch strings.ToLower(x) {
		case "t", "true", "1", "y", "yes":
			return true
		}
		return false
	default:
		return true
	}
}

// timestamp is the response-time stamp used for meta.created/lastModified.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// MapUser converts one row of the user table into a SCIM user resource.
//
// Unmapped or missing optional attributes never fail the mapping: strings
// default to "", active defaults to true. The id is always the string form
// of the mapped id column, "" when unmapped, never omitted. formatted is
// rendered only when both name columns are present. Version 2.0 resources
// carry the schemas URN array; 1.1 resources omit it.
func MapUser(row []any, columns []string, m Mapping, v Version) (UserResource, error) {
	if len(row) == 0 || len(columns) == 0 {
		return UserResource{}, fmt.Errorf("cannot map user: empty row or column list")
	}

	rv := newRowView(row, columns)

	id := rv.str(m.User.ID)
	formatted := ""
	if rv.has(m.User.FirstName) && rv.has(m.User.LastName) {
		formatted = rv.str(m.User.FirstName) + " " + rv.str(m.User.LastName)
	}

	now := timestamp()
	user := UserResource{
		ID:       id,
		UserName: rv.str(m.User.Username),
		Name: Name{
			GivenName:  rv.str(m.User.FirstName),
			FamilyName: rv.str(m.User.LastName),
			Formatted:  formatted,
		},
		Emails: []Email{
			{Value: rv.str(m.User.Email), Type: "work", Primary: true},
		},
		Active: rv.boolOr(m.User.Active, true),
		Meta: Meta{
			ResourceType: "User",
			Created:      now,
			LastModified: now,
			Location:     location(UsersBasePath, rv, m.User.ID),
		},
	}

	if v == V20 {
		user.Schemas = []string{UserSchemaURN, EnterpriseUserSchemaURN}
	}

	if s := rv.str(m.User.DisplayName); rv.has(m.User.DisplayName) && s != "" {
		user.DisplayName = s
	}
	if s := rv.str(m.User.ExternalID); rv.has(m.User.ExternalID) && s != "" {
		user.ExternalID = s
	}

	return user, nil
}

// MapEntitlement converts one row of the entitlement table into a SCIM
// entitlement resource. type defaults to "default" when unmapped or NULL.
func MapEntitlement(row []any, columns []string, m Mapping, v Version) (EntitlementResource, error) {
	if len(row) == 0 || len(columns) == 0 {
		return EntitlementResource{}, fmt.Errorf("cannot map entitlement: empty row or column list")
	}

	rv := newRowView(row, columns)

	entType := rv.str(m.Entitlement.Type)
	if entType == "" {
		entType = "default"
	}

	now := timestamp()
	ent := EntitlementResource{
		ID:    rv.str(m.Entitlement.ID),
		Value: rv.str(m.Entitlement.Value),
		Type:  entType,
		Meta: Meta{
			ResourceType: "Entitlement",
			Created:      now,
			LastModified: now,
			Location:     location(EntitlementsBasePath, rv, m.Entitlement.ID),
		},
	}

	if v == V20 {
		ent.Schemas = []string{EntitlementSchemaURN}
	}

	if s := rv.str(m.Entitlement.Display); rv.has(m.Entitlement.Display) && s != "" {
		ent.Display = s
	}

	return ent, nil
}

// MapEntitlementSummary converts one row of the user-entitlement join into
// the short form embedded in a user resource.
func MapEntitlementSummary(row []any, columns []string, m Mapping) EntitlementSummary {
	rv := newRowView(row, columns)

	entType := rv.str(m.Entitlement.Type)
	if entType == "" {
		entType = "default"
	}

	summary := EntitlementSummary{
		Value: rv.str(m.Entitlement.Value),
		Type:  entType,
	}
	if s := rv.str(m.Entitlement.Display); s != "" {
		summary.Display = s
	}
	return summary
}

func location(basePath string, rv rowView, idColumn string) string {
	if !rv.has(idColumn) {
		return ""
	}
	return basePath + "/" + rv.str(idColumn)
}
