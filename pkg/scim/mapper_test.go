package scim

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapping() Mapping {
	return Mapping{
		User: UserColumns{
			ID:          "id",
			Username:    "username",
			Email:       "email",
			FirstName:   "first_name",
			LastName:    "last_name",
			DisplayName: "display_name",
			Active:      "active",
			ExternalID:  "external_id",
		},
		Entitlement: EntitlementColumns{
			ID:      "id",
			Value:   "value",
			Display: "display",
			Type:    "type",
		},
	}
}

func TestMapUserFullRow(t *testing.T) {
	columns := []string{"id", "username", "email", "first_name", "last_name", "display_name", "active", "external_id"}
	row := []any{1, "alice", "alice@example.com", "Alice", "Anderson", "Alice A.", true, "ext-1"}

	user, err := MapUser(row, columns, testMapping(), V20)
	require.NoError(t, err)

	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "alice", user.UserName)
	assert.Equal(t, "Alice", user.Name.GivenName)
	assert.Equal(t, "Anderson", user.Name.FamilyName)
	assert.Equal(t, "Alice Anderson", user.Name.Formatted)
	assert.Equal(t, "Alice A.", user.DisplayName)
	assert.Equal(t, "ext-1", user.ExternalID)
	assert.True(t, user.Active)

	require.Len(t, user.Emails, 1)
	assert.Equal(t, "alice@example.com", user.Emails[0].Value)
	assert.Equal(t, "work", user.Emails[0].Type)
	assert.True(t, user.Emails[0].Primary)

	assert.Equal(t, []string{UserSchemaURN, EnterpriseUserSchemaURN}, user.Schemas)
	assert.Equal(t, "User", user.Meta.ResourceType)
	assert.Equal(t, "/scim/v2/Users/1", user.Meta.Location)
}

func TestMapUserV11OmitsSchemas(t *testing.T) {
	columns := []string{"id", "username"}
	row := []any{1, "alice"}

	user, err := MapUser(row, columns, testMapping(), V11)
	require.NoError(t, err)
	assert.Nil(t, user.Schemas)

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"schemas"`)
}

func TestMapUserMissingOptionalColumns(t *testing.T) {
	// Result set narrower than the mapping: only id, username and email.
	columns := []string{"id", "username", "email"}
	row := []any{2, "bob", "bob@example.com"}

	user, err := MapUser(row, columns, testMapping(), V20)
	require.NoError(t, err)

	assert.Equal(t, "2", user.ID)
	assert.Empty(t, user.Name.GivenName)
	assert.Empty(t, user.Name.FamilyName)
	assert.Empty(t, user.Name.Formatted)
	assert.Empty(t, user.DisplayName)
	assert.Empty(t, user.ExternalID)
	assert.True(t, user.Active, "active defaults to true when the column is absent")

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"displayName"`)
	assert.NotContains(t, string(data), `"externalId"`)
}

func TestMapUserFormattedNeedsBothNameColumns(t *testing.T) {
	columns := []string{"id", "username", "first_name"}
	row := []any{3, "carol", "Carol"}

	user, err := MapUser(row, columns, testMapping(), V20)
	require.NoError(t, err)
	assert.Equal(t, "Carol", user.Name.GivenName)
	assert.Empty(t, user.Name.Formatted)
}

func TestMapUserActiveSemantics(t *testing.T) {
	m := testMapping()

	tests := []struct {
		name     string
		columns  []string
		row      []any
		expected bool
	}{
		{"column absent defaults true", []string{"id"}, []any{1}, true},
		{"present true", []string{"id", "active"}, []any{1, true}, true},
		{"present false", []string{"id", "active"}, []any{1, false}, false},
		{"present null is false", []string{"id", "active"}, []any{1, nil}, false},
		{"integer zero is false", []string{"id", "active"}, []any{1, 0}, false},
		{"integer one is true", []string{"id", "active"}, []any{1, 1}, true},
		{"string true is true", []string{"id", "active"}, []any{1, "true"}, true},
		{"string no is false", []string{"id", "active"}, []any{1, "no"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := MapUser(tc.row, tc.columns, m, V20)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, user.Active)
		})
	}
}

func TestMapUserIDAlwaysString(t *testing.T) {
	m := testMapping()

	// NULL id maps to "" rather than being omitted.
	user, err := MapUser([]any{nil, "alice"}, []string{"id", "username"}, m, V20)
	require.NoError(t, err)
	assert.Equal(t, "", user.ID)

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":""`)

	// Unmapped id column behaves the same.
	user, err = MapUser([]any{"alice"}, []string{"username"}, m, V20)
	require.NoError(t, err)
	assert.Equal(t, "", user.ID)
	assert.Empty(t, user.Meta.Location)
}

func TestMapUserEmptyRow(t *testing.T) {
	_, err := MapUser(nil, []string{"id"}, testMapping(), V20)
	assert.Error(t, err)

	_, err = MapUser([]any{1}, nil, testMapping(), V20)
	assert.Error(t, err)
}

func TestMapUserTimestamps(t *testing.T) {
	user, err := MapUser([]any{1}, []string{"id"}, testMapping(), V20)
	require.NoError(t, err)
	assert.NotEmpty(t, user.Meta.Created)
	assert.Equal(t, user.Meta.Created, user.Meta.LastModified)
	assert.True(t, strings.HasSuffix(user.Meta.Created, "Z"))
}

func TestMapEntitlement(t *testing.T) {
	columns := []string{"id", "value", "display", "type"}
	row := []any{1, "admin", "Administrator", "role"}

	ent, err := MapEntitlement(row, columns, testMapping(), V20)
	require.NoError(t, err)

	assert.Equal(t, "1", ent.ID)
	assert.Equal(t, "admin", ent.Value)
	assert.Equal(t, "Administrator", ent.Display)
	assert.Equal(t, "role", ent.Type)
	assert.Equal(t, []string{EntitlementSchemaURN}, ent.Schemas)
	assert.Equal(t, "Entitlement", ent.Meta.ResourceType)
	assert.Equal(t, "/scim/v2/Entitlements/1", ent.Meta.Location)
}

func TestMapEntitlementTypeDefault(t *testing.T) {
	m := testMapping()

	// NULL type column.
	ent, err := MapEntitlement([]any{2, "reports", nil, nil}, []string{"id", "value", "display", "type"}, m, V11)
	require.NoError(t, err)
	assert.Equal(t, "default", ent.Type)
	assert.Nil(t, ent.Schemas)

	// Type column not returned at all.
	ent, err = MapEntitlement([]any{2, "reports"}, []string{"id", "value"}, m, V11)
	require.NoError(t, err)
	assert.Equal(t, "default", ent.Type)
}

func TestMapEntitlementDisplayOmittedWhenEmpty(t *testing.T) {
	ent, err := MapEntitlement([]any{2, "reports", nil, "role"}, []string{"id", "value", "display", "type"}, testMapping(), V20)
	require.NoError(t, err)

	data, err := json.Marshal(ent)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"display"`)
}

func TestMapEntitlementSummary(t *testing.T) {
	columns := []string{"id", "value", "display", "type"}

	summary := MapEntitlementSummary([]any{1, "admin", "Administrator", "role"}, columns, testMapping())
	assert.Equal(t, EntitlementSummary{Value: "admin", Type: "role", Display: "Administrator"}, summary)

	summary = MapEntitlementSummary([]any{2, "reports", nil, nil}, columns, testMapping())
	assert.Equal(t, EntitlementSummary{Value: "reports", Type: "default"}, summary)
}

func TestStringValueCoercion(t *testing.T) {
	assert.Equal(t, "", stringValue(nil))
	assert.Equal(t, "abc", stringValue("abc"))
	assert.Equal(t, "abc", stringValue([]byte("abc")))
	assert.Equal(t, "42", stringValue(42))
	assert.Equal(t, "42", stringValue(int64(42)))
}
