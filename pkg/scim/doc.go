// Package scim translates rows of an arbitrarily named relational user
// table into SCIM 1.1 / 2.0 resource documents.
//
// The package is split along the request flow: Repository executes
// parameterized SQL and returns raw rows plus result-set column names,
// the mapper functions turn one row into one resource using the configured
// schema Mapping, pagination converts SCIM's 1-based startIndex/count into
// a SQL window, and ScimService ties the three together and merges
// entitlement summaries into user resources when the extension is enabled.
package scim
