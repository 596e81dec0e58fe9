// Package api exposes the SCIM read surface over HTTP: the paginated
// /Users and /Entitlements endpoints behind Basic auth, the public
// capability documents, a database-probing health check, and the root
// info document. All error paths emit the error envelope of the active
// protocol variant.
package api
