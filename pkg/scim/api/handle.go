package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-scim/pkg/scim"
)

// Handle serves the SCIM HTTP surface for one configured protocol variant.
type Handle struct {
	scimService *scim.ScimService
	authUser    string
	authPass    string
}

// NewHandle creates a new SCIM API handle. The credentials are the two
// configured secrets the provisioning agent presents via HTTP Basic.
func NewHandle(scimService *scim.ScimService, authUser, authPass string) Handle {
	return Handle{
		scimService: scimService,
		authUser:    authUser,
		authPass:    authPass,
	}
}

// Handler builds the router for the /scim/v2 subtree. Resource endpoints
// require Basic auth; the capability documents are public, as provisioning
// agents probe them before credentials are configured.
func Handler(h Handle) http.Handler {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(BasicAuth(h.authUser, h.authPass, h.version()))

		r.Get("/Users", h.ListUsers)
		r.Get("/Users/{id}", h.GetUser)

		if h.scimService.EntitlementsEnabled() {
			r.Get("/Entitlements", h.ListEntitlements)
			r.Get("/Entitlements/{id}", h.GetEntitlement)
		}
	})

	r.Get("/Schemas", h.Schemas)
	r.Get("/ResourceTypes", h.ResourceTypes)
	r.Get("/ServiceProviderConfig", h.ServiceProviderConfig)

	return r
}

func (h Handle) version() scim.Version {
	return h.scimService.Version()
}

// renderError writes the version-shaped error envelope. Every failure path
// goes through here so the agent never sees an unstructured body.
func (h Handle) renderError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, scim.NewErrorResponse(h.version(), status, detail))
}

// ListUsers handles GET /Users with startIndex/count pagination.
func (h Handle) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := scim.ParsePageParams(r.URL.Query())
	if err != nil {
		slog.Warn("Rejected user list request", "err", err)
		h.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.scimService.ListUsers(r.Context(), page)
	if err != nil {
		slog.Error("Failed to list users", "err", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, resp)
}

// GetUser handles GET /Users/{id}.
func (h Handle) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.scimService.GetUser(r.Context(), id)
	if err != nil {
		var notFound scim.NotFoundError
		if errors.As(err, &notFound) {
			h.renderError(w, r, http.StatusNotFound, notFound.Error())
			return
		}
		slog.Error("Failed to get user", "id", id, "err", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, user)
}

// ListEntitlements handles GET /Entitlements with startIndex/count pagination.
func (h Handle) ListEntitlements(w http.ResponseWriter, r *http.Request) {
	page, err := scim.ParsePageParams(r.URL.Query())
	if err != nil {
		slog.Warn("Rejected entitlement list request", "err", err)
		h.renderError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.scimService.ListEntitlements(r.Context(), page)
	if err != nil {
		slog.Error("Failed to list entitlements", "err", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, resp)
}

// GetEntitlement handles GET /Entitlements/{id}.
func (h Handle) GetEntitlement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ent, err := h.scimService.GetEntitlement(r.Context(), id)
	if err != nil {
		var notFound scim.NotFoundError
		if errors.As(err, &notFound) {
			h.renderError(w, r, http.StatusNotFound, notFound.Error())
			return
		}
		slog.Error("Failed to get entitlement", "id", id, "err", err)
		h.renderError(w, r, http.StatusInternalServerError, err.Error())
		return
	}
	render.JSON(w, r, ent)
}

// Health handles GET /health: a trivial query against the store decides
// healthy versus unhealthy.
func (h Handle) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.scimService.Ping(r.Context()); err != nil {
		slog.Error("Health check failed", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]any{
			"status":    "unhealthy",
			"version":   h.version().Label(),
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": now,
		})
		return
	}

	render.JSON(w, r, map[string]any{
		"status":    "healthy",
		"version":   h.version().Label(),
		"database":  "connected",
		"timestamp": now,
	})
}

// Root handles GET /: a small info document listing the exposed endpoints.
func (h Handle) Root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, RootDocument(h.version(), h.scimService.EntitlementsEnabled()))
}
