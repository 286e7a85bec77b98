// Package api exposes HTTP handlers for the school activities service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"example.com/schoolactivities/internal/domain"
	"example.com/schoolactivities/internal/observability"
)

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry  *domain.Registry
	staticDir string
}

// NewHandler builds a Handler serving static assets from staticDir.
func NewHandler(registry *domain.Registry, staticDir string) *Handler {
	return &Handler{registry: registry, staticDir: staticDir}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare path to the static index page.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	writeJSON(w, http.StatusOK, h.registry.List(r.Context()))
}

// activityAction dispatches POST /activities/{name}/signup and
// POST /activities/{name}/unregister. Activity names may contain spaces;
// net/http decodes the path before routing, so splitting on the last slash
// recovers the full name.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing activity name or action")
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	email, ok := participantEmail(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "validation_failed", "email is required")
		return
	}

	switch action {
	case "signup":
		h.signup(w, r, name, email)
	case "unregister":
		h.unregister(w, r, name, email)
	default:
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.registry.Signup(r.Context(), name, email); err != nil {
		observability.RecordRejection("signup", rejectionReason(err))
		writeDomainError(w, err)
		return
	}

	observability.RecordSignup(name, h.registry.RosterSize(r.Context(), name))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Signed up " + email + " for " + name,
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.registry.Unregister(r.Context(), name, email); err != nil {
		observability.RecordRejection("unregister", rejectionReason(err))
		writeDomainError(w, err)
		return
	}

	observability.RecordUnregister(name, h.registry.RosterSize(r.Context(), name))
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: "Unregistered " + email + " from " + name,
	})
}

// participantEmail reads the email from the query string, falling back to a
// JSON body for clients that avoid putting addresses in URLs.
func participantEmail(r *http.Request) (string, bool) {
	if email := strings.TrimSpace(r.URL.Query().Get("email")); email != "" {
		return email, true
	}

	var body struct {
		Email string `json:"email"`
	}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			if email := strings.TrimSpace(body.Email); email != "" {
				return email, true
			}
		}
	}
	return "", false
}

// MessageResponse is the confirmation body for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, "already_registered", "Student is already signed up")
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "not_registered", "Student is not registered for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "capacity_exceeded", "Activity is full")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, domain.ErrNotRegistered):
		return "not_registered"
	case errors.Is(err, domain.ErrActivityFull):
		return "capacity_exceeded"
	default:
		return "error"
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
