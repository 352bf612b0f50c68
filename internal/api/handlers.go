// Package api exposes HTTP handlers for the enrollment service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"example.com/extracurricular/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. Path wildcards arrive
// URL-decoded, so activity names with spaces or ampersands and encoded
// emails (%40 and friends) match registry keys directly.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", root)
	mux.HandleFunc("GET /activities", h.listActivities)
	mux.HandleFunc("POST /activities/{activity}/signup", h.signup)
	mux.HandleFunc("DELETE /activities/{activity}/unregister/{email}", h.unregister)
	mux.HandleFunc("GET /healthz", healthz)
}

// root sends browsers to the enrollment page.
func root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities := h.service.ListActivities(r.Context())

	views := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		views[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")

	// The email parameter must be present, but the empty string is a
	// valid value.
	query := r.URL.Query()
	if !query.Has("email") {
		writeError(w, http.StatusUnprocessableEntity, "email query parameter is required")
		return
	}
	email := query.Get("email")

	message, err := h.service.Signup(r.Context(), activity, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.PathValue("email")

	message, err := h.service.Unregister(r.Context(), activity, email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// MessageResponse is the success envelope for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// ActivityView is the wire form of one activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "Student is not registered for this activity")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
