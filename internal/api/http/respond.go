package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyaide/studyaide-backend/internal/auth"
	authmw "github.com/studyaide/studyaide-backend/internal/auth/middleware"
	"github.com/studyaide/studyaide-backend/internal/exam"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps the workflow error taxonomy onto HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exam.ErrNotFound):
		http.Error(w, "Exam not found or unavailable.", http.StatusNotFound)
	case errors.Is(err, exam.ErrLimitExceeded):
		http.Error(w, "Guest limit exceeded. Please log in for unlimited access.", http.StatusTooManyRequests)
	case errors.Is(err, exam.ErrEmptyGeneration):
		http.Error(w, "The AI generated an invalid exam format. Please try generating again or check your input.", http.StatusBadRequest)
	case errors.Is(err, exam.ErrUnavailable):
		http.Error(w, "Service is currently unavailable. Please try again shortly.", http.StatusServiceUnavailable)
	default:
		http.Error(w, "An unexpected error occurred.", http.StatusInternalServerError)
	}
}

// identity resolves the requester from the JWT context. Requests without a
// token are treated as a shared anonymous guest identity, matching the
// pre-login browsing flow.
func identity(r *http.Request) exam.Identity {
	sub := authmw.SubjectFromContext(r.Context())
	if sub == "" {
		return exam.Identity{ID: "guest|anonymous", Name: "Guest", Guest: true}
	}
	name := authmw.NameFromContext(r.Context())
	return exam.Identity{ID: sub, Name: name, Guest: auth.IsGuest(sub)}
}
