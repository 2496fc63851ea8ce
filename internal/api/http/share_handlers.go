package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/studyaide/studyaide-backend/internal/exam"
)

// GET /shared/{shareID}
func GetSharedExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareID := strings.TrimSpace(chi.URLParam(r, "shareID"))
		if shareID == "" {
			http.Error(w, "shareID required", http.StatusBadRequest)
			return
		}
		token, set, err := svc.FetchShared(r.Context(), shareID)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Title string           `json:"title"`
			Exam  exam.QuestionSet `json:"exam"`
		}{Title: token.Title, Exam: set})
	}
}

// POST /shared/{shareID}/submissions
func SubmitSharedExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareID := strings.TrimSpace(chi.URLParam(r, "shareID"))
		if shareID == "" {
			http.Error(w, "shareID required", http.StatusBadRequest)
			return
		}
		var req struct {
			Answers    map[int]string `json:"user_answers"`
			Identifier string         `json:"student_identifier,omitempty"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		who := identity(r)
		// Anonymous takers submit with just a free-text name.
		submitter := who
		if who.ID == "guest|anonymous" {
			submitter.ID = ""
		}
		out, err := svc.SubmitShared(r.Context(), shareID, submitter, req.Identifier, req.Answers)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /shared/{shareID}/submissions/{submissionID}/comparison
func CompareSubmissionHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shareID := strings.TrimSpace(chi.URLParam(r, "shareID"))
		submissionID := strings.TrimSpace(chi.URLParam(r, "submissionID"))
		if shareID == "" || submissionID == "" {
			http.Error(w, "shareID and submissionID required", http.StatusBadRequest)
			return
		}
		cmp, err := svc.CompareSubmission(r.Context(), shareID, submissionID)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cmp)
	}
}
