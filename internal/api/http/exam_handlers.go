package http

import (
	"encoding/json"
	"net/http"

	"github.com/studyaide/studyaide-backend/internal/exam"
)

const maxQuestions = 100

// POST /exams
func GenerateExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req exam.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Course == "" {
			http.Error(w, "course_name required", http.StatusBadRequest)
			return
		}
		if req.NumQuestions <= 0 || req.NumQuestions > maxQuestions {
			http.Error(w, "num_questions must be between 1 and 100", http.StatusBadRequest)
			return
		}

		out, err := svc.Generate(r.Context(), identity(r), req)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// POST /exams/grade
func GradeExamHandler(svc *exam.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Course    string          `json:"course_name"`
			Questions []exam.Question `json:"exam_data"`
			Answers   map[int]string  `json:"user_answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		res, err := svc.GradePractice(r.Context(), identity(r), req.Questions, req.Answers, req.Course)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
