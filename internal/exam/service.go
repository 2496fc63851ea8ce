package exam

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studyaide/studyaide-backend/internal/grading"
	"github.com/studyaide/studyaide-backend/internal/guest"
)

// Generator produces a raw question batch for a course/topic. Implemented by
// the genai adapter; the service never parses model output itself.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]RawQuestion, error)
}

// GenerateRequest describes what to generate.
type GenerateRequest struct {
	Course       string `json:"course_name"`
	Topic        string `json:"topic,omitempty"`
	NumQuestions int    `json:"num_questions"`
	Shareable    bool   `json:"is_shareable,omitempty"`
}

// UsageLog records feature usage and performance rows. Failures are logged
// and swallowed; bookkeeping never fails a request.
type UsageLog interface {
	LogUsage(ctx context.Context, userID, username, feature, action string, metadata map[string]any) error
	LogPerformance(ctx context.Context, userID, feature string, score, total int, extra map[string]any) error
}

const featureName = "Exam Simulator"

// Service orchestrates generation, sharing, submission, and comparison.
type Service struct {
	store      Store
	gen        Generator
	limiter    guest.Limiter
	usage      UsageLog
	log        *zap.Logger
	guestLimit int
	now        func() time.Time
}

func NewService(store Store, gen Generator, limiter guest.Limiter, usage UsageLog, log *zap.Logger, guestLimit int) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:      store,
		gen:        gen,
		limiter:    limiter,
		usage:      usage,
		log:        log,
		guestLimit: guestLimit,
		now:        time.Now,
	}
}

// GenerateOutcome is the result of a generation request. ShareID is empty
// when no token was issued; ShareNotice explains why when sharing was
// requested but unavailable (a normal outcome, not an error).
type GenerateOutcome struct {
	Set         QuestionSet `json:"exam"`
	ShareID     string      `json:"share_id,omitempty"`
	ShareNotice string      `json:"share_notice,omitempty"`
}

// Generate runs the full generation path: guest cap, generator call,
// validation, persistence, and optional share-token issuance.
func (s *Service) Generate(ctx context.Context, who Identity, req GenerateRequest) (GenerateOutcome, error) {
	if who.Guest {
		if !s.limiter.Allow("exam_generate", s.guestLimit) {
			return GenerateOutcome{}, ErrLimitExceeded
		}
	}

	raw, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.Warn("generator call failed", zap.Error(err))
		return GenerateOutcome{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	questions, err := ValidateBatch(raw)
	if err != nil {
		return GenerateOutcome{}, err
	}
	if dropped := len(raw) - len(questions); dropped > 0 {
		s.log.Info("dropped malformed questions", zap.Int("dropped", dropped), zap.Int("kept", len(questions)))
	}

	qs := QuestionSet{
		ID:        uuid.NewString(),
		Course:    req.Course,
		Topic:     req.Topic,
		CreatorID: who.ID,
		Shareable: req.Shareable && !who.Guest,
		Questions: questions,
		CreatedAt: s.now().Unix(),
	}
	if err := s.store.PutQuestionSet(ctx, qs); err != nil {
		return GenerateOutcome{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	out := GenerateOutcome{Set: qs}
	if req.Shareable {
		if who.Guest {
			out.ShareNotice = "Sharing is unavailable for guests. Please log in to create shareable exams."
		} else {
			t := ShareToken{
				ID:            uuid.NewString(),
				QuestionSetID: qs.ID,
				CreatorID:     who.ID,
				Title:         fmt.Sprintf("%s Exam (%d Qs)", req.Course, len(questions)),
				CreatedAt:     s.now().Unix(),
			}
			if err := s.store.PutShareToken(ctx, t); err != nil {
				// The set itself persisted; report sharing as unavailable.
				s.log.Error("share token save failed", zap.Error(err))
				out.ShareNotice = "Exam generated, but the share link could not be created."
			} else {
				out.ShareID = t.ID
			}
		}
	}

	s.logUsage(ctx, who, "generated_exam", map[string]any{
		"course": req.Course, "topic": req.Topic, "num_questions": len(questions), "is_shareable": out.ShareID != "",
	})
	return out, nil
}

// GradePractice grades a non-shared practice exam held by the client and
// records the result. The questions here were produced by Generate earlier
// in the same session; the shared flow never trusts client question data.
func (s *Service) GradePractice(ctx context.Context, who Identity, questions []Question, answers map[int]string, course string) (grading.Result, error) {
	res := grading.Grade(keyed(questions), answers)

	if err := s.usage.LogPerformance(ctx, who.ID, featureName, res.Score, res.Total, map[string]any{"course": course}); err != nil {
		s.log.Warn("performance log failed", zap.Error(err))
	}
	s.logUsage(ctx, who, "submitted_exam", map[string]any{
		"course": course, "score": res.Score, "total": res.Total,
	})
	return res, nil
}

// FetchShared returns a shared exam for taking, with answer labels and
// explanations stripped. Grading always re-fetches the keyed set server-side.
func (s *Service) FetchShared(ctx context.Context, shareID string) (ShareToken, QuestionSet, error) {
	t, qs, err := s.store.GetShared(ctx, shareID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ShareToken{}, QuestionSet{}, err
		}
		return ShareToken{}, QuestionSet{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	public := qs
	public.Questions = make([]Question, len(qs.Questions))
	for i, q := range qs.Questions {
		q.Answer = ""
		q.Explanation = ""
		q.LowConfidence = false
		public.Questions[i] = q
	}
	return t, public, nil
}

// SubmitOutcome pairs the persisted submission with its comparison against
// everyone who submitted before it.
type SubmitOutcome struct {
	Submission Submission         `json:"submission"`
	Remark     string             `json:"remark"`
	Comparison grading.Comparison `json:"comparison"`
}

// SubmitShared grades answers against the authoritative question set for a
// share token and records a new, immutable submission. Resubmission by the
// same identity appends another record; that is the recorded policy, not a
// bug. The comparison population excludes the submission being created.
func (s *Service) SubmitShared(ctx context.Context, shareID string, who Identity, label string, answers map[int]string) (SubmitOutcome, error) {
	_, qs, err := s.store.GetShared(ctx, shareID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return SubmitOutcome{}, err
		}
		return SubmitOutcome{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	res := grading.Grade(keyed(qs.Questions), answers)

	population, err := s.store.ListPercentages(ctx, shareID, "")
	if err != nil {
		return SubmitOutcome{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	sub := Submission{
		ID:             uuid.NewString(),
		ShareTokenID:   shareID,
		SubmitterID:    who.ID,
		SubmitterLabel: label,
		Answers:        answers,
		Score:          res.Score,
		Total:          res.Total,
		Percentage:     res.Percentage,
		Grade:          res.Grade,
		SubmittedAt:    s.now().Unix(),
	}
	if sub.Answers == nil {
		sub.Answers = map[int]string{}
	}
	if err := s.store.PutSubmission(ctx, sub); err != nil {
		return SubmitOutcome{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	s.logUsage(ctx, who, "submitted_shared_exam", map[string]any{
		"share_id": shareID, "score": res.Score, "total": res.Total,
	})
	return SubmitOutcome{
		Submission: sub,
		Remark:     res.Remark,
		Comparison: grading.Compare(population, res.Percentage),
	}, nil
}

// CompareSubmission recomputes how an existing submission ranks against all
// other submissions for the same share token. The submission's own row is
// excluded so a lone high scorer is not penalized against itself.
func (s *Service) CompareSubmission(ctx context.Context, shareID, submissionID string) (grading.Comparison, error) {
	sub, err := s.store.GetSubmission(ctx, shareID, submissionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return grading.Comparison{}, err
		}
		return grading.Comparison{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	population, err := s.store.ListPercentages(ctx, shareID, sub.ID)
	if err != nil {
		return grading.Comparison{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return grading.Compare(population, sub.Percentage), nil
}

func (s *Service) logUsage(ctx context.Context, who Identity, action string, metadata map[string]any) {
	name := who.Name
	if name == "" {
		name = "Guest"
	}
	if err := s.usage.LogUsage(ctx, who.ID, name, featureName, action, metadata); err != nil {
		s.log.Warn("usage log failed", zap.String("action", action), zap.Error(err))
	}
}

func keyed(questions []Question) []grading.Keyed {
	out := make([]grading.Keyed, len(questions))
	for i, q := range questions {
		out[i] = grading.Keyed{Index: q.Index, Answer: q.Answer}
	}
	return out
}
