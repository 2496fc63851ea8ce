package exam

import "context"

// Store is the persistence collaborator for the shareable exam workflow.
// Fetching a set and writing a submission are separate calls; no cross-call
// transaction is assumed, and persisted sets are immutable.
type Store interface {
	PutQuestionSet(ctx context.Context, qs QuestionSet) error
	PutShareToken(ctx context.Context, t ShareToken) error

	// GetShared returns the token and its full question set, answer keys
	// included. Callers serving the set to takers strip the keys.
	GetShared(ctx context.Context, shareID string) (ShareToken, QuestionSet, error)

	PutSubmission(ctx context.Context, s Submission) error
	GetSubmission(ctx context.Context, shareID, submissionID string) (Submission, error)

	// ListPercentages returns the percentages of all submissions for a
	// share token, excluding the given submission ID when non-empty.
	ListPercentages(ctx context.Context, shareID, excludeSubmissionID string) ([]float64, error)
}
