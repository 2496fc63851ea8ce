package exam

// RawQuestion is one question record as decoded from a generator response.
// Field values are whatever the model produced; nothing is trusted until it
// passes ValidateBatch.
type RawQuestion struct {
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// Question is a validated, normalized question. Index is its position in
// the original generated batch; indices are never compacted when malformed
// siblings get dropped, so submissions keyed by index stay stable.
type Question struct {
	Index       int      `json:"index"`
	Text        string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"` // canonical label: "A".."D" or "True"/"False"
	Explanation string   `json:"explanation"`

	// LowConfidence marks questions whose answer label fell back to the
	// default because no option matched the raw answer.
	LowConfidence bool `json:"low_confidence,omitempty"`
}

// QuestionSet is an immutable, ordered sequence of validated questions.
type QuestionSet struct {
	ID        string     `json:"id"`
	Course    string     `json:"course"`
	Topic     string     `json:"topic,omitempty"`
	CreatorID string     `json:"creator_id"`
	Shareable bool       `json:"shareable"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at"`
}

// ShareToken grants anonymous access to a persisted QuestionSet for taking
// and submitting. Issued only for non-guest creators.
type ShareToken struct {
	ID            string `json:"id"`
	QuestionSetID string `json:"question_set_id"`
	CreatorID     string `json:"creator_id"`
	Title         string `json:"title"`
	CreatedAt     int64  `json:"created_at"`
}

// Submission is one graded attempt at a shared exam. Records are immutable;
// resubmitting creates a new row rather than updating an old one.
type Submission struct {
	ID             string         `json:"id"`
	ShareTokenID   string         `json:"share_token_id"`
	SubmitterID    string         `json:"submitter_id,omitempty"`    // empty for anonymous
	SubmitterLabel string         `json:"submitter_label,omitempty"` // free-text name for anonymous takers
	Answers        map[int]string `json:"answers"`
	Score          int            `json:"score"`
	Total          int            `json:"total_questions"`
	Percentage     float64        `json:"percentage"`
	Grade          string         `json:"grade"`
	SubmittedAt    int64          `json:"submitted_at"`
}

// Identity describes the requester as resolved by the auth layer.
type Identity struct {
	ID    string
	Name  string
	Guest bool
}
