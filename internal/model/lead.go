package model

// Execution is one row of the workflow engine's execution history: the
// execution entity joined to its payload blob. Timestamps are kept as the
// engine stored them (ISO-8601 text, so lexicographic order is time order).
type Execution struct {
	ID        string `json:"id"`
	StartedAt string `json:"startedAt"`
	StoppedAt string `json:"stoppedAt"`
	Status    string `json:"status"`
	Data      []byte `json:"-"`
}

// Lead is a raw lead record as found inside an execution payload. The
// engine's node outputs are schemaless, so a lead carries whatever fields
// its origin had, plus the foundAt/executionId provenance stamped by the
// locator.
type Lead map[string]any

// Str returns the named field as a string, or "" when absent or not a string.
func (l Lead) Str(key string) string {
	s, _ := l[key].(string)
	return s
}

// Num returns the named field as a float64, or 0 when absent or non-numeric.
func (l Lead) Num(key string) float64 {
	f, _ := l[key].(float64)
	return f
}

// NormalizedLead is the fixed output shape consumed by the frontend.
type NormalizedLead struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Subreddit string  `json:"subreddit"`
	Author    string  `json:"author"`
	Link      string  `json:"link"`
	Content   string  `json:"content"`
	Priority  string  `json:"priority"`
	Score     float64 `json:"score"`
	Keywords  string  `json:"keywords"`
	Location  string  `json:"location"`
	FoundAt   string  `json:"foundAt"`
	PubDate   string  `json:"pubDate"`
}

// Envelope is the paginated result returned for a lead query.
type Envelope struct {
	Leads  []NormalizedLead `json:"leads"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

// ErrorEnvelope is emitted instead of an Envelope when the store cannot be
// reached or queried. It still serializes as valid JSON on stdout.
type ErrorEnvelope struct {
	Error string           `json:"error"`
	Leads []NormalizedLead `json:"leads"`
	Total int              `json:"total"`
}

// NewErrorEnvelope builds the failure payload for err.
func NewErrorEnvelope(err error) ErrorEnvelope {
	return ErrorEnvelope{
		Error: err.Error(),
		Leads: []NormalizedLead{},
	}
}
