package service

import (
	"strings"

	"github.com/candorpath/assess360/internal/config"
)

// QuestionKind classifies a survey question by its identifier.
type QuestionKind int

const (
	// KindRating marks a numeric-rating question whose answer is stored in
	// the clear.
	KindRating QuestionKind = iota

	// KindOpenEnded marks a free-text question whose answer is encrypted at
	// rest.
	KindOpenEnded
)

// QuestionClassifier is the external classification contract distinguishing
// rating from open-ended questions. The prefix list comes from configuration
// rather than being hard-coded, so the naming convention is an explicit,
// adjustable contract.
type QuestionClassifier struct {
	openPrefixes []string
}

// NewQuestionClassifier builds a classifier from configuration. The config
// layer guarantees at least one prefix (default "open_").
func NewQuestionClassifier(cfg config.Questions) *QuestionClassifier {
	return &QuestionClassifier{openPrefixes: cfg.OpenEndedPrefixes}
}

// Classify returns the kind of the question identified by questionID.
func (c *QuestionClassifier) Classify(questionID string) QuestionKind {
	for _, prefix := range c.openPrefixes {
		if strings.HasPrefix(questionID, prefix) {
			return KindOpenEnded
		}
	}
	return KindRating
}
