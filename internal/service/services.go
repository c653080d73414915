package service

import (
	"github.com/candorpath/assess360/internal/config"
	"github.com/candorpath/assess360/internal/crypto"
	"github.com/candorpath/assess360/internal/logger"
	"github.com/candorpath/assess360/internal/store"
)

// Services aggregates every service exposed to the transport layer.
type Services struct {
	Assessments AssessmentService
	Admin       AdminService
}

// NewServices wires all services to the repositories, the cipher codec, and
// the question classification config.
func NewServices(repositories *store.Repositories, codec crypto.Codec, cfg config.Questions, logger *logger.Logger) *Services {
	classifier := NewQuestionClassifier(cfg)

	return &Services{
		Assessments: NewAssessmentService(repositories.Assessments, codec, classifier, logger),
		Admin:       NewAdminService(repositories.Assessments, codec, classifier, logger),
	}
}
