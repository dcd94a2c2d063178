package ports

import (
	"context"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
)

// AssessmentModel is the boundary to the LLM. Prompts go in, either free
// text or a schema-constrained grading report comes back.
type AssessmentModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GradePaper(ctx context.Context, prompt string) (*domain.GradingReport, error)
}

// AssessmentService exposes the three study-guide flows.
type AssessmentService interface {
	GenerateQuestions(ctx context.Context, topic string, count int) (string, error)
	GradePaper(ctx context.Context, paperText string) (*domain.GradingReport, error)
	HighlightAnswers(ctx context.Context, content string) (string, error)
}
