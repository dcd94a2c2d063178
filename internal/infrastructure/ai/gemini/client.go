// Package gemini adapts the Google Gemini API to the assessment model port.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Client implements ports.AssessmentModel against the Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

var _ ports.AssessmentModel = (*Client)(nil)

// NewClient creates a Gemini client. With an empty apiKey the SDK falls back
// to application default credentials.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	var cfg *genai.ClientConfig
	if apiKey != "" {
		cfg = &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: client, model: model}, nil
}

// GenerateText runs a plain text generation.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	return resp.Text(), nil
}

// GradePaper runs a generation constrained to the grading report schema and
// decodes the JSON response.
func (c *Client) GradePaper(ctx context.Context, prompt string) (*domain.GradingReport, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   gradingReportSchema,
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}

	var report gradingReportPayload
	if err := json.Unmarshal([]byte(resp.Text()), &report); err != nil {
		return nil, fmt.Errorf("decode grading report: %w", err)
	}
	return report.toDomain(), nil
}

// gradingReportPayload mirrors the response schema; field names follow the
// schema rather than the domain JSON tags.
type gradingReportPayload struct {
	OverallScore      float64 `json:"overallScore"`
	LetterGrade       string  `json:"letterGrade"`
	PassedQuestions   int     `json:"passedQuestions"`
	TotalQuestions    int     `json:"totalQuestions"`
	QuestionBreakdown []struct {
		Question      string `json:"question"`
		CorrectAnswer string `json:"correctAnswer"`
		StudentAnswer string `json:"studentAnswer"`
		IsCorrect     bool   `json:"isCorrect"`
	} `json:"questionBreakdown"`
}

func (p *gradingReportPayload) toDomain() *domain.GradingReport {
	report := &domain.GradingReport{
		OverallScore:    p.OverallScore,
		LetterGrade:     p.LetterGrade,
		PassedQuestions: p.PassedQuestions,
		TotalQuestions:  p.TotalQuestions,
	}
	for _, q := range p.QuestionBreakdown {
		report.QuestionBreakdown = append(report.QuestionBreakdown, domain.QuestionResult{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			StudentAnswer: q.StudentAnswer,
			IsCorrect:     q.IsCorrect,
		})
	}
	return report
}

var gradingReportSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallScore": {
			Type:        genai.TypeNumber,
			Description: "The overall score for the paper as a percentage.",
		},
		"letterGrade": {
			Type:        genai.TypeString,
			Description: "The final letter grade (A, B, C, D, or F).",
		},
		"passedQuestions": {
			Type:        genai.TypeInteger,
			Description: "The total number of questions passed.",
		},
		"totalQuestions": {
			Type:        genai.TypeInteger,
			Description: "The total number of questions in the paper.",
		},
		"questionBreakdown": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"question":      {Type: genai.TypeString, Description: "The question text."},
					"correctAnswer": {Type: genai.TypeString, Description: "The correct answer to the question."},
					"studentAnswer": {Type: genai.TypeString, Description: "The student's answer to the question."},
					"isCorrect":     {Type: genai.TypeBoolean, Description: "Whether the student answered correctly."},
				},
				Required: []string{"question", "correctAnswer", "studentAnswer", "isCorrect"},
			},
		},
	},
	Required: []string{"overallScore", "letterGrade", "passedQuestions", "totalQuestions", "questionBreakdown"},
}
