package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ninzizah/mount-kigali-grading-system/internal/api/metrics"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

const generateQuestionsPrompt = `You are an AI assistant for educators. Your task is to generate a set of multiple-choice questions based on a given topic.

Topic: %s
Number of Questions: %d

Please generate %d multiple-choice questions about "%s".
For each question, provide four options (A, B, C, D) and indicate the correct answer. The output should be a single string, with each question clearly numbered and formatted with newlines.

Example format:
1. What is the capital of France?
A) Berlin
B) Madrid
C) Paris
D) Rome
Correct Answer: C
`

const gradePaperPrompt = `You are an AI assistant that automatically grades student papers based on the provided text file.

The text file contains the questions, the correct answers, and the student's answers for each question. For every question there is a line specifying the correct answer, like "Correct Answer: B", and a line specifying the answer the student chose, like "Student: C".
Your task is to parse the file, compare the student's answers to the correct answers, and generate a grading report with the overall score as a percentage, the final letter grade (A, B, C, D, or F), the number of questions passed, and a question-by-question breakdown.

Here is the content of the student paper:
%s`

const highlightAnswersPrompt = `You are an AI expert at identifying the correct answer in multiple-choice questions.
Given the following multiple-choice questions, identify the correct answer for each question and reformat the output to highlight the correct answers by wrapping them in ** markers.
The input is raw text so you will need to extract the questions and possible answers from it.
Do not include any additional explanations or information.

Multiple-choice Questions:
%s

For each question, make sure to highlight the single correct answer from the possible choices. Each question-answer pair should be on a new line.`

// AssessmentService runs the three study-guide flows against an injected
// model. Each call is a single request/response; failures bubble to the
// caller without retries.
type AssessmentService struct {
	model  ports.AssessmentModel
	logger zerolog.Logger
}

func NewAssessmentService(model ports.AssessmentModel, logger zerolog.Logger) *AssessmentService {
	return &AssessmentService{model: model, logger: logger}
}

func (s *AssessmentService) GenerateQuestions(ctx context.Context, topic string, count int) (string, error) {
	if topic == "" {
		return "", domain.ErrEmptyTopic
	}
	if count < 1 || count > domain.MaxQuestionCount {
		return "", domain.ErrInvalidCount
	}

	prompt := fmt.Sprintf(generateQuestionsPrompt, topic, count, count, topic)
	out, err := s.observe(ctx, "generate_questions", prompt)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("topic", topic).Int("count", count).Msg("questions generated")
	return out, nil
}

func (s *AssessmentService) GradePaper(ctx context.Context, paperText string) (*domain.GradingReport, error) {
	if paperText == "" {
		return nil, domain.ErrEmptyPaper
	}
	if len(paperText) > domain.MaxPaperBytes {
		return nil, domain.ErrPaperTooLarge
	}

	start := time.Now()
	report, err := s.model.GradePaper(ctx, fmt.Sprintf(gradePaperPrompt, paperText))
	metrics.FlowDuration.WithLabelValues("grade_paper").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FlowRequestsTotal.WithLabelValues("grade_paper", "failure").Inc()
		return nil, fmt.Errorf("grade paper: %w", err)
	}
	metrics.FlowRequestsTotal.WithLabelValues("grade_paper", "success").Inc()

	// The model's arithmetic is not trusted; the breakdown is.
	report.Normalize()

	s.logger.Info().
		Int("total_questions", report.TotalQuestions).
		Int("passed_questions", report.PassedQuestions).
		Str("letter_grade", report.LetterGrade).
		Msg("paper graded")
	return report, nil
}

func (s *AssessmentService) HighlightAnswers(ctx context.Context, content string) (string, error) {
	if content == "" {
		return "", domain.ErrEmptyPaper
	}
	if len(content) > domain.MaxPaperBytes {
		return "", domain.ErrPaperTooLarge
	}

	out, err := s.observe(ctx, "highlight_answers", fmt.Sprintf(highlightAnswersPrompt, content))
	if err != nil {
		return "", err
	}

	s.logger.Info().Int("input_bytes", len(content)).Msg("answers highlighted")
	return out, nil
}

// observe runs a plain-text generation and records flow metrics.
func (s *AssessmentService) observe(ctx context.Context, flow, prompt string) (string, error) {
	start := time.Now()
	out, err := s.model.GenerateText(ctx, prompt)
	metrics.FlowDuration.WithLabelValues(flow).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FlowRequestsTotal.WithLabelValues(flow, "failure").Inc()
		return "", fmt.Errorf("%s: %w", flow, err)
	}
	metrics.FlowRequestsTotal.WithLabelValues(flow, "success").Inc()
	return out, nil
}
