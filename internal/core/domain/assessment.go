package domain

import "fmt"

const (
	// MaxQuestionCount bounds a single question-generation request.
	MaxQuestionCount = 50
	// MaxPaperBytes bounds submitted paper and question-file payloads.
	MaxPaperBytes = 64 * 1024
)

var ErrEmptyTopic = fmt.Errorf("topic is required")
var ErrInvalidCount = fmt.Errorf("count must be between 1 and %d", MaxQuestionCount)
var ErrEmptyPaper = fmt.Errorf("paper text is required")
var ErrPaperTooLarge = fmt.Errorf("paper text exceeds %d bytes", MaxPaperBytes)

// QuestionResult is one row of a grading report: a single parsed question
// with the expected and submitted answers.
type QuestionResult struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

// GradingReport is the result of grading one submitted paper.
type GradingReport struct {
	OverallScore      float64          `json:"overall_score"`
	LetterGrade       string           `json:"letter_grade"`
	PassedQuestions   int              `json:"passed_questions"`
	TotalQuestions    int              `json:"total_questions"`
	QuestionBreakdown []QuestionResult `json:"question_breakdown"`
}

// LetterGrade maps a percentage score to the A–F scale used on reports.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Normalize recomputes the aggregate fields from the question breakdown so
// the report is internally consistent regardless of what the model returned.
// A report without a breakdown is left untouched.
func (r *GradingReport) Normalize() {
	if len(r.QuestionBreakdown) == 0 {
		return
	}
	passed := 0
	for _, q := range r.QuestionBreakdown {
		if q.IsCorrect {
			passed++
		}
	}
	r.PassedQuestions = passed
	r.TotalQuestions = len(r.QuestionBreakdown)
	r.OverallScore = float64(passed) / float64(r.TotalQuestions) * 100
	r.LetterGrade = LetterGrade(r.OverallScore)
}
