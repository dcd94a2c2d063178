package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"
	"github.com/ninzizah/mount-kigali-grading-system/internal/core/ports"
)

// AssessmentHandler exposes the three AI study-guide flows.
type AssessmentHandler struct {
	assessments ports.AssessmentService
}

func NewAssessmentHandler(assessments ports.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// GenerateQuestions handles POST /v1/assessments/questions.
//
// @Summary      Generate multiple-choice questions for a topic
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateQuestionsRequest  true  "Topic and question count"
// @Success      200   {object}  generateQuestionsResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/assessments/questions [post]
func (h *AssessmentHandler) GenerateQuestions(c echo.Context) error {
	var req generateQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	questions, err := h.assessments.GenerateQuestions(c.Request().Context(), req.Topic, req.Count)
	if err != nil {
		return flowError(c, err)
	}

	return c.JSON(http.StatusOK, generateQuestionsResponse{Questions: questions})
}

// GradePaper handles POST /v1/assessments/grade.
//
// @Summary      Grade a submitted paper
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gradePaperRequest  true  "Paper text with embedded correct and student answers"
// @Success      200   {object}  domain.GradingReport
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/assessments/grade [post]
func (h *AssessmentHandler) GradePaper(c echo.Context) error {
	var req gradePaperRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	report, err := h.assessments.GradePaper(c.Request().Context(), req.PaperText)
	if err != nil {
		return flowError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// HighlightAnswers handles POST /v1/assessments/highlight.
//
// @Summary      Highlight the correct answers in a question file
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      highlightAnswersRequest  true  "Raw question file content"
// @Success      200   {object}  highlightAnswersResponse
// @Failure      400   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/assessments/highlight [post]
func (h *AssessmentHandler) HighlightAnswers(c echo.Context) error {
	var req highlightAnswersRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	highlighted, err := h.assessments.HighlightAnswers(c.Request().Context(), req.Content)
	if err != nil {
		return flowError(c, err)
	}

	return c.JSON(http.StatusOK, highlightAnswersResponse{HighlightedQuestions: highlighted})
}

// flowError maps flow failures: input problems are the caller's fault, model
// failures surface as a bad gateway.
func flowError(c echo.Context, err error) error {
	switch err {
	case domain.ErrEmptyTopic, domain.ErrInvalidCount, domain.ErrEmptyPaper, domain.ErrPaperTooLarge:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return echo.NewHTTPError(http.StatusBadGateway, "assessment model unavailable").SetInternal(err)
}
