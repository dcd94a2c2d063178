package handler

import "github.com/ninzizah/mount-kigali-grading-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=student lecturer"`
	Password string `json:"password" validate:"required,min=6"`
}

// loginRequest carries the login key. No email-format check: the admin login
// key is not an email address.
type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=student lecturer admin"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// --- User management ---

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"required,oneof=student lecturer"`
	Password string `json:"password" validate:"required,min=6"`
}

// updateUserRequest is a partial update; absent fields are left unchanged.
type updateUserRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,oneof=student lecturer"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type listUsersResponse struct {
	Users []domain.User `json:"users"`
}

// --- Assessment flows ---

type generateQuestionsRequest struct {
	Topic string `json:"topic" validate:"required"`
	Count int    `json:"count" validate:"required,min=1,max=50"`
}

type generateQuestionsResponse struct {
	Questions string `json:"questions"`
}

type gradePaperRequest struct {
	PaperText string `json:"paper_text" validate:"required"`
}

type highlightAnswersRequest struct {
	Content string `json:"content" validate:"required"`
}

type highlightAnswersResponse struct {
	HighlightedQuestions string `json:"highlighted_questions"`
}
