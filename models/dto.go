package models

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=50"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateQuestionRequest struct {
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required"`
}

type UpdateQuestionRequest struct {
	Subject string `json:"subject" binding:"required,min=1,max=200"`
	Content string `json:"content" binding:"required"`
}

type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

type QuestionListParams struct {
	Page    int    `form:"page,default=0"`
	Keyword string `form:"kw"`
}
