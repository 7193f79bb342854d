package models

// Submission данные контактной формы; нигде не сохраняются
type Submission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}
