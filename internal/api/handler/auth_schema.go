package handler

import "github.com/fixpoint/repairdesk/internal/core/domain"

// --- Request / Response types ---

type registerRequest struct {
	Name                 string `json:"name"                  validate:"required,min=2,max=120"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
	Phone                string `json:"phone"                 validate:"omitempty,max=32"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
}

type resetRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetConsumeRequest struct {
	Email                string `json:"email"                 validate:"required,email"`
	Token                string `json:"token"                 validate:"required"`
	Password             string `json:"password"              validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// updateProfileRequest deliberately has no email or password fields: those
// keys in the payload are dropped at bind time and can never reach the store.
type updateProfileRequest struct {
	Name  string `json:"name"  validate:"omitempty,min=2,max=120"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

type changePasswordRequest struct {
	OldPassword          string `json:"old_password"          validate:"required"`
	Password             string `json:"password"              validate:"required,min=8,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}
