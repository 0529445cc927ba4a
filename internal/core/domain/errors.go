package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrOldPasswordMismatch = errors.New("old password does not match")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("access forbidden")

	ErrResetNotFound = errors.New("reset token not found")
	ErrResetMismatch = errors.New("reset token mismatch")

	ErrCategoryNotFound = errors.New("category not found")
	ErrArticleNotFound  = errors.New("article not found")
	ErrRepairNotFound   = errors.New("repair request not found")
	ErrSupportNotFound  = errors.New("support request not found")
)
