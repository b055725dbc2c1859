package auth

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrUsernameAlreadyExists = response.NewFieldError(http.StatusConflict, "username", "username already exists")
	ErrEmailAlreadyExists    = response.NewFieldError(http.StatusConflict, "email", "email already exists")
	ErrUserAlreadyExists     = response.NewError(http.StatusConflict, "user already exists")
	ErrInvalidPhoneNumber    = response.NewFieldError(http.StatusBadRequest, "phone", "invalid phone number")
	ErrInvalidCredentials    = response.NewError(http.StatusUnauthorized, "invalid username or password")
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "user not found")
	ErrRegister              = response.NewError(http.StatusInternalServerError, "failed to register user")
	ErrLogin                 = response.NewError(http.StatusInternalServerError, "failed to login")
	ErrLogout                = response.NewError(http.StatusInternalServerError, "failed to logout")
	ErrGetUser               = response.NewError(http.StatusInternalServerError, "failed to get user")
)
