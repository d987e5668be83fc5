package domain

import (
	"errors"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleChef     = "chef"
	RoleLineCook = "line_cook"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "authentication required"
	MessageUserNotAllowed       = "not authorized"
	MessageInternalError        = "internal server error"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
)
