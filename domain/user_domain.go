package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessUpdateUser  = "user updated successfully"
	MessageSuccessDeleteUser  = "user deleted successfully"
	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "invalid credentials"
	MessageFailedGetUsers     = "failed to get users"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedDeleteUser   = "failed to delete user"
	MessageUserNotFound       = "user not found"
	MessageRestaurantNotFound = "restaurant not found"
	MessageEmailTaken         = "email already registered"

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

type (
	RegisterAdminRequest struct {
		Email          string `json:"email" validate:"required,email"`
		Password       string `json:"password" validate:"required,min=8"`
		FirstName      string `json:"firstName" validate:"required"`
		LastName       string `json:"lastName" validate:"required"`
		RestaurantName string `json:"restaurantName" validate:"required"`
	}

	RegisterUserRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Role      string `json:"role" validate:"required,oneof=manager chef line_cook"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UpdateUserRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"omitempty,min=8"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Role      string `json:"role" validate:"required,oneof=admin manager chef line_cook"`
	}

	UserResponse struct {
		ID           string    `json:"id"`
		Email        string    `json:"email"`
		FirstName    string    `json:"firstName"`
		LastName     string    `json:"lastName"`
		Role         string    `json:"role"`
		RestaurantID string    `json:"restaurantId"`
		CreatedAt    time.Time `json:"created_at"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UserListResponse struct {
		Users      []UserResponse `json:"users"`
		Pagination Pagination     `json:"pagination"`
	}

	Pagination struct {
		CurrentPage int   `json:"current_page"`
		TotalPages  int64 `json:"total_pages"`
		TotalUsers  int64 `json:"total_users"`
	}
)
