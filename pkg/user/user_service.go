package user

import (
	"context"
	"errors"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/entities"
	"github.com/bradymcatee/recipeBox/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		RegisterAdmin(ctx context.Context, req domain.RegisterAdminRequest) (*domain.AuthResponse, error)
		RegisterUser(ctx context.Context, req domain.RegisterUserRequest, restaurantID string) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		GetUsers(ctx context.Context, restaurantID string, page, limit int) (*domain.UserListResponse, error)
		GetUser(ctx context.Context, id, restaurantID string) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, id, restaurantID string) (*domain.UserResponse, error)
		DeleteUser(ctx context.Context, id, restaurantID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) RegisterAdmin(ctx context.Context, req domain.RegisterAdminRequest) (*domain.AuthResponse, error) {
	taken, err := s.userRepository.EmailTaken(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	restaurant := &entities.Restaurant{Name: req.RestaurantName}
	admin := &entities.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         domain.RoleAdmin,
	}

	if err := s.userRepository.CreateRestaurantWithAdmin(ctx, restaurant, admin); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(admin.ID.String())
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		Token: token,
		User:  toUserResponse(admin),
	}, nil
}

func (s *userService) RegisterUser(ctx context.Context, req domain.RegisterUserRequest, restaurantID string) (*domain.UserResponse, error) {
	taken, err := s.userRepository.EmailTaken(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	restaurantUUID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	user := &entities.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		RestaurantID: restaurantUUID,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// bcrypt's compare is constant time; unknown email and wrong password
	// surface the same error so existence is never leaked.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) GetUsers(ctx context.Context, restaurantID string, page, limit int) (*domain.UserListResponse, error) {
	users, count, err := s.userRepository.GetUsers(ctx, restaurantID, page, limit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, toUserResponse(u))
	}

	return &domain.UserListResponse{
		Users: result,
		Pagination: domain.Pagination{
			CurrentPage: page,
			TotalPages:  (count + int64(limit) - 1) / int64(limit),
			TotalUsers:  count,
		},
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id, restaurantID string) (*domain.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if user.RestaurantID.String() != restaurantID {
		return nil, domain.ErrUserNotFound
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, id, restaurantID string) (*domain.UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if user.RestaurantID.String() != restaurantID {
		return nil, domain.ErrUserNotFound
	}

	taken, err := s.userRepository.EmailTaken(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = req.Role

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) DeleteUser(ctx context.Context, id, restaurantID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.userRepository.DeleteUser(ctx, id, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		RestaurantID: u.RestaurantID.String(),
		CreatedAt:    u.CreatedAt,
	}
}
