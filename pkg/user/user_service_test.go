package user

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type stubJWT struct{}

func (stubJWT) GenerateToken(userID string) (string, error) { return "token-" + userID, nil }
func (stubJWT) ValidateToken(token string) (*jwtlib.Token, error) {
	return nil, domain.ErrTokenInvalid
}
func (stubJWT) GetUserIDByToken(token string) (string, error) { return "", domain.ErrTokenInvalid }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entities.Restaurant{}, &entities.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestService(db *gorm.DB) UserService {
	return NewUserService(NewUserRepository(db), stubJWT{})
}

func adminRequest() domain.RegisterAdminRequest {
	return domain.RegisterAdminRequest{
		Email:          "owner@bistro.test",
		Password:       "supersecret",
		FirstName:      "Pat",
		LastName:       "Chef",
		RestaurantName: "Test Bistro",
	}
}

func TestRegisterAdminCreatesRestaurantAndUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	res, err := svc.RegisterAdmin(ctx, adminRequest())
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected a token")
	}
	if res.User.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", res.User.Role)
	}

	var restaurantCount, userCount int64
	if err := db.Model(&entities.Restaurant{}).Count(&restaurantCount).Error; err != nil {
		t.Fatalf("count restaurants: %v", err)
	}
	if err := db.Model(&entities.User{}).Count(&userCount).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if restaurantCount != 1 || userCount != 1 {
		t.Fatalf("expected 1 restaurant and 1 user, got %d and %d", restaurantCount, userCount)
	}

	var user entities.User
	if err := db.First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.PasswordHash == "supersecret" {
		t.Fatal("password stored in plain text")
	}
	if user.RestaurantID.String() != res.User.RestaurantID {
		t.Fatal("admin not attached to the created restaurant")
	}
}

func TestRegisterAdminDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	if _, err := svc.RegisterAdmin(ctx, adminRequest()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.RegisterAdmin(ctx, adminRequest())
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	// the second restaurant must not exist either
	var restaurantCount int64
	if err := db.Model(&entities.Restaurant{}).Count(&restaurantCount).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if restaurantCount != 1 {
		t.Fatalf("expected 1 restaurant, got %d", restaurantCount)
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	if _, err := svc.RegisterAdmin(ctx, adminRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "owner@bistro.test", Password: "supersecret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" || res.User.Email != "owner@bistro.test" {
		t.Fatalf("unexpected login response: %+v", res)
	}
}

func TestLoginWrongPasswordMatchesUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	if _, err := svc.RegisterAdmin(ctx, adminRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, domain.LoginRequest{Email: "owner@bistro.test", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, domain.LoginRequest{Email: "nobody@bistro.test", Password: "supersecret"})

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatal("error messages must not reveal whether the email exists")
	}
}

func TestRegisterUserInTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, adminRequest())
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}

	chef, err := svc.RegisterUser(ctx, domain.RegisterUserRequest{
		Email:     "chef@bistro.test",
		Password:  "alsosecret",
		FirstName: "Sam",
		LastName:  "Saucier",
		Role:      domain.RoleChef,
	}, admin.User.RestaurantID)
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	if chef.RestaurantID != admin.User.RestaurantID {
		t.Fatal("new user landed in the wrong restaurant")
	}
	if chef.Role != domain.RoleChef {
		t.Fatalf("expected chef role, got %q", chef.Role)
	}
}

func TestUpdateUserRoleAndEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, adminRequest())
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	chef, err := svc.RegisterUser(ctx, domain.RegisterUserRequest{
		Email: "chef@bistro.test", Password: "alsosecret",
		FirstName: "Sam", LastName: "Saucier", Role: domain.RoleChef,
	}, admin.User.RestaurantID)
	if err != nil {
		t.Fatalf("register user: %v", err)
	}

	promoted, err := svc.UpdateUser(ctx, domain.UpdateUserRequest{
		Email: "chef@bistro.test", FirstName: "Sam", LastName: "Saucier", Role: domain.RoleManager,
	}, chef.ID, admin.User.RestaurantID)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if promoted.Role != domain.RoleManager {
		t.Fatalf("expected manager, got %q", promoted.Role)
	}

	_, err = svc.UpdateUser(ctx, domain.UpdateUserRequest{
		Email: "owner@bistro.test", FirstName: "Sam", LastName: "Saucier", Role: domain.RoleManager,
	}, chef.ID, admin.User.RestaurantID)
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestDeleteUserScopedToTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	ctx := context.Background()

	admin, err := svc.RegisterAdmin(ctx, adminRequest())
	if err != nil {
		t.Fatalf("register admin: %v", err)
	}
	other, err := svc.RegisterAdmin(ctx, domain.RegisterAdminRequest{
		Email: "owner@rival.test", Password: "supersecret",
		FirstName: "Rae", LastName: "Rival", RestaurantName: "Rival Diner",
	})
	if err != nil {
		t.Fatalf("register rival: %v", err)
	}

	if err := svc.DeleteUser(ctx, admin.User.ID, other.User.RestaurantID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("cross-tenant delete: expected ErrUserNotFound, got %v", err)
	}
	if err := svc.DeleteUser(ctx, admin.User.ID, admin.User.RestaurantID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Me(ctx, admin.User.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
