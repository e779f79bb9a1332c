package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/backend-go/internal/config"
	"github.com/mindwell/backend-go/internal/database/models"
	"github.com/mindwell/backend-go/internal/database/repository"
	"github.com/mindwell/backend-go/internal/database/service"
)

// Password hash for "password" (bcrypt)
const validPasswordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test_secret",
		TokenExpiration: 30 * 24 * 60 * 60,
	}
}

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindStudents() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		role       string
		setupMocks func(*MockUserRepository)
		wantErr    error
	}{
		{
			name:  "success",
			email: "test@example.com",
			role:  models.RoleStudent,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(nil, repository.ErrUserNotFound)
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
		},
		{
			name:  "role defaults to student",
			email: "blank@example.com",
			role:  "",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "blank@example.com").Return(nil, repository.ErrUserNotFound)
				userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
		},
		{
			name:  "email already exists",
			email: "existing@example.com",
			role:  models.RoleStudent,
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "existing@example.com").Return(&models.User{ID: 1, Email: "existing@example.com"}, nil)
			},
			wantErr: service.ErrEmailAlreadyExists,
		},
		{
			name:  "unknown role",
			email: "role@example.com",
			role:  "superuser",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "role@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: service.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMocks(userRepo)

			authService := service.NewAuthService(userRepo, testConfig(), testLogger())
			user, token, err := authService.Register("Test User", tt.email, "password123", tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), user.ID)
				assert.Equal(t, models.RoleStudent, user.Role)
				assert.NotEmpty(t, token)

				// Stored password must be a one-way hash, never the input
				assert.NotEqual(t, "password123", user.Password)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(*MockUserRepository)
		wantErr    error
	}{
		{
			name:     "success",
			email:    "test@example.com",
			password: "password",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
					ID:       1,
					Email:    "test@example.com",
					Password: validPasswordHash,
				}, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "nobody@example.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "not-the-password",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
					ID:       1,
					Email:    "test@example.com",
					Password: validPasswordHash,
				}, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "suspended account",
			email:    "suspended@example.com",
			password: "password",
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", "suspended@example.com").Return(&models.User{
					ID:          2,
					Email:       "suspended@example.com",
					Password:    validPasswordHash,
					IsSuspended: true,
				}, nil)
			},
			wantErr: service.ErrAccountSuspended,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMocks(userRepo)

			authService := service.NewAuthService(userRepo, testConfig(), testLogger())
			user, token, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller
func TestAuthService_Login_NoAccountEnumeration(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	userRepo.On("FindByEmail", "someone@example.com").Return(&models.User{
		ID: 1, Email: "someone@example.com", Password: validPasswordHash,
	}, nil)

	authService := service.NewAuthService(userRepo, testConfig(), testLogger())

	_, _, errUnknown := authService.Login("nobody@example.com", "whatever")
	_, _, errWrongPw := authService.Login("someone@example.com", "whatever")

	assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, service.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_ValidateToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
		ID: 7, Email: "test@example.com", Password: validPasswordHash,
	}, nil)

	authService := service.NewAuthService(userRepo, testConfig(), testLogger())
	_, token, err := authService.Login("test@example.com", "password")
	require.NoError(t, err)

	userID, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	_, err = authService.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
		ID: 7, Email: "test@example.com", Password: validPasswordHash,
	}, nil)

	// Negative expiration issues a token that is already past its exp claim
	cfg := testConfig()
	cfg.TokenExpiration = -60

	authService := service.NewAuthService(userRepo, cfg, testLogger())
	_, token, err := authService.Login("test@example.com", "password")
	require.NoError(t, err)

	_, err = authService.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", "test@example.com").Return(&models.User{
		ID: 7, Email: "test@example.com", Password: validPasswordHash,
	}, nil)

	issuer := service.NewAuthService(userRepo, testConfig(), testLogger())
	_, token, err := issuer.Login("test@example.com", "password")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWTSecret = "a_different_secret"
	verifier := service.NewAuthService(new(MockUserRepository), otherCfg, testLogger())

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
