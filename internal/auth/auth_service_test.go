package auth_test

import (
	"context"
	"testing"
	"time"

	"speed-hrm/internal/auth"
	autherrors "speed-hrm/internal/auth/errors"
	authMock "speed-hrm/internal/auth/mock"
	"speed-hrm/internal/shared/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo, testSecret, time.Hour, nil)
	ctx := context.Background()

	user := &auth.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Name:     "Admin",
		Password: hashed(t, "password123"),
		Role:     "admin",
		IsActive: true,
	}

	t.Run("issues token with user and role claims", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		resp, err := svc.Login(ctx, auth.LoginRequest{Email: user.Email, Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, user.ID.String(), resp.User.ID)

		token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID.String(), claims["user_id"])
		assert.Equal(t, "admin", claims["role"])
		assert.NotNil(t, claims["exp"])
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: user.Email, Password: "nope"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: "ghost@example.com", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := *user
		inactive.IsActive = false
		repo.EXPECT().GetByEmail(ctx, user.Email).Return(&inactive, nil)

		_, err := svc.Login(ctx, auth.LoginRequest{Email: user.Email, Password: "password123"})

		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo, testSecret, 0, nil)
	id := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), id.String()).Return(&auth.User{ID: id, Email: "hr@example.com", Role: "hr"}, nil)
	resp, err := svc.GetMe(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, "hr", resp.Role)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.GetMe(context.Background(), "missing")
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}
	svc := auth.NewService(repo, testSecret, 0, recorder)
	id := uuid.New()
	user := &auth.User{ID: id, Password: hashed(t, "old-password")}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id.String()).Return(user, nil)
		repo.EXPECT().
			UpdatePassword(gomock.Any(), id.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")))
				return nil
			})

		err := svc.ChangePassword(context.Background(), id.String(), auth.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})

		assert.NoError(t, err)
		assert.Equal(t, id.String(), recorder.Last().EntityID)
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), id.String()).Return(user, nil)

		err := svc.ChangePassword(context.Background(), id.String(), auth.ChangePasswordRequest{
			CurrentPassword: "guess",
			NewPassword:     "new-password",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
