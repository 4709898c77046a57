// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_goal_keep/internal/config"
	"go_5_goal_keep/internal/model"
	"go_5_goal_keep/internal/repository/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key"
	cfg.JWT.ExpiryHours = 24
	return cfg
}

func Test_authService_Register(t *testing.T) {
	ctx := context.Background()

	req := &model.RegisterRequest{
		Name:     "テスト太郎",
		Email:    "taro@example.com",
		Password: "password123",
	}

	t.Run("正常系: 登録成功でトークンとユーザーが返る", func(t *testing.T) {
		db := setupTestDBGoal()
		mockUserRepo := new(mocks.UserRepository)
		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, testAuthConfig())

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Run(func(args mock.Arguments) {
				user := args.Get(2).(*model.User)
				assert.Equal(t, req.Name, user.Name)
				assert.Equal(t, req.Email, user.Email)
				// 平文パスワードは保存されない
				assert.NotEqual(t, req.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)))
			}).Return(nil).Once()

		resp, err := authService.Register(ctx, req)

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, req.Email, resp.User.Email)

		// 発行されたJWTのsubjectが本人のIDであること
		token, err := jwt.ParseWithClaims(resp.AccessToken, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret-key"), nil
		})
		require.NoError(t, err)
		sub, err := token.Claims.GetSubject()
		require.NoError(t, err)
		assert.Equal(t, resp.User.UserID.String(), sub)

		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: メールアドレス重複", func(t *testing.T) {
		db := setupTestDBGoal()
		mockUserRepo := new(mocks.UserRepository)
		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, testAuthConfig())

		existing := &model.User{Email: req.Email}
		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(existing, nil).Once()

		resp, err := authService.Register(ctx, req)

		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, resp)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: Create時のユニーク制約違反 (レースコンディション)", func(t *testing.T) {
		db := setupTestDBGoal()
		mockUserRepo := new(mocks.UserRepository)
		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, testAuthConfig())

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), req.Email).
			Return(nil, model.ErrNotFound).Once()
		mockUserRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.User")).
			Return(model.ErrConflict).Once()

		resp, err := authService.Register(ctx, req)

		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, resp)
		mockUserRepo.AssertExpectations(t)
	})
}

func Test_authService_Login(t *testing.T) {
	ctx := context.Background()

	password := "password123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := func() *model.User {
		return &model.User{
			Name:         "テスト太郎",
			Email:        "taro@example.com",
			PasswordHash: string(hashed),
		}
	}

	t.Run("正常系: ログイン成功", func(t *testing.T) {
		db := setupTestDBGoal()
		mockUserRepo := new(mocks.UserRepository)
		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, testAuthConfig())

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "taro@example.com").
			Return(storedUser(), nil).Once()

		resp, err := authService.Login(ctx, &model.LoginRequest{
			Email:    "taro@example.com",
			Password: password,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: パスワード不一致", func(t *testing.T) {
		db := setupTestDBGoal()
		mockUserRepo := new(mocks.UserRepository)
		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, testAuthConfig())

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "taro@example.com").
			Return(storedUser(), nil).Once()

		resp, err := authService.Login(ctx, &model.LoginRequest{
			Email:    "taro@example.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, resp)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("異常系: ユーザーが存在しない (パスワード不一致と同じエラーを返す)", func(t *testing.T) {
		db := setupTestDBGoal()
		mockUserRepo := new(mocks.UserRepository)
		authService := NewAuthService(db, mockUserRepo, &LogMailer{}, testAuthConfig())

		mockUserRepo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), "nobody@example.com").
			Return(nil, model.ErrNotFound).Once()

		resp, err := authService.Login(ctx, &model.LoginRequest{
			Email:    "nobody@example.com",
			Password: password,
		})

		assert.ErrorIs(t, err, model.ErrInvalidInput)
		assert.Nil(t, resp)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "AUTHENTICATION_FAILED", appErr.Detail.Code)
		mockUserRepo.AssertExpectations(t)
	})
}
