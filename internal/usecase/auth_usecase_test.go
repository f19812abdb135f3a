package usecase_test

import (
	"context"
	"testing"
	"time"

	"shopfast/internal/config"
	"shopfast/internal/domain/model"
	"shopfast/internal/repository"
	"shopfast/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *AuthUserRepoMock) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *AuthUserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type AuthRTRepoMock struct{ mock.Mock }

func (m *AuthRTRepoMock) Create(ctx context.Context, token *model.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthRTRepoMock) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	rt, _ := args.Get(0).(*model.RefreshToken)
	return rt, args.Error(1)
}

func (m *AuthRTRepoMock) MarkUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	args := m.Called(ctx, tokenID, usedAt)
	return args.Error(0)
}

func (m *AuthRTRepoMock) Revoke(ctx context.Context, tokenID string, revokedAt time.Time) error {
	args := m.Called(ctx, tokenID, revokedAt)
	return args.Error(0)
}

func (m *AuthRTRepoMock) DeleteAllByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *AuthRTRepoMock) DeleteByID(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func testAuthConfig() config.Config {
	return config.Config{
		Port:        "8080",
		JWTSecret:   "test-secret",
		GoEnv:       "test",
		FrontendURL: "http://localhost:5173",
	}
}

// Test: 登録時はパスワードをbcryptでハッシュ化して保存する
func TestRegisterHashesPassword(t *testing.T) {
	ctx := context.Background()

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	users.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)

	var saved *model.User
	users.On("Create", ctx, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.User)
			saved.ID = "user-1"
		}).Return(nil)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	out, err := uc.Register(ctx, " new@example.com ", "password123")

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", out.Email)
	assert.NotNil(t, saved)
	assert.NotEqual(t, "password123", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("password123")))
}

// Test: 入力不足はErrValidation
func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)
	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Register(ctx, "not-an-email", "password123")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = uc.Register(ctx, "a@example.com", "short")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 重複チェックのDBエラーはErrInternal（not-foundだけが続行できる）
func TestRegisterLookupErrorIsInternal(t *testing.T) {
	ctx := context.Background()

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	users.On("FindByEmail", ctx, "a@example.com").Return(nil, assert.AnError)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Register(ctx, "a@example.com", "password123")

	assert.ErrorIs(t, err, usecase.ErrInternal)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 未登録emailのログインはErrUnauthorized
func TestLoginUnknownUser(t *testing.T) {
	ctx := context.Background()

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Login(ctx, "nobody@example.com", "password123", "ua-1")

	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	rtRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: email重複はErrConflict
func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	users.On("FindByEmail", ctx, "dup@example.com").
		Return(&model.User{ID: "user-1", Email: "dup@example.com"}, nil)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Register(ctx, "dup@example.com", "password123")

	assert.ErrorIs(t, err, usecase.ErrConflict)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: ログイン成功でsub=ユーザーIDのHS256トークンとrefresh tokenが出る
func TestLoginIssuesTokens(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)

	user := &model.User{ID: "user-1", Email: "a@example.com", PasswordHash: string(hash)}

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	users.On("FindByEmail", ctx, "a@example.com").Return(user, nil)
	users.On("Update", ctx, mock.Anything).Return(nil)

	var savedRT *model.RefreshToken
	rtRepo.On("Create", ctx, mock.AnythingOfType("*model.RefreshToken")).
		Run(func(args mock.Arguments) { savedRT = args.Get(1).(*model.RefreshToken) }).
		Return(nil)

	cfg := testAuthConfig()
	uc := usecase.NewAuthUsecase(cfg, users, rtRepo)

	out, err := uc.Login(ctx, "a@example.com", "password123", "ua-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", out.Body.User.ID)
	assert.NotEmpty(t, out.RefreshTokenPlain)

	//DBに平文は置かない
	assert.NotNil(t, savedRT)
	assert.NotEqual(t, out.RefreshTokenPlain, savedRT.TokenHash)

	parsed, err := jwt.Parse(out.Body.Token.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
}

// Test: パスワード不一致はErrUnauthorized
func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &model.User{ID: "user-1", Email: "a@example.com", PasswordHash: string(hash)}

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	users.On("FindByEmail", ctx, "a@example.com").Return(user, nil)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Login(ctx, "a@example.com", "wrong-password", "ua-1")

	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	rtRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 使用済みrefresh tokenの再利用はreplay扱いで全セッション削除
func TestRefreshReplayDeletesAllSessions(t *testing.T) {
	ctx := context.Background()

	used := time.Now().Add(-time.Minute)
	rt := &model.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		UserAgent: "ua-1",
		ExpiresAt: time.Now().Add(time.Hour),
		UsedAt:    &used,
	}

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	rtRepo.On("FindByTokenHash", ctx, mock.Anything).Return(rt, nil)
	rtRepo.On("DeleteAllByUserID", ctx, "user-1").Return(nil)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Refresh(ctx, "some-plain-token", "ua-1")

	assert.ErrorIs(t, err, usecase.ErrSecurityIncident)
	rtRepo.AssertCalled(t, "DeleteAllByUserID", ctx, "user-1")
}

// Test: 正常なrefreshは旧tokenをusedにして新tokenを発行する（ローテーション）
func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()

	rt := &model.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		UserAgent: "ua-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := &model.User{ID: "user-1", Email: "a@example.com"}

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	rtRepo.On("FindByTokenHash", ctx, mock.Anything).Return(rt, nil)
	rtRepo.On("MarkUsed", ctx, "rt-1", mock.Anything).Return(nil)
	rtRepo.On("Create", ctx, mock.AnythingOfType("*model.RefreshToken")).Return(nil)
	users.On("FindByID", ctx, "user-1").Return(user, nil)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	out, err := uc.Refresh(ctx, "old-plain-token", "ua-1")

	assert.NoError(t, err)
	assert.NotEmpty(t, out.Body.AccessToken)
	assert.NotEmpty(t, out.RefreshTokenPlain)
	assert.NotEqual(t, "old-plain-token", out.RefreshTokenPlain)
	rtRepo.AssertCalled(t, "MarkUsed", ctx, "rt-1", mock.Anything)
}

// Test: 期限切れrefresh tokenはErrUnauthorizedで削除される
func TestRefreshExpiredToken(t *testing.T) {
	ctx := context.Background()

	rt := &model.RefreshToken{
		ID:        "rt-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	rtRepo.On("FindByTokenHash", ctx, mock.Anything).Return(rt, nil)
	rtRepo.On("DeleteByID", ctx, "rt-1").Return(nil)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	_, err := uc.Refresh(ctx, "expired-plain-token", "ua-1")

	assert.ErrorIs(t, err, usecase.ErrUnauthorized)
	rtRepo.AssertCalled(t, "DeleteByID", ctx, "rt-1")
}

// Test: 知らないtokenのlogoutも成功扱い
func TestLogoutUnknownTokenIsTolerant(t *testing.T) {
	ctx := context.Background()

	users := new(AuthUserRepoMock)
	rtRepo := new(AuthRTRepoMock)

	rtRepo.On("FindByTokenHash", ctx, mock.Anything).Return(nil, repository.ErrRefreshTokenNotFound)

	uc := usecase.NewAuthUsecase(testAuthConfig(), users, rtRepo)

	assert.NoError(t, uc.Logout(ctx, "whatever"))
	assert.NoError(t, uc.Logout(ctx, ""))
}
