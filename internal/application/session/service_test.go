package session

import (
	"context"
	"testing"
	"time"

	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/infrastructure/google"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- mocks ---

type mockSessionStore struct{ mock.Mock }

func (m *mockSessionStore) Put(ctx context.Context, s *domain.Session) error {
	return m.Called(ctx, s).Error(0)
}
func (m *mockSessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) GetByRefreshToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if s, _ := args.Get(0).(*domain.Session); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSessionStore) RotateRefreshToken(ctx context.Context, sessionID, newToken string, newExpiry int64) error {
	return m.Called(ctx, sessionID, newToken, newExpiry).Error(0)
}
func (m *mockSessionStore) Update(ctx context.Context, sessionID string, updates map[string]interface{}) error {
	return m.Called(ctx, sessionID, updates).Error(0)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockJWTSigner struct{ mock.Mock }

func (m *mockJWTSigner) Sign(userID, deviceUUID, role, sessionID string) (string, error) {
	args := m.Called(userID, deviceUUID, role, sessionID)
	return args.String(0), args.Error(1)
}

type mockGoogleVerifier struct{ mock.Mock }

func (m *mockGoogleVerifier) Verify(ctx context.Context, token string) (*google.Payload, error) {
	args := m.Called(ctx, token)
	if p, _ := args.Get(0).(*google.Payload); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func adminUser(t *testing.T) *domain.User {
	return &domain.User{
		UserID:       "u1",
		Email:        "admin@example.com",
		PasswordHash: hashOf(t, "hunter22"),
		Role:         domain.RoleAdmin,
		Status:       domain.TriggerActive,
	}
}

func newTestService(sessions *mockSessionStore, users *mockUserStore, signer *mockJWTSigner, gv googleVerifier) Service {
	return NewService(ServiceDeps{
		SessionRepo:     sessions,
		UserRepo:        users,
		JWTProvider:     signer,
		GoogleVerifier:  gv,
		RefreshTokenDur: 30 * 24 * time.Hour,
	})
}

// --- tests ---

func TestLogin_PasswordHappyPath(t *testing.T) {
	sessions := new(mockSessionStore)
	users := new(mockUserStore)
	signer := new(mockJWTSigner)
	svc := newTestService(sessions, users, signer, nil)

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminUser(t), nil)
	sessions.On("Put", mock.Anything, mock.Anything).Return(nil)
	signer.On("Sign", "u1", mock.Anything, domain.RoleAdmin, mock.Anything).Return("bearer-1", nil)

	result, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer-1", result.Bearer)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "u1", result.Session.UserID)
	assert.NotEmpty(t, result.Session.DeviceUUID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestService(new(mockSessionStore), users, new(mockJWTSigner), nil)

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminUser(t), nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestService(new(mockSessionStore), users, new(mockJWTSigner), nil)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_MemberHasNoPortalAccess(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestService(new(mockSessionStore), users, new(mockJWTSigner), nil)

	member := adminUser(t)
	member.Role = domain.RoleMember
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(member, nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_DisabledAccount(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestService(new(mockSessionStore), users, new(mockJWTSigner), nil)

	disabled := adminUser(t)
	disabled.Status = domain.TriggerInactive
	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(disabled, nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_KeepsClientDeviceUUID(t *testing.T) {
	sessions := new(mockSessionStore)
	users := new(mockUserStore)
	signer := new(mockJWTSigner)
	svc := newTestService(sessions, users, signer, nil)

	users.On("GetByEmail", mock.Anything, "admin@example.com").Return(adminUser(t), nil)
	sessions.On("Put", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.DeviceUUID == "browser-abc"
	})).Return(nil)
	signer.On("Sign", mock.Anything, "browser-abc", mock.Anything, mock.Anything).Return("bearer-1", nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:      "admin@example.com",
		Password:   "hunter22",
		DeviceUUID: "browser-abc",
	})
	require.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestLogin_GoogleWithoutVerifier(t *testing.T) {
	svc := newTestService(new(mockSessionStore), new(mockUserStore), new(mockJWTSigner), nil)

	_, err := svc.Login(context.Background(), domain.LoginRequest{GoogleToken: "id-token"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestLogin_GoogleNeverCreatesAccounts(t *testing.T) {
	users := new(mockUserStore)
	gv := new(mockGoogleVerifier)
	svc := newTestService(new(mockSessionStore), users, new(mockJWTSigner), gv)

	gv.On("Verify", mock.Anything, "id-token").Return(&google.Payload{
		Sub:           "google-sub",
		Email:         "new@example.com",
		EmailVerified: true,
	}, nil)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), domain.LoginRequest{GoogleToken: "id-token"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_RotatesToken(t *testing.T) {
	sessions := new(mockSessionStore)
	users := new(mockUserStore)
	signer := new(mockJWTSigner)
	svc := newTestService(sessions, users, signer, nil)

	sess := &domain.Session{
		SessionID:             "s1",
		UserID:                "u1",
		DeviceUUID:            "dev1",
		RefreshToken:          "old-token",
		RefreshTokenExpiresAt: time.Now().Add(time.Hour).Unix(),
		Enable:                true,
	}
	sessions.On("GetByRefreshToken", mock.Anything, "old-token").Return(sess, nil)
	sessions.On("RotateRefreshToken", mock.Anything, "s1", mock.Anything, mock.Anything).Return(nil)
	users.On("Get", mock.Anything, "u1").Return(adminUser(t), nil)
	signer.On("Sign", "u1", "dev1", domain.RoleAdmin, "s1").Return("bearer-2", nil)

	bearer, newToken, err := svc.Refresh(context.Background(), "old-token")
	require.NoError(t, err)
	assert.Equal(t, "bearer-2", bearer)
	assert.NotEmpty(t, newToken)
	assert.NotEqual(t, "old-token", newToken)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	sessions := new(mockSessionStore)
	svc := newTestService(sessions, new(mockUserStore), new(mockJWTSigner), nil)

	sessions.On("GetByRefreshToken", mock.Anything, "old-token").Return(&domain.Session{
		SessionID:             "s1",
		RefreshToken:          "old-token",
		RefreshTokenExpiresAt: time.Now().Add(-time.Hour).Unix(),
		Enable:                true,
	}, nil)

	_, _, err := svc.Refresh(context.Background(), "old-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetCurrent_DisabledSession(t *testing.T) {
	sessions := new(mockSessionStore)
	svc := newTestService(sessions, new(mockUserStore), new(mockJWTSigner), nil)

	sessions.On("Get", mock.Anything, "s1").Return(&domain.Session{SessionID: "s1", Enable: false}, nil)

	_, err := svc.GetCurrent(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_DisablesSession(t *testing.T) {
	sessions := new(mockSessionStore)
	svc := newTestService(sessions, new(mockUserStore), new(mockJWTSigner), nil)

	sessions.On("Update", mock.Anything, "s1", map[string]interface{}{"enable": false}).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), "s1"))
	sessions.AssertExpectations(t)
}
