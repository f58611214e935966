package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackfit/backend/internal/auth"
	"github.com/trackfit/backend/internal/config"
	"github.com/trackfit/backend/internal/dto"
	"github.com/trackfit/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: 72 * time.Hour}
	return NewAuthService(db, cfg)
}

func TestSignupIssuesResolvableToken(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Signup(&dto.SignupRequest{Name: "Alex", Email: "alex@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	subject, err := auth.VerifyToken("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, subject)
	assert.Equal(t, "alex@example.com", resp.User.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Signup(&dto.SignupRequest{Name: "Alex", Email: "alex@example.com", Password: "hunter22"})
	require.NoError(t, err)

	// Conflict regardless of the password used.
	_, err = svc.Signup(&dto.SignupRequest{Name: "Sam", Email: "alex@example.com", Password: "different"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Signup(&dto.SignupRequest{Email: "a@b.com", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Signup(&dto.SignupRequest{Name: "A", Password: "x"})
	assert.Error(t, err)
	_, err = svc.Signup(&dto.SignupRequest{Name: "A", Email: "a@b.com"})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Signup(&dto.SignupRequest{Name: "Alex", Email: "alex@example.com", Password: "hunter22"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "alex@example.com", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, resp.User.ID)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Login(&dto.LoginRequest{Email: "alex@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Signup(&dto.SignupRequest{Name: "Alex", Email: "alex@example.com", Password: "hunter22"})
	require.NoError(t, err)

	user, err := svc.Me(created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "alex@example.com", user.Email)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Signup(&dto.SignupRequest{Name: "Alex", Email: "alex@example.com", Password: "hunter22"})
	require.NoError(t, err)

	height := 180.0
	goal := "lose_weight"
	user, err := svc.UpdateProfile(created.User.ID, &dto.ProfileUpdateRequest{
		HeightCm: &height,
		Goal:     &goal,
	})
	require.NoError(t, err)

	require.NotNil(t, user.HeightCm)
	assert.Equal(t, 180.0, *user.HeightCm)
	require.NotNil(t, user.Goal)
	assert.Equal(t, "lose_weight", *user.Goal)
	// Untouched fields stay as they were.
	assert.Equal(t, "Alex", user.Name)
	assert.Nil(t, user.WeightKg)
	assert.Nil(t, user.Age)

	// Empty update is a no-op returning the current user.
	again, err := svc.UpdateProfile(created.User.ID, &dto.ProfileUpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, user.HeightCm, again.HeightCm)
}
