package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
)

// memoryUserRepo is an in-memory UserRepository for auth tests.
type memoryUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (r *memoryUserRepo) Create(user *models.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
	return nil
}

func (r *memoryUserRepo) FindByEmail(email string) (*models.User, error) {
	if user, ok := r.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	if user, ok := r.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestAuthService() (AuthService, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	return NewAuthService(repo, "test-secret", 12*time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	auth, repo := newTestAuthService()

	token, err := auth.Register("User@Example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Email is stored lowercased
	user, err := repo.FindByEmail("user@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	loginToken, err := auth.Login("user@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuthService()

	_, err := auth.Register("user@example.com", "hunter22")
	require.NoError(t, err)

	_, err = auth.Register("user@example.com", "other-password")
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	auth, _ := newTestAuthService()

	_, err := auth.Register("user@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login("user@example.com", "wrong")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := auth.Login("nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	auth, repo := newTestAuthService()

	token, err := auth.Register("user@example.com", "hunter22")
	require.NoError(t, err)

	userID, err := auth.ValidateToken(token)
	require.NoError(t, err)

	user, err := repo.FindByID(userID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	auth, _ := newTestAuthService()

	_, err := auth.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	repo := newMemoryUserRepo()
	signer := NewAuthService(repo, "secret-a", time.Hour)
	verifier := NewAuthService(repo, "secret-b", time.Hour)

	token, err := signer.Register("user@example.com", "hunter22")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestEnsureDefaultUser(t *testing.T) {
	auth, repo := newTestAuthService()

	require.NoError(t, auth.EnsureDefaultUser())
	_, err := repo.FindByEmail("admin@example.com")
	require.NoError(t, err)

	// Idempotent on restart
	require.NoError(t, auth.EnsureDefaultUser())
	assert.Len(t, repo.byEmail, 1)
}
