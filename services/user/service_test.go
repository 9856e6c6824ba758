package user

import (
	"testing"
	"time"

	"eventease/models"
	"eventease/utils"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Token caching is best-effort; point it at a dead address with a short
	// dial timeout so tests never wait on a live Redis.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
}

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	clone := *u
	r.byID[u.ID] = &clone
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	return r.Create(u)
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.GetByID(id)
}

func (r *fakeUserRepo) Count() (int64, error) {
	return int64(len(r.byID)), nil
}

func TestRegister_CreatesAccountWithHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegistrationInput{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user", resp.UserType)

	stored, err := repo.GetByEmail("asha@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "supersecret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")))
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(RegistrationInput{Name: "A", Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(RegistrationInput{Name: "B", Email: "a@example.com", Password: "othersecret"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(RegistrationInput{Name: "A", Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	resp, err := svc.Authenticate("a@example.com", "supersecret")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	ident, err := utils.ExtractIdentityFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, ident.UserID)
	assert.Equal(t, "a@example.com", ident.Email)
	assert.Equal(t, "user", ident.UserType)
}

func TestAuthenticate_WrongPasswordOrUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Register(RegistrationInput{Name: "A", Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Authenticate("a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "supersecret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile_AppendsDeviceTokenOnce(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegistrationInput{Name: "A", Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	token := "fcm-token-1"
	updated, err := svc.UpdateProfile(resp.ID, ProfileUpdate{DeviceToken: &token})
	require.NoError(t, err)
	assert.Equal(t, []string{"fcm-token-1"}, updated.DeviceTokens)

	// Same token again does not duplicate.
	updated, err = svc.UpdateProfile(resp.ID, ProfileUpdate{DeviceToken: &token})
	require.NoError(t, err)
	assert.Equal(t, []string{"fcm-token-1"}, updated.DeviceTokens)

	name := "Asha V"
	updated, err = svc.UpdateProfile(resp.ID, ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Asha V", updated.Name)
	assert.Equal(t, []string{"fcm-token-1"}, updated.DeviceTokens)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.GetProfile("missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
