package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotrack/internal/models/db_models"
	"ecotrack/internal/models/request_models"
	mem "ecotrack/pkg/memcache"
	"ecotrack/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail  map[string]*db_models.Account
	byID     map[string]*db_models.Account
	inserted []*db_models.Account
}

func newFakeAccountRepo(accounts ...*db_models.Account) *fakeAccountRepo {
	repo := &fakeAccountRepo{
		byEmail: make(map[string]*db_models.Account),
		byID:    make(map[string]*db_models.Account),
	}
	for _, a := range accounts {
		repo.byEmail[a.Email] = a
		repo.byID[a.ID.String()] = a
	}
	return repo
}

func (f *fakeAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	f.inserted = append(f.inserted, account)
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	return f.byID[id], nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func (f *fakeAccountRepo) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	if a, ok := f.byEmail[email]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeAccountRepo) AddEcoPoints(_ context.Context, id string, points int) error {
	if a, ok := f.byID[id]; ok {
		a.EcoPoints += points
	}
	return nil
}

type fakeMailService struct {
	sentTo    []string
	lastToken string
}

func (f *fakeMailService) SendMailToResetPassword(email, token string) error {
	f.sentTo = append(f.sentTo, email)
	f.lastToken = token
	return nil
}

func testAccount(t *testing.T, email, password string) *db_models.Account {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &db_models.Account{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Level:        1,
		EcoPoints:    50,
	}
}

func TestLogin(t *testing.T) {
	account := testAccount(t, "user@example.com", "secret123")
	svc := NewAccountService(newFakeAccountRepo(account), &fakeMailService{}, mem.NewResetTokens())

	token, err := svc.Login(request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	}, context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	account := testAccount(t, "user@example.com", "secret123")
	svc := NewAccountService(newFakeAccountRepo(account), &fakeMailService{}, mem.NewResetTokens())

	_, err := svc.Login(request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	}, context.Background())
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo(), &fakeMailService{}, mem.NewResetTokens())

	_, err := svc.Login(request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	}, context.Background())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, &fakeMailService{}, mem.NewResetTokens())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "New User",
		Email:       "new@example.com",
		Password:    "secret123",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)

	got := repo.inserted[0]
	assert.Equal(t, "New User", got.Name)
	assert.Equal(t, 1, got.Level)
	// Stored as a hash, never the raw password.
	assert.NotEqual(t, "secret123", got.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(got.PasswordHash, "secret123"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	account := testAccount(t, "user@example.com", "secret123")
	svc := NewAccountService(newFakeAccountRepo(account), &fakeMailService{}, mem.NewResetTokens())

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Impostor",
		Email:       "user@example.com",
		Password:    "other-secret",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestPasswordResetFlow(t *testing.T) {
	account := testAccount(t, "user@example.com", "old-password")
	repo := newFakeAccountRepo(account)
	mail := &fakeMailService{}
	svc := NewAccountService(repo, mail, mem.NewResetTokens())

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "user@example.com"))
	require.Equal(t, []string{"user@example.com"}, mail.sentTo)
	require.NotEmpty(t, mail.lastToken)

	err := svc.ResetPassword(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "user@example.com",
		NewPassword: "new-password",
		Token:       mail.lastToken,
	})
	require.NoError(t, err)
	assert.NoError(t, utils.ComparePasswords(account.PasswordHash, "new-password"))

	// Tokens are single-use.
	err = svc.ResetPassword(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "user@example.com",
		NewPassword: "another-password",
		Token:       mail.lastToken,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	mail := &fakeMailService{}
	svc := NewAccountService(newFakeAccountRepo(), mail, mem.NewResetTokens())

	assert.NoError(t, svc.RequestPasswordReset(context.Background(), "nobody@example.com"))
	assert.Empty(t, mail.sentTo)
}

func TestResetPasswordEmailMismatch(t *testing.T) {
	account := testAccount(t, "user@example.com", "old-password")
	mail := &fakeMailService{}
	svc := NewAccountService(newFakeAccountRepo(account), mail, mem.NewResetTokens())

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "user@example.com"))

	err := svc.ResetPassword(context.Background(), request_models.ForgotPasswordRequest{
		Email:       "attacker@example.com",
		NewPassword: "hijacked",
		Token:       mail.lastToken,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
}

func TestProfile(t *testing.T) {
	account := testAccount(t, "user@example.com", "secret123")
	svc := NewAccountService(newFakeAccountRepo(account), &fakeMailService{}, mem.NewResetTokens())

	profile, err := svc.Profile(context.Background(), account.ID.String())
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), profile.ID)
	assert.Equal(t, "Test User", profile.Name)
	assert.Equal(t, 50, profile.EcoPoints)
}

func TestProfileNotFound(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo(), &fakeMailService{}, mem.NewResetTokens())

	_, err := svc.Profile(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}
