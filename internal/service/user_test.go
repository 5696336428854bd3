package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/Devpy220/DiscoveryEvents/internal/domain"
	"github.com/Devpy220/DiscoveryEvents/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestUserService_Register_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)

	svc := NewUserService(repo, notifier, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, user *domain.User) {
		user.ID = 1
	}).Return(nil)
	notifier.EXPECT().NotifyWelcome(mock.Anything, mock.Anything).Return()

	user, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Username: "alice",
		Password: "secret123",
		Email:    "Alice@Example.com",
		FullName: "Alice Souza",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	// stored as a bcrypt hash, never plaintext
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestUserService_Register_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)

	svc := NewUserService(repo, notifier, newTestLogger(t))

	cases := []struct {
		name  string
		input domain.RegisterUserInput
	}{
		{"short username", domain.RegisterUserInput{Username: "ab", Password: "secret123", Email: "a@b.c", FullName: "A"}},
		{"short password", domain.RegisterUserInput{Username: "alice", Password: "12345", Email: "a@b.c", FullName: "A"}},
		{"bad email", domain.RegisterUserInput{Username: "alice", Password: "secret123", Email: "not-an-email", FullName: "A"}},
		{"missing full name", domain.RegisterUserInput{Username: "alice", Password: "secret123", Email: "a@b.c", FullName: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)

	svc := NewUserService(repo, notifier, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), domain.RegisterUserInput{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
		FullName: "Alice Souza",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Authenticate_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)

	svc := NewUserService(repo, notifier, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(&domain.User{
		ID:       1,
		Username: "alice",
		Password: string(hash),
	}, nil)

	user, err := svc.Authenticate(context.Background(), "alice", "secret123")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)

	svc := NewUserService(repo, notifier, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(&domain.User{
		Username: "alice",
		Password: string(hash),
	}, nil)

	_, err = svc.Authenticate(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// An unknown username must look exactly like a wrong password.
func TestUserService_Authenticate_UnknownUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockOrderNotifier(t)

	svc := NewUserService(repo, notifier, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Authenticate(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}
