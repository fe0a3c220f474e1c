package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/frahmantamala/organization-management/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockRepository implements auth.RepositoryAPI for testing
type MockRepository struct {
	creds map[string]*auth.Credentials
	users map[int64]*auth.User
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		creds: make(map[string]*auth.Credentials),
		users: make(map[int64]*auth.User),
	}
}

func (m *MockRepository) AddUser(username, password string, active bool, permissions []string) *auth.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	id := int64(len(m.users) + 1)
	m.creds[username] = &auth.Credentials{
		UserID:       id,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		IsActive:     active,
	}
	u := &auth.User{
		ID:          id,
		Username:    username,
		Email:       username + "@example.com",
		Permissions: permissions,
	}
	m.users[id] = u
	return u
}

func (m *MockRepository) GetCredentials(username string) (*auth.Credentials, error) {
	return m.creds[username], nil
}

func (m *MockRepository) GetUserWithPermissions(userID int64) (*auth.User, error) {
	return m.users[userID], nil
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo *MockRepository
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		tokenGen = auth.NewJWTTokenGenerator(
			"access-secret-of-at-least-32-characters",
			"refresh-secret-of-at-least-32-chars!",
			15*time.Minute,
			7*24*time.Hour,
		)
		service = auth.NewService(mockRepo, tokenGen, logger)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			mockRepo.AddUser("alice", "s3cretpass", true, []string{"view_reports"})
		})

		It("should return a token pair for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "s3cretpass"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
		})

		It("should reject a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "wrong"})
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("should reject an unknown username", func() {
			_, err := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "s3cretpass"})
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))
		})

		It("should reject an inactive account even with the right password", func() {
			mockRepo.AddUser("bob", "s3cretpass", false, nil)

			_, err := service.Authenticate(auth.LoginDTO{Username: "bob", Password: "s3cretpass"})
			Expect(err).To(MatchError(auth.ErrUserInactive))
		})

		It("should reject a missing username or password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Password: "s3cretpass"})
			Expect(err).To(HaveOccurred())

			_, err = service.Authenticate(auth.LoginDTO{Username: "alice"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ValidateAccessToken", func() {
		It("should round-trip claims through a generated token", func() {
			mockRepo.AddUser("alice", "s3cretpass", true, nil)

			tokens, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "s3cretpass"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("1"))
			Expect(claims.Email).To(Equal("alice@example.com"))
		})

		It("should reject garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-jwt")
			Expect(err).To(MatchError(auth.ErrInvalidToken))
		})

		It("should reject an expired token", func() {
			shortGen := auth.NewJWTTokenGenerator(
				"access-secret-of-at-least-32-characters",
				"refresh-secret-of-at-least-32-chars!",
				-1*time.Minute,
				7*24*time.Hour,
			)
			token, err := shortGen.GenerateAccessToken("1", "alice@example.com")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(MatchError(auth.ErrTokenExpired))
		})
	})

	Describe("RefreshTokens", func() {
		It("should issue a fresh pair from a valid refresh token", func() {
			mockRepo.AddUser("alice", "s3cretpass", true, nil)

			tokens, err := service.Authenticate(auth.LoginDTO{Username: "alice", Password: "s3cretpass"})
			Expect(err).NotTo(HaveOccurred())

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(refreshed.AccessToken).NotTo(BeEmpty())
			Expect(refreshed.RefreshToken).NotTo(BeEmpty())
		})

		It("should reject an access token used as a refresh token", func() {
			_, err := service.RefreshTokens("not-a-jwt")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("permission helpers", func() {
		It("should answer membership queries on the snapshot", func() {
			u := &auth.User{Permissions: []string{"view_reports", "create_tasks"}}
			Expect(u.HasPermission("view_reports")).To(BeTrue())
			Expect(u.HasPermission("admin")).To(BeFalse())
			Expect(u.HasAnyPermission([]string{"admin", "create_tasks"})).To(BeTrue())
			Expect(u.IsAdmin()).To(BeFalse())
		})
	})
})
