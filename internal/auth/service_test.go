package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/indexadmin/indexadmin/internal/passwords"
	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/indexadmin/indexadmin/internal/users"
	"github.com/indexadmin/indexadmin/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testSecret = []byte("test-secret")

func newTestService(t *testing.T, config Config) (*Service, storage.Store) {
	t.Helper()

	logger := zaptest.NewLogger(t)

	store, err := storage.NewBadgerStore(badgerfx.Config{InMemory: true}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	usersSvc := users.NewService(users.NewRepository(store), logger)
	passwordsSvc := passwords.NewService(passwords.NewRepository(store), logger)

	return NewService(config, usersSvc, passwordsSvc, logger), store
}

func TestService_IssueAndVerify(t *testing.T) {
	svc, _ := newTestService(t, Config{SecretKey: testSecret, Issuer: "indexadmin", TokenTTL: time.Hour})

	want := Identity{ID: "u-1", Email: "a@x.com", IsAdmin: true}
	token, err := svc.Issue(want)
	require.NoError(t, err)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	got, err = svc.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestService_VerifyMissing(t *testing.T) {
	svc, _ := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})

	_, err := svc.Verify("")
	require.ErrorIs(t, err, ErrTokenMissing)

	_, err = svc.Verify("   ")
	require.ErrorIs(t, err, ErrTokenMissing)
}

func TestService_VerifyExpired(t *testing.T) {
	svc, _ := newTestService(t, Config{SecretKey: testSecret, TokenTTL: -time.Hour})

	token, err := svc.Issue(Identity{ID: "u-1", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_VerifyWrongSecret(t *testing.T) {
	other, _ := newTestService(t, Config{SecretKey: []byte("other-secret"), TokenTTL: time.Hour})
	svc, _ := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})

	token, err := other.Issue(Identity{ID: "u-1", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestService_VerifyRejectsMalformed(t *testing.T) {
	svc, _ := newTestService(t, Config{SecretKey: testSecret, Issuer: "indexadmin", TokenTTL: time.Hour})

	sign := func(claims jwt.Claims, method jwt.SigningMethod) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(testSecret)
		require.NoError(t, err)
		return token
	}

	expires := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]string{
		"garbage": "not.a.jwt",
		"no identity": sign(&Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "indexadmin", ExpiresAt: expires},
		}, jwt.SigningMethodHS256),
		"no expiry": sign(&Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "indexadmin"},
			UserID:           "u-1",
			Email:            "a@x.com",
		}, jwt.SigningMethodHS256),
		"foreign issuer": sign(&Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", ExpiresAt: expires},
			UserID:           "u-1",
			Email:            "a@x.com",
		}, jwt.SigningMethodHS256),
		"other algorithm": sign(&Claims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "indexadmin", ExpiresAt: expires},
			UserID:           "u-1",
			Email:            "a@x.com",
		}, jwt.SigningMethodHS512),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			require.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func seedLogin(t *testing.T, store storage.Store, approved bool) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "users", []byte(
		`[{"id":"u-1","email":"a@x.com","name":"Alice","isAdmin":true,"createdAt":"2024-03-01T09:00:00Z"}]`,
	)))

	record := `{"email":"a@x.com","plainPassword":"p1","generatedAt":"2024-03-01T09:00:00Z"`
	if approved {
		record += `,"approvedAt":"2024-03-02T09:00:00Z","approvedBy":"admin"`
	}
	require.NoError(t, store.Set(ctx, "generated_passwords", []byte("["+record+"}]")))
}

func TestService_Login(t *testing.T) {
	svc, store := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})
	seedLogin(t, store, true)

	identity, token, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, Identity{ID: "u-1", Email: "a@x.com", IsAdmin: true}, *identity)

	verified, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, *identity, *verified)
}

func TestService_LoginRejected(t *testing.T) {
	ctx := context.Background()

	t.Run("unapproved", func(t *testing.T) {
		svc, store := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})
		seedLogin(t, store, false)

		_, _, err := svc.Login(ctx, "a@x.com", "p1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, store := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})
		seedLogin(t, store, true)

		_, _, err := svc.Login(ctx, "a@x.com", "p2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, store := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})
		seedLogin(t, store, true)

		_, _, err := svc.Login(ctx, "b@x.com", "p1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("no record", func(t *testing.T) {
		svc, store := newTestService(t, Config{SecretKey: testSecret, TokenTTL: time.Hour})
		seedLogin(t, store, true)
		require.NoError(t, store.Set(ctx, "generated_passwords", []byte("[]")))

		_, _, err := svc.Login(ctx, "a@x.com", "p1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
