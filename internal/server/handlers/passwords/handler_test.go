package passwords_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/indexadmin/indexadmin/internal/passwords"
	"github.com/indexadmin/indexadmin/internal/server"
	passwordsapi "github.com/indexadmin/indexadmin/internal/server/handlers/passwords"
	"github.com/indexadmin/indexadmin/internal/storage"
	"github.com/indexadmin/indexadmin/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const seed = `[{"email":"a@x.com","plainPassword":"p1","generatedAt":"2024-03-01T09:00:00Z"}]`

func newApp(t *testing.T, raw string) (*fiber.App, storage.Store) {
	t.Helper()

	logger := zaptest.NewLogger(t)

	store, err := storage.NewBadgerStore(badgerfx.Config{InMemory: true}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	if raw != "" {
		require.NoError(t, store.Set(context.Background(), "generated_passwords", []byte(raw)))
	}

	svc := passwords.NewService(passwords.NewRepository(store), logger)

	app := fiber.New(fiber.Config{ErrorHandler: server.NewErrorHandler(logger)})
	passwordsapi.NewHandler(svc, validator.New(), logger).Register(app.Group("/api"))

	return app, store
}

func post(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	return resp.StatusCode, payload
}

func stored(t *testing.T, store storage.Store) []map[string]any {
	t.Helper()

	records, err := storage.GetJSON(context.Background(), store, "generated_passwords", []map[string]any{})
	require.NoError(t, err)

	return records
}

func TestHandler_Approve(t *testing.T) {
	app, store := newApp(t, seed)

	code, body := post(t, app, "/api/users/passwords/approve", `{"email":"a@x.com","approvedBy":"admin"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])

	records := stored(t, store)
	require.Len(t, records, 1)
	assert.Equal(t, "a@x.com", records[0]["email"])
	assert.Equal(t, "p1", records[0]["plainPassword"])
	assert.Equal(t, "2024-03-01T09:00:00Z", records[0]["generatedAt"])
	assert.Equal(t, "admin", records[0]["approvedBy"])
	assert.NotEmpty(t, records[0]["approvedAt"])
}

func TestHandler_Reject(t *testing.T) {
	app, store := newApp(t, seed)

	code, body := post(t, app, "/api/users/passwords/reject", `{"email":"a@x.com","rejectedBy":"admin"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	assert.Empty(t, stored(t, store))

	code, body = post(t, app, "/api/users/passwords/reject", `{"email":"a@x.com","rejectedBy":"admin"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
}

func TestHandler_Revoke(t *testing.T) {
	app, store := newApp(t, seed)

	code, _ := post(t, app, "/api/users/passwords/approve", `{"email":"a@x.com","approvedBy":"admin"}`)
	require.Equal(t, http.StatusOK, code)

	code, body := post(t, app, "/api/users/passwords/revoke", `{"email":"a@x.com","revokedBy":"admin"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	records := stored(t, store)
	require.Len(t, records, 1)
	assert.NotContains(t, records[0], "approvedAt")
	assert.NotContains(t, records[0], "approvedBy")
}

func TestHandler_NotFound(t *testing.T) {
	app, store := newApp(t, "")

	for _, tc := range []struct{ path, body string }{
		{"/api/users/passwords/approve", `{"email":"a@x.com","approvedBy":"admin"}`},
		{"/api/users/passwords/reject", `{"email":"a@x.com","rejectedBy":"admin"}`},
		{"/api/users/passwords/revoke", `{"email":"a@x.com","revokedBy":"admin"}`},
	} {
		code, body := post(t, app, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, code, tc.path)
		assert.Equal(t, false, body["success"], tc.path)
	}

	assert.Empty(t, stored(t, store))
}

func TestHandler_MissingFields(t *testing.T) {
	app, store := newApp(t, seed)

	for _, tc := range []struct{ path, body string }{
		{"/api/users/passwords/approve", `{"email":"a@x.com"}`},
		{"/api/users/passwords/approve", `{"approvedBy":"admin"}`},
		{"/api/users/passwords/reject", `{"email":"a@x.com"}`},
		{"/api/users/passwords/revoke", `{"revokedBy":"admin"}`},
		{"/api/users/passwords/revoke", `{not json`},
	} {
		code, body := post(t, app, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, code, tc.body)
		assert.Equal(t, false, body["success"], tc.body)
		assert.NotEmpty(t, body["error"], tc.body)
	}

	assert.Len(t, stored(t, store), 1)
}

func TestHandler_List(t *testing.T) {
	app, _ := newApp(t, seed)

	code, _ := post(t, app, "/api/users/passwords/approve", `{"email":"a@x.com","approvedBy":"admin"}`)
	require.Equal(t, http.StatusOK, code)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users/passwords", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body passwordsapi.ListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Passwords, 1)
	assert.True(t, body.Passwords[0].Approved)
	assert.Equal(t, "admin", body.Passwords[0].ApprovedBy)
}

func TestHandler_StorageFailureIsInternal(t *testing.T) {
	logger := zaptest.NewLogger(t)

	mr := miniredis.RunT(t)
	mr.Set("generated_passwords", seed)

	store, err := storage.NewRedisStore(storage.KVConfig{URL: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	app := fiber.New(fiber.Config{ErrorHandler: server.NewErrorHandler(logger)})
	svc := passwords.NewService(passwords.NewRepository(store), logger)
	passwordsapi.NewHandler(svc, validator.New(), logger).Register(app.Group("/api"))

	mr.Close()

	code, body := post(t, app, "/api/users/passwords/approve", `{"email":"a@x.com","approvedBy":"admin"}`)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", body["error"])
}
