package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token(context.Context) (string, bool) {
	return s.token, s.token != ""
}

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, staticTokens{token: token})
	return client, srv
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	var raw json.RawMessage
	if data != nil {
		raw, _ = json.Marshal(data)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": success,
		"message": message,
		"data":    raw,
	})
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, true, "", map[string]string{"token": "t", "userId": "u"})
	}, "stored-token")

	_, err := NewAuthAPI(client).Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Bearer stored-token", gotAuth)
}

func TestClientDecodesEnvelopeData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])
		writeEnvelope(w, http.StatusOK, true, "", map[string]string{"token": "issued", "userId": "u-1"})
	}, "")

	token, err := NewAuthAPI(client).Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "issued", token)
}

func TestClientNonOKBecomesAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "invalid credentials", nil)
	}, "")

	_, err := NewAuthAPI(client).Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestClientFailedEnvelopeBecomesAPIError(t *testing.T) {
	// 200 with success=false still counts as a failure.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, false, "profile incomplete", nil)
	}, "")

	_, err := NewAuthAPI(client).Login(context.Background(), "a@b.c", "pw")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "profile incomplete", apiErr.Message)
}

func TestDietPlanNotFoundIsConfirmedAbsent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusNotFound, false, "no diet plan", nil)
	}, "tok")

	plan, err := NewDietPlanAPI(client).LoadFromDatabase(context.Background(), false)
	require.NoError(t, err, "404 is a valid no-plan result, not a failure")
	assert.Nil(t, plan)
}

func TestDietPlanServerErrorIsALoadFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, false, "boom", nil)
	}, "tok")

	plan, err := NewDietPlanAPI(client).LoadFromDatabase(context.Background(), false)
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.False(t, IsNotFound(err))
}

func TestDietPlanForceRefreshSetsQuery(t *testing.T) {
	var gotRefresh string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRefresh = r.URL.Query().Get("refresh")
		writeEnvelope(w, http.StatusOK, true, "", map[string]any{"id": "p1", "userId": "u1"})
	}, "tok")

	_, err := NewDietPlanAPI(client).LoadFromDatabase(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotRefresh)
}

func TestClientTransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(config.APIConfig{BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := NewDietPlanAPI(client).LoadFromDatabase(context.Background(), false)
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are plain errors")
}
