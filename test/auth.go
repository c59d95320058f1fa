//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/fittrack/internal/auth"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type loginResponse struct {
	Token string `json:"token"`
}

// doRequest sends a JSON request, with the session token when one is given.
func doRequest(
	ctx context.Context,
	t *testing.T,
	client *http.Client,
	method, path, token string,
	body any,
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeJSON reads the response body into v and checks the status code.
func decodeJSON(t *testing.T, resp *http.Response, expectedStatus int, v any) {
	t.Helper()
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, string(respBytes))
	if v != nil {
		require.NoError(t, json.Unmarshal(respBytes, v), string(respBytes))
	}
}

func doRegister(ctx context.Context, t *testing.T, client *http.Client, username, email, password string) {
	t.Helper()
	resp := doRequest(ctx, t, client, http.MethodPost, "/users", "", map[string]any{
		"username": username,
		"email":    email,
		"password": password,
	})
	decodeJSON(t, resp, http.StatusCreated, nil)
}

func doLogin(ctx context.Context, t *testing.T, client *http.Client, username, password string) string {
	t.Helper()
	resp := doRequest(ctx, t, client, http.MethodPost, "/a/login", "", auth.Credentials{
		Username: username,
		Password: password,
	})

	var loginResp loginResponse
	decodeJSON(t, resp, http.StatusOK, &loginResp)
	require.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
