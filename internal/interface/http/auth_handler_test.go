package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogaprasetya/akun-api/pkg/helpers"
)

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	w := api.register(t, `{"email":"a@b.com","username":"alice","password":"secret1","alamat":"Jl. Melati 1","nomor_hp":"0811111111"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID       int64  `json:"id"`
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
		Alamat   string `json:"alamat"`
		NomorHP  string `json:"nomor_hp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "a@b.com", resp.Email)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Jl. Melati 1", resp.Alamat)
	assert.Equal(t, "0811111111", resp.NomorHP)

	// the password member carries the hash, never the plaintext
	assert.NotEqual(t, "secret1", resp.Password)
	assert.True(t, helpers.VerifyPassword("secret1", resp.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	w := api.register(t, `{"email":"a@b.com","username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.register(t, `{"email":"a@b.com","username":"bob","password":"pw2"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"Email already registered"}`, w.Body.String())
}

func TestRegister_InvalidBody(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	cases := map[string]string{
		"missing email":    `{"username":"alice","password":"pw"}`,
		"bad email":        `{"email":"nope","username":"alice","password":"pw"}`,
		"missing password": `{"email":"a@b.com","username":"alice"}`,
		"not json":         `{{`,
		"empty":            ``,
	}
	for name, body := range cases {
		w := api.register(t, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestToken_Success(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	require.Equal(t, http.StatusOK, api.register(t, `{"email":"jd@example.com","username":"johndoe","password":"correct-password"}`).Code)

	w := api.token(t, "johndoe", "correct-password")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ID          int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotZero(t, resp.ID)
	require.NotEmpty(t, resp.AccessToken)

	// the token resolves back to the same account
	u, err := api.svc.CurrentUser(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", u.Username)
}

func TestToken_BadCredentials(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	require.Equal(t, http.StatusOK, api.register(t, `{"email":"jd@example.com","username":"johndoe","password":"correct-password"}`).Code)

	for name, creds := range map[string][2]string{
		"wrong password":   {"johndoe", "wrong"},
		"unknown username": {"ghost", "anything"},
	} {
		w := api.token(t, creds[0], creds[1])
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), name)
		assert.JSONEq(t, `{"detail":"Incorrect username or password"}`, w.Body.String(), name)
	}
}

func TestToken_MissingForm(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/token", "username=johndoe", "application/x-www-form-urlencoded", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
