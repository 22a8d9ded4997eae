package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yogaprasetya/akun-api/internal/application"
	"github.com/yogaprasetya/akun-api/internal/domain/entity"
	repo "github.com/yogaprasetya/akun-api/internal/domain/repository"
	handlers "github.com/yogaprasetya/akun-api/internal/interface/http"
	"github.com/yogaprasetya/akun-api/internal/router/modules"
	"github.com/yogaprasetya/akun-api/pkg/helpers"
	"github.com/yogaprasetya/akun-api/pkg/validation"
)

// memUserRepo is an in-memory repository.UserRepository for handler tests.
type memUserRepo struct {
	seq   int64
	users map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}}
}

func (f *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return repo.ErrEmailTaken
		}
	}
	f.seq++
	u.ID = f.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *memUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

var _ repo.UserRepository = (*memUserRepo)(nil)

type testAPI struct {
	engine *gin.Engine
	svc    *application.Service
	repo   *memUserRepo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := newMemUserRepo()
	tokens := helpers.NewTokenManager("test-secret", 30*time.Minute)
	svc := application.NewService(r, tokens, logger)

	engine := gin.New()
	root := engine.Group("/")
	modules.NewAuthModule(handlers.NewAuthHandler(svc, logger)).Register(root)
	modules.NewUserModule(handlers.NewUserHandler(svc, logger), svc).Register(root)

	return &testAPI{engine: engine, svc: svc, repo: r}
}

func (a *testAPI) do(t *testing.T, method, path, body, contentType string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, rdr)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testAPI) register(t *testing.T, body string) *httptest.ResponseRecorder {
	return a.do(t, http.MethodPost, "/register", body, "application/json", nil)
}

func (a *testAPI) token(t *testing.T, username, password string) *httptest.ResponseRecorder {
	form := "username=" + username + "&password=" + password
	return a.do(t, http.MethodPost, "/token", form, "application/x-www-form-urlencoded", nil)
}
