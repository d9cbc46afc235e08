package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-gin-wishlist/internal/core/auth"
	"go-gin-wishlist/internal/core/config"
	"go-gin-wishlist/internal/core/database"
	"go-gin-wishlist/internal/repo"
	"go-gin-wishlist/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

func newEngine(t *testing.T, lim config.Limits) *gin.Engine {
	t.Helper()
	db, err := database.NewMemory(t.Name())
	require.NoError(t, err)
	require.NoError(t, repo.Migrate(context.Background(), db))

	return NewAPIEngine(zap.NewNop(), Deps{
		DB:     db,
		JWT:    &auth.JWTer{Secret: []byte("router-secret"), Issuer: "wishlist"},
		Hasher: utils.NewArgon2Hasher(utils.Argon2Params{Time: 1, MemoryKiB: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}),
		Limits: lim,
	})
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIEngine_HealthAndMetrics(t *testing.T) {
	r := newEngine(t, config.Limits{})

	w := serve(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"msg":"OK","data":{"db":"up"}}`, w.Body.String())

	serve(r, http.MethodPost, "/auth/signin", `{}`)
	w = serve(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wishlist_http_requests_total")
}

func TestAPIEngine_NoRouteAndRequestID(t *testing.T) {
	r := newEngine(t, config.Limits{})

	w := serve(r, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":404,"msg":"Not Found","data":{}}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAPIEngine_SignupThenProfile(t *testing.T) {
	r := newEngine(t, config.Limits{MaxBodyBytes: 1 << 20, RequestTimeoutSec: 5, MaxConcurrent: 10})

	w := serve(r, http.MethodPost, "/auth/signup", `{"email":"a@example.com","password":"pw"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	tok := strings.TrimSuffix(strings.TrimPrefix(w.Body.String(), `{"access_token":"`), `"}`)

	req := httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@example.com"`)
}

func TestAPIEngine_RateLimited(t *testing.T) {
	r := newEngine(t, config.Limits{PerIPRPS: 0.001, PerIPBurst: 1})

	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/auth/signin", `{}`).Code)
	w := serve(r, http.MethodPost, "/auth/signin", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// 探活不受限流影响
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "").Code)
}

type fakeModule struct {
	name string
	prio int
	log  *[]string
}

func (m fakeModule) MountAPI(*gin.RouterGroup) { *m.log = append(*m.log, m.name) }
func (m fakeModule) Priority() int             { return m.prio }

type plainModule struct{ log *[]string }

func (m plainModule) MountAPI(*gin.RouterGroup) { *m.log = append(*m.log, "plain") }

func TestRegistry_MountOrder(t *testing.T) {
	var got []string
	reg := NewRegistry(plainModule{log: &got}, fakeModule{name: "b", prio: 20, log: &got})
	reg.Register(fakeModule{name: "a", prio: 10, log: &got})

	reg.MountAll(&gin.New().RouterGroup)
	assert.Equal(t, []string{"a", "b", "plain"}, got)
}
