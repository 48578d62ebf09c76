package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-negocios/internal/auth"
	"github.com/BruksfildServices01/agenda-negocios/internal/httperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) httperr.HTTPError {
	t.Helper()
	var body httperr.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

func newAuthRouter(iss *auth.Issuer, rev auth.Revoker) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(iss, rev))
	r.GET("/me", func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": c.GetString(ContextUserRole)})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	iss := auth.NewIssuer("segredo-de-teste", time.Hour)
	rev := auth.NewMemoryRevoker()
	r := newAuthRouter(iss, rev)
	tok, exp, _ := iss.Issue(3, "staff")

	cases := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{"missing", "", http.StatusUnauthorized, "missing_authorization_header"},
		{"scheme", "Basic abc", http.StatusUnauthorized, "invalid_authorization_header"},
		{"garbage", "Bearer abc", http.StatusUnauthorized, "invalid_token"},
		{"ok", "Bearer " + tok, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + tok, http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			if tc.code != "" && decodeError(t, w).Code != tc.code {
				t.Fatalf("error_code = %s", w.Body.String())
			}
		})
	}

	claims, _ := iss.Parse(tok)
	_ = rev.Revoke(t.Context(), claims.ID, exp)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized || decodeError(t, w).Code != "token_revoked" {
		t.Fatalf("revoked token accepted: %d %s", w.Code, w.Body.String())
	}
}

func TestRequestIDAndRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("request id not propagated: %q", w.Header().Get("X-Request-ID"))
	}
	if decodeError(t, w).Code != "internal_error" {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id should be generated")
	}
}

func TestLoggerFrom_Fallback(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if LoggerFrom(c) == nil {
		t.Fatal("expected a logger")
	}
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, KeyByUserOrIP())
	r := gin.New()
	r.Use(rl.Handler())
	r.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = net.JoinHostPort(ip, "4000")
		r.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 2; i++ {
		if w := hit("203.0.113.9"); w.Code != http.StatusNoContent {
			t.Fatalf("request %d limited early: %d", i, w.Code)
		}
	}
	w := hit("203.0.113.9")
	if w.Code != http.StatusTooManyRequests || w.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if decodeError(t, w).Code != "rate_limited" {
		t.Fatalf("body = %s", w.Body.String())
	}
	if w := hit("198.51.100.1"); w.Code != http.StatusNoContent {
		t.Fatalf("other ip should have its own bucket, got %d", w.Code)
	}
}

func TestKeyByUserOrIP(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = net.JoinHostPort("203.0.113.9", "1")
	c.Request = req

	if got := KeyByUserOrIP()(c); got != "ip:203.0.113.9" {
		t.Fatalf("key = %q", got)
	}
	c.Set(ContextUserID, uint(12))
	if got := KeyByUserOrIP()(c); got != "user:12" {
		t.Fatalf("key = %q", got)
	}
}

func TestRateLimiter_SweepsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(1, 1, KeyByUserOrIP())
	rl.ttl = time.Nanosecond
	_ = rl.getVisitor("old")
	rl.lookups = sweepEvery - 1
	time.Sleep(time.Millisecond)
	_ = rl.getVisitor("new")

	if _, ok := rl.visitors["old"]; ok {
		t.Fatal("idle bucket should be swept")
	}
	if _, ok := rl.visitors["new"]; !ok {
		t.Fatal("current bucket must survive the sweep")
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.exemplo.com.br"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", "GET")
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("https://app.exemplo.com.br")
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "https://app.exemplo.com.br" {
		t.Fatalf("allowed origin rejected: %d %v", w.Code, w.Header())
	}
	if w := preflight("https://evil.example"); w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("unknown origin should not be allowed")
	}
}

func TestMetrics_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}
