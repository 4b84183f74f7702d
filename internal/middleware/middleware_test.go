package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/utils"
)

func run(mw echo.MiddlewareFunc, h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = mw(h)(c)
	return rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestJWTAuthRejectsMissingAndGarbage(t *testing.T) {
	mw := JWTAuth("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := run(mw, okHandler, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: want 401, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = run(mw, okHandler, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: want 401, got %d", rec.Code)
	}
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	at, err := utils.NewAccessToken("secret", 7, "admin", 5)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var gotUser, gotRole any
	h := func(c echo.Context) error {
		gotUser = c.Get("user_id")
		gotRole = c.Get("role")
		return c.NoContent(http.StatusOK)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec := run(JWTAuth("secret"), h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token rejected: %d", rec.Code)
	}
	// Numeric JSON claims come back as float64.
	if f, ok := gotUser.(float64); !ok || f != 7 {
		t.Errorf("user_id claim: %v", gotUser)
	}
	if gotRole != "admin" {
		t.Errorf("role claim: %v", gotRole)
	}
}

func TestOptionalJWTAuthLetsAnonymousThrough(t *testing.T) {
	var user any = "sentinel"
	h := func(c echo.Context) error {
		user = c.Get("user_id")
		return c.NoContent(http.StatusOK)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := run(OptionalJWTAuth("secret"), h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous: want 200, got %d", rec.Code)
	}
	if user != nil {
		t.Errorf("anonymous request should carry no user_id, got %v", user)
	}

	// Invalid tokens are ignored rather than rejected.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer junk")
	rec = run(OptionalJWTAuth("secret"), h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("junk token on optional route: want 200, got %d", rec.Code)
	}

	at, _ := utils.NewAccessToken("secret", 9, "user", 5)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec = run(OptionalJWTAuth("secret"), h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token: %d", rec.Code)
	}
	if f, ok := user.(float64); !ok || f != 9 {
		t.Errorf("valid token should set user_id, got %v", user)
	}
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole("admin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "user")
	_ = mw(okHandler)(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong role: want 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("role", "admin")
	_ = mw(okHandler)(c)
	if rec.Code != http.StatusOK {
		t.Fatalf("allowed role: want 200, got %d", rec.Code)
	}

	// Missing role claim entirely.
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	_ = mw(okHandler)(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("missing role: want 403, got %d", rec.Code)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, "X-Custom": {"a", "b"}}
	body := []byte(`[{"id":1}]`)

	raw, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(raw)
	if !ok {
		t.Fatal("decode failed")
	}
	if status != http.StatusOK {
		t.Errorf("status: %d", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Errorf("content type lost: %v", gotHdr)
	}
	if len(gotHdr["X-Custom"]) != 2 {
		t.Errorf("multi-value header lost: %v", gotHdr["X-Custom"])
	}
	if string(gotBody) != string(body) {
		t.Errorf("body: %q", gotBody)
	}
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, {0, 0, 0, 200, 0, 0, 0, 99}} {
		if _, _, _, ok := decodePayload(bs); ok {
			t.Errorf("accepted malformed payload %v", bs)
		}
	}
}

func TestRedisCacheNilClientPassThrough(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}
	mw := NewRedisCache(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	rec := run(mw, okHandler, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("pass-through broken: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Cache") != "" {
		t.Errorf("nil client must not advertise cache state")
	}
}

func TestCacheKeyDistinguishesPathParams(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "portfolio"}

	keyFor := func(target string) string {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		// Both requests resolve to the same registered route.
		c.SetPath("/api/skills/:id")
		c.SetParamNames("id")
		c.SetParamValues(target[len("/api/skills/"):])
		return cacheKey(cfg, c)
	}

	k1 := keyFor("/api/skills/1")
	k2 := keyFor("/api/skills/2")
	if k1 == k2 {
		t.Fatalf("different ids share cache key %s", k1)
	}
	if k1 != keyFor("/api/skills/1") {
		t.Error("key not stable for identical requests")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/skills?published=true", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/skills")
	if cacheKey(cfg, c) == k1 {
		t.Error("list and findOne share cache key")
	}
}
