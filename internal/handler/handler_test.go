package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/handler"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/repository/memory"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/router"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/storage"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		Env:             "test",
		JWTSecret:       testSecret,
		AccessTTLMin:    15,
		BcryptCost:      4,
		DefaultAuthorID: 1,
	}
}

// newTestServer builds an Echo instance over in-memory stores with the
// real routes. The Redis client is nil so the cache middleware passes
// through; Publish is nil so no events leave the process.
func newTestServer(t *testing.T, cfg config.Config) (*echo.Echo, *handler.ContentHandler) {
	t.Helper()

	uploads, err := storage.NewUploads(t.TempDir())
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	h := &handler.ContentHandler{
		Home:                memory.NewHomeSectionStore(),
		Skills:              memory.NewSkillStore(),
		Services:            memory.NewServiceStore(),
		Testimonials:        memory.NewTestimonialStore(),
		Footer:              memory.NewFooterStore(model.Footer{CompanyName: "Acme", Email: "a@acme.test"}),
		ServicesSection:     memory.NewSectionStore("What I offer"),
		TestimonialsSection: memory.NewSectionStore("What clients say"),
		Uploads:             uploads,
		DefaultAuthorID:     cfg.DefaultAuthorID,
	}
	a := handler.NewAuthHandler(cfg, memory.NewUserStore())

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, a, cfg.JWTSecret)
	router.RegisterContent(e, h, cfg, nil)
	return e, h
}

func doJSON(e *echo.Echo, method, path string, body any, token string) *httptest.ResponseRecorder {
	var r *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		r = bytes.NewReader(raw)
	} else {
		r = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	rec := doJSON(e, http.MethodGet, "/healthz", nil, "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("health: %d %q", rec.Code, rec.Body.String())
	}
}

func TestSkillLifecycle(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := doJSON(e, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "icon": "🐹"}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", rec.Code, rec.Body.String())
	}
	var created model.Skill
	decode(t, rec, &created)
	if created.ID == 0 || !created.IsPublished {
		t.Fatalf("created skill wrong: %+v", created)
	}
	if created.AuthorID != 1 {
		t.Errorf("anonymous create should fall back to the default author, got %d", created.AuthorID)
	}

	// Partial update: only the name changes.
	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/skills/%d", created.ID), map[string]any{"name": "Golang"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("update: %d %s", rec.Code, rec.Body.String())
	}
	var updated model.Skill
	decode(t, rec, &updated)
	if updated.Name != "Golang" || updated.Icon != "🐹" {
		t.Fatalf("merge lost fields: %+v", updated)
	}

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/skills/%d/order", created.ID), map[string]any{"order": 7}, "")
	var ordered model.Skill
	decode(t, rec, &ordered)
	if ordered.SortOrder != 7 {
		t.Fatalf("order not applied: %+v", ordered)
	}

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/skills/%d/toggle-published", created.ID), nil, "")
	var toggled model.Skill
	decode(t, rec, &toggled)
	if toggled.IsPublished {
		t.Fatal("toggle should unpublish")
	}

	rec = doJSON(e, http.MethodGet, "/api/skills?published=true", nil, "")
	var visible []model.Skill
	decode(t, rec, &visible)
	if len(visible) != 0 {
		t.Fatalf("unpublished skill leaked to public list: %+v", visible)
	}

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/skills/%d", created.ID), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, fmt.Sprintf("/api/skills/%d", created.ID), nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: want 404, got %d", rec.Code)
	}
}

func TestSkillValidation(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := doJSON(e, http.MethodPost, "/api/skills", map[string]any{"name": "  "}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank name: want 400, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/api/skills/abc", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: want 400, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodPatch, "/api/skills/999", map[string]any{"name": "x"}, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing id: want 404, got %d", rec.Code)
	}
}

func TestSkillImageReplacedOnUpdate(t *testing.T) {
	e, h := newTestServer(t, testConfig())
	dir := h.Uploads.Dir()

	old := filepath.Join(dir, "old.png")
	if err := os.WriteFile(old, []byte("png"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	rec := doJSON(e, http.MethodPost, "/api/skills", map[string]any{"name": "Go", "imageUrl": "/uploads/old.png"}, "")
	var sk model.Skill
	decode(t, rec, &sk)

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/skills/%d", sk.ID), map[string]any{"imageUrl": "/uploads/new.png"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("update: %d", rec.Code)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("replaced image should be deleted, stat err=%v", err)
	}
}

func TestTestimonialStars(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	for _, stars := range []int{0, 6, -1} {
		rec := doJSON(e, http.MethodPost, "/api/testimonials",
			map[string]any{"name": "A", "feedback": "ok", "stars": stars}, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("stars=%d: want 400, got %d", stars, rec.Code)
		}
	}

	rec := doJSON(e, http.MethodPost, "/api/testimonials",
		map[string]any{"name": "A", "feedback": "ok", "stars": 5}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid create: %d %s", rec.Code, rec.Body.String())
	}
	var created model.Testimonial
	decode(t, rec, &created)

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/testimonials/%d", created.ID),
		map[string]any{"stars": 9}, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("patch stars=9: want 400, got %d", rec.Code)
	}
}

func TestHomeActiveFlow(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	// No sections yet: active endpoint answers 200 with a null section.
	rec := doJSON(e, http.MethodGet, "/api/home/active", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("active empty: %d", rec.Code)
	}
	var wrap struct {
		HomeSection *model.HomeSection `json:"homeSection"`
	}
	decode(t, rec, &wrap)
	if wrap.HomeSection != nil {
		t.Fatalf("want null section, got %+v", wrap.HomeSection)
	}

	rec = doJSON(e, http.MethodPost, "/api/home",
		map[string]any{"greeting": "Hi, I'm J", "roles": []string{"Dev", "Designer"}}, "")
	var first model.HomeSection
	decode(t, rec, &first)
	rec = doJSON(e, http.MethodPost, "/api/home", map[string]any{"greeting": "Hello"}, "")
	var second model.HomeSection
	decode(t, rec, &second)

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/home/%d/set-active", first.ID), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("set-active: %d %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/home/%d/set-active", second.ID), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("set-active second: %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/home/active", nil, "")
	decode(t, rec, &wrap)
	if wrap.HomeSection == nil || wrap.HomeSection.ID != second.ID {
		t.Fatalf("active should be the last activated: %+v", wrap.HomeSection)
	}

	rec = doJSON(e, http.MethodGet, "/api/home", nil, "")
	var all []model.HomeSection
	decode(t, rec, &all)
	active := 0
	for _, s := range all {
		if s.IsActive {
			active++
		}
	}
	if active != 1 {
		t.Fatalf("want exactly one active section, got %d", active)
	}

	rec = doJSON(e, http.MethodPatch, "/api/home/999/set-active", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("set-active missing: want 404, got %d", rec.Code)
	}
}

func TestSingletonSettings(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := doJSON(e, http.MethodGet, "/api/footer/active", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("footer active: %d", rec.Code)
	}
	var f model.Footer
	decode(t, rec, &f)
	if f.CompanyName != "Acme" {
		t.Fatalf("default footer content missing: %+v", f)
	}

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/footer/%d", f.ID),
		map[string]any{"phone": "+591 777"}, "")
	var patched model.Footer
	decode(t, rec, &patched)
	if patched.Phone != "+591 777" || patched.CompanyName != "Acme" {
		t.Fatalf("footer patch merge wrong: %+v", patched)
	}

	rec = doJSON(e, http.MethodGet, "/api/services-section/active", nil, "")
	var sec model.SectionConfig
	decode(t, rec, &sec)
	if sec.Subtitle != "What I offer" {
		t.Fatalf("services section default: %+v", sec)
	}

	rec = doJSON(e, http.MethodPatch, fmt.Sprintf("/api/testimonials-section/%d", 999),
		map[string]any{"subtitle": "x"}, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("patch missing section: want 404, got %d", rec.Code)
	}
}

func TestAuthFlow(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		map[string]any{"email": "Admin@Site.test", "name": "Admin", "password": "secret123", "role": "admin"}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", rec.Code, rec.Body.String())
	}
	var reg struct {
		User struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	decode(t, rec, &reg)
	if reg.User.Email != "admin@site.test" || reg.User.Role != "admin" || reg.Access.Token == "" {
		t.Fatalf("register response wrong: %+v", reg)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		map[string]any{"email": "admin@site.test", "password": "other"}, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: want 409, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		map[string]any{"email": "admin@site.test", "password": "wrong"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: want 401, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/login",
		map[string]any{"email": "admin@site.test", "password": "secret123"}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rec.Code, rec.Body.String())
	}
	var login struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	decode(t, rec, &login)

	rec = doJSON(e, http.MethodGet, "/api/auth/me", nil, login.Access.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: %d %s", rec.Code, rec.Body.String())
	}
	var me model.User
	decode(t, rec, &me)
	if me.Email != "admin@site.test" {
		t.Fatalf("me returned wrong user: %+v", me)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("password material leaked in /me response")
	}

	rec = doJSON(e, http.MethodGet, "/api/auth/me", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: want 401, got %d", rec.Code)
	}
}

func TestAuthRequiredGuardsMutations(t *testing.T) {
	cfg := testConfig()
	cfg.AuthRequired = true
	e, _ := newTestServer(t, cfg)

	// Reads stay open.
	rec := doJSON(e, http.MethodGet, "/api/skills", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("public read: %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/skills", map[string]any{"name": "Go"}, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: want 401, got %d", rec.Code)
	}

	// A plain user is rejected; an admin passes.
	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		map[string]any{"email": "user@site.test", "password": "secret123"}, "")
	var reg struct {
		Access struct {
			Token string `json:"token"`
		} `json:"access"`
	}
	decode(t, rec, &reg)
	rec = doJSON(e, http.MethodPost, "/api/skills", map[string]any{"name": "Go"}, reg.Access.Token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin create: want 403, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		map[string]any{"email": "root@site.test", "password": "secret123", "role": "admin"}, "")
	decode(t, rec, &reg)
	rec = doJSON(e, http.MethodPost, "/api/skills", map[string]any{"name": "Go"}, reg.Access.Token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create: want 201, got %d %s", rec.Code, rec.Body.String())
	}
}

func TestUploadImage(t *testing.T) {
	e, h := newTestServer(t, testConfig())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "avatar.png")
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if _, err := fw.Write([]byte("fake png bytes")); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", rec.Code, rec.Body.String())
	}
	var out struct {
		URL string `json:"url"`
	}
	decode(t, rec, &out)
	if !strings.HasPrefix(out.URL, "/uploads/") || !strings.HasSuffix(out.URL, ".png") {
		t.Fatalf("url shape wrong: %q", out.URL)
	}
	if _, err := os.Stat(filepath.Join(h.Uploads.Dir(), filepath.Base(out.URL))); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	// Disallowed extension.
	buf.Reset()
	mw = multipart.NewWriter(&buf)
	fw, _ = mw.CreateFormFile("file", "payload.exe")
	_, _ = fw.Write([]byte("nope"))
	_ = mw.Close()
	req = httptest.NewRequest(http.MethodPost, "/api/upload/image", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("exe upload: want 400, got %d", rec.Code)
	}
}
