package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jhasmany-fernandez/portfolio-backend/internal/config"
	"github.com/jhasmany-fernandez/portfolio-backend/internal/model"
)

func TestTagForPath(t *testing.T) {
	cases := map[string]string{
		"/api/skills":                    TagSkills,
		"/api/skills/3/toggle-published": TagSkills,
		"/api/home/2/set-active":         TagHome,
		"/api/services-section/1":        TagServicesSection,
		"/api/footer/1":                  TagFooter,
		"/api/upload/image":              "",
		"/api/auth/login":                "",
	}
	for path, want := range cases {
		if got := tagForPath(path); got != want {
			t.Errorf("tagForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestTagCache(t *testing.T) {
	tc := NewTagCache(time.Minute)
	calls := 0
	fetch := func() (any, error) { calls++; return calls, nil }

	v, err := tc.Get("skills", fetch)
	if err != nil || v.(int) != 1 {
		t.Fatalf("first get: %v %v", v, err)
	}
	v, _ = tc.Get("skills", fetch)
	if v.(int) != 1 {
		t.Fatal("second get should hit the cache")
	}

	tc.Invalidate("skills")
	v, _ = tc.Get("skills", fetch)
	if v.(int) != 2 {
		t.Fatal("invalidate should force a refetch")
	}
}

// stubAPI fakes the content API for frontend tests.
func stubAPI(t *testing.T, skillHits *int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
	mux.HandleFunc("/api/home/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"homeSection": model.HomeSection{
			ID: 1, Greeting: "Hi, I'm Test", Roles: []string{"Dev"}, IsActive: true,
		}})
	})
	mux.HandleFunc("/api/home", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.HomeSection{{ID: 1, Greeting: "Hi, I'm Test", IsActive: true}})
	})
	mux.HandleFunc("/api/skills", func(w http.ResponseWriter, r *http.Request) {
		if skillHits != nil {
			atomic.AddInt32(skillHits, 1)
		}
		writeJSON(w, []model.Skill{{ID: 1, Name: "Go", IsPublished: true}})
	})
	mux.HandleFunc("/api/skills/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			writeJSON(w, map[string]string{"message": "skill deleted"})
			return
		}
		writeJSON(w, model.Skill{ID: 1, Name: "Go"})
	})
	mux.HandleFunc("/api/services", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Service{})
	})
	mux.HandleFunc("/api/testimonials", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []model.Testimonial{{ID: 1, Name: "Jane", Feedback: "Great work", Stars: 5}})
	})
	mux.HandleFunc("/api/footer/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, model.Footer{ID: 1, CompanyName: "Acme Dev", Email: "hi@acme.test", IsActive: true})
	})
	mux.HandleFunc("/api/services-section/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, model.SectionConfig{ID: 1, Subtitle: "What I offer", IsActive: true})
	})
	mux.HandleFunc("/api/testimonials-section/active", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, model.SectionConfig{ID: 1, Subtitle: "What clients say", IsActive: true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestWeb(t *testing.T, apiBase string) (*echo.Echo, *Server) {
	t.Helper()
	srv, err := NewServer(config.WebConfig{
		Port:        "0",
		APIBaseURL:  apiBase,
		PollSeconds: 5,
		CacheTTLSec: 60,
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	e := echo.New()
	srv.Register(e)
	return e, srv
}

func TestIndexRendersSections(t *testing.T) {
	api := stubAPI(t, nil)
	e, _ := newTestWeb(t, api.URL)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("index: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Hi, I&#39;m Test", "Go", "Great work", "Acme Dev", "What I offer"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestDashboardUsesTagCacheAndProxyInvalidates(t *testing.T) {
	var skillHits int32
	api := stubAPI(t, &skillHits)
	e, _ := newTestWeb(t, api.URL)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	if rec := get("/dashboard/skills"); rec.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", rec.Code)
	}
	if rec := get("/dashboard/skills"); rec.Code != http.StatusOK {
		t.Fatalf("dashboard second: %d", rec.Code)
	}
	if n := atomic.LoadInt32(&skillHits); n != 1 {
		t.Fatalf("second render should hit the cache, backend saw %d reads", n)
	}

	// A mutation through the proxy drops the tag.
	req := httptest.NewRequest(http.MethodDelete, "/api/skills/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("proxy delete: %d %s", rec.Code, rec.Body.String())
	}

	if rec := get("/dashboard/skills"); rec.Code != http.StatusOK {
		t.Fatalf("dashboard after delete: %d", rec.Code)
	}
	if n := atomic.LoadInt32(&skillHits); n != 2 {
		t.Fatalf("mutation should invalidate the tag, backend saw %d reads", n)
	}
}

func TestProxyForwardsQueryAndStatus(t *testing.T) {
	api := stubAPI(t, nil)
	e, _ := newTestWeb(t, api.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/skills?published=true", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("proxy get: %d", rec.Code)
	}
	var items []model.Skill
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil || len(items) != 1 {
		t.Fatalf("proxied body wrong: %q err=%v", rec.Body.String(), err)
	}
}

func TestProxyUnreachableBackend(t *testing.T) {
	e, _ := newTestWeb(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("dead backend: want 502, got %d", rec.Code)
	}
}
