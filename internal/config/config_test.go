package config

import (
	"testing"
	"time"
)

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, head ,POST")
	for _, want := range []string{"GET", "HEAD", "POST"} {
		if !m[want] {
			t.Errorf("missing %s in %v", want, m)
		}
	}
	if len(parseMethods("")) != 0 {
		t.Error("empty input should yield no methods")
	}
}

func TestParseDur(t *testing.T) {
	if d := parseDur("45s"); d != 45*time.Second {
		t.Errorf("45s parsed as %v", d)
	}
	// Malformed durations fall back to one second instead of zero,
	// which would disable expiry.
	if d := parseDur("nonsense"); d != time.Second {
		t.Errorf("fallback duration: %v", d)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("cache should default to enabled")
	}
	if !cfg.Methods["GET"] {
		t.Errorf("GET should be cacheable by default: %v", cfg.Methods)
	}
	if cfg.Prefix == "" {
		t.Error("prefix must never be empty, invalidation scans depend on it")
	}
}

func TestLoadWebDefaults(t *testing.T) {
	cfg := LoadWeb()
	if cfg.Port == "" || cfg.APIBaseURL == "" {
		t.Fatalf("web defaults missing: %+v", cfg)
	}
	if cfg.PollSeconds <= 0 {
		t.Errorf("poll interval must be positive: %d", cfg.PollSeconds)
	}
}

func TestIntenv(t *testing.T) {
	t.Setenv("TEST_INT", "25")
	if v := intenv("TEST_INT", 60); v != 25 {
		t.Errorf("valid value: got %d", v)
	}

	// Typos like "6O" must keep the default, not collapse to zero.
	t.Setenv("TEST_INT", "6O")
	if v := intenv("TEST_INT", 60); v != 60 {
		t.Errorf("malformed value: got %d, want default 60", v)
	}

	t.Setenv("TEST_INT", "")
	if v := intenv("TEST_INT", 10); v != 10 {
		t.Errorf("unset value: got %d, want default 10", v)
	}
}
