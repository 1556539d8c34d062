package api

import "testing"

func TestBuildURL_SubstitutesParams(t *testing.T) {
	got := BuildURL("/api/countries/:id/destinations", map[string]string{"id": "7"})
	if got != "/api/countries/7/destinations" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestBuildURL_MultipleParams(t *testing.T) {
	got := BuildURL("/api/favorites/check/:type/:id", map[string]string{
		"type": "destination",
		"id":   "42",
	})
	if got != "/api/favorites/check/destination/42" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestBuildURL_LeavesUnmatchedTokens(t *testing.T) {
	got := BuildURL("/api/countries/:id", map[string]string{"other": "1"})
	if got != "/api/countries/:id" {
		t.Fatalf("expected untouched template, got %s", got)
	}
}

func TestBuildURL_NoParams(t *testing.T) {
	got := BuildURL("/api/countries", nil)
	if got != "/api/countries" {
		t.Fatalf("unexpected url: %s", got)
	}
}

func TestGet_KnownRoutes(t *testing.T) {
	for name, want := range Routes {
		r := Get(name)
		if r != want {
			t.Fatalf("Get(%s) = %+v, want %+v", name, r, want)
		}
		if r.Method == "" || r.Path == "" {
			t.Fatalf("route %s has empty method or path", name)
		}
	}
}

func TestGet_UnknownRoutePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown route")
		}
	}()
	Get("nope")
}
