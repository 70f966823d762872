package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestSecurityHeadersSet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/profiles/1", nil)
	resp := httptest.NewRecorder()
	Security("/api-docs")(okHandler).ServeHTTP(resp, req)

	for _, kv := range securityHeaders {
		if got := resp.Header().Get(kv[0]); got != kv[1] {
			t.Errorf("expected %s: %s, got %q", kv[0], kv[1], got)
		}
	}
}

func TestSecuritySkipsPaths(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api-docs/index.html", nil)
	resp := httptest.NewRecorder()
	Security("/api-docs")(okHandler).ServeHTTP(resp, req)

	if got := resp.Header().Get("X-Frame-Options"); got != "" {
		t.Fatalf("expected no security headers on skipped path, got X-Frame-Options %q", got)
	}
}
