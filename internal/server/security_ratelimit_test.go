package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(DefaultRateLimit, DefaultRateLimitWindow)
	middleware := RateLimitMiddleware(nil, limiter)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("POST", "/inventario", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < DefaultRateLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	limiter.mu.Lock()
	count := limiter.requestCountByIP[ip]
	limiter.mu.Unlock()

	if count != DefaultRateLimit+1 {
		t.Errorf("expected count %d, got %d", DefaultRateLimit+1, count)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(2, time.Minute)
	limiter.now = func() time.Time { return now }

	if !limiter.Allow("ip") || !limiter.Allow("ip") {
		t.Fatal("first two requests should pass")
	}
	if limiter.Allow("ip") {
		t.Fatal("third request should be blocked")
	}
	if !limiter.Allow("other") {
		t.Fatal("limits are per IP")
	}

	now = now.Add(2 * time.Minute)
	if !limiter.Allow("ip") {
		t.Error("a new window should allow requests again")
	}
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct", "10.0.0.5:999", "", nil, "10.0.0.5"},
		{"untrusted proxy header ignored", "10.0.0.5:999", "1.2.3.4", nil, "10.0.0.5"},
		{"trusted proxy uses rightmost", "10.0.0.1:999", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.1:999", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}

			if got := extractIP(req, tt.trusted); got != tt.want {
				t.Errorf("extractIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
