package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimitThrottlesConfiguredGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })

	router := gin.New()
	router.Use(RateLimit(RateLimitConfig{
		Rules: map[string]RateLimitRule{
			"AI": {Rate: 1, Burst: 2},
		},
		GroupFor: func(c *gin.Context) string { return "AI" },
		Limiter:  limiter,
	}))
	router.POST("/ai/ats-score", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() int {
		req := httptest.NewRequest(http.MethodPost, "/ai/ats-score", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp.Code
	}

	if code := do(); code != http.StatusOK {
		t.Fatalf("expected first request allowed, got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Fatalf("expected burst request allowed, got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}

	// Advancing the clock refills the bucket.
	now = now.Add(2 * time.Second)
	if code := do(); code != http.StatusOK {
		t.Fatalf("expected request allowed after refill, got %d", code)
	}
}

func TestRateLimitIgnoresUnconfiguredGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(RateLimitConfig{
		Rules: map[string]RateLimitRule{
			"AI": {Rate: 0.001, Burst: 1},
		},
		GroupFor: func(c *gin.Context) string { return "" },
	}))
	router.GET("/resumes", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected unthrottled route, got %d on request %d", resp.Code, i)
		}
	}
}
