package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// Integration-style test: runs only if REDIS_ADDR env is set.
func TestRedisRateLimitIntegration(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	pass := os.Getenv("REDIS_PASSWORD")
	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			db = n
		}
	}

	InitRedisRateLimiter(addr, pass, db)

	w := 2 * time.Second
	limit := 2

	r := gin.New()
	r.GET("/test", RedisRateLimit(limit, w), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	client := &http.Client{}

	for i := 0; i < limit; i++ {
		req, _ := http.NewRequest("GET", srv.URL+"/test", nil)
		res, err := client.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != 200 {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
	}

	req, _ := http.NewRequest("GET", srv.URL+"/test", nil)
	res, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 429 {
		t.Fatalf("expected 429 got %d", res.StatusCode)
	}
}

// One request with an oversized batch must not pass the whole batch through:
// the window is charged by count, the handler gets at most the residual.
func TestClickRateLimitChargesBatchSize(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set; skipping integration test")
	}
	InitRedisRateLimiter(addr, os.Getenv("REDIS_PASSWORD"), 0)

	tgID := time.Now().UnixNano()
	limit := 5

	var applied int
	r := gin.New()
	r.POST("/click", func(c *gin.Context) {
		c.Set("tg_id", tgID)
		c.Next()
	}, ClickRateLimit(limit, limit, time.Minute, nil), func(c *gin.Context) {
		var req struct {
			Count int `json:"count"`
		}
		if err := c.BindJSON(&req); err != nil || req.Count < 1 {
			req.Count = 1
		}
		applied = ClampedClickCount(c, req.Count)
		c.JSON(200, gin.H{"count": applied})
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	res, err := http.Post(srv.URL+"/click", "application/json", strings.NewReader(`{"count":100000}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if applied != limit {
		t.Fatalf("expected batch clamped to %d, got %d", limit, applied)
	}

	// window is saturated now, the next request must be rejected
	res, err = http.Post(srv.URL+"/click", "application/json", strings.NewReader(`{"count":1}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 429 {
		t.Fatalf("expected 429 got %d", res.StatusCode)
	}
}

// Without Redis the limiter must fail open.
func TestClickRateLimitFailOpen(t *testing.T) {
	saved := redisClient
	redisClient = nil
	defer func() { redisClient = saved }()

	r := gin.New()
	r.POST("/click", func(c *gin.Context) {
		c.Set("tg_id", int64(1))
		c.Next()
	}, ClickRateLimit(1, 2, time.Second, nil), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	for i := 0; i < 5; i++ {
		res, err := http.Post(srv.URL+"/click", "application/json", nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if res.StatusCode != 200 {
			t.Fatalf("expected fail-open 200, got %d", res.StatusCode)
		}
	}
}
