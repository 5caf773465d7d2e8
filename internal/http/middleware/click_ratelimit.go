package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// BonusFunc returns the player's click rate limit bonus from equipment
// and buffs.
type BonusFunc func(ctx context.Context, tgID int64) (int, error)

// ctxClickCount carries the clamped batch size to the handler when the
// request asked for more clicks than the window has left.
const ctxClickCount = "click_count"

// ClickRateLimit limits clicks per player (not per IP) using Redis.
// The effective limit is base plus the player's bonus, capped at maxLimit.
// The window is charged by the batch size from the request body, not by
// request count, so one request cannot smuggle an oversized batch through.
// When the batch exceeds the residual it is clamped and the clamped size is
// placed in the context for the handler. Requires JWT middleware to run
// before this.
func ClickRateLimit(base, maxLimit int, window time.Duration, bonusFor BonusFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil {
			// Redis not configured, fail-open
			c.Next()
			return
		}

		tgIDVal, exists := c.Get("tg_id")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		tgID, ok := tgIDVal.(int64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid user"})
			return
		}

		limit := base
		if bonusFor != nil {
			if bonus, err := bonusFor(c.Request.Context(), tgID); err == nil {
				limit += bonus
			}
		}
		if limit > maxLimit {
			limit = maxLimit
		}

		count := peekClickCount(c)

		key := "click_rl:" + strconv.FormatInt(tgID, 10)
		ctx := context.Background()

		val, err := redisClient.IncrBy(ctx, key, int64(count)).Result()
		if err != nil {
			c.Header("X-ClickRateLimit-Error", "redis-error")
			c.Next()
			return
		}
		prev := val - int64(count)

		if prev == 0 {
			redisClient.Expire(ctx, key, window)
		}

		c.Header("X-ClickRateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-ClickRateLimit-Remaining", strconv.FormatInt(max(0, int64(limit)-val), 10))

		if prev >= int64(limit) {
			RLBlocked.WithLabelValues("click:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "click rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		if residual := int64(limit) - prev; int64(count) > residual {
			c.Set(ctxClickCount, int(residual))
		}

		RLRequests.WithLabelValues("click:" + c.FullPath()).Inc()
		c.Next()
	}
}

// peekClickCount reads the batch size from the JSON body and puts the body
// back for the handler. Anything unparseable counts as a single click.
func peekClickCount(c *gin.Context) int {
	if c.Request.Body == nil {
		return 1
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return 1
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var req struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Count < 1 {
		return 1
	}
	return req.Count
}

// ClampedClickCount returns the batch size the limiter allowed, or reqCount
// when the limiter did not clamp (or is not configured).
func ClampedClickCount(c *gin.Context, reqCount int) int {
	v, ok := c.Get(ctxClickCount)
	if !ok {
		return reqCount
	}
	n, ok := v.(int)
	if !ok || n >= reqCount {
		return reqCount
	}
	return n
}

func max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
