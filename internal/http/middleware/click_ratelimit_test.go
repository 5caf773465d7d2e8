package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPeekClickCountRestoresBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/click", strings.NewReader(`{"count":42}`))

	if got := peekClickCount(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}

	// тело должно остаться читаемым для хендлера
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		t.Fatalf("body read failed: %v", err)
	}
	if string(body) != `{"count":42}` {
		t.Fatalf("body not restored: %q", body)
	}
}

func TestPeekClickCountGarbage(t *testing.T) {
	cases := []string{"", "not json", `{"count":0}`, `{"count":-5}`}
	for _, in := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/click", strings.NewReader(in))
		if got := peekClickCount(c); got != 1 {
			t.Fatalf("input %q: expected 1, got %d", in, got)
		}
	}
}

func TestClampedClickCount(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if got := ClampedClickCount(c, 7); got != 7 {
		t.Fatalf("no clamp set: expected 7, got %d", got)
	}

	c.Set(ctxClickCount, 3)
	if got := ClampedClickCount(c, 7); got != 3 {
		t.Fatalf("expected clamp to 3, got %d", got)
	}
	if got := ClampedClickCount(c, 2); got != 2 {
		t.Fatalf("clamp must not raise the count: expected 2, got %d", got)
	}
}
