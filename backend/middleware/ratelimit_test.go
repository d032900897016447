package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("first two requests should pass")
	}
	if rl.Allow("a") {
		t.Fatal("third request inside the window should be rejected")
	}
	if !rl.Allow("b") {
		t.Error("other keys have their own budget")
	}

	now = now.Add(61 * time.Second)
	if !rl.Allow("a") {
		t.Error("budget should refill after the window")
	}

	now = now.Add(5 * time.Minute)
	rl.cleanup()
	if len(rl.requests) != 0 {
		t.Errorf("idle keys should be dropped, have %d", len(rl.requests))
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(NewRateLimiter(1, time.Minute), func(*fiber.Ctx) string { return "k" }))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("first request status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", resp.StatusCode)
	}
}
