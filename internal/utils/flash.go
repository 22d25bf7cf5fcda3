package utils

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FlashCookie is the cookie carrying the one-shot admin notice consumed by
// the page layer on the next render.
const FlashCookie = "admin_notice"

// SetFlash stores a one-shot success notice for the next page render. The
// value is URL-encoded so messages with spaces survive cookie syntax.
func SetFlash(c *fiber.Ctx, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     FlashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
	})
}

// ConsumeFlash returns the pending notice, if any, and clears the cookie.
func ConsumeFlash(c *fiber.Ctx) string {
	raw := c.Cookies(FlashCookie)
	if raw == "" {
		return ""
	}
	c.ClearCookie(FlashCookie)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

// WantsJSON reports whether the caller expects a structured status payload
// instead of a full-page redirect.
func WantsJSON(c *fiber.Ctx) bool {
	if c.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// MutationSuccess finishes a mutating page/AJAX request: AJAX callers get
// {status, message}; page callers get a flash notice and a redirect back to
// the referring page.
func MutationSuccess(c *fiber.Ctx, message string) error {
	if WantsJSON(c) {
		return c.JSON(fiber.Map{
			"status":  1,
			"message": message,
		})
	}

	SetFlash(c, message)
	return c.RedirectBack("/")
}
