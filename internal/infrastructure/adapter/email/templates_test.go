package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hi Juan,", greeting("Juan"))
	assert.Equal(t, "Hi,", greeting(""))
}

func TestVerificationEmailHTML(t *testing.T) {
	html := verificationEmailHTML("Juan", "https://salapeso.app/verify-email?token=tok-abc")

	assert.Contains(t, html, "Hi Juan,")
	// The link appears both on the button and as a plain fallback
	assert.Equal(t, 2, strings.Count(html, "https://salapeso.app/verify-email?token=tok-abc"))
	assert.Contains(t, html, "Verify Email")
}

func TestPasswordResetEmailHTML(t *testing.T) {
	html := passwordResetEmailHTML("", "123456")

	assert.Contains(t, html, "Hi,")
	assert.Contains(t, html, "123456")
	assert.Contains(t, html, "reset your password")
}
