package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_FirstEmailWins(t *testing.T) {
	text := "jane.doe@example.com\nreferences: other.person@example.org"

	info := Extract(text)
	assert.Equal(t, "jane.doe@example.com", info.Email)
}

func TestExtract_IndianPhone(t *testing.T) {
	info := Extract("Phone: +91 98765 43210")
	assert.Equal(t, "9876543210", info.Phone)
}

func TestExtract_USPhone(t *testing.T) {
	info := Extract("Call (555) 123-4567 anytime")
	assert.Equal(t, "5551234567", info.Phone)
}

func TestExtract_BareTenDigitPhone(t *testing.T) {
	info := Extract("reach me on 9876543210")
	assert.Equal(t, "9876543210", info.Phone)
}

func TestExtract_SocialLinksNormalized(t *testing.T) {
	text := "linkedin.com/in/jane-doe\nhttps://github.com/janedoe"

	info := Extract(text)
	assert.Equal(t, "https://linkedin.com/in/jane-doe", info.LinkedIn)
	assert.Equal(t, "https://github.com/janedoe", info.GitHub)
}

func TestExtract_NothingFound(t *testing.T) {
	info := Extract("no contact details here")
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}
