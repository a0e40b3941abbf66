package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"0790454647",
		"0722334455",
		"+4790454647",
		"0745 123 456",
		"0745-123-456",
		"(0745)123456",
	}
	for _, phone := range valid {
		assert.Empty(t, ValidatePhone(phone), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"abc",
		"079045464",   // too short
		"07904546471", // too long
		"0190454647",  // not a mobile prefix
		"0700454647",  // not a mobile prefix
		"+4090454647", // not a mobile prefix
	}
	for _, phone := range invalid {
		assert.NotEmpty(t, ValidatePhone(phone), "expected %q to be rejected", phone)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Empty(t, ValidatePassword("Abcdef12"))

	cases := map[string]string{
		"":         "Password is required",
		"Ab1":      "Password must be at least 8 characters",
		"abcdefg1": "Password must contain at least one uppercase letter",
		"ABCDEFG1": "Password must contain at least one lowercase letter",
		"Abcdefgh": "Password must contain at least one digit",
	}
	for password, want := range cases {
		assert.Equal(t, want, ValidatePassword(password))
	}
}

func TestValidateName(t *testing.T) {
	assert.Empty(t, ValidateName("Ion Popescu"))
	assert.Empty(t, ValidateName("Ștefan-Vodă"))
	assert.NotEmpty(t, ValidateName(""))
	assert.NotEmpty(t, ValidateName("X"))
	assert.NotEmpty(t, ValidateName("Ion123"))
}

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, ValidateEmail("a@b.com"))
	assert.NotEmpty(t, ValidateEmail(""))
	assert.NotEmpty(t, ValidateEmail("not-an-email"))
	assert.NotEmpty(t, ValidateEmail("a b@c.com"))
}

func TestValidateLocation(t *testing.T) {
	assert.Empty(t, ValidateLocation("București"))
	assert.Empty(t, ValidateLocation("cluj-napoca"))
	assert.NotEmpty(t, ValidateLocation(""))
	assert.NotEmpty(t, ValidateLocation("Atlantis"))
}

func TestSuggestCities(t *testing.T) {
	assert.Nil(t, SuggestCities(""))
	assert.Nil(t, SuggestCities("   "))

	matches := SuggestCities("buc")
	assert.Contains(t, matches, "București")

	// Matching is substring based, not prefix based.
	matches = SuggestCities("oara")
	assert.Contains(t, matches, "Timișoara")

	// Never more than ten suggestions.
	assert.LessOrEqual(t, len(SuggestCities("a")), 10)
}
