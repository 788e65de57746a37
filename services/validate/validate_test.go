package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "John Doe", "John Doe"},
		{"trims whitespace", "  John Doe  ", "John Doe"},
		{"strips html tags", "<script>alert(1)</script>John", "alert(1)John"},
		{"strips special characters", `O<>'"&Neil`, "ONeil"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"John Doe",
		"  <b>bold</b> claim  ",
		`quotes "and" <angles>`,
		"Mary-Jane O'Brien",
		"",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "sanitize must be idempotent for %q", input)
	}
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("Mary-Jane O'Brien"))
	assert.NoError(t, Name("John Doe"))

	assert.Error(t, Name(""), "empty")
	assert.Error(t, Name("A"), "too short")
	assert.Error(t, Name("John123"), "digits are not allowed")
	assert.Error(t, Name(strings.Repeat("a", 101)), "too long")

	// Length is checked after sanitization.
	assert.Error(t, Name("<b>A</b>"))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("person@example.co.uk"))
	assert.NoError(t, Email("Person@Example.COM"), "case is normalized before matching")

	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("missing@tld"))
	assert.Error(t, Email(strings.Repeat("a", 250)+"@b.co"), "over 254 characters")
}

func TestPhone(t *testing.T) {
	assert.NoError(t, Phone("+447911123456"))
	assert.NoError(t, Phone("07911123456"))
	assert.NoError(t, Phone("447911123456"))
	assert.NoError(t, Phone("+44 7911 123-456"), "separators are stripped before matching")
	assert.NoError(t, Phone("(020) 7946 0958"), "generic national number")

	assert.Error(t, Phone(""))
	assert.Error(t, Phone("12345"), "too short")
	assert.Error(t, Phone("not a number"))
}

func TestNormalization(t *testing.T) {
	assert.Equal(t, "person@example.co.uk", NormalizeEmail(" Person@Example.co.uk "))
	assert.Equal(t, "+447911123456", NormalizePhone("+44 7911 (123) 456"))
}

func TestContact(t *testing.T) {
	assert.Empty(t, Contact("Mary-Jane O'Brien", "person@example.co.uk", "07911123456"))

	errs := Contact("A", "not-an-email", "12345")
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")

	errs = Contact("John Doe", "john@example.com", "12345")
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "phone")
}
