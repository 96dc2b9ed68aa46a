package i18n_test

import (
	"testing"

	"github.com/portfolio-cms-api/internal/i18n"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		locale string
		want   bool
	}{
		{"en", true},
		{"fa", true},
		{"", false},
		{"de", false},
		{"EN", false},
		{"en-US", false},
	}

	for _, tt := range tests {
		t.Run("locale_"+tt.locale, func(t *testing.T) {
			if got := i18n.IsValid(tt.locale); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.locale, got, tt.want)
			}
		})
	}
}

func TestAlternate(t *testing.T) {
	if got := i18n.Alternate("en"); got != "fa" {
		t.Errorf("Alternate(en) = %q, want fa", got)
	}
	if got := i18n.Alternate("fa"); got != "en" {
		t.Errorf("Alternate(fa) = %q, want en", got)
	}
	// Invalid locales fall back to the default
	if got := i18n.Alternate("de"); got != i18n.DefaultLocale {
		t.Errorf("Alternate(de) = %q, want %q", got, i18n.DefaultLocale)
	}
	if got := i18n.Alternate(""); got != i18n.DefaultLocale {
		t.Errorf("Alternate(\"\") = %q, want %q", got, i18n.DefaultLocale)
	}
}

func TestName(t *testing.T) {
	if got := i18n.Name("en"); got != "English" {
		t.Errorf("Name(en) = %q", got)
	}
	if got := i18n.Name("fa"); got != "فارسی" {
		t.Errorf("Name(fa) = %q", got)
	}
	// Unknown locales come back unchanged
	if got := i18n.Name("xx"); got != "xx" {
		t.Errorf("Name(xx) = %q, want xx", got)
	}
}

func TestDirection(t *testing.T) {
	if got := i18n.Direction("en"); got != "ltr" {
		t.Errorf("Direction(en) = %q, want ltr", got)
	}
	if got := i18n.Direction("fa"); got != "rtl" {
		t.Errorf("Direction(fa) = %q, want rtl", got)
	}
	if got := i18n.Direction("unknown"); got != "ltr" {
		t.Errorf("Direction(unknown) = %q, want ltr", got)
	}
}
