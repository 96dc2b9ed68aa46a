package i18n_test

import (
	"reflect"
	"testing"

	"github.com/portfolio-cms-api/internal/i18n"
)

const base = "https://example.com"

func TestAlternateURLsFor_RootPath(t *testing.T) {
	urls := i18n.AlternateURLsFor("/", base)

	if urls.Canonical != "https://example.com/en/" {
		t.Errorf("canonical = %q, want https://example.com/en/", urls.Canonical)
	}
	if urls.Languages["fa"] != "https://example.com/fa/" {
		t.Errorf("languages[fa] = %q, want https://example.com/fa/", urls.Languages["fa"])
	}
	if urls.Languages[i18n.XDefault] != urls.Canonical {
		t.Errorf("x-default = %q, want canonical %q", urls.Languages[i18n.XDefault], urls.Canonical)
	}
}

func TestAlternateURLsFor_StripsLocalePrefix(t *testing.T) {
	urls := i18n.AlternateURLsFor("/en/blog/my-article", base)

	if urls.Languages["fa"] != "https://example.com/fa/blog/my-article" {
		t.Errorf("languages[fa] = %q, want no double locale segment", urls.Languages["fa"])
	}
	if urls.Languages["en"] != "https://example.com/en/blog/my-article" {
		t.Errorf("languages[en] = %q", urls.Languages["en"])
	}

	// Prefix-less input produces identical output
	plain := i18n.AlternateURLsFor("/blog/my-article", base)
	if !reflect.DeepEqual(urls, plain) {
		t.Errorf("locale-prefixed and plain paths diverge: %+v vs %+v", urls, plain)
	}
}

func TestAlternateURLsFor_StripsPrefixOnlyOnce(t *testing.T) {
	urls := i18n.AlternateURLsFor("/fa/en/docs", base)

	// Only the leading "fa" segment is stripped; the "en" that follows is
	// treated as part of the logical path.
	if urls.Languages["en"] != "https://example.com/en/en/docs" {
		t.Errorf("languages[en] = %q, want https://example.com/en/en/docs", urls.Languages["en"])
	}
}

func TestAlternateURLsFor_MissingLeadingSlash(t *testing.T) {
	urls := i18n.AlternateURLsFor("blog/post", base)

	if urls.Canonical != "https://example.com/en/blog/post" {
		t.Errorf("canonical = %q", urls.Canonical)
	}
}

func TestAlternateURLsFor_BaseURLTrailingSlash(t *testing.T) {
	urls := i18n.AlternateURLsFor("/blog", "https://example.com/")

	if urls.Canonical != "https://example.com/en/blog" {
		t.Errorf("canonical = %q, want exactly one slash between segments", urls.Canonical)
	}
}

func TestAlternateURLsFor_Deterministic(t *testing.T) {
	first := i18n.AlternateURLsFor("/en/blog/x", base)
	second := i18n.AlternateURLsFor("/en/blog/x", base)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverge: %+v vs %+v", first, second)
	}
}

func TestAlternateURLsFor_CoversAllLocales(t *testing.T) {
	urls := i18n.AlternateURLsFor("/projects", base)

	for _, locale := range i18n.Locales {
		if _, ok := urls.Languages[locale]; !ok {
			t.Errorf("missing languages entry for %q", locale)
		}
	}
	if len(urls.Languages) != len(i18n.Locales)+1 {
		t.Errorf("expected %d language entries, got %d", len(i18n.Locales)+1, len(urls.Languages))
	}
}
