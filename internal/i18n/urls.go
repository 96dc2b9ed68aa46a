package i18n

import (
	"strings"
)

// XDefault is the hreflang key for the default-locale fallback URL
const XDefault = "x-default"

// AlternateURLs maps a logical page to its per-locale URLs. Canonical is
// the default-locale URL; Languages holds one entry per supported locale
// plus the "x-default" key.
type AlternateURLs struct {
	Canonical string            `json:"canonical"`
	Languages map[string]string `json:"languages"`
}

// AlternateURLsFor builds the full alternate URL set for a path.
//
// Any leading supported-locale segment is stripped exactly once, so
// "/en/blog/x" and "/blog/x" produce identical output. The root path "/"
// keeps its trailing slash ("{base}/en/"). Paths lacking a leading slash
// are normalized rather than rejected.
func AlternateURLsFor(path, baseURL string) AlternateURLs {
	path = stripLocalePrefix(normalizePath(path))
	base := strings.TrimRight(baseURL, "/")

	languages := make(map[string]string, len(Locales)+1)
	for _, locale := range Locales {
		languages[locale] = base + "/" + locale + path
	}
	canonical := languages[DefaultLocale]
	languages[XDefault] = canonical

	return AlternateURLs{
		Canonical: canonical,
		Languages: languages,
	}
}

func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// stripLocalePrefix removes one leading "/{locale}" segment when the
// segment is a supported locale. It never recurses: "/fa/en/x" becomes
// "/en/x", not "/x".
func stripLocalePrefix(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == path {
		return path
	}

	seg := trimmed
	rest := ""
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		seg = trimmed[:i]
		rest = trimmed[i:]
	}

	if IsValid(seg) {
		return rest
	}
	return path
}
