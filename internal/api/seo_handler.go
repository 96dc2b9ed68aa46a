package api

import (
	"encoding/xml"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms-api/internal/config"
	"github.com/portfolio-cms-api/internal/i18n"
	"github.com/portfolio-cms-api/internal/repository"
	"github.com/rs/zerolog"
)

// SEOHandler serves locale metadata and the sitemap to the rendering layer
type SEOHandler struct {
	repos *repository.Repositories
	cfg   *config.SiteConfig
	log   zerolog.Logger
}

// NewSEOHandler creates a new SEOHandler
func NewSEOHandler(repos *repository.Repositories, cfg *config.SiteConfig, log zerolog.Logger) *SEOHandler {
	return &SEOHandler{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("handler", "seo").Logger(),
	}
}

// GetMeta handles GET /v1/meta. It returns the canonical URL, the
// alternate URL set and the locale's display attributes for a page.
func (h *SEOHandler) GetMeta(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	locale := requestLocale(c)

	urls := i18n.AlternateURLsFor(path, h.cfg.BaseURL)

	c.JSON(http.StatusOK, gin.H{
		"canonical": urls.Canonical,
		"languages": urls.Languages,
		"locale": gin.H{
			"code":      locale,
			"name":      i18n.Name(locale),
			"direction": i18n.Direction(locale),
			"alternate": i18n.Alternate(locale),
		},
	})
}

// sitemap XML shapes

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc   string      `xml:"loc"`
	Links []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// staticPaths are the fixed site pages included in the sitemap
var staticPaths = []string{"/", "/blog", "/projects", "/about"}

// Sitemap handles GET /sitemap.xml. Every logical page yields one entry
// per locale, each carrying the full hreflang alternate set.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	slugs, err := h.repos.Article.PublishedSlugs(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load slugs for sitemap")
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	paths := make([]string, 0, len(staticPaths)+len(slugs))
	paths = append(paths, staticPaths...)
	for _, slug := range slugs {
		paths = append(paths, "/blog/"+slug)
	}

	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}

	for _, path := range paths {
		urls := i18n.AlternateURLsFor(path, h.cfg.BaseURL)
		links := alternateLinks(urls)
		for _, locale := range i18n.Locales {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:   urls.Languages[locale],
				Links: links,
			})
		}
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, xml.Header)

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to marshal sitemap")
		return
	}
	c.Writer.Write(out)
}

// alternateLinks produces a deterministic hreflang link list
func alternateLinks(urls i18n.AlternateURLs) []xhtmlLink {
	keys := make([]string, 0, len(urls.Languages))
	for key := range urls.Languages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	links := make([]xhtmlLink, 0, len(keys))
	for _, key := range keys {
		links = append(links, xhtmlLink{
			Rel:      "alternate",
			Hreflang: key,
			Href:     urls.Languages[key],
		})
	}
	return links
}
