package site

import (
	"encoding/xml"
	"time"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// publicRoutes is the deterministic route table behind /sitemap.xml. Every
// entry is emitted once per supported locale.
var publicRoutes = []struct {
	Path       string
	ChangeFreq string
	Priority   string
}{
	{"/", "weekly", "1.0"},
	{"/kontakt", "monthly", "0.9"},
	{"/leistungen", "monthly", "0.8"},
	{"/team", "monthly", "0.7"},
	{"/faq", "monthly", "0.6"},
	{"/datenschutz", "yearly", "0.3"},
	{"/impressum", "yearly", "0.3"},
	{"/agb", "yearly", "0.3"},
}

type sitemapAlternate struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapURL struct {
	Loc        string             `xml:"loc"`
	LastMod    string             `xml:"lastmod"`
	ChangeFreq string             `xml:"changefreq"`
	Priority   string             `xml:"priority"`
	Alternates []sitemapAlternate `xml:"xhtml:link,omitempty"`
}

type urlSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsXHTML string       `xml:"xmlns:xhtml,attr"`
	URLs       []sitemapURL `xml:"url"`
}

// SitemapHandler serves the generated XML sitemap.
type SitemapHandler struct {
	baseURL string
	lastMod time.Time
}

// NewSitemapHandler builds the handler; lastmod is fixed to process start
// since the content only changes with deployments.
func NewSitemapHandler() *SitemapHandler {
	return &SitemapHandler{
		baseURL: configs.Get().BaseURL,
		lastMod: time.Now().UTC(),
	}
}

// NewSitemapHandlerWithBase injects base URL and lastmod (tests).
func NewSitemapHandlerWithBase(baseURL string, lastMod time.Time) *SitemapHandler {
	return &SitemapHandler{baseURL: baseURL, lastMod: lastMod}
}

func (h *SitemapHandler) localeURL(path string, loc i18n.Locale) string {
	if loc == i18n.DefaultLocale {
		return h.baseURL + path
	}
	return h.baseURL + path + "?lang=" + string(loc)
}

func (h *SitemapHandler) buildURLSet() urlSet {
	lastMod := h.lastMod.Format("2006-01-02")

	set := urlSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, route := range publicRoutes {
		var alternates []sitemapAlternate
		for _, loc := range i18n.SupportedLocales {
			if loc == i18n.DefaultLocale {
				continue
			}
			alternates = append(alternates, sitemapAlternate{
				Rel:      "alternate",
				HrefLang: string(loc),
				Href:     h.localeURL(route.Path, loc),
			})
		}
		for _, loc := range i18n.SupportedLocales {
			entry := sitemapURL{
				Loc:        h.localeURL(route.Path, loc),
				LastMod:    lastMod,
				ChangeFreq: route.ChangeFreq,
				Priority:   route.Priority,
			}
			if loc != i18n.DefaultLocale {
				entry.Alternates = alternates
			}
			set.URLs = append(set.URLs, entry)
		}
	}
	return set
}

// Sitemap handles GET /sitemap.xml.
func (h *SitemapHandler) Sitemap(c *fiber.Ctx) error {
	out, err := xml.MarshalIndent(h.buildURLSet(), "", "  ")
	if err != nil {
		configslog.Log.Error("Sitemap: marshalling failed", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.SendString(xml.Header + string(out))
}
