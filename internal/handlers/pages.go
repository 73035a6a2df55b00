package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/a-h/templ"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/internal/content"
	"github.com/itopia/site/internal/views"
	"github.com/itopia/site/middlewares"
	"github.com/itopia/site/pkg/seo"
)

// languageMaxAge keeps an explicit language choice for a year.
const languageMaxAge = 365 * 24 * 60 * 60

// Pages serves the static content pages and the language switch.
type Pages struct {
	baseURL   string
	languages []string
	mw        []internal.Middleware
}

// NewPages creates the page handler. baseURL prefixes canonical links;
// languages are the accepted values of the language switch. mw wraps
// every page route.
func NewPages(baseURL string, languages []string, mw ...internal.Middleware) *Pages {
	return &Pages{baseURL: strings.TrimRight(baseURL, "/"), languages: languages, mw: mw}
}

// Routes implements internal.Handler.
func (p *Pages) Routes(r internal.Router) {
	r.GET(content.PathHome, p.page(content.PathHome, views.HomePage), p.mw...)
	r.GET(content.PathAbout, p.page(content.PathAbout, views.AboutPage), p.mw...)
	r.GET(content.PathServices, p.page(content.PathServices, views.ServicesPage), p.mw...)
	r.GET("/lang/{lang}", p.language, p.mw...)
}

func (p *Pages) page(path string, body func() templ.Component) internal.HandlerFunc {
	return func(c internal.Context) error {
		seo.SetPageMetadata(c, content.PageMeta(p.baseURL, path))
		return c.Render(http.StatusOK, views.Layout(path, body()))
	}
}

// language stores the chosen language and sends the visitor back to the
// page given by ?next=.
func (p *Pages) language(c internal.Context) error {
	lang := c.Param("lang")
	if !slices.Contains(p.languages, lang) {
		return internal.ErrNotFound("unknown language")
	}
	c.SetCookie(middlewares.LanguageCookie, lang, languageMaxAge)
	return c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

// safeNext keeps redirects on this site.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return content.PathHome
	}
	return next
}
