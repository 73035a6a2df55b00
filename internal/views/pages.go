package views

import (
	"net/http"
	"strconv"

	"github.com/itopia/site/internal/content"
)

// errorHero is the hero of an error page. Missing pages get their own copy.
func errorHero(code int, title, message string) content.Hero {
	if code == http.StatusNotFound {
		return content.NotFoundHero
	}
	return content.Hero{Title: strconv.Itoa(code), Subtitle: title, Lead: message}
}
