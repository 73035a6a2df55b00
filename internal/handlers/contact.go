package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/itopia/site/internal"
	"github.com/itopia/site/internal/content"
	"github.com/itopia/site/internal/views"
	"github.com/itopia/site/middlewares"
	"github.com/itopia/site/pkg/contact"
	"github.com/itopia/site/pkg/cookie"
	"github.com/itopia/site/pkg/form"
	"github.com/itopia/site/pkg/htmx"
	"github.com/itopia/site/pkg/seo"
)

// FlashToast is the flash key carrying the outcome of a plain form post
// across the redirect.
const FlashToast = "contact_toast"

// ToastEvent is the client event fired with every toast.
const ToastEvent = "toast"

// Contact serves the contact page and the form endpoints. Each visitor
// gets its own form.Holder from the registry.
type Contact struct {
	forms   *form.Registry
	baseURL string
	mw      []internal.Middleware
}

// NewContact creates the contact handler. mw wraps the page and the
// autosave endpoint but not the submit endpoint: a submission must answer
// with the dispatcher's real outcome however long it takes.
func NewContact(forms *form.Registry, baseURL string, mw ...internal.Middleware) *Contact {
	return &Contact{forms: forms, baseURL: strings.TrimRight(baseURL, "/"), mw: mw}
}

// Routes implements internal.Handler.
func (h *Contact) Routes(r internal.Router) {
	r.GET(content.PathContact, h.show, h.mw...)
	r.POST(views.ContactDraftPath, h.draft, h.mw...)
	r.POST(views.ContactSubmitPath, h.submit)
}

func (h *Contact) holder(c internal.Context) (*form.Holder, error) {
	id := middlewares.GetVisitorID(c)
	if id == "" {
		return nil, internal.ErrBadRequest("missing visitor", internal.WithError(errors.New("visitor middleware not installed")))
	}
	return h.forms.Holder(c, id)
}

// show renders the contact page with the visitor's draft and any toast
// left by a previous plain form post.
func (h *Contact) show(c internal.Context) error {
	fh, err := h.holder(c)
	if err != nil {
		return err
	}

	var toasts []views.Toast
	var t views.Toast
	switch err := c.Flash(FlashToast, &t); {
	case err == nil:
		toasts = append(toasts, t)
	case !errors.Is(err, cookie.ErrNotFound):
		c.LogDebug("contact flash ignored", "error", err)
	}

	seo.SetPageMetadata(c, content.PageMeta(h.baseURL, content.PathContact))
	state := views.FormState{Draft: fh.Draft(), InFlight: fh.InFlight()}
	return c.Render(http.StatusOK, views.Layout(content.PathContact, views.ContactPage(state), toasts...))
}

// draft autosaves one field. The field is named by "field"; its value is
// read from "value", or from the form value named after the field.
func (h *Contact) draft(c internal.Context) error {
	fh, err := h.holder(c)
	if err != nil {
		return err
	}

	field, err := contact.ParseField(c.Form("field"))
	if err != nil {
		return internal.ErrBadRequest("unknown field", internal.WithError(err))
	}
	value := c.Form(string(field))
	if v, ok := c.Request().Form["value"]; ok && len(v) > 0 {
		value = v[0]
	}

	if err := fh.Update(c, field, value); err != nil {
		return internal.ErrBadRequest("invalid value", internal.WithError(err))
	}
	return c.NoContent(http.StatusNoContent)
}

// submit applies every posted field and submits the draft. HTMX requests
// get the re-rendered form and a toast; plain posts get a flash toast and
// a redirect back to the contact page.
func (h *Contact) submit(c internal.Context) error {
	fh, err := h.holder(c)
	if err != nil {
		return err
	}

	if err := c.Request().ParseForm(); err != nil {
		return internal.ErrBadRequest("malformed form", internal.WithError(err))
	}
	for _, f := range contact.Fields() {
		vs, ok := c.Request().PostForm[string(f)]
		if !ok || len(vs) == 0 {
			continue
		}
		if err := fh.Update(c, f, vs[0]); err != nil {
			return internal.ErrBadRequest("invalid value", internal.WithError(err))
		}
	}

	var notice form.Notice
	// Submit reports every outcome through the notifier.
	_ = fh.Submit(c, form.NotifierFunc(func(_ context.Context, n form.Notice) {
		notice = n
	}))
	toast := views.ContactToast(c, notice)

	if c.IsHTMX() {
		state := views.FormState{Draft: fh.Draft(), InFlight: fh.InFlight()}
		return c.Render(http.StatusOK, views.ContactForm(state),
			htmx.WithEvent(ToastEvent, toast),
			htmx.WithOOB(views.ToastOOB(toast)),
		)
	}

	if err := c.SetFlash(FlashToast, toast); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, content.PathContact)
}
