package views

import (
	"context"
	"errors"

	"github.com/itopia/site/internal/content"
	"github.com/itopia/site/pkg/contact"
	"github.com/itopia/site/pkg/form"
)

// ContactFormID is the DOM id of the contact form; the HTMX submit swaps it.
const ContactFormID = "contact-form"

// Contact form endpoints.
const (
	ContactSubmitPath = content.PathContact
	ContactDraftPath  = content.PathContact + "/draft"
)

// FormState is what the contact form needs to render.
type FormState struct {
	Draft    contact.Draft
	InFlight bool
}

// fieldVals is the hx-vals payload naming the autosaved field.
func fieldVals(f contact.Field) string {
	return `{"field":"` + string(f) + `"}`
}

// ContactToast is the toast for the outcome of a submit attempt.
func ContactToast(ctx context.Context, n form.Notice) Toast {
	tr := func(key string) string { return translate(ctx, "contact", key) }

	switch n.Kind {
	case form.NoticeSent:
		return Toast{Kind: ToastSuccess, Title: tr("toast.sent.title"), Description: tr("toast.sent.description")}
	case form.NoticeInvalid:
		reason := "errors.missing_required"
		if errors.Is(n.Err, contact.ErrInvalidEmail) {
			reason = "errors.invalid_email"
		}
		return Toast{Kind: ToastError, Title: tr("toast.invalid.title"), Description: tr(reason)}
	case form.NoticeBusy:
		return Toast{Kind: ToastError, Title: tr("toast.busy.title"), Description: tr("toast.busy.description")}
	default:
		return Toast{Kind: ToastError, Title: tr("toast.failed.title"), Description: tr("toast.failed.description")}
	}
}
