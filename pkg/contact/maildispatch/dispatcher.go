package maildispatch

import (
	"context"
	"embed"
	"io/fs"
	"net/url"
	"strings"

	"github.com/itopia/site/pkg/contact"
	"github.com/itopia/site/pkg/mailer"
	"github.com/itopia/site/pkg/sanitizer"
)

//go:embed templates
var templates embed.FS

var templateFS = mustSub(templates, "templates")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic("maildispatch: " + err.Error())
	}
	return sub
}

const templateName = "contact.md"

// Config controls where notifications go.
type Config struct {
	To      string `env:"CONTACT_INBOX" envDefault:"contacto.itopia@gmail.com"`
	Subject string `env:"CONTACT_SUBJECT"` // overrides the template subject
}

// Dispatcher sends each submission as an email to the company inbox.
type Dispatcher struct {
	mailer *mailer.Mailer
	config Config
}

// New creates a Dispatcher that delivers through sender.
func New(sender mailer.Sender, cfg Config) *Dispatcher {
	return &Dispatcher{
		mailer: mailer.New(sender, mailer.NewRenderer(templateFS), mailer.Config{Layout: "base.html"}),
		config: cfg,
	}
}

type message struct {
	contact.TemplateParams
	Name     string // tag-free, unescaped; for the subject line
	ReplyURL string
}

// Submit implements contact.Dispatcher.
func (d *Dispatcher) Submit(ctx context.Context, draft contact.Draft) error {
	params := contact.NewTemplateParams(draft)
	// The inbox reads labels; the EmailJS payload keeps the raw id.
	service := params.Service
	if draft.Service != contact.ServiceNone {
		service = draft.Service.Label()
	}
	data := message{
		TemplateParams: contact.TemplateParams{
			FromName:  escape(params.FromName),
			FromEmail: escape(params.FromEmail),
			Company:   escape(params.Company),
			Phone:     escape(params.Phone),
			Service:   escape(service),
			Message:   escape(params.Message),
			ToName:    params.ToName,
		},
		Name:     sanitizer.PlainText(params.FromName),
		ReplyURL: "mailto:" + url.PathEscape(strings.TrimSpace(draft.Email)),
	}

	err := d.mailer.Send(ctx, mailer.Message{
		To:       d.config.To,
		ReplyTo:  strings.TrimSpace(draft.Email),
		Subject:  d.config.Subject,
		Template: templateName,
		Data:     data,
		Tags:     map[string]string{"source": "contact_form"},
	})
	if err != nil {
		return contact.NewDispatchError(err)
	}
	return nil
}

var _ contact.Dispatcher = (*Dispatcher)(nil)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`,
	`#`, `\#`, `&`, `\&`, `<`, `\<`, `>`, `\>`, `!`, `\!`, `|`, `\|`, `{`, `\{`, `}`, `\}`,
)

// escape strips HTML from visitor text and neutralises markdown syntax.
func escape(s string) string {
	return markdownEscaper.Replace(sanitizer.PlainText(s))
}
