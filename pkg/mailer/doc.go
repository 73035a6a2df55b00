// Package mailer renders markdown email templates and sends them through a
// pluggable Sender.
//
// Templates are markdown files with optional YAML front matter:
//
//	---
//	subject: "Nuevo mensaje de {{.Name}}"
//	---
//	**Nombre:** {{.Name}}
//
//	[!button|Responder](mailto:{{.Email}})
//
// The body is executed with text/template, converted with goldmark and
// placed into an html/template layout as {{.Content}}. The plain text part
// is the converted body with every tag removed.
//
// Usage:
//
//	r := mailer.NewRenderer(templatesFS)
//	m := mailer.New(resend.New(resendCfg), r, mailer.Config{})
//	err := m.Send(ctx, mailer.Message{To: "inbox@example.com", Template: "contact.md", Data: data})
//
// Single newlines in the body become <br> in the HTML output.
package mailer
