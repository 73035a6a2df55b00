package mailer

import "errors"

var (
	ErrNoRecipient        = errors.New("mailer: at least one recipient is required")
	ErrNoSubject          = errors.New("mailer: subject is required")
	ErrNoContent          = errors.New("mailer: html body is required")
	ErrTemplateNotFound   = errors.New("mailer: template not found")
	ErrLayoutNotFound     = errors.New("mailer: layout not found")
	ErrRenderFailed       = errors.New("mailer: render failed")
	ErrSendFailed         = errors.New("mailer: send failed")
	ErrInvalidFrontmatter = errors.New("mailer: invalid front matter")
)
