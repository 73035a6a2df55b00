// Package contact holds the contact form domain: the draft a visitor fills in,
// the fixed service vocabulary, validation and the provider payload.
//
// Validation is a pure classification of a Draft:
//
//	if err := contact.Validate(d); err != nil {
//		// errors.Is(err, contact.ErrMissingRequired) or contact.ErrInvalidEmail
//	}
//
// Delivery is abstracted behind Dispatcher. Implementations live in
// pkg/emailjs (EmailJS REST API) and pkg/contact/maildispatch (transactional
// email through pkg/mailer). Both build their request from TemplateParams,
// which substitutes "No especificada" / "No especificado" for empty optional
// fields.
package contact
