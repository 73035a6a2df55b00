package contact

import "strings"

// Placeholders substituted for optional fields left empty.
const (
	PlaceholderCompany = "No especificada"
	PlaceholderOther   = "No especificado"

	// Recipient is the fixed to_name sent with every submission.
	Recipient = "ITopIA"
)

// TemplateParams is the fixed-shape payload handed to the email provider.
type TemplateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	ToName    string `json:"to_name"`
}

// NewTemplateParams builds the provider payload for d.
// It does not validate d.
func NewTemplateParams(d Draft) TemplateParams {
	return TemplateParams{
		FromName:  d.Name,
		FromEmail: d.Email,
		Company:   orPlaceholder(d.Company, PlaceholderCompany),
		Phone:     orPlaceholder(d.Phone, PlaceholderOther),
		Service:   orPlaceholder(string(d.Service), PlaceholderOther),
		Message:   d.Message,
		ToName:    Recipient,
	}
}

// Map returns the payload keyed by provider field name.
func (p TemplateParams) Map() map[string]string {
	return map[string]string{
		"from_name":  p.FromName,
		"from_email": p.FromEmail,
		"company":    p.Company,
		"phone":      p.Phone,
		"service":    p.Service,
		"message":    p.Message,
		"to_name":    p.ToName,
	}
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
