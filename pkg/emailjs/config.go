package emailjs

// DefaultEndpoint is the public EmailJS API origin.
const DefaultEndpoint = "https://api.emailjs.com"

// Config holds EmailJS credentials.
// ServiceID, TemplateID and PublicKey are required; PrivateKey is only needed
// when the account enforces strict mode for server-side calls.
type Config struct {
	ServiceID  string `env:"EMAILJS_SERVICE_ID"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY"`
	PrivateKey string `env:"EMAILJS_PRIVATE_KEY"`
	Endpoint   string `env:"EMAILJS_ENDPOINT" envDefault:"https://api.emailjs.com"`
}

func (c Config) validate() error {
	if c.ServiceID == "" || c.TemplateID == "" || c.PublicKey == "" {
		return ErrMissingCredentials
	}
	return nil
}
