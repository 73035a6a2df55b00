package contact

// Service identifies the offering a visitor is interested in.
// The zero value means no selection.
type Service string

const (
	ServiceNone          Service = ""
	ServiceSupport       Service = "soporte"
	ServiceConsulting    Service = "consultoria"
	ServiceAdvisory      Service = "asesoria"
	ServiceModernization Service = "modernizacion"
	ServiceAI            Service = "ia"
	ServiceProcesses     Service = "procesos"
)

// ServiceOption pairs a service identifier with its display label.
type ServiceOption struct {
	ID    Service
	Label string
}

var serviceOptions = []ServiceOption{
	{ID: ServiceNone, Label: "Selecciona un servicio"},
	{ID: ServiceSupport, Label: "Soporte IT"},
	{ID: ServiceConsulting, Label: "Consultoría"},
	{ID: ServiceAdvisory, Label: "Asesoría Personalizada"},
	{ID: ServiceModernization, Label: "Modernización IT"},
	{ID: ServiceAI, Label: "Herramientas de IA"},
	{ID: ServiceProcesses, Label: "Mejora de Procesos"},
}

// ServiceOptions returns the select options in display order,
// starting with the empty "unselected" entry.
func ServiceOptions() []ServiceOption {
	out := make([]ServiceOption, len(serviceOptions))
	copy(out, serviceOptions)
	return out
}

// ParseService returns the Service for id, or ErrUnknownService.
func ParseService(id string) (Service, error) {
	for _, opt := range serviceOptions {
		if string(opt.ID) == id {
			return opt.ID, nil
		}
	}
	return ServiceNone, ErrUnknownService
}

// Label returns the display label, or the raw identifier if unknown.
func (s Service) Label() string {
	for _, opt := range serviceOptions {
		if opt.ID == s {
			return opt.Label
		}
	}
	return string(s)
}

// Valid reports whether s is part of the fixed vocabulary.
func (s Service) Valid() bool {
	_, err := ParseService(string(s))
	return err == nil
}
