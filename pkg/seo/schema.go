package seo

// Schema.org types used for the site's structured data.

const schemaContext = "https://schema.org"

// Organization is a schema.org Organization.
type Organization struct {
	Context      string        `json:"@context,omitempty"`
	Type         string        `json:"@type"`
	Name         string        `json:"name"`
	Description  string        `json:"description,omitempty"`
	URL          string        `json:"url,omitempty"`
	Logo         string        `json:"logo,omitempty"`
	ContactPoint *ContactPoint `json:"contactPoint,omitempty"`
	SameAs       []string      `json:"sameAs,omitempty"`
	ServiceType  []string      `json:"serviceType,omitempty"`
}

// ContactPoint is a schema.org ContactPoint.
type ContactPoint struct {
	Type              string `json:"@type"`
	ContactType       string `json:"contactType"`
	Email             string `json:"email,omitempty"`
	Telephone         string `json:"telephone,omitempty"`
	AvailableLanguage string `json:"availableLanguage,omitempty"`
}

// Service is a schema.org Service.
type Service struct {
	Context         string        `json:"@context,omitempty"`
	Type            string        `json:"@type"`
	Name            string        `json:"name"`
	Description     string        `json:"description,omitempty"`
	Provider        *Organization `json:"provider,omitempty"`
	ServiceType     string        `json:"serviceType,omitempty"`
	AreaServed      string        `json:"areaServed,omitempty"`
	HasOfferCatalog *OfferCatalog `json:"hasOfferCatalog,omitempty"`
}

// OfferCatalog is a schema.org OfferCatalog.
type OfferCatalog struct {
	Type            string  `json:"@type"`
	Name            string  `json:"name"`
	ItemListElement []Offer `json:"itemListElement"`
}

// Offer is a schema.org Offer of a service.
type Offer struct {
	Type        string  `json:"@type"`
	ItemOffered Service `json:"itemOffered"`
}

// NewOrganization returns a top-level Organization with @context set.
func NewOrganization(name, description, url string) Organization {
	return Organization{
		Context:     schemaContext,
		Type:        "Organization",
		Name:        name,
		Description: description,
		URL:         url,
	}
}

// NewService returns a top-level Service with @context set.
func NewService(name, description string) Service {
	return Service{Context: schemaContext, Type: "Service", Name: name, Description: description}
}

// NewOfferCatalog builds a catalog offering each named service.
func NewOfferCatalog(name string, items ...Service) *OfferCatalog {
	c := &OfferCatalog{Type: "OfferCatalog", Name: name, ItemListElement: make([]Offer, len(items))}
	for i, s := range items {
		s.Context = ""
		s.Type = "Service"
		c.ItemListElement[i] = Offer{Type: "Offer", ItemOffered: s}
	}
	return c
}
