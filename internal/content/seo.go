package content

import (
	"strings"

	"github.com/itopia/site/pkg/seo"
)

var (
	HomeMeta = seo.Metadata{
		Title:         "ITopIA - Soporte IT, Consultoría IA y Modernización Tecnológica",
		Description:   "Expertos en soporte IT, inteligencia artificial y modernización tecnológica. Consultoría especializada, mejora de procesos y soluciones IA para empresas. ¡Consulta gratuita!",
		Keywords:      "soporte IT, inteligencia artificial, IA, consultoría tecnológica, modernización IT, mejora procesos, automatización, transformación digital, soporte técnico, asistencia tecnológica",
		OGTitle:       "ITopIA - Transformamos tu negocio con tecnología e inteligencia artificial",
		OGDescription: "Soporte especializado, consultoría personalizada y modernización IT para llevar tu empresa al futuro digital.",
	}
	ServicesMeta = seo.Metadata{
		Title:         "Servicios IT y Consultoría IA - Soporte Técnico Especializado | ITopIA",
		Description:   "Servicios profesionales de soporte IT, consultoría en inteligencia artificial, modernización tecnológica y mejora de procesos. Soluciones IA personalizadas para empresas.",
		Keywords:      "servicios IT, consultoría IA, soporte técnico 24/7, modernización tecnológica, automatización procesos, machine learning, análisis predictivo, migración nube, optimización sistemas",
		OGTitle:       "Servicios Profesionales de IT e Inteligencia Artificial",
		OGDescription: "Descubre nuestros servicios especializados: soporte IT 24/7, consultoría IA, modernización tecnológica y automatización de procesos.",
	}
	AboutMeta = seo.Metadata{
		Title:         "Sobre ITopIA - Expertos en Tecnología e Inteligencia Artificial",
		Description:   "Conoce a ITopIA, empresa especializada en soporte IT, consultoría en inteligencia artificial y modernización tecnológica. Experiencia y innovación para tu empresa.",
		Keywords:      "empresa IT, expertos IA, consultoría tecnológica, especialistas soporte técnico, innovación tecnológica, transformación digital empresarial",
		OGTitle:       "ITopIA - Tu socio tecnológico para la transformación digital",
		OGDescription: "Empresa líder en consultoría tecnológica e inteligencia artificial con experiencia comprobada en transformación digital.",
	}
	ContactMeta = seo.Metadata{
		Title:         "Contacto - Consulta Gratuita IT e IA | ITopIA",
		Description:   "Contáctanos para una consulta gratuita sobre soporte IT, consultoría en IA y modernización tecnológica. Estamos listos para transformar tu empresa.",
		Keywords:      "contacto IT, consulta gratuita IA, asesoría tecnológica, soporte técnico empresarial, consultoría inteligencia artificial",
		OGTitle:       "Contáctanos - Consulta Gratuita en Tecnología e IA",
		OGDescription: "¿Listo para transformar tu empresa? Contáctanos para una consulta gratuita y descubre cómo podemos ayudarte.",
	}
	NotFoundMeta = seo.Metadata{
		Title: "Página no encontrada | ITopIA",
	}
)

// Defaults returns the site-wide metadata for a deployment served from
// baseURL. The Organization schema is attached to every page.
func Defaults(baseURL string) seo.Metadata {
	baseURL = strings.TrimRight(baseURL, "/")
	m := HomeMeta
	m.OGTitle = ""
	m.OGDescription = ""
	m.JSONLD = []any{Organization(baseURL)}
	if baseURL != "" {
		m.OGImage = baseURL + "/static/og.png"
	}
	return m
}

// Organization is the JSON-LD describing the company.
func Organization(baseURL string) seo.Organization {
	org := seo.NewOrganization(SiteName,
		"Empresa especializada en soporte IT, consultoría en inteligencia artificial y modernización tecnológica",
		baseURL)
	if baseURL != "" {
		org.Logo = baseURL + "/static/favicon.ico"
	}
	org.ContactPoint = &seo.ContactPoint{
		Type:              "ContactPoint",
		ContactType:       "customer service",
		Email:             ContactEmail,
		AvailableLanguage: "Spanish",
	}
	org.ServiceType = []string{
		"Soporte IT",
		"Consultoría en Inteligencia Artificial",
		"Modernización Tecnológica",
		"Automatización de Procesos",
		"Transformación Digital",
	}
	return org
}

// ServiceCatalog is the JSON-LD for the services page.
func ServiceCatalog() seo.Service {
	svc := seo.NewService("Servicios de Soporte IT y Consultoría IA",
		"Servicios profesionales de soporte IT, consultoría en inteligencia artificial, modernización tecnológica y mejora de procesos")
	svc.Provider = &seo.Organization{Type: "Organization", Name: SiteName}
	svc.ServiceType = "Technology Consulting"
	svc.AreaServed = "Global"
	svc.HasOfferCatalog = seo.NewOfferCatalog("Servicios IT e IA",
		seo.NewService("Soporte IT Especializado", "Mantenimiento preventivo y correctivo de infraestructura tecnológica. Soporte técnico 24/7"),
		seo.NewService("Consultoría Estratégica", "Análisis y diseño de estrategias tecnológicas alineadas con los objetivos de tu negocio"),
		seo.NewService("Herramientas de IA", "Implementación de soluciones de inteligencia artificial adaptadas a tu industria"),
	)
	return svc
}

// PageMeta returns the metadata of the page at path with its canonical URL.
func PageMeta(baseURL, path string) seo.Metadata {
	var m seo.Metadata
	switch path {
	case PathHome:
		m = HomeMeta
	case PathAbout:
		m = AboutMeta
	case PathServices:
		m = ServicesMeta
		m.JSONLD = []any{ServiceCatalog()}
	case PathContact:
		m = ContactMeta
	default:
		return NotFoundMeta
	}
	if baseURL != "" {
		m.Canonical = strings.TrimRight(baseURL, "/") + path
	}
	return m
}
