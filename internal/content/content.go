// Package content holds the static copy of the site pages.
package content

// Page paths.
const (
	PathHome     = "/"
	PathAbout    = "/about"
	PathServices = "/services"
	PathContact  = "/contact"
)

// SiteName is the brand shown in the header and structured data.
const SiteName = "ITopIA"

// NavItem is one header link. Key is the i18n key of its label.
type NavItem struct {
	Key  string
	Path string
}

// Nav lists the header links in display order.
var Nav = []NavItem{
	{Key: "home", Path: PathHome},
	{Key: "about", Path: PathAbout},
	{Key: "services", Path: PathServices},
	{Key: "contact", Path: PathContact},
}

// Card is a titled block with an icon.
type Card struct {
	Icon        string
	Title       string
	Description string
	Features    []string
}

// Stat is a highlighted figure.
type Stat struct {
	Value string
	Label string
}

// InfoItem is one line of the contact information card.
type InfoItem struct {
	Icon  string
	Title string
	Value string
}

// Hero is the heading block at the top of a page.
type Hero struct {
	Title    string
	Subtitle string
	Lead     string
}

var HomeHero = Hero{
	Title:    SiteName,
	Subtitle: "Transformamos tu negocio con tecnología e inteligencia artificial",
	Lead:     "Soporte especializado, consultoría personalizada y modernización IT para llevar tu empresa al futuro digital.",
}

// HomeServices is the three-card preview on the home page.
var HomeServices = []Card{
	{Icon: "🛠️", Title: "Soporte IT", Description: "Soporte técnico especializado 24/7 para mantener tu empresa operativa."},
	{Icon: "🤖", Title: "Consultoría IA", Description: "Implementación estratégica de inteligencia artificial en tu negocio."},
	{Icon: "⚡", Title: "Modernización", Description: "Actualización y optimización de tus sistemas tecnológicos."},
}

var ServicesHero = Hero{
	Title:    "Nuestros Servicios",
	Subtitle: "Soluciones tecnológicas integrales para impulsar tu negocio hacia el futuro digital",
}

// Services is the full catalog shown on the services page.
var Services = []Card{
	{
		Icon:        "🛠️",
		Title:       "Soporte IT Especializado",
		Description: "Mantenimiento preventivo y correctivo de infraestructura tecnológica. Soporte técnico 24/7 para garantizar la continuidad operativa de tu empresa.",
		Features:    []string{"Monitoreo 24/7", "Mantenimiento preventivo", "Soporte remoto y presencial", "Gestión de infraestructura"},
	},
	{
		Icon:        "📊",
		Title:       "Consultoría Estratégica",
		Description: "Análisis y diseño de estrategias tecnológicas alineadas con los objetivos de tu negocio. Roadmaps de transformación digital personalizados.",
		Features:    []string{"Análisis de procesos", "Estrategia digital", "Roadmaps personalizados", "Evaluación tecnológica"},
	},
	{
		Icon:        "👥",
		Title:       "Asesoría Personalizada",
		Description: "Acompañamiento especializado en la toma de decisiones tecnológicas. Evaluación de soluciones y proveedores según tus necesidades específicas.",
		Features:    []string{"Consultoría uno a uno", "Evaluación de tecnologías", "Selección de proveedores", "Planes de implementación"},
	},
	{
		Icon:        "⚡",
		Title:       "Modernización IT",
		Description: "Actualización y optimización de sistemas legacy. Migración a la nube, integración de nuevas tecnologías y mejora de procesos existentes.",
		Features:    []string{"Migración a la nube", "Actualización de sistemas", "Integración de APIs", "Optimización de procesos"},
	},
	{
		Icon:        "🤖",
		Title:       "Herramientas de IA",
		Description: "Implementación de soluciones de inteligencia artificial adaptadas a tu industria. Automatización inteligente y análisis predictivo.",
		Features:    []string{"Chatbots inteligentes", "Análisis predictivo", "Automatización de procesos", "Machine Learning personalizado"},
	},
	{
		Icon:        "📈",
		Title:       "Mejora de Procesos IT",
		Description: "Optimización de workflows tecnológicos, implementación de metodologías ágiles y mejora continua de procesos operativos.",
		Features:    []string{"Análisis de workflows", "Metodologías ágiles", "Automatización de tareas", "Mejora continua"},
	},
}

// ServicesCTA closes the services page.
var ServicesCTA = Card{
	Title:       "¿Listo para transformar tu empresa?",
	Description: "Contáctanos para una consulta gratuita y descubre cómo podemos ayudarte a alcanzar tus objetivos tecnológicos.",
}

var AboutHero = Hero{
	Title:    "Quiénes Somos",
	Subtitle: "Expertos en tecnología e inteligencia artificial, comprometidos con la transformación digital de tu empresa.",
}

var (
	Mission = Card{
		Title:       "Nuestra Misión",
		Description: "Democratizar el acceso a la inteligencia artificial y la tecnología avanzada, proporcionando soluciones personalizadas que impulsen el crecimiento y la eficiencia de las empresas, sin importar su tamaño.",
	}
	Vision = Card{
		Title:       "Nuestra Visión",
		Description: "Ser la empresa líder en consultoría e implementación de IA en América Latina, reconocida por nuestra innovación, excelencia técnica y compromiso con el éxito de nuestros clientes.",
	}
)

var Values = []Card{
	{Icon: "💡", Title: "Innovación", Description: "Siempre a la vanguardia de las últimas tecnologías y tendencias en IA."},
	{Icon: "🎯", Title: "Personalización", Description: "Cada solución está diseñada específicamente para las necesidades únicas de tu empresa."},
	{Icon: "🔍", Title: "Transparencia", Description: "Comunicación clara y honesta en cada etapa del proyecto."},
	{Icon: "⭐", Title: "Excelencia", Description: "Comprometidos con la calidad y la mejora continua en todo lo que hacemos."},
}

var WhyUs = Card{
	Title:       "¿Por qué elegir ITopIA?",
	Description: "En ITopIA combinamos experiencia técnica con visión estratégica para ofrecer soluciones que realmente transforman tu negocio.",
}

var Stats = []Stat{
	{Value: "5+", Label: "Años de experiencia"},
	{Value: "100+", Label: "Proyectos exitosos"},
	{Value: "24/7", Label: "Soporte técnico"},
}

var ContactHero = Hero{
	Title:    "Contacto",
	Subtitle: "¿Listo para transformar tu empresa? Contáctanos para una consulta gratuita",
}

// ContactEmail is the public inbox, also the default recipient of
// contact notifications.
const ContactEmail = "contacto.itopia@gmail.com"

var ContactInfo = []InfoItem{
	{Icon: "📧", Title: "Email", Value: ContactEmail},
	{Icon: "📞", Title: "Teléfono", Value: "+1 (555) 123-4567"},
	{Icon: "📍", Title: "Ubicación", Value: "Montevideo, Uruguay"},
	{Icon: "🕒", Title: "Horario", Value: "Lun - Vie: 9:00 AM - 6:00 PM"},
}

var FreeConsultation = Card{
	Title:       "Consulta gratuita",
	Description: "Ofrecemos una consulta inicial gratuita de 30 minutos para entender tus necesidades y cómo podemos ayudarte.",
	Features:    []string{"Análisis inicial sin costo", "Recomendaciones personalizadas", "Propuesta de soluciones", "Timeline y presupuesto estimado"},
}

// Emergency is the urgent support card. Features holds the phone line
// and its availability.
var Emergency = Card{
	Title:       "Soporte de emergencia",
	Description: "Para clientes existentes que requieren soporte técnico urgente:",
	Features:    []string{"+1 (555) 911-TECH", "Disponible 24/7"},
}

// NotFoundHero is shown by the 404 page.
var NotFoundHero = Hero{
	Title:    "404",
	Subtitle: "La página que buscas no existe.",
}
