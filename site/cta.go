package site

// Placement names where on the page a call to action sits.
type Placement string

const (
	PlacementHero     Placement = "hero"
	PlacementServices Placement = "services"
	PlacementPackages Placement = "packages"
	PlacementFloat    Placement = "float"
	PlacementContact  Placement = "contact"
	PlacementFooter   Placement = "footer"
)

// CTA is a call to action with its pre-filled message.
type CTA struct {
	Placement Placement
	Label     string
	Message   string
}

// DefaultCTAs returns one CTA per placement of the services site.
func DefaultCTAs() []CTA {
	return []CTA{
		{Placement: PlacementHero, Label: "Solicitar orçamento", Message: "Olá! Vim pelo site e gostaria de um orçamento."},
		{Placement: PlacementServices, Label: "Quero este serviço", Message: "Olá! Gostaria de saber mais sobre os serviços de informática."},
		{Placement: PlacementPackages, Label: "Contratar pacote", Message: "Olá! Tenho interesse em um dos pacotes."},
		{Placement: PlacementFloat, Label: "WhatsApp", Message: "Olá! Preciso de ajuda com meu computador."},
		{Placement: PlacementContact, Label: "Falar no WhatsApp", Message: "Olá! Gostaria de entrar em contato."},
		{Placement: PlacementFooter, Label: "WhatsApp", Message: "Olá!"},
	}
}
