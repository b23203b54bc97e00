// Package site renders the contact surface of a static services site:
// call-to-action deep links per page placement, the displayed phone number
// and the footer year. It holds no DOM state; callers write the results
// into whatever template or page they serve.
package site

import (
	"fmt"
	"time"

	"github.com/vortex-fintech/go-contactlink/config"
	"github.com/vortex-fintech/go-contactlink/foundation/contactutil"
	"github.com/vortex-fintech/go-contactlink/foundation/logger"
	"github.com/vortex-fintech/go-contactlink/foundation/logutil"
	"github.com/vortex-fintech/go-contactlink/foundation/timeutil"
)

// LinkRecorder is notified every time a placement link is rendered.
type LinkRecorder interface {
	ObserveLink(placement string)
}

// Link is a rendered call to action.
type Link struct {
	Placement Placement
	Label     string
	URL       string
}

// Page renders links for one configured number. Safe for concurrent use
// when its clock and recorder are.
type Page struct {
	siteName string
	number   contactutil.Canonical
	valid    bool
	builder  *contactutil.Builder
	plan     contactutil.Plan
	ctas     []CTA
	clock    timeutil.Clock
	loc      *time.Location
	recorder LinkRecorder
	log      logger.LoggerInterface
}

type Option func(*Page)

// WithClock overrides the default clock used for the footer year.
func WithClock(c timeutil.Clock) Option {
	return func(p *Page) { p.clock = c }
}

// WithLogger sends invalid-number warnings to log.
func WithLogger(log logger.LoggerInterface) Option {
	return func(p *Page) { p.log = log }
}

// WithRecorder counts rendered links. A recorder that also implements
// contactutil.Observer receives validation diagnostics too.
func WithRecorder(r LinkRecorder) Option {
	return func(p *Page) { p.recorder = r }
}

// WithCTAs replaces DefaultCTAs.
func WithCTAs(ctas ...CTA) Option {
	return func(p *Page) { p.ctas = append([]CTA(nil), ctas...) }
}

// NewPage prepares the link builder. An implausible number is not an error:
// it is reported to the logger and recorder, links are still rendered and
// Valid returns false. Template and domain problems are errors.
func NewPage(cfg config.Config, opts ...Option) (*Page, error) {
	p := &Page{
		siteName: cfg.SiteName,
		number:   contactutil.Normalize(cfg.Number),
		plan:     cfg.Plan(),
		loc:      cfg.Location(),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.ctas == nil {
		p.ctas = DefaultCTAs()
	}
	if p.log == nil {
		p.log = logger.Nop()
	}

	observers := contactutil.Observers{logutil.NewDiagnosticLogger(p.log)}
	if obs, ok := p.recorder.(contactutil.Observer); ok {
		observers = append(observers, obs)
	}

	b, err := cfg.Builder(observers)
	if err != nil {
		return nil, err
	}
	p.builder = b
	p.valid = p.plan.Validate(p.number, observers)

	p.log.Debugw("contact page ready",
		"site", p.siteName,
		"placements", len(p.ctas),
		"domain", b.Domain(),
	)
	return p, nil
}

// Valid reports whether the configured number passed the plan.
func (p *Page) Valid() bool { return p.valid }

// Links renders every configured placement in order.
func (p *Page) Links() []Link {
	out := make([]Link, 0, len(p.ctas))
	for _, cta := range p.ctas {
		out = append(out, p.render(cta))
	}
	return out
}

// Link renders the first CTA registered for placement.
func (p *Page) Link(placement Placement) (Link, bool) {
	for _, cta := range p.ctas {
		if cta.Placement == placement {
			return p.render(cta), true
		}
	}
	return Link{}, false
}

// MessageLink renders an ad-hoc message, e.g. one composed by a form.
func (p *Page) MessageLink(message string) string {
	return p.builder.Link(p.number, message)
}

func (p *Page) render(cta CTA) Link {
	if p.recorder != nil {
		p.recorder.ObserveLink(string(cta.Placement))
	}
	return Link{
		Placement: cta.Placement,
		Label:     cta.Label,
		URL:       p.builder.Link(p.number, cta.Message),
	}
}

// DisplayNumber formats the number for humans. Lengths without a layout,
// typically numbers carrying a country code, are shown in E.164 form.
func (p *Page) DisplayNumber() string {
	if s := p.plan.Format(p.number); s != p.number.String() {
		return s
	}
	return contactutil.FormatE164(p.number)
}

// TelLink returns a tel: URI for the configured number.
func (p *Page) TelLink() string {
	return p.builder.TelLink(p.number)
}

// FooterYear is the current year in the configured timezone.
func (p *Page) FooterYear() int {
	return timeutil.Year(p.clock, p.loc)
}

// FooterText is the copyright line written into the footer.
func (p *Page) FooterText() string {
	if p.siteName == "" {
		return fmt.Sprintf("© %d. Todos os direitos reservados.", p.FooterYear())
	}
	return fmt.Sprintf("© %d %s. Todos os direitos reservados.", p.FooterYear(), p.siteName)
}
