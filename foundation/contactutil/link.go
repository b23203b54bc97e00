package contactutil

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	PlaceholderDomain  = "{{domain}}"
	PlaceholderNumber  = "{{number}}"
	PlaceholderMessage = "{{encodedMessage}}"

	DefaultDomain   = "wa.me"
	DefaultTemplate = "https://" + PlaceholderDomain + "/" + PlaceholderNumber + "?text=" + PlaceholderMessage
)

var (
	ErrInvalidTemplate = errors.New("invalid link template")
	ErrInvalidDomain   = errors.New("invalid link domain")
)

// Template is a deep-link layout with {{domain}}, {{number}} and
// {{encodedMessage}} placeholders.
type Template struct {
	raw       string
	useDomain bool
}

// ParseTemplate checks that s contains {{number}} exactly once.
func ParseTemplate(s string) (Template, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, PlaceholderNumber) != 1 {
		return Template{}, ErrInvalidTemplate
	}
	return Template{raw: s, useDomain: strings.Contains(s, PlaceholderDomain)}, nil
}

// MustParseTemplate is ParseTemplate that panics on error. Intended for
// package-level templates.
func MustParseTemplate(s string) Template {
	t, err := ParseTemplate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Template) String() string { return t.raw }

var defaultTemplate = MustParseTemplate(DefaultTemplate)

// Builder produces deep links. It is immutable after NewBuilder and safe
// for concurrent use.
type Builder struct {
	domain   string
	template Template
	plan     Plan
	observer Observer
	nfc      bool
}

type Option func(*Builder)

// WithDomain overrides DefaultDomain.
func WithDomain(domain string) Option {
	return func(b *Builder) { b.domain = strings.TrimSpace(domain) }
}

// WithTemplate overrides DefaultTemplate.
func WithTemplate(t Template) Option {
	return func(b *Builder) { b.template = t }
}

// WithPlan overrides DefaultPlan.
func WithPlan(p Plan) Option {
	return func(b *Builder) { b.plan = p }
}

// WithObserver receives diagnostics from LinkRaw.
func WithObserver(obs Observer) Option {
	return func(b *Builder) { b.observer = obs }
}

// WithNFC normalizes messages to NFC before encoding.
func WithNFC() Option {
	return func(b *Builder) { b.nfc = true }
}

// NewBuilder returns a Builder for wa.me links unless options say otherwise.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		domain:   DefaultDomain,
		template: defaultTemplate,
		plan:     DefaultPlan(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if b.template.raw == "" {
		return nil, ErrInvalidTemplate
	}
	if b.template.useDomain && !validDomain(b.domain) {
		return nil, ErrInvalidDomain
	}
	return b, nil
}

func validDomain(d string) bool {
	if d == "" {
		return false
	}
	return !strings.ContainsAny(d, "/?#@ \t\r\n")
}

// Plan returns the numbering plan used by b.
func (b *Builder) Plan() Plan { return b.plan }

// Domain returns the domain substituted into {{domain}}.
func (b *Builder) Domain() string { return b.domain }

// Link fills the template. The number is inserted verbatim, only the
// message is percent-encoded.
func (b *Builder) Link(c Canonical, message string) string {
	if b.nfc {
		message = norm.NFC.String(message)
	}
	r := strings.NewReplacer(
		PlaceholderDomain, b.domain,
		PlaceholderNumber, string(c),
		PlaceholderMessage, EncodeURIComponent(message),
	)
	return r.Replace(b.template.raw)
}

// LinkRaw normalizes raw, validates it against the plan and builds the link.
// A link is always returned; ok reports whether the number passed validation.
// Failures are reported to the configured observer.
func (b *Builder) LinkRaw(raw, message string) (link string, ok bool) {
	c := Normalize(raw)
	ok = b.plan.Validate(c, b.observer)
	return b.Link(c, message), ok
}

// TelLink returns a tel: URI for c.
func (b *Builder) TelLink(c Canonical) string {
	return "tel:" + FormatE164(c)
}

var defaultBuilder = &Builder{domain: DefaultDomain, template: defaultTemplate, plan: defaultPlan}

// BuildMessagingLink returns https://wa.me/<c>?text=<encoded message>.
func BuildMessagingLink(c Canonical, message string) string {
	return defaultBuilder.Link(c, message)
}
