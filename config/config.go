package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/vortex-fintech/go-contactlink/foundation/contactutil"
	apperrors "github.com/vortex-fintech/go-contactlink/foundation/errors"
	"github.com/vortex-fintech/go-contactlink/foundation/validator"
)

// Config holds the contact-link settings of one site deployment.
type Config struct {
	Env         string `validate:"required"`
	ServiceName string `validate:"required"`
	SiteName    string
	// Number is canonical after Load; raw env values may carry formatting.
	Number    string `validate:"required"`
	Domain    string `validate:"required,hostname"`
	Template  string `validate:"required,link_template"`
	MinDigits int    `validate:"gte=1"`
	MaxDigits int    `validate:"gte=0"`
	Timezone  string `validate:"required"`
	NFC       bool
}

// Load reads .env from the working directory when present, then the environment.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an
// error; variables already set in the environment win over the file.
func LoadFile(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, apperrors.Internal().
				WithReason("dotenv_unreadable").
				WithDetail("path", path).
				WithCause(err)
		}
	}

	cfg := Config{
		Env:         getEnv("CONTACT_ENV", "development"),
		ServiceName: getEnv("CONTACT_SERVICE_NAME", "contactlink"),
		SiteName:    getEnv("CONTACT_SITE_NAME", ""),
		Number:      contactutil.Normalize(os.Getenv("CONTACT_NUMBER")).String(),
		Domain:      getEnv("CONTACT_DOMAIN", contactutil.DefaultDomain),
		Template:    getEnv("CONTACT_LINK_TEMPLATE", contactutil.DefaultTemplate),
		MinDigits:   getEnvAsInt("CONTACT_MIN_DIGITS", contactutil.DefaultMinDigits),
		MaxDigits:   getEnvAsInt("CONTACT_MAX_DIGITS", 0),
		Timezone:    getEnv("CONTACT_TIMEZONE", "America/Sao_Paulo"),
		NFC:         getEnvAsBool("CONTACT_NORMALIZE_NFC", false),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct rules plus the cross-field ones the tags cannot express.
func (c Config) Validate() error {
	fields := validator.Validate(c)
	if fields == nil {
		fields = map[string]string{}
	}

	if c.MaxDigits > 0 && c.MaxDigits < c.MinDigits {
		fields["MaxDigits"] = "exceeds_limit"
	}
	if _, ok := fields["Number"]; !ok {
		n := contactutil.Normalize(c.Number)
		if valid, _ := c.Plan().Check(n); !valid || n.String() != c.Number {
			fields["Number"] = "invalid_phone"
		}
	}
	if _, err := time.LoadLocation(c.Timezone); c.Timezone != "" && err != nil {
		fields["Timezone"] = "invalid_timezone"
	}

	if len(fields) == 0 {
		return nil
	}
	return apperrors.ValidationFields(fields).WithDomain(c.ServiceName)
}

// Plan returns the default plan with the configured digit bounds.
func (c Config) Plan() contactutil.Plan {
	p := contactutil.DefaultPlan()
	p.MinDigits = c.MinDigits
	p.MaxDigits = c.MaxDigits
	return p
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Builder returns a link builder for this configuration reporting to obs.
func (c Config) Builder(obs contactutil.Observer) (*contactutil.Builder, error) {
	tpl, err := contactutil.ParseTemplate(c.Template)
	if err != nil {
		return nil, apperrors.Unsupported("template", c.Template).WithCause(err)
	}

	opts := []contactutil.Option{
		contactutil.WithDomain(c.Domain),
		contactutil.WithTemplate(tpl),
		contactutil.WithPlan(c.Plan()),
		contactutil.WithObserver(obs),
	}
	if c.NFC {
		opts = append(opts, contactutil.WithNFC())
	}

	b, err := contactutil.NewBuilder(opts...)
	if err != nil {
		return nil, apperrors.Unsupported("domain", c.Domain).WithCause(err)
	}
	return b, nil
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return defaultValue
}
