package domain

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// slugPattern matches lowercase, hyphen separated URL-safe identifiers.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func init() {
	_ = validatorInstance.RegisterValidation("slug", validateSlug)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// IconRef is the symbolic name of an icon in the site's icon set (e.g. "antenna").
type IconRef string

// ServiceSummary is one entry of the services listing. Slug identifies it.
type ServiceSummary struct {
	Icon        IconRef  `yaml:"icon" json:"icon" validate:"required"`
	Title       string   `yaml:"title" json:"title" validate:"required"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Features    []string `yaml:"features" json:"features" validate:"min=1,dive,required"`
	Slug        string   `yaml:"slug" json:"slug" validate:"required,slug"`
}

// Validate runs the struct tag checks for a summary record.
func (s *ServiceSummary) Validate() error {
	return validatorInstance.Struct(s)
}

// ServiceDetail is the extended record rendered on a service's own page.
// Every slice is rendered in its stored order.
type ServiceDetail struct {
	Icon            IconRef  `yaml:"icon" json:"icon" validate:"required"`
	Title           string   `yaml:"title" json:"title" validate:"required"`
	Subtitle        string   `yaml:"subtitle" json:"subtitle" validate:"required"`
	Description     string   `yaml:"description" json:"description" validate:"required"`
	LongDescription string   `yaml:"longDescription" json:"longDescription" validate:"required"`
	Services        []string `yaml:"services" json:"services" validate:"min=1,dive,required"`
	Benefits        []string `yaml:"benefits" json:"benefits" validate:"min=1,dive,required"`
	Process         []string `yaml:"process" json:"process" validate:"min=1,dive,required"`
	Images          []string `yaml:"images" json:"images" validate:"dive,url"`
}

// Validate runs the struct tag checks for a detail record.
func (d *ServiceDetail) Validate() error {
	return validatorInstance.Struct(d)
}

// ValidSlug reports whether s is a well-formed slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
