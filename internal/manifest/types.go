package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Add-on type codes understood by the extension manager
const (
	TypeExtension = 2
	TypeTheme     = 4
	TypeLocale    = 8
)

// AnyVersion is the wildcard accepted for a target's maxVersion
const AnyVersion = "*"

// Well-known host application IDs
const (
	ThunderbirdID = "{3550f703-e582-4d05-9a08-453d09bdfdc6}"
	InstantbirdID = "{33cb9019-c295-46dd-be21-8c4936574bee}"
)

// AddOn describes the add-on a manifest is rendered for
type AddOn struct {
	ID          string              `yaml:"id" json:"id" validate:"required"`
	Type        int                 `yaml:"type,omitempty" json:"type,omitempty" validate:"addontype"`
	Unpack      bool                `yaml:"unpack" json:"unpack"`
	Targets     []TargetApplication `yaml:"targets" json:"targets" validate:"dive"`
	Name        string              `yaml:"name" json:"name" validate:"required"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Creator     string              `yaml:"creator,omitempty" json:"creator,omitempty"`
}

// TargetApplication declares one host application and its compatible versions
type TargetApplication struct {
	ID         string `yaml:"id" json:"id" validate:"required"`
	MinVersion string `yaml:"min_version" json:"min_version" validate:"required"`
	MaxVersion string `yaml:"max_version,omitempty" json:"max_version,omitempty" validate:"required"`
}

// knownTypes lists the add-on type codes accepted by the addontype tag
var knownTypes = map[int]bool{
	TypeExtension: true,
	TypeTheme:     true,
	TypeLocale:    true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("addontype", func(fl validator.FieldLevel) bool {
		return knownTypes[int(fl.Field().Int())]
	})
	return v
}

// Hippie returns the built-in descriptor of the Hippie add-on
func Hippie() AddOn {
	return AddOn{
		ID:     "hippie@mook.github.io",
		Type:   TypeExtension,
		Unpack: false,
		Targets: []TargetApplication{
			{ID: ThunderbirdID, MinVersion: "36.0", MaxVersion: AnyVersion},
			{ID: InstantbirdID, MinVersion: "1.5", MaxVersion: AnyVersion},
		},
		Name:        "Hippie",
		Description: "HipChat protocol for Thunderbird/Instantbird",
		Creator:     "Mook",
	}
}

// Normalize puts every text field in Unicode NFC, so descriptors saved by
// different editors render the same bytes.
func (a *AddOn) Normalize() {
	a.ID = norm.NFC.String(a.ID)
	a.Name = norm.NFC.String(a.Name)
	a.Description = norm.NFC.String(a.Description)
	a.Creator = norm.NFC.String(a.Creator)
	for i := range a.Targets {
		t := &a.Targets[i]
		t.ID = norm.NFC.String(t.ID)
		t.MinVersion = norm.NFC.String(t.MinVersion)
		t.MaxVersion = norm.NFC.String(t.MaxVersion)
	}
}

// ApplyDefaults fills in the optional fields left empty
func (a *AddOn) ApplyDefaults() {
	if a.Type == 0 {
		a.Type = TypeExtension
	}
	for i := range a.Targets {
		if a.Targets[i].MaxVersion == "" {
			a.Targets[i].MaxVersion = AnyVersion
		}
	}
}

// Validate validates the add-on descriptor
func (a *AddOn) Validate() error {
	if len(a.Targets) == 0 {
		return ErrNoTargets
	}
	if err := validate.Struct(a); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidDescriptor, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	return nil
}
