package config

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
)

// ValidateConfig validates the complete configuration structure.
func ValidateConfig(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	return v.validate()
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validate() error {
	if err := cv.validatePages(); err != nil {
		return err
	}
	return cv.validateOutput()
}

func (cv *configurationValidator) validatePages() error {
	seen := make(map[string]bool, len(cv.config.Site.Pages))
	for _, name := range cv.config.Site.Pages {
		if !slices.Contains(DefaultPages, name) {
			return errors.ValidationError("unknown page in site.pages").
				WithContext("page", name).
				WithContext("valid", strings.Join(DefaultPages, ", ")).
				Build()
		}
		if seen[name] {
			return errors.ValidationError("duplicate page in site.pages").WithContext("page", name).Build()
		}
		seen[name] = true
	}
	for name := range cv.config.Site.Notes {
		if !slices.Contains(DefaultPages, name) {
			return errors.ValidationError("notes reference an unknown page").WithContext("page", name).Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validateOutput() error {
	sheet := cv.config.Output.ColorSheetFile()
	if strings.ContainsAny(sheet, `/\`) {
		return errors.ValidationError("output.color_sheet must be a file name inside the output directory").
			WithContext("path", sheet).
			Build()
	}
	for _, name := range DefaultPages {
		if sheet == PageFile(name) {
			return errors.ValidationError("output.color_sheet would overwrite a generated page").
				WithContext("path", sheet).
				WithContext("page", name).
				Build()
		}
	}
	return nil
}
