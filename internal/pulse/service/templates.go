package service

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"gopkg.in/yaml.v3"
)

// Step templates ship inside the binary. A project's step list is frozen at
// creation time, so editing this catalog never rewrites existing projects.
//
//go:embed templates.yaml
var templatesYAML []byte

// StepTemplate is the fixed ordered milestone list for one project category.
type StepTemplate struct {
	InitialStatus string   `yaml:"initial_status"`
	Steps         []string `yaml:"steps"`
}

var (
	templatesOnce sync.Once
	templates     map[domain.Category]StepTemplate
	templatesErr  error
)

func loadTemplates() {
	raw := map[string]StepTemplate{}
	if err := yaml.Unmarshal(templatesYAML, &raw); err != nil {
		templatesErr = fmt.Errorf("parse step templates: %w", err)
		return
	}

	templates = make(map[domain.Category]StepTemplate, len(raw))
	for key, tpl := range raw {
		cat, err := domain.ParseCategory(key)
		if err != nil {
			templatesErr = fmt.Errorf("step template %q: %w", key, err)
			return
		}
		if len(tpl.Steps) == 0 {
			templatesErr = fmt.Errorf("step template %q has no steps", key)
			return
		}
		templates[cat] = tpl
	}
}

// TemplateFor returns the step template for a category. All categories in the
// closed set have one; a miss means the embedded catalog is broken.
func TemplateFor(cat domain.Category) (StepTemplate, error) {
	templatesOnce.Do(loadTemplates)
	if templatesErr != nil {
		return StepTemplate{}, templatesErr
	}
	tpl, ok := templates[cat]
	if !ok {
		return StepTemplate{}, fmt.Errorf("no step template for category %q", cat)
	}
	return tpl, nil
}
