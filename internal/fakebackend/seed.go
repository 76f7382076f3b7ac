package fakebackend

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/sparknest-admin/models"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Accounts []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"accounts"`
	Records map[models.ResourceKind][]map[string]any `yaml:"records"`
}

// seed fills the store with the demo admin account and sample content.
func (h *Handler) seed() error {
	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}

	for _, acc := range file.Accounts {
		if _, err := h.store.register(acc.Name, acc.Email, acc.Password); err != nil {
			return fmt.Errorf("seed account %s: %w", acc.Email, err)
		}
	}

	for _, kind := range models.AllResourceKinds() {
		for _, record := range file.Records[kind] {
			h.store.create(kind, models.Entity(record))
		}
	}
	return nil
}
