package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// LoadContentFile reads and validates a content document from any path.
// It backs both the state file and `content import`.
func LoadContentFile(path string) (*models.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content %s: %w", path, err)
	}

	var content models.Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, models.NewParseError(path, err)
	}
	if err := models.ValidateContent(&content); err != nil {
		return nil, models.NewParseError(path, err)
	}

	return &content, nil
}

// Persister saves store snapshots to the project state files
type Persister struct{}

// SaveSettings implements store.SettingsPersister
func (Persister) SaveSettings(s models.Settings) error {
	return WriteSettings(s)
}

// SaveContent implements store.ContentPersister
func (Persister) SaveContent(c *models.Content) error {
	return WriteContent(c)
}
