package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSettingField checks a settings field name given on the command line
func ValidateSettingField(field string) error {
	if Contains(models.SettingFields, field) {
		return nil
	}
	return fmt.Errorf("unknown setting: %s (must be one of: %s)", field, strings.Join(models.SettingFields, ", "))
}

// ContentSections are the parts of the content record a command can address
var ContentSections = []string{"user", "teams", "nav", "projects"}

// ValidateContentSection validates a content section name
func ValidateContentSection(section string) error {
	if section == "" || Contains(ContentSections, section) {
		return nil
	}
	return fmt.Errorf("invalid section: %s (must be: %s)", section, strings.Join(ContentSections, ", "))
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
