// Package seed describes reference rows that are maintained by hand:
// analysis tools and dataset repositories. They are provided as a YAML
// file and loaded with the seed command before any canned analyses.
package seed

import (
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
)

// File represents the complete seed file.
type File struct {
	// Tools are analysis tools referenced by canned analyses.
	Tools []Tool `yaml:"tools"`

	// Repositories are catalogs hosting datasets.
	Repositories []Repository `yaml:"repositories"`

	// Warnings collect non-fatal issues found by Validate.
	Warnings []string `yaml:"-"`
}

// Tool is a seed record of the tool table.
type Tool struct {
	Name        string `yaml:"name"`
	IconURL     string `yaml:"icon_url,omitempty"`
	HomepageURL string `yaml:"homepage_url,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Repository is a seed record of the repository table.
type Repository struct {
	Name        string `yaml:"name"`
	IconURL     string `yaml:"icon_url,omitempty"`
	Description string `yaml:"description,omitempty"`
	HomepageURL string `yaml:"homepage_url,omitempty"`
}

// Decode reads seed file content without validation.
func Decode(data []byte) (*File, error) {
	var res File
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &res, nil
}

// Parse decodes and validates seed file content.
func Parse(data []byte) (*File, error) {
	res, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err = res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// IsValidURL checks if a string is a valid URL.
func IsValidURL(str string) bool {
	u, err := url.Parse(str)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
