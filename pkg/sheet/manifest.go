package sheet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Code is one printable entry: the encoded URL and the short label that
// rides the emblem arc.
type Code struct {
	URL   string
	Label string
}

// manifestEntry mirrors the YAML code documents. Entries carrying
// previous_id are chained follow-ups that never get their own printed
// code, so the loader skips them.
type manifestEntry struct {
	ID         string `yaml:"id"`
	URL        string `yaml:"url"`
	Label      string `yaml:"label"`
	PreviousID string `yaml:"previous_id"`
}

type manifestDoc struct {
	Codes []manifestEntry `yaml:"codes"`
}

// LoadManifest reads codes from a YAML file. Both a bare list and a
// {codes: [...]} document are accepted. An entry without a url builds
// one from baseURL and its id; a missing label defaults to the id.
func LoadManifest(path, baseURL string) ([]Code, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var entries []manifestEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		var doc manifestDoc
		if docErr := yaml.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("parse manifest: %w", err)
		}
		entries = doc.Codes
	}

	codes := make([]Code, 0, len(entries))
	for _, e := range entries {
		if e.PreviousID != "" {
			continue
		}
		url := e.URL
		if url == "" {
			if baseURL == "" || e.ID == "" {
				return nil, fmt.Errorf("manifest entry %q has no url and no base url to build one", e.ID)
			}
			url = strings.TrimRight(baseURL, "/") + "/" + e.ID
		}
		label := e.Label
		if label == "" {
			label = e.ID
		}
		codes = append(codes, Code{URL: url, Label: label})
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("manifest %s contains no printable codes", path)
	}
	return codes, nil
}
