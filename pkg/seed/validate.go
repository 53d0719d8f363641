package seed

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate checks seed records and normalizes their names.
// Broken URLs are reported as warnings, missing or duplicate names are
// errors.
func (f *File) Validate() error {
	if len(f.Tools) == 0 && len(f.Repositories) == 0 {
		return fmt.Errorf("seed file has neither tools nor repositories")
	}

	seen := make(map[string]int)
	for i := range f.Tools {
		t := &f.Tools[i]
		t.Name = normalizeName(t.Name)
		if t.Name == "" {
			return fmt.Errorf("tool %d: name is required", i+1)
		}
		k := strings.ToLower(t.Name)
		if j, ok := seen[k]; ok {
			return fmt.Errorf("tool %d: name '%s' repeats tool %d", i+1, t.Name, j)
		}
		seen[k] = i + 1
		f.checkURL("tool", t.Name, "icon_url", t.IconURL)
		f.checkURL("tool", t.Name, "homepage_url", t.HomepageURL)
	}

	clear(seen)
	for i := range f.Repositories {
		r := &f.Repositories[i]
		r.Name = normalizeName(r.Name)
		if r.Name == "" {
			return fmt.Errorf("repository %d: name is required", i+1)
		}
		k := strings.ToLower(r.Name)
		if j, ok := seen[k]; ok {
			return fmt.Errorf(
				"repository %d: name '%s' repeats repository %d", i+1, r.Name, j,
			)
		}
		seen[k] = i + 1
		f.checkURL("repository", r.Name, "icon_url", r.IconURL)
		f.checkURL("repository", r.Name, "homepage_url", r.HomepageURL)
	}

	return nil
}

func (f *File) checkURL(kind, name, field, val string) {
	if val == "" || IsValidURL(val) {
		return
	}
	f.Warnings = append(f.Warnings,
		fmt.Sprintf("%s '%s': %s '%s' is not a valid URL", kind, name, field, val))
}

// normalizeName trims the name and collapses runs of whitespace,
// including non-breaking spaces, into single spaces.
func normalizeName(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
