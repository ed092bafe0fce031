// Package geodict loads the console's geography dictionary from disk.
package geodict

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sanasaryank/trio-admin-sub000/internal/domain"
)

// Load reads the geography dictionary JSON from path and validates its
// hierarchy. The dictionary is treated as immutable afterwards.
func Load(path string) (domain.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Dictionary{}, fmt.Errorf("read dictionary: %w", err)
	}

	var dict domain.Dictionary
	if err := json.Unmarshal(data, &dict); err != nil {
		return domain.Dictionary{}, fmt.Errorf("parse dictionary: %w", err)
	}

	if err := validate(dict); err != nil {
		return domain.Dictionary{}, fmt.Errorf("validate dictionary: %w", err)
	}
	return dict, nil
}

// validate checks identifier uniqueness, non-empty names, and that every
// parent reference resolves. A broken hierarchy would silently defeat the
// matcher's back-fill invariant, so it is rejected at startup.
func validate(dict domain.Dictionary) error {
	countries := make(map[int64]struct{}, len(dict.Countries))
	for _, c := range dict.Countries {
		if c.ID == 0 || c.Name == "" {
			return fmt.Errorf("country %d: id and name are required", c.ID)
		}
		if _, ok := countries[c.ID]; ok {
			return fmt.Errorf("duplicate country id %d", c.ID)
		}
		countries[c.ID] = struct{}{}
	}

	cities := make(map[int64]struct{}, len(dict.Cities))
	for _, c := range dict.Cities {
		if c.ID == 0 || c.Name == "" {
			return fmt.Errorf("city %d: id and name are required", c.ID)
		}
		if _, ok := cities[c.ID]; ok {
			return fmt.Errorf("duplicate city id %d", c.ID)
		}
		if _, ok := countries[c.CountryID]; !ok {
			return fmt.Errorf("city %d (%s): unknown country %d", c.ID, c.Name, c.CountryID)
		}
		cities[c.ID] = struct{}{}
	}

	districts := make(map[int64]struct{}, len(dict.Districts))
	for _, d := range dict.Districts {
		if d.ID == 0 || d.Name == "" {
			return fmt.Errorf("district %d: id and name are required", d.ID)
		}
		if _, ok := districts[d.ID]; ok {
			return fmt.Errorf("duplicate district id %d", d.ID)
		}
		if _, ok := cities[d.CityID]; !ok {
			return fmt.Errorf("district %d (%s): unknown city %d", d.ID, d.Name, d.CityID)
		}
		districts[d.ID] = struct{}{}
	}

	return nil
}
