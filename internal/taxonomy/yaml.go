package taxonomy

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Table file validation errors.
var (
	ErrNoCategories     = errors.New("taxonomy: at least one category is required")
	ErrCategoryNoName   = errors.New("taxonomy: category name is required")
	ErrCategoryNoID     = errors.New("taxonomy: category id is required")
	ErrCategoryNoSkills = errors.New("taxonomy: category needs at least one skill")
	ErrCategoryNoSubcat = errors.New("taxonomy: category needs at least one subcategory")
)

// LoadFile reads a table override from a YAML file. The file replaces
// the built-in table wholesale; order in the file is the tie-break
// order.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("taxonomy: read %s: %w", path, err)
	}

	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("taxonomy: parse %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("taxonomy: %s: %w", path, err)
	}
	return &t, nil
}

func (t *Table) validate() error {
	if len(t.Categories) == 0 {
		return ErrNoCategories
	}
	for _, cat := range t.Categories {
		switch {
		case cat.Name == "":
			return ErrCategoryNoName
		case cat.ID == "":
			return fmt.Errorf("%w: %s", ErrCategoryNoID, cat.Name)
		case len(cat.Skills) == 0:
			return fmt.Errorf("%w: %s", ErrCategoryNoSkills, cat.Name)
		case len(cat.Subcategories) == 0:
			return fmt.Errorf("%w: %s", ErrCategoryNoSubcat, cat.Name)
		}
	}
	return nil
}
