package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Library file validation errors.
var (
	ErrNoGeneric       = errors.New("content: generic template list is required")
	ErrGenericTooShort = errors.New("content: generic template list needs at least 4 entries")
	ErrTopicNoName     = errors.New("content: topic name is required")
	ErrTopicNoMatch    = errors.New("content: topic needs at least one match keyword")
	ErrTopicBadTitles  = errors.New("content: topic title list must have exactly 5 entries")
	ErrLanguageBad     = errors.New("content: language entry needs a name, match keywords and 5 titles")
)

// LoadFile reads a template library override from a YAML file. The
// file replaces the built-in library wholesale.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if err := lib.validate(); err != nil {
		return nil, fmt.Errorf("content: %s: %w", path, err)
	}
	return &lib, nil
}

func (l *Library) validate() error {
	if len(l.Generic) == 0 {
		return ErrNoGeneric
	}
	if len(l.Generic) < 4 || !strings.Contains(l.Generic[0], placeholder) {
		return ErrGenericTooShort
	}
	for _, t := range l.Topics {
		switch {
		case t.Name == "":
			return ErrTopicNoName
		case len(t.Match) == 0:
			return fmt.Errorf("%w: %s", ErrTopicNoMatch, t.Name)
		case len(t.Titles) != 0 && len(t.Titles) != 5:
			return fmt.Errorf("%w: %s", ErrTopicBadTitles, t.Name)
		}
	}
	for _, lang := range l.Languages {
		if lang.Name == "" || len(lang.Match) == 0 || len(lang.Titles) != 5 {
			return fmt.Errorf("%w: %s", ErrLanguageBad, lang.Name)
		}
	}
	return nil
}
