package selftrack

import (
	"fmt"
	"strings"
)

// Category is the scope of an achievement.
type Category int

const (
	// Campus achievements are granted within the university.
	Campus Category = iota
	National
	International
)

// Categories lists all the valid categories, in display order.
var Categories = []Category{Campus, National, International}

func (c Category) String() string {
	switch c {
	case Campus:
		return "Campus"
	case National:
		return "National"
	case International:
		return "International"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool { return c >= Campus && c <= International }

// ParseCategory parses a category name, case insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "campus":
		return Campus, nil
	case "national":
		return National, nil
	case "international":
		return International, nil
	default:
		return 0, fmt.Errorf("unknown achievement category: %q", s)
	}
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid achievement category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
