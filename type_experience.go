package selftrack

import (
	"fmt"
	"strings"
)

// ExperienceType tells what kind of position an Experience is.
type ExperienceType int

const (
	Work ExperienceType = iota
	Organization
	Volunteer
)

// ExperienceTypes lists all the valid experience types, in display order.
var ExperienceTypes = []ExperienceType{Work, Organization, Volunteer}

func (t ExperienceType) String() string {
	switch t {
	case Work:
		return "Work"
	case Organization:
		return "Organization"
	case Volunteer:
		return "Volunteer"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the known experience types.
func (t ExperienceType) Valid() bool { return t >= Work && t <= Volunteer }

// ParseExperienceType parses an experience type name, case insensitive.
func ParseExperienceType(s string) (ExperienceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return Work, nil
	case "organization", "organisation":
		return Organization, nil
	case "volunteer":
		return Volunteer, nil
	default:
		return 0, fmt.Errorf("unknown experience type: %q", s)
	}
}

func (t ExperienceType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid experience type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ExperienceType) UnmarshalText(text []byte) error {
	v, err := ParseExperienceType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
