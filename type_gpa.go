package selftrack

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxGPA is the top of the 4-point grading scale.
const MaxGPA = 4.0

// GPA is a grade point average on a 4-point scale.
type GPA float64

func (g GPA) String() string { return strconv.FormatFloat(float64(g), 'f', -1, 64) }

// ParseGPA parses a user supplied grade point average.
// It accepts decimal numbers in [0, MaxGPA], with either '.' or ',' as
// decimal separator.
func ParseGPA(s string) (GPA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty GPA")
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("GPA %q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("GPA %q is not a finite number", s)
	}
	if v < 0 || v > MaxGPA {
		return 0, fmt.Errorf("GPA %q is out of range [0, %v]", s, MaxGPA)
	}
	return GPA(v), nil
}
