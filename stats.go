package selftrack

import (
	"github.com/shopspring/decimal"
)

// Stats are the headline figures of the dashboard.
type Stats struct {
	CurrentGPA    decimal.Decimal
	AverageGPA    decimal.Decimal
	Semesters     int
	Achievements  int
	Work          int
	Organizations int
	Volunteering  int
}

// Summary computes the dashboard figures of s.
func Summary(s AppState) Stats {
	st := Stats{
		AverageGPA:   AverageGPA(s.Academics),
		Semesters:    len(s.Academics),
		Achievements: len(s.Achievements),
	}
	if cur, ok := s.Current(); ok {
		st.CurrentGPA = decimal.NewFromFloat(cur.GPA)
	}
	for _, e := range s.Experiences {
		switch e.Type {
		case Work:
			st.Work++
		case Organization:
			st.Organizations++
		case Volunteer:
			st.Volunteering++
		}
	}
	return st
}

// AverageGPA returns the mean GPA of all records, exact (not rounded).
// It is zero when there are no records.
func AverageGPA(records []AcademicRecord) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	values := make([]decimal.Decimal, len(records))
	for i, r := range records {
		values[i] = decimal.NewFromFloat(r.GPA)
	}
	return decimal.Avg(values[0], values[1:]...)
}

// FilterAchievements returns the achievements of the given category, in order.
func FilterAchievements(list []Achievement, c Category) []Achievement {
	var res []Achievement
	for _, a := range list {
		if a.Category == c {
			res = append(res, a)
		}
	}
	return res
}

// FilterExperiences returns the experiences of the given type, in order.
func FilterExperiences(list []Experience, t ExperienceType) []Experience {
	var res []Experience
	for _, e := range list {
		if e.Type == t {
			res = append(res, e)
		}
	}
	return res
}
