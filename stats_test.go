package selftrack

import (
	"testing"
)

func TestSummary(t *testing.T) {
	s := Seed()
	s.Academics = append(s.Academics, AcademicRecord{Semester: "Sem 3", GPA: 3.9})
	s.Experiences = append(s.Experiences, Experience{ID: "3", Role: "Tutor", Organization: "X", Type: Volunteer})

	st := Summary(s)
	if got, want := st.CurrentGPA.String(), "3.9"; got != want {
		t.Errorf("CurrentGPA = %s, want %s", got, want)
	}
	if got, want := st.AverageGPA.StringFixed(2), "3.82"; got != want {
		t.Errorf("AverageGPA = %s, want %s", got, want)
	}
	if st.Semesters != 3 || st.Achievements != 2 {
		t.Errorf("Semesters, Achievements = %d, %d, want 3, 2", st.Semesters, st.Achievements)
	}
	if st.Work != 1 || st.Organizations != 1 || st.Volunteering != 1 {
		t.Errorf("Work, Organizations, Volunteering = %d, %d, %d, want 1, 1, 1", st.Work, st.Organizations, st.Volunteering)
	}
}

func TestSummary_Empty(t *testing.T) {
	st := Summary(AppState{})
	if !st.CurrentGPA.IsZero() || !st.AverageGPA.IsZero() {
		t.Errorf("Summary(empty) GPA = %s, %s, want 0, 0", st.CurrentGPA, st.AverageGPA)
	}
}

func TestFilters(t *testing.T) {
	s := Seed()
	if got := FilterAchievements(s.Achievements, National); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("FilterAchievements(National) = %v, want achievement 1", got)
	}
	if got := FilterAchievements(s.Achievements, Campus); len(got) != 0 {
		t.Errorf("FilterAchievements(Campus) = %v, want none", got)
	}
	if got := FilterExperiences(s.Experiences, Organization); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("FilterExperiences(Organization) = %v, want experience 2", got)
	}
}
