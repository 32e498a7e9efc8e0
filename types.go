package selftrack

// Profile is the student's identity card. There is exactly one per AppState.
type Profile struct {
	Name       string `json:"name" yaml:"name"`
	Major      string `json:"major" yaml:"major"`
	University string `json:"university" yaml:"university"`
	Bio        string `json:"bio" yaml:"bio"`
	Email      string `json:"email" yaml:"email"`
	// Avatar is an image reference: a URL or a data URL.
	Avatar string `json:"avatar" yaml:"avatar"`
}

// ProfileUpdate holds the fields to merge into a Profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string
	Major      *string
	University *string
	Bio        *string
	Email      *string
	Avatar     *string
}

// apply returns a copy of p with the non-nil fields of u.
func (u ProfileUpdate) apply(p Profile) Profile {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Name, u.Name)
	set(&p.Major, u.Major)
	set(&p.University, u.University)
	set(&p.Bio, u.Bio)
	set(&p.Email, u.Email)
	set(&p.Avatar, u.Avatar)
	return p
}

// Achievement is an award, a certificate or any recognition. Achievements are
// never edited: they are added or removed.
type Achievement struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Issuer string `json:"issuer" yaml:"issuer"`
	// Year is a free text label (e.g. "Okt 2023"), not a parsed date.
	Year        string   `json:"year" yaml:"year"`
	Description string   `json:"description" yaml:"description"`
	Category    Category `json:"category" yaml:"category"`
	// CertificateURL is an optional image reference.
	CertificateURL string `json:"certificateUrl,omitempty" yaml:"certificateUrl,omitempty"`
}

// Experience is a position held in a company, a student organization or a
// volunteering activity.
type Experience struct {
	ID           string         `json:"id" yaml:"id"`
	Role         string         `json:"role" yaml:"role"`
	Organization string         `json:"organization" yaml:"organization"`
	Location     string         `json:"location" yaml:"location"`
	Period       string         `json:"period" yaml:"period"`
	Type         ExperienceType `json:"type" yaml:"type"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
}

// AcademicRecord is the GPA obtained for a semester.
type AcademicRecord struct {
	Semester string  `json:"semester" yaml:"semester"`
	GPA      float64 `json:"gpa" yaml:"gpa"`
}

// Hobby is a free time activity with a short glyph to display it.
type Hobby struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
}

// AppState is the aggregate: everything about the student. It is the only
// unit of persistence.
type AppState struct {
	Profile      Profile          `json:"profile" yaml:"profile"`
	Achievements []Achievement    `json:"achievements" yaml:"achievements"`
	Experiences  []Experience     `json:"experiences" yaml:"experiences"`
	Academics    []AcademicRecord `json:"academics" yaml:"academics"`
	Hobbies      []Hobby          `json:"hobbies" yaml:"hobbies"`
}

// Clone returns a deep copy of s. Lists are never nil in the copy, so that
// the JSON form always has arrays.
func (s AppState) Clone() AppState {
	return AppState{
		Profile:      s.Profile,
		Achievements: append(make([]Achievement, 0, len(s.Achievements)), s.Achievements...),
		Experiences:  append(make([]Experience, 0, len(s.Experiences)), s.Experiences...),
		Academics:    append(make([]AcademicRecord, 0, len(s.Academics)), s.Academics...),
		Hobbies:      append(make([]Hobby, 0, len(s.Hobbies)), s.Hobbies...),
	}
}

// Current returns the latest academic record, the last one in the list.
func (s AppState) Current() (AcademicRecord, bool) {
	if len(s.Academics) == 0 {
		return AcademicRecord{}, false
	}
	return s.Academics[len(s.Academics)-1], true
}
