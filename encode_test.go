package selftrack

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMarshalState_RoundTrip(t *testing.T) {
	s := Seed()
	s.Experiences[1].Description = ""
	s.Achievements[1].CertificateURL = ""

	data, err := MarshalState(s)
	if err != nil {
		t.Fatalf("MarshalState() error = %v", err)
	}
	got, err := UnmarshalState(data)
	if err != nil {
		t.Fatalf("UnmarshalState() error = %v", err)
	}
	if diff := cmp.Diff(s, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// Blobs written by the web version of selftrack must load.
func TestUnmarshalState_WireCompatible(t *testing.T) {
	blob := `{"profile":{"name":"A","major":"B","university":"C","bio":"","email":"a@b.c","avatar":""},
	"achievements":[{"id":"1700000000000","title":"T","issuer":"I","year":"2023","description":"","category":"Campus","certificateUrl":"data:image/png;base64,AAAA"}],
	"experiences":[{"id":"1","role":"R","organization":"O","location":"L","period":"P","type":"Volunteer"}],
	"academics":[{"semester":"Sem 1","gpa":4}],
	"hobbies":[{"id":"1","name":"N","icon":"*"}]}`

	got, err := UnmarshalState([]byte(blob))
	if err != nil {
		t.Fatalf("UnmarshalState() error = %v", err)
	}
	if got.Achievements[0].Category != Campus || got.Experiences[0].Type != Volunteer {
		t.Errorf("enumerations decoded as %v, %v", got.Achievements[0].Category, got.Experiences[0].Type)
	}
	if got.Academics[0].GPA != 4 {
		t.Errorf("GPA = %v, want 4", got.Academics[0].GPA)
	}
}

func TestUnmarshalState_Corrupt(t *testing.T) {
	for _, blob := range []string{"", "null", "[]", `{"profile":{}}`, "{"} {
		if _, err := UnmarshalState([]byte(blob)); !errors.Is(err, ErrCorrupt) {
			t.Errorf("UnmarshalState(%q) error = %v, want ErrCorrupt", blob, err)
		}
	}
}

func TestEncodeState_Decode(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeState(&b, Seed()); err != nil {
		t.Fatalf("EncodeState() error = %v", err)
	}
	if !strings.Contains(b.String(), `"category": "National"`) {
		t.Errorf("EncodeState() output does not name categories:\n%s", b.String())
	}
	got, err := DecodeState(&b)
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if diff := cmp.Diff(Seed(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DecodeState() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeYAML(&b, Seed()); err != nil {
		t.Fatalf("EncodeYAML() error = %v", err)
	}
	if !strings.Contains(b.String(), "category: International") {
		t.Errorf("EncodeYAML() output does not name categories:\n%s", b.String())
	}
	got, err := DecodeYAML(&b)
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}
	if diff := cmp.Diff(Seed(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("DecodeYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML_Invalid(t *testing.T) {
	const profile = "profile: {name: A, major: B, university: C, bio: '', email: '', avatar: ''}\n"
	tests := []struct {
		name string
		yaml string
	}{
		{"missing category", profile + "achievements: [{id: a, title: T, issuer: I}]\nexperiences: []\nacademics: []\nhobbies: []\n"},
		{"empty title", profile + "achievements: [{id: a, title: '', issuer: '', category: Campus}]\nexperiences: []\nacademics: []\nhobbies: []\n"},
		{"NaN GPA", profile + "achievements: []\nexperiences: []\nacademics: [{semester: Sem 1, gpa: .nan}]\nhobbies: []\n"},
		{"missing lists", profile},
		{"not yaml", "profile: [unclosed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(tt.yaml))
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("DecodeYAML() error = %v, want %v", err, ErrCorrupt)
			}
		})
	}
}
