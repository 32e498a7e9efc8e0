package selftrack

import (
	"encoding/json"
	"testing"
)

func TestParseGPA(t *testing.T) {
	tests := []struct {
		in      string
		want    GPA
		wantErr bool
	}{
		{"3.9", 3.9, false},
		{" 4 ", 4, false},
		{"0", 0, false},
		{"3,75", 3.75, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
		{"4.5", 0, true},
		{"-1", 0, true},
		{"3.9abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGPA(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGPA(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGPA(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCategory_JSON(t *testing.T) {
	for _, c := range Categories {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", c, err)
		}
		var got Category
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if got != c {
			t.Errorf("Unmarshal(%s) = %v, want %v", data, got, c)
		}
	}

	var c Category
	if err := json.Unmarshal([]byte(`"Galactic"`), &c); err == nil {
		t.Error(`Unmarshal("Galactic") succeeded, want an error`)
	}
	if _, err := json.Marshal(Category(9)); err == nil {
		t.Error("Marshal(Category(9)) succeeded, want an error")
	}
}

func TestExperienceType_JSON(t *testing.T) {
	for _, et := range ExperienceTypes {
		data, err := json.Marshal(et)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", et, err)
		}
		if want := `"` + et.String() + `"`; string(data) != want {
			t.Errorf("Marshal(%v) = %s, want %s", et, data, want)
		}
	}

	var et ExperienceType
	if err := json.Unmarshal([]byte(`"Hobby"`), &et); err == nil {
		t.Error(`Unmarshal("Hobby") succeeded, want an error`)
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{"campus": Campus, " National": National, "INTERNATIONAL": International}
	for in, want := range tests {
		got, err := ParseCategory(in)
		if err != nil {
			t.Errorf("ParseCategory(%q) error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseCategory(%q) = %v, want %v", in, got, want)
		}
	}
}
