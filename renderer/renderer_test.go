package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/selftrack"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func assertContains(t *testing.T, name, got string, wants ...string) {
	t.Helper()
	if strings.Contains(got, "error ") {
		t.Fatalf("%s rendered an error:\n%s", name, got)
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("%s does not contain %q:\n%s", name, want, got)
		}
	}
}

func TestDashboardMarkdown(t *testing.T) {
	s := selftrack.Seed()
	s.Academics = append(s.Academics, selftrack.AcademicRecord{Semester: "Sem 3", GPA: 3.9})

	got := DashboardMarkdown(s)
	assertContains(t, "DashboardMarkdown()", got,
		"# Ahmad Rizky",
		"Teknik Informatika, Universitas Indonesia",
		"| 3.9 | 3.82 | 2 | 1 | 1 |",
		"| Sem 3 | 3.9 |",
		"* **Juara 1 Hackathon Nasional** (National), Kementerian Komunikasi dan Informatika, Okt 2023",
		"📷 Fotografi",
	)
}

func TestDashboardMarkdown_Empty(t *testing.T) {
	got := DashboardMarkdown(selftrack.AppState{})
	assertContains(t, "DashboardMarkdown()", got, "| 0 | 0.00 | 0 | 0 | 0 |", "No academic records yet.")
	if strings.Contains(got, "Latest Achievements") {
		t.Errorf("DashboardMarkdown() renders an empty achievements section:\n%s", got)
	}
}

func TestAchievementsMarkdown(t *testing.T) {
	list := []selftrack.Achievement{
		{ID: "a1", Title: "Pipe | Title", Issuer: "X", Category: selftrack.Campus, CertificateURL: "data:image/png;base64,AAAA"},
		{ID: "a2", Title: "Linked", Issuer: "Y", Category: selftrack.National, CertificateURL: "https://example.com/c.png"},
	}

	got := AchievementsMarkdown(list, Options{})
	assertContains(t, "AchievementsMarkdown()", got,
		`| a1 | Pipe \| Title | X |  | Campus | attached |`,
		"| a2 | Linked | Y |  | National | [certificate](https://example.com/c.png) |",
	)

	inline := AchievementsMarkdown(list, Options{InlineImages: true})
	assertContains(t, "AchievementsMarkdown(inline)", inline, "![Certificate](data:image/png;base64,AAAA)")

	assertContains(t, "AchievementsMarkdown(empty)", AchievementsMarkdown(nil, Options{}), "No achievements yet.")
}

func TestExperiencesMarkdown(t *testing.T) {
	got := ExperiencesMarkdown(selftrack.Seed().Experiences)
	assertContains(t, "ExperiencesMarkdown()", got,
		"### Frontend Developer Intern, TechCorp Indonesia",
		"*Work* · Jul 2023 - Sep 2023 · Jakarta, Indonesia · `1`",
		"*Organization*",
	)
}

func TestFeedbackMarkdown(t *testing.T) {
	got := FeedbackMarkdown(selftrack.Feedback{Feedback: []string{"one", "two"}, Motivation: "go"})
	want := "## Mentor Feedback\n\n1. one\n1. two\n\n> go\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FeedbackMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestProfileAndHobbies(t *testing.T) {
	s := selftrack.Seed()
	assertContains(t, "ProfileMarkdown()", ProfileMarkdown(s, Options{}),
		"| Email | rizky@student.ui.ac.id |",
		"[avatar](https://images.unsplash.com/",
	)
	assertContains(t, "HobbiesMarkdown()", HobbiesMarkdown(s.Hobbies), "| 3 | 🎤 Public Speaking |")
	assertContains(t, "AcademicsMarkdown()", AcademicsMarkdown(s), "| 3.75 | 3.78 |", "| Sem 2 | 3.75 |")
}

func TestWriteHTMLPage(t *testing.T) {
	var b bytes.Buffer
	if err := WriteHTMLPage(&b, selftrack.Seed()); err != nil {
		t.Fatalf("WriteHTMLPage() error = %v", err)
	}
	assertContains(t, "WriteHTMLPage()", b.String(),
		"<title>Ahmad Rizky</title>",
		"<h1>Ahmad Rizky</h1>",
		"<table>",
		"<h2>Achievements</h2>",
		`<img src="https://images.unsplash.com/photo-1589330694653-ded6df03f754?w=600&amp;h=400&amp;fit=crop" alt="Certificate">`,
	)
}

func TestWorkbook(t *testing.T) {
	var b bytes.Buffer
	if err := WriteWorkbook(&b, selftrack.Seed()); err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&b)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	want := []string{"Profile", "Academics", "Achievements", "Experiences", "Hobbies"}
	if diff := cmp.Diff(want, f.GetSheetList()); diff != "" {
		t.Errorf("GetSheetList() mismatch (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows("Academics")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	wantRows := [][]string{
		{"Semester", "GPA"},
		{"Sem 1", "3.8"},
		{"Sem 2", "3.75"},
		{"Average", "3.78"},
	}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Errorf("Academics rows mismatch (-want +got):\n%s", diff)
	}

	rows, _ = f.GetRows("Achievements")
	if len(rows) != 3 || rows[1][4] != "National" {
		t.Errorf("Achievements rows = %v", rows)
	}
}
