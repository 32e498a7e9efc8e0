package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/selftrack"
	"github.com/xuri/excelize/v2"
)

// Workbook builds a spreadsheet of the portfolio, one sheet per list.
func Workbook(s selftrack.AppState) (*excelize.File, error) {
	f := excelize.NewFile()

	p := s.Profile
	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Profile", [][]any{
			{"Name", p.Name},
			{"Major", p.Major},
			{"University", p.University},
			{"Email", p.Email},
			{"Bio", p.Bio},
		}},
		{"Academics", academicRows(s.Academics)},
		{"Achievements", achievementRows(s.Achievements)},
		{"Experiences", experienceRows(s.Experiences)},
		{"Hobbies", hobbyRows(s.Hobbies)},
	}

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, err
		}
		for r, row := range sh.rows {
			addr, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sh.name, addr, &row); err != nil {
				return nil, fmt.Errorf("error writing sheet %q: %w", sh.name, err)
			}
		}
	}
	return f, nil
}

// WriteWorkbook writes the xlsx spreadsheet of the portfolio into w.
func WriteWorkbook(w io.Writer, s selftrack.AppState) error {
	f, err := Workbook(s)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func academicRows(list []selftrack.AcademicRecord) [][]any {
	rows := [][]any{{"Semester", "GPA"}}
	for _, a := range list {
		rows = append(rows, []any{a.Semester, a.GPA})
	}
	avg, _ := selftrack.AverageGPA(list).Round(2).Float64()
	return append(rows, []any{"Average", avg})
}

func achievementRows(list []selftrack.Achievement) [][]any {
	rows := [][]any{{"ID", "Title", "Issuer", "Year", "Category", "Description"}}
	for _, a := range list {
		rows = append(rows, []any{a.ID, a.Title, a.Issuer, a.Year, a.Category.String(), a.Description})
	}
	return rows
}

func experienceRows(list []selftrack.Experience) [][]any {
	rows := [][]any{{"ID", "Role", "Organization", "Location", "Period", "Type", "Description"}}
	for _, e := range list {
		rows = append(rows, []any{e.ID, e.Role, e.Organization, e.Location, e.Period, e.Type.String(), e.Description})
	}
	return rows
}

func hobbyRows(list []selftrack.Hobby) [][]any {
	rows := [][]any{{"ID", "Icon", "Name"}}
	for _, h := range list {
		rows = append(rows, []any{h.ID, h.Icon, h.Name})
	}
	return rows
}
