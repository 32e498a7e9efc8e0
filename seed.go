package selftrack

// Seed returns the initial portfolio used when nothing has been persisted yet.
func Seed() AppState {
	return AppState{
		Profile: Profile{
			Name:       "Ahmad Rizky",
			Major:      "Teknik Informatika",
			University: "Universitas Indonesia",
			Bio:        "Mahasiswa tingkat akhir yang antusias dengan pengembangan web dan AI. Memiliki minat besar dalam membangun solusi yang berdampak sosial.",
			Email:      "rizky@student.ui.ac.id",
			Avatar:     "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		},
		Achievements: []Achievement{
			{
				ID:             "1",
				Title:          "Juara 1 Hackathon Nasional",
				Issuer:         "Kementerian Komunikasi dan Informatika",
				Year:           "Okt 2023",
				Description:    "Membangun solusi smart city berbasis IoT untuk manajemen limbah perkotaan.",
				Category:       National,
				CertificateURL: "https://images.unsplash.com/photo-1589330694653-ded6df03f754?w=600&h=400&fit=crop",
			},
			{
				ID:             "2",
				Title:          "Google Developer Student Clubs Lead",
				Issuer:         "Google Developers",
				Year:           "Agu 2022",
				Description:    "Terpilih menjadi pemimpin komunitas developer di kampus.",
				Category:       International,
				CertificateURL: "https://images.unsplash.com/photo-1517245386807-bb43f82c33c4?w=600&h=400&fit=crop",
			},
		},
		Experiences: []Experience{
			{
				ID:           "1",
				Role:         "Frontend Developer Intern",
				Organization: "TechCorp Indonesia",
				Location:     "Jakarta, Indonesia",
				Period:       "Jul 2023 - Sep 2023",
				Type:         Work,
				Description:  "Mengembangkan dashboard internal menggunakan React dan Tailwind CSS.",
			},
			{
				ID:           "2",
				Role:         "Kepala Departemen IT",
				Organization: "BEM Fakultas Ilmu Komputer",
				Location:     "Depok, Jawa Barat",
				Period:       "Jan 2022 - Des 2022",
				Type:         Organization,
				Description:  "Mengelola infrastruktur digital fakultas dan memimpin tim beranggotakan 15 orang.",
			},
		},
		Academics: []AcademicRecord{
			{Semester: "Sem 1", GPA: 3.8},
			{Semester: "Sem 2", GPA: 3.75},
		},
		Hobbies: []Hobby{
			{ID: "1", Name: "Fotografi", Icon: "📷"},
			{ID: "2", Name: "Open Source", Icon: "💻"},
			{ID: "3", Name: "Public Speaking", Icon: "🎤"},
		},
	}
}
