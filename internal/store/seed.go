package store

import "github.com/noah-isme/myclassprogress/internal/models"

const (
	demoPassword  = "password123"
	demoCreatedAt = "2024-01-01"
)

// DemoData returns a fresh copy of the demo school: five students, three
// teachers, six task rows and five grades.
func DemoData() models.Snapshot {
	return models.Snapshot{
		Students: demoStudents(),
		Teachers: demoTeachers(),
		Tasks:    demoTasks(),
		Grades:   demoGrades(),
		Settings: demoSettings(),
		Version:  models.SnapshotVersion,
	}
}

func demoStudent(id, name, email, class, phone, birth, address string) models.Student {
	return models.Student{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  demoPassword,
		Class:     class,
		Phone:     phone,
		BirthDate: birth,
		Address:   address,
		Role:      models.RoleStudent,
		IsActive:  models.Bool(true),
		CreatedAt: demoCreatedAt,
	}
}

func demoStudents() []models.Student {
	return []models.Student{
		demoStudent("S001", "Andi Wijaya", "andi@school.com", "12 IPA 1", "08123456789", "2006-05-15", "Jl. Merdeka No. 123, Jakarta"),
		demoStudent("S002", "Sari Dewi", "sari@school.com", "12 IPA 1", "08129876543", "2006-08-22", "Jl. Sudirman No. 45, Jakarta"),
		demoStudent("S003", "Budi Santoso", "budi@school.com", "12 IPS 1", "081311223344", "2006-03-10", "Jl. Thamrin No. 67, Jakarta"),
		demoStudent("S004", "Rina Melati", "rina@school.com", "12 IPA 2", "081344556677", "2006-11-30", "Jl. Gatot Subroto No. 89, Jakarta"),
		demoStudent("S005", "Dodi Pratama", "dodi@school.com", "12 IPS 2", "081377889900", "2006-07-18", "Jl. Asia Afrika No. 12, Jakarta"),
	}
}

func demoTeacher(id, name, email, subject, phone string, classes ...string) models.Teacher {
	return models.Teacher{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  demoPassword,
		Subject:   subject,
		Phone:     phone,
		Role:      models.RoleTeacher,
		IsActive:  models.Bool(true),
		Classes:   classes,
		CreatedAt: demoCreatedAt,
	}
}

func demoTeachers() []models.Teacher {
	return []models.Teacher{
		demoTeacher("G001", "Bu Santi, M.Pd", "santi@school.com", "Matematika", "08111222333", "12 IPA 1", "12 IPA 2", "12 IPS 1"),
		demoTeacher("G002", "Pak Budi, S.Pd", "budi_guru@school.com", "Fisika", "08114455666", "12 IPA 1", "12 IPA 2"),
		demoTeacher("G003", "Bu Dewi, M.Pd", "dewi@school.com", "Bahasa Indonesia", "08117788999", "12 IPA 1", "12 IPA 2", "12 IPS 1", "12 IPS 2"),
	}
}

func demoTask(id, title, description, subject, teacherID, given, due, status, studentID, priority, createdAt string) models.Task {
	return models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Subject:     subject,
		TeacherID:   teacherID,
		GivenDate:   given,
		DueDate:     due,
		Status:      status,
		StudentID:   studentID,
		Class:       "12 IPA 1",
		Priority:    priority,
		Attachments: []string{},
		CreatedAt:   createdAt,
	}
}

func demoTasks() []models.Task {
	return []models.Task{
		demoTask("T001", "Tugas Matematika - Trigonometri",
			"Kerjakan soal trigonometri halaman 45-48. Tulis jawaban di buku tugas dan kumpulkan sebelum deadline.\n\nSoal:\n1. Hitung nilai sin 30° + cos 60°\n2. Selesaikan persamaan trigonometri...",
			"Matematika", "G001", "2024-01-15", "2024-01-22", models.TaskPending, "S001", "medium", "2024-01-15T08:00:00"),
		demoTask("T002", "Essay Sejarah Indonesia",
			"Buat essay tentang perjuangan kemerdekaan Indonesia minimal 500 kata.\n\nTopik: Peran pemuda dalam memperjuangkan kemerdekaan Indonesia.\n\nFormat:\n- Pendahuluan\n- Isi\n- Penutup\n- Daftar Pustaka",
			"Sejarah", "G001", "2024-01-10", "2024-01-25", models.TaskDone, "S001", "high", "2024-01-10T09:30:00"),
		demoTask("T003", "Laporan Praktikum Fisika - Hukum Newton",
			"Buat laporan praktikum hukum Newton dengan format yang telah ditentukan.\n\nLaporan harus mencakup:\n- Tujuan praktikum\n- Alat dan bahan\n- Langkah kerja\n- Data pengamatan\n- Analisis data\n- Kesimpulan",
			"Fisika", "G002", "2024-01-12", "2024-01-19", models.TaskPending, "S001", "high", "2024-01-12T10:15:00"),
		demoTask("T004", "Analisis Cerpen Bahasa Indonesia",
			"Analisis cerpen 'Robohnya Surau Kami' karya A.A. Navis.\n\nAspek yang dianalisis:\n- Tema dan amanat\n- Penokohan\n- Alur cerita\n- Latar\n- Nilai-nilai kehidupan",
			"Bahasa Indonesia", "G003", "2024-01-08", "2024-01-18", models.TaskDone, "S001", "medium", "2024-01-08T14:20:00"),
		demoTask("T005", "Tugas Matematika - Trigonometri",
			"Kerjakan soal trigonometri halaman 45-48.",
			"Matematika", "G001", "2024-01-15", "2024-01-22", models.TaskDone, "S002", "medium", "2024-01-15T08:00:00"),
		demoTask("T006", "Essay Sejarah Indonesia",
			"Buat essay tentang perjuangan kemerdekaan Indonesia.",
			"Sejarah", "G001", "2024-01-10", "2024-01-25", models.TaskPending, "S002", "high", "2024-01-10T09:30:00"),
	}
}

func demoGrade(id, studentID, taskID, subject string, score float64, date, note, teacherID, createdAt string) models.Grade {
	return models.Grade{
		ID:           id,
		StudentID:    studentID,
		TaskID:       taskID,
		Subject:      subject,
		Score:        score,
		Date:         date,
		Note:         note,
		TeacherID:    teacherID,
		Semester:     1,
		AcademicYear: "2024/2025",
		CreatedAt:    createdAt,
	}
}

func demoGrades() []models.Grade {
	return []models.Grade{
		demoGrade("N001", "S001", "T001", "Matematika", 85, "2024-01-20",
			"Kerja bagus! Perhitungan akurat, namun perlu lebih teliti dalam penulisan satuan. Perbaikan diperlukan di bagian cosinus.",
			"G001", "2024-01-20T14:30:00"),
		demoGrade("N002", "S001", "T002", "Sejarah", 92, "2024-01-18",
			"Essay sangat komprehensif dan terstruktur dengan baik. Argumentasi kuat didukung dengan fakta historis yang akurat. Bahasa yang digunakan sangat baik.",
			"G001", "2024-01-18T10:15:00"),
		demoGrade("N003", "S001", "T004", "Bahasa Indonesia", 88, "2024-01-17",
			"Analisis mendalam dan kritis. Pemahaman terhadap cerpen sangat baik. Namun, perlu lebih banyak kutipan langsung dari teks untuk mendukung analisis.",
			"G003", "2024-01-17T16:45:00"),
		demoGrade("N004", "S002", "T005", "Matematika", 78, "2024-01-21",
			"Konsep sudah dipahami dengan baik, namun perlu lebih teliti dalam perhitungan. Beberapa langkah penyelesaian terlewat.",
			"G001", "2024-01-21T11:20:00"),
		demoGrade("N005", "S003", "T001", "Matematika", 65, "2024-01-22",
			"Perlu lebih banyak latihan dalam memahami konsep trigonometri. Beberapa rumus dasar masih keliru.",
			"G001", "2024-01-22T09:10:00"),
	}
}

func demoSettings() models.Settings {
	return models.Settings{
		AcademicYear:  "2024/2025",
		Semester:      1,
		SchoolName:    "SMA Negeri 1 Jakarta",
		SchoolAddress: "Jl. Pendidikan No. 1, Jakarta Pusat",
		SchoolPhone:   "(021) 1234567",
		MaxGrade:      100,
		MinGrade:      0,
		GradeScale:    models.DefaultGradeScale(),
		CreatedAt:     demoCreatedAt,
		UpdatedAt:     demoCreatedAt,
	}
}
