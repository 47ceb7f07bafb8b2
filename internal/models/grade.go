package models

// Grade is the score a student received for one task. At most one Grade
// exists per (StudentID, TaskID).
type Grade struct {
	ID           string  `json:"id"`
	StudentID    string  `json:"siswaId"`
	TaskID       string  `json:"tugasId"`
	Subject      string  `json:"mataPelajaran"`
	Score        float64 `json:"nilai"`
	Date         string  `json:"tanggal"`
	Note         string  `json:"catatan"`
	TeacherID    string  `json:"guruId"`
	Semester     int     `json:"semester"`
	AcademicYear string  `json:"academicYear"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// GradeInput is the payload of a grade upsert. Semester and AcademicYear
// default to the current settings when nil.
type GradeInput struct {
	StudentID    string  `json:"siswaId" validate:"required"`
	TaskID       string  `json:"tugasId" validate:"required"`
	Subject      *string `json:"mataPelajaran,omitempty"`
	Score        float64 `json:"nilai" validate:"score"`
	Date         *string `json:"tanggal,omitempty"`
	Note         *string `json:"catatan,omitempty"`
	TeacherID    string  `json:"guruId" validate:"required"`
	Semester     *int    `json:"semester,omitempty"`
	AcademicYear *string `json:"academicYear,omitempty"`
}

// GradePatch lists the mutable grade fields.
type GradePatch struct {
	Subject      *string  `json:"mataPelajaran,omitempty"`
	Score        *float64 `json:"nilai,omitempty" validate:"omitempty,score"`
	Date         *string  `json:"tanggal,omitempty"`
	Note         *string  `json:"catatan,omitempty"`
	TeacherID    *string  `json:"guruId,omitempty"`
	Semester     *int     `json:"semester,omitempty"`
	AcademicYear *string  `json:"academicYear,omitempty"`
}

// Apply merges the patch over g.
func (p GradePatch) Apply(g *Grade) {
	setString(&g.Subject, p.Subject)
	if p.Score != nil {
		g.Score = *p.Score
	}
	setString(&g.Date, p.Date)
	setString(&g.Note, p.Note)
	setString(&g.TeacherID, p.TeacherID)
	if p.Semester != nil {
		g.Semester = *p.Semester
	}
	setString(&g.AcademicYear, p.AcademicYear)
}
