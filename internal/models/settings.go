package models

// ScaleEntry is one letter of the grade scale shown on report pages.
type ScaleEntry struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Color string  `json:"color"`
}

// Settings is the singleton school configuration record.
type Settings struct {
	AcademicYear  string                `json:"academicYear"`
	Semester      int                   `json:"semester"`
	SchoolName    string                `json:"schoolName"`
	SchoolAddress string                `json:"schoolAddress,omitempty"`
	SchoolPhone   string                `json:"schoolPhone,omitempty"`
	MaxGrade      float64               `json:"maxGrade,omitempty"`
	MinGrade      float64               `json:"minGrade"`
	GradeScale    map[Letter]ScaleEntry `json:"gradeScale,omitempty"`
	CreatedAt     string                `json:"createdAt,omitempty"`
	UpdatedAt     string                `json:"updatedAt,omitempty"`
}

// Clone returns a copy that shares no map with s.
func (s Settings) Clone() Settings {
	if s.GradeScale != nil {
		scale := make(map[Letter]ScaleEntry, len(s.GradeScale))
		for k, v := range s.GradeScale {
			scale[k] = v
		}
		s.GradeScale = scale
	}
	return s
}

// SettingsPatch lists the mutable settings fields.
type SettingsPatch struct {
	AcademicYear  *string `json:"academicYear,omitempty"`
	Semester      *int    `json:"semester,omitempty" validate:"omitempty,oneof=1 2"`
	SchoolName    *string `json:"schoolName,omitempty"`
	SchoolAddress *string `json:"schoolAddress,omitempty"`
	SchoolPhone   *string `json:"schoolPhone,omitempty"`
}

// Apply merges the patch over s.
func (p SettingsPatch) Apply(s *Settings) {
	setString(&s.AcademicYear, p.AcademicYear)
	if p.Semester != nil {
		s.Semester = *p.Semester
	}
	setString(&s.SchoolName, p.SchoolName)
	setString(&s.SchoolAddress, p.SchoolAddress)
	setString(&s.SchoolPhone, p.SchoolPhone)
}
