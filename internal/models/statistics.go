package models

// StudentStatistics summarises one student's work.
type StudentStatistics struct {
	AverageGrade      float64      `json:"averageGrade"`
	TotalTasks        int          `json:"totalTasks"`
	CompletedTasks    int          `json:"completedTasks"`
	PendingTasks      int          `json:"pendingTasks"`
	HighestGrade      float64      `json:"highestGrade"`
	LowestGrade       float64      `json:"lowestGrade"`
	GradeDistribution Distribution `json:"gradeDistribution"`
}

// ClassStatistics summarises the grades of a class section.
type ClassStatistics struct {
	Class             string       `json:"kelas"`
	AverageGrade      float64      `json:"averageGrade"`
	TotalStudents     int          `json:"totalStudents"`
	TotalGrades       int          `json:"totalGrades"`
	HighestGrade      float64      `json:"highestGrade"`
	LowestGrade       float64      `json:"lowestGrade"`
	GradeDistribution Distribution `json:"gradeDistribution"`
}

// RankedStudent is one row of a ranking table.
type RankedStudent struct {
	Rank       int     `json:"rank"`
	StudentID  string  `json:"siswaId"`
	Name       string  `json:"nama"`
	Class      string  `json:"kelas"`
	Average    float64 `json:"average"`
	GradeCount int     `json:"gradeCount"`
	Predicate  Letter  `json:"predicate"`
}

// TaskProgress tracks how many rows of a fanned-out task are done.
type TaskProgress struct {
	Task      Task `json:"task"`
	Completed int  `json:"completed"`
	Total     int  `json:"total"`
	Percent   int  `json:"percent"`
}

// TeacherDashboard is the landing view of a teacher.
type TeacherDashboard struct {
	TeacherID     string          `json:"guruId"`
	TasksGiven    int             `json:"totalTugasDiberikan"`
	TotalStudents int             `json:"totalSiswa"`
	TasksToGrade  int             `json:"tugasBelumDinilai"`
	RecentTasks   []TaskProgress  `json:"recentTasks"`
	UngradedTasks []Task          `json:"tasksToGrade"`
	TopStudents   []RankedStudent `json:"topStudents"`
}

// TeacherReport aggregates every grade a teacher recorded.
type TeacherReport struct {
	TeacherID     string          `json:"guruId"`
	Subject       string          `json:"mataPelajaran"`
	TasksGiven    int             `json:"totalTugas"`
	GradesEntered int             `json:"totalNilai"`
	Average       float64         `json:"average"`
	Highest       float64         `json:"highest"`
	Lowest        float64         `json:"lowest"`
	TopStudents   []RankedStudent `json:"topStudents"`
}
