package models

// Task status values.
const (
	TaskPending = "belum"
	TaskDone    = "selesai"
)

// Task is one assignment row for exactly one student. Assigning work to a
// class fans out into one Task per student; Class is a copy of the student's
// class at creation time and is not kept in sync.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"judul"`
	Description string   `json:"deskripsi"`
	Subject     string   `json:"mataPelajaran"`
	TeacherID   string   `json:"guruId"`
	GivenDate   string   `json:"tanggalDiberikan"`
	DueDate     string   `json:"tenggatWaktu"`
	Status      string   `json:"status"`
	StudentID   string   `json:"siswaId"`
	Class       string   `json:"kelas"`
	Priority    string   `json:"priority,omitempty"`
	Attachments []string `json:"attachments"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// Done reports whether the student finished the task.
func (t Task) Done() bool {
	return t.Status == TaskDone
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	if t.Attachments != nil {
		t.Attachments = append(make([]string, 0, len(t.Attachments)), t.Attachments...)
	}
	return t
}

// NewTask describes a single task row. Status defaults to TaskPending when empty.
type NewTask struct {
	Title       string   `json:"judul" validate:"required"`
	Description string   `json:"deskripsi"`
	Subject     string   `json:"mataPelajaran" validate:"required"`
	TeacherID   string   `json:"guruId" validate:"required"`
	GivenDate   string   `json:"tanggalDiberikan"`
	DueDate     string   `json:"tenggatWaktu" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=belum selesai"`
	StudentID   string   `json:"siswaId" validate:"required"`
	Class       string   `json:"kelas"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	Attachments []string `json:"attachments"`
}

// ClassAssignment is a task handed to every active student of a class.
type ClassAssignment struct {
	Title       string `json:"judul" validate:"required"`
	Description string `json:"deskripsi"`
	Subject     string `json:"mataPelajaran" validate:"required"`
	TeacherID   string `json:"guruId" validate:"required"`
	GivenDate   string `json:"tanggalDiberikan"`
	DueDate     string `json:"tenggatWaktu" validate:"required"`
	Class       string `json:"kelas" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// TaskPatch lists the mutable task fields.
type TaskPatch struct {
	Title       *string   `json:"judul,omitempty" validate:"omitempty,min=1"`
	Description *string   `json:"deskripsi,omitempty"`
	Subject     *string   `json:"mataPelajaran,omitempty" validate:"omitempty,min=1"`
	DueDate     *string   `json:"tenggatWaktu,omitempty"`
	Status      *string   `json:"status,omitempty" validate:"omitempty,oneof=belum selesai"`
	Class       *string   `json:"kelas,omitempty"`
	Priority    *string   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Attachments *[]string `json:"attachments,omitempty"`
}

// StatusOnly reports whether status is the only field the patch sets.
func (p TaskPatch) StatusOnly() bool {
	return p.Status != nil && p.Title == nil && p.Description == nil && p.Subject == nil &&
		p.DueDate == nil && p.Class == nil && p.Priority == nil && p.Attachments == nil
}

// Apply merges the patch over t.
func (p TaskPatch) Apply(t *Task) {
	setString(&t.Title, p.Title)
	setString(&t.Description, p.Description)
	setString(&t.Subject, p.Subject)
	setString(&t.DueDate, p.DueDate)
	setString(&t.Status, p.Status)
	setString(&t.Class, p.Class)
	setString(&t.Priority, p.Priority)
	if p.Attachments != nil {
		t.Attachments = append(make([]string, 0, len(*p.Attachments)), (*p.Attachments)...)
	}
}
