package models

// Teacher is a staff account; Classes lists the class sections taught.
type Teacher struct {
	ID        string   `json:"id"`
	Name      string   `json:"nama"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	Subject   string   `json:"mataPelajaran"`
	Phone     string   `json:"telepon,omitempty"`
	Role      string   `json:"role"`
	IsActive  *bool    `json:"isActive,omitempty"`
	Classes   []string `json:"classes"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`
}

// Active reports whether the record is visible to queries.
func (t Teacher) Active() bool {
	return t.IsActive == nil || *t.IsActive
}

// Teaches reports whether className is in the teacher's class list.
func (t Teacher) Teaches(className string) bool {
	for _, c := range t.Classes {
		if c == className {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no pointers or slices with t.
func (t Teacher) Clone() Teacher {
	if t.IsActive != nil {
		t.IsActive = Bool(*t.IsActive)
	}
	if t.Classes != nil {
		t.Classes = append(make([]string, 0, len(t.Classes)), t.Classes...)
	}
	return t
}

// Redacted returns a copy without the password.
func (t Teacher) Redacted() Teacher {
	c := t.Clone()
	c.Password = ""
	return c
}

// NewTeacher carries registration data for a teacher account.
type NewTeacher struct {
	Name     string   `json:"nama" validate:"required"`
	Email    string   `json:"email" validate:"required,email_loose"`
	Password string   `json:"password" validate:"required"`
	Subject  string   `json:"mataPelajaran" validate:"required"`
	Phone    string   `json:"telepon" validate:"omitempty,phone"`
	Classes  []string `json:"classes"`
}

// TeacherPatch lists the mutable teacher fields.
type TeacherPatch struct {
	Name     *string   `json:"nama,omitempty" validate:"omitempty,min=1"`
	Email    *string   `json:"email,omitempty" validate:"omitempty,email_loose"`
	Password *string   `json:"password,omitempty" validate:"omitempty,min=1"`
	Subject  *string   `json:"mataPelajaran,omitempty"`
	Phone    *string   `json:"telepon,omitempty" validate:"omitempty,phone"`
	Classes  *[]string `json:"classes,omitempty"`
	IsActive *bool     `json:"isActive,omitempty"`
}

// Apply merges the patch over t.
func (p TeacherPatch) Apply(t *Teacher) {
	setString(&t.Name, p.Name)
	setString(&t.Email, p.Email)
	setString(&t.Password, p.Password)
	setString(&t.Subject, p.Subject)
	setString(&t.Phone, p.Phone)
	if p.Classes != nil {
		t.Classes = append(make([]string, 0, len(*p.Classes)), (*p.Classes)...)
	}
	if p.IsActive != nil {
		t.IsActive = Bool(*p.IsActive)
	}
}
