package models

// Role values stored on every account record.
const (
	RoleStudent = "siswa"
	RoleTeacher = "guru"
)

// Student is a learner account. JSON names match the records written by the
// browser dashboard so existing blobs load unchanged.
type Student struct {
	ID        string `json:"id"`
	Name      string `json:"nama"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Class     string `json:"kelas"`
	Phone     string `json:"telepon,omitempty"`
	BirthDate string `json:"tanggalLahir,omitempty"`
	Address   string `json:"alamat,omitempty"`
	Role      string `json:"role"`
	// IsActive is nil for legacy records, which count as active.
	IsActive  *bool  `json:"isActive,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Active reports whether the record is visible to queries.
func (s Student) Active() bool {
	return s.IsActive == nil || *s.IsActive
}

// Clone returns a copy that shares no pointers with s.
func (s Student) Clone() Student {
	if s.IsActive != nil {
		s.IsActive = Bool(*s.IsActive)
	}
	return s
}

// Redacted returns a copy without the password, for API responses.
func (s Student) Redacted() Student {
	c := s.Clone()
	c.Password = ""
	return c
}

// NewStudent carries registration data; id, role and timestamps are assigned by the store.
type NewStudent struct {
	Name      string `json:"nama" validate:"required"`
	Email     string `json:"email" validate:"required,email_loose"`
	Password  string `json:"password" validate:"required"`
	Class     string `json:"kelas" validate:"required"`
	Phone     string `json:"telepon" validate:"omitempty,phone"`
	BirthDate string `json:"tanggalLahir"`
	Address   string `json:"alamat"`
}

// StudentPatch lists the mutable student fields; nil fields are left untouched.
type StudentPatch struct {
	Name      *string `json:"nama,omitempty" validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email_loose"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=1"`
	Class     *string `json:"kelas,omitempty" validate:"omitempty,min=1"`
	Phone     *string `json:"telepon,omitempty" validate:"omitempty,phone"`
	BirthDate *string `json:"tanggalLahir,omitempty"`
	Address   *string `json:"alamat,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// Apply merges the patch over s.
func (p StudentPatch) Apply(s *Student) {
	setString(&s.Name, p.Name)
	setString(&s.Email, p.Email)
	setString(&s.Password, p.Password)
	setString(&s.Class, p.Class)
	setString(&s.Phone, p.Phone)
	setString(&s.BirthDate, p.BirthDate)
	setString(&s.Address, p.Address)
	if p.IsActive != nil {
		s.IsActive = Bool(*p.IsActive)
	}
}
