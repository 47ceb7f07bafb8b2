package models

import (
	"encoding/json"
	"fmt"
)

// SessionUser is the snapshot of the logged-in account. Exactly one of
// Student or Teacher is set; on the wire it is the bare record.
type SessionUser struct {
	Student *Student
	Teacher *Teacher
}

// StudentSession wraps a student snapshot.
func StudentSession(s Student) *SessionUser {
	c := s.Clone()
	return &SessionUser{Student: &c}
}

// TeacherSession wraps a teacher snapshot.
func TeacherSession(t Teacher) *SessionUser {
	c := t.Clone()
	return &SessionUser{Teacher: &c}
}

// ID returns the account id.
func (u *SessionUser) ID() string {
	switch {
	case u == nil:
		return ""
	case u.Student != nil:
		return u.Student.ID
	case u.Teacher != nil:
		return u.Teacher.ID
	}
	return ""
}

// Role returns RoleStudent or RoleTeacher.
func (u *SessionUser) Role() string {
	switch {
	case u == nil:
		return ""
	case u.Student != nil:
		return RoleStudent
	case u.Teacher != nil:
		return RoleTeacher
	}
	return ""
}

// Name returns the display name.
func (u *SessionUser) Name() string {
	switch {
	case u == nil:
		return ""
	case u.Student != nil:
		return u.Student.Name
	case u.Teacher != nil:
		return u.Teacher.Name
	}
	return ""
}

// Clone returns a deep copy.
func (u *SessionUser) Clone() *SessionUser {
	if u == nil {
		return nil
	}
	if u.Student != nil {
		return StudentSession(*u.Student)
	}
	if u.Teacher != nil {
		return TeacherSession(*u.Teacher)
	}
	return &SessionUser{}
}

// Redacted returns a deep copy with the password removed.
func (u *SessionUser) Redacted() *SessionUser {
	c := u.Clone()
	switch {
	case c == nil:
	case c.Student != nil:
		c.Student.Password = ""
	case c.Teacher != nil:
		c.Teacher.Password = ""
	}
	return c
}

// MarshalJSON writes the wrapped record.
func (u SessionUser) MarshalJSON() ([]byte, error) {
	switch {
	case u.Student != nil:
		return json.Marshal(u.Student)
	case u.Teacher != nil:
		return json.Marshal(u.Teacher)
	}
	return []byte("null"), nil
}

// UnmarshalJSON picks the record type from its role field.
func (u *SessionUser) UnmarshalJSON(data []byte) error {
	var probe struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	switch probe.Role {
	case RoleStudent:
		var s Student
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = SessionUser{Student: &s}
	case RoleTeacher:
		var t Teacher
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		*u = SessionUser{Teacher: &t}
	default:
		return fmt.Errorf("session user: unknown role %q", probe.Role)
	}
	return nil
}
