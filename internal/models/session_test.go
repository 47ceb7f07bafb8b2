package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionUserJSON(t *testing.T) {
	user := StudentSession(Student{ID: "S001", Name: "Andi Wijaya", Role: RoleStudent, Class: "12 IPA 1"})

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"kelas":"12 IPA 1"`)

	var decoded *SessionUser
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded)
	assert.Equal(t, "S001", decoded.ID())
	assert.Equal(t, RoleStudent, decoded.Role())
	assert.Nil(t, decoded.Teacher)

	var teacher SessionUser
	require.NoError(t, json.Unmarshal([]byte(`{"id":"G001","nama":"Bu Santi, M.Pd","role":"guru","classes":["12 IPA 1"]}`), &teacher))
	assert.Equal(t, "Bu Santi, M.Pd", teacher.Name())
	assert.True(t, teacher.Teacher.Teaches("12 IPA 1"))

	var unknown SessionUser
	assert.Error(t, json.Unmarshal([]byte(`{"id":"X1","role":"admin"}`), &unknown))

	var none *SessionUser
	require.NoError(t, json.Unmarshal([]byte(`null`), &none))
	assert.Nil(t, none)
	assert.Equal(t, "", none.ID())
}

func TestSessionUserCloneIsDeep(t *testing.T) {
	user := TeacherSession(Teacher{ID: "G001", Role: RoleTeacher, Classes: []string{"12 IPA 1"}})
	clone := user.Clone()
	clone.Teacher.Classes[0] = "changed"
	assert.Equal(t, "12 IPA 1", user.Teacher.Classes[0])
}

func TestPatchesApply(t *testing.T) {
	st := Student{ID: "S1", Name: "Old", Class: "10 A", Phone: "0811111111"}
	StudentPatch{Name: String("New"), IsActive: Bool(false)}.Apply(&st)
	assert.Equal(t, "New", st.Name)
	assert.Equal(t, "10 A", st.Class)
	assert.Equal(t, "0811111111", st.Phone)
	assert.False(t, st.Active())

	settings := Settings{AcademicYear: "2024/2025", Semester: 1, SchoolName: "SMA"}
	SettingsPatch{Semester: Int(2)}.Apply(&settings)
	assert.Equal(t, 2, settings.Semester)
	assert.Equal(t, "SMA", settings.SchoolName)

	var decoded StudentPatch
	require.NoError(t, json.Unmarshal([]byte(`{"kelas":"11 B"}`), &decoded))
	assert.Nil(t, decoded.Name)
	require.NotNil(t, decoded.Class)
	assert.Equal(t, "11 B", *decoded.Class)
}
