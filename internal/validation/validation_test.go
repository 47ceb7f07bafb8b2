package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/myclassprogress/internal/models"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"andi@school.com":   true,
		"a.b@sub.school.id": true,
		"andi@school":       false,
		"andi school@x.com": false,
		"@school.com":       false,
		"":                  false,
	}
	for email, want := range cases {
		assert.Equal(t, want, IsValidEmail(email), email)
	}
}

func TestIsValidPhone(t *testing.T) {
	cases := map[string]bool{
		"08123456789":     true,
		"+62 812-345 678": true,
		"(021) 1234567":   true,
		"0812345":         false,
		"0812345678x":     false,
	}
	for phone, want := range cases {
		assert.Equal(t, want, IsValidPhone(phone), phone)
	}
}

func TestIsValidGradeBoundaries(t *testing.T) {
	assert.False(t, IsValidGrade(-1))
	assert.False(t, IsValidGrade(101))
	assert.True(t, IsValidGrade(0))
	assert.True(t, IsValidGrade(100))
	assert.True(t, IsValidGrade(84.5))
	assert.False(t, IsValidGrade(math.NaN()))

	assert.True(t, IsValidGradeInput(" 85 "))
	assert.False(t, IsValidGradeInput("abc"))
	assert.False(t, IsValidGradeInput("100.5"))
}

func TestValidatorTags(t *testing.T) {
	v := New()

	ok := models.GradeInput{StudentID: "S001", TaskID: "T001", TeacherID: "G001", Score: 0}
	require.NoError(t, v.Struct(ok))

	bad := ok
	bad.Score = 101
	assert.Error(t, v.Struct(bad))

	student := models.NewStudent{Name: "Andi", Email: "andi@school", Password: "x", Class: "12 IPA 1"}
	assert.Error(t, v.Struct(student))
	student.Email = "andi@school.com"
	student.Phone = "123"
	assert.Error(t, v.Struct(student))
	student.Phone = ""
	assert.NoError(t, v.Struct(student))
}
