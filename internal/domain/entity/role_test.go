package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" Doctor ")
	assert.True(t, ok)
	assert.Equal(t, RoleDoctor, role)

	_, ok = ParseRole("nurse")
	assert.False(t, ok)
}

func TestRolePrefixes(t *testing.T) {
	cases := map[Role]string{
		RolePatient:     "PAT",
		RoleDoctor:      "DOC",
		RoleLab:         "LAB",
		RoleAnimalOwner: "ANM",
		RoleAdmin:       "ADM",
	}
	for role, prefix := range cases {
		assert.Equal(t, prefix, role.Prefix(), role)
		assert.True(t, role.MatchesHealthID(prefix+"_ABC123"), role)
		assert.True(t, role.MatchesHealthID(prefix+"_abc123"), role)
	}
	assert.False(t, RolePatient.MatchesHealthID("DOC_ABC123"))
	assert.False(t, Role("nurse").MatchesHealthID("NUR_X"))
}

func TestSelfRegistrable(t *testing.T) {
	assert.True(t, RolePatient.SelfRegistrable())
	assert.True(t, RoleAnimalOwner.SelfRegistrable())
	assert.False(t, RoleAdmin.SelfRegistrable())
	assert.False(t, Role("").SelfRegistrable())
}

func TestParseRecordType(t *testing.T) {
	rt, ok := ParseRecordType("")
	assert.True(t, ok)
	assert.Equal(t, RecordTypeConsultation, rt)

	rt, ok = ParseRecordType("lab_test")
	assert.True(t, ok)
	assert.Equal(t, RecordTypeLabTest, rt)

	_, ok = ParseRecordType("surgery")
	assert.False(t, ok)
}
