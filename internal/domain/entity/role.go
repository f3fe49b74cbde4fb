package entity

import "strings"

// Role is the fixed user type chosen at sign-up.
type Role string

const (
	RolePatient     Role = "patient"
	RoleDoctor      Role = "doctor"
	RoleLab         Role = "lab"
	RoleAnimalOwner Role = "animal_owner"
	RoleAdmin       Role = "admin"
)

// Health ID prefixes per role family
const (
	PrefixPatient     = "PAT"
	PrefixDoctor      = "DOC"
	PrefixLab         = "LAB"
	PrefixAnimalOwner = "ANM"
	PrefixAdmin       = "ADM"
)

// Roles lists every role in display order.
var Roles = []Role{RolePatient, RoleDoctor, RoleLab, RoleAnimalOwner, RoleAdmin}

// ParseRole returns the role for s and whether it is known.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RolePatient, RoleDoctor, RoleLab, RoleAnimalOwner, RoleAdmin:
		return r, true
	}
	return "", false
}

// Prefix returns the health ID prefix for the role family.
func (r Role) Prefix() string {
	switch r {
	case RolePatient:
		return PrefixPatient
	case RoleDoctor:
		return PrefixDoctor
	case RoleLab:
		return PrefixLab
	case RoleAnimalOwner:
		return PrefixAnimalOwner
	case RoleAdmin:
		return PrefixAdmin
	}
	return ""
}

// SelfRegistrable reports whether the role may be chosen at sign-up.
func (r Role) SelfRegistrable() bool {
	return r != RoleAdmin && r.Prefix() != ""
}

// MatchesHealthID reports whether healthID carries this role's prefix.
func (r Role) MatchesHealthID(healthID string) bool {
	prefix := r.Prefix()
	return prefix != "" && strings.HasPrefix(strings.ToUpper(healthID), prefix+"_")
}

func (r Role) String() string {
	return string(r)
}
