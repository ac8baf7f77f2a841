package models

// WeekdayKind identifies which of the two recurring weekly meetings a slot belongs to
type WeekdayKind string

const (
	WeekdayTuesday   WeekdayKind = "tuesday"
	WeekdayWednesday WeekdayKind = "wednesday"
)

// Role is a function a person performs within a slot
type Role string

const (
	RolePreaching   Role = "preaching"
	RoleMusic       Role = "music"
	RoleConduction  Role = "conduction"
	RoleHospitality Role = "hospitality"
	RoleSupply      Role = "supply"
)

// TuesdayRoles are the roles staffed on Tuesday meetings, in display order
var TuesdayRoles = []Role{RolePreaching, RoleMusic, RoleConduction, RoleHospitality}

// WednesdayRoles are the roles staffed on Wednesday meetings
var WednesdayRoles = []Role{RoleSupply}

// AllRoles lists every role in display order
var AllRoles = []Role{RolePreaching, RoleMusic, RoleConduction, RoleHospitality, RoleSupply}

// IsValid checks if the WeekdayKind is valid
func (w WeekdayKind) IsValid() bool {
	switch w {
	case WeekdayTuesday, WeekdayWednesday:
		return true
	}
	return false
}

// Label returns the human readable weekday name
func (w WeekdayKind) Label() string {
	switch w {
	case WeekdayTuesday:
		return "Tuesday"
	case WeekdayWednesday:
		return "Wednesday"
	}
	return string(w)
}

// Roles returns the roles applicable to the weekday kind
func (w WeekdayKind) Roles() []Role {
	if w == WeekdayWednesday {
		return WednesdayRoles
	}
	return TuesdayRoles
}

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RolePreaching, RoleMusic, RoleConduction, RoleHospitality, RoleSupply:
		return true
	}
	return false
}

// AppliesTo reports whether the role is staffed on the given weekday kind
func (r Role) AppliesTo(w WeekdayKind) bool {
	for _, role := range w.Roles() {
		if role == r {
			return true
		}
	}
	return false
}
