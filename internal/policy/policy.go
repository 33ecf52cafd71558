package policy

import (
	"github.com/google/uuid"
)

// Flag is a policy switch as stored: explicitly on, explicitly off, or
// never configured.
type Flag int

const (
	FlagNotConfigured Flag = iota
	FlagFalse
	FlagTrue
)

func FlagFromNullable(v *bool) Flag {
	switch {
	case v == nil:
		return FlagNotConfigured
	case *v:
		return FlagTrue
	default:
		return FlagFalse
	}
}

func (f Flag) Configured() bool {
	return f != FlagNotConfigured
}

// Bool treats a missing value as false.
func (f Flag) Bool() bool {
	return f == FlagTrue
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "not_configured"
	}
}

type Flags struct {
	RequireLocationPhoto      Flag
	RequireBiometricPhoto     Flag
	RequireLocationOnCheckOut Flag
}

func (f Flags) AnyConfigured() bool {
	return f.RequireLocationPhoto.Configured() ||
		f.RequireBiometricPhoto.Configured() ||
		f.RequireLocationOnCheckOut.Configured()
}

type SourceKind string

const (
	SourceDepartment SourceKind = "department"
	SourceProject    SourceKind = "project"
)

// Source records which organizational entity the policy was read from.
// DepartmentID/DepartmentName are filled for both kinds since a project is
// always reached through the employee's department.
type Source struct {
	Kind           SourceKind
	ID             uuid.UUID
	Name           string
	DepartmentID   uuid.UUID
	DepartmentName string
}

type AttendancePolicy struct {
	RequireLocationPhoto      bool
	RequireBiometricPhoto     bool
	RequireLocationOnCheckOut bool
	Source                    Source
}

func newPolicy(flags Flags, src Source) AttendancePolicy {
	return AttendancePolicy{
		RequireLocationPhoto:      flags.RequireLocationPhoto.Bool(),
		RequireBiometricPhoto:     flags.RequireBiometricPhoto.Bool(),
		RequireLocationOnCheckOut: flags.RequireLocationOnCheckOut.Bool(),
		Source:                    src,
	}
}
