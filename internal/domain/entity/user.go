package entity

import (
	"time"
)

// DefaultProfilePicture is assigned when a user does not provide a picture.
const DefaultProfilePicture = "https://i.pravatar.cc/150?img=68"

// User represents a registered user in the system
type User struct {
	ID                  string              `bson:"_id,omitempty" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Email               string              `bson:"email" json:"email"`
	PasswordHash        string              `bson:"password_hash" json:"-"`
	Role                UserRole            `bson:"role" json:"role"`
	ProfilePicture      string              `bson:"profile_picture" json:"profile_picture"`
	Gender              *string             `bson:"gender,omitempty" json:"gender,omitempty"`
	RollNo              *string             `bson:"roll_no,omitempty" json:"roll_no,omitempty"`
	Department          *string             `bson:"department,omitempty" json:"department,omitempty"`
	SocietyName         *string             `bson:"society_name,omitempty" json:"society_name,omitempty"`
	RegisteredEvents    []RegistrationEntry `bson:"registered_events" json:"registered_events"`
	ResetPasswordToken  *string             `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpire *time.Time          `bson:"reset_password_expire,omitempty" json:"-"`
	CreatedAt           time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleOrganizer UserRole = "organizer"
	UserRoleStudent   UserRole = "student"
)

func DefaultRole() UserRole {
	return UserRoleStudent
}

// ParseRole maps a free-form role string to a known role.
func ParseRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case UserRoleAdmin, UserRoleOrganizer, UserRoleStudent:
		return UserRole(s), true
	case "":
		return DefaultRole(), true
	}
	return "", false
}

// Valid gender values.
var genders = map[string]struct{}{
	"Male":              {},
	"Female":            {},
	"Other":             {},
	"Prefer not to say": {},
}

func IsValidGender(g string) bool {
	_, ok := genders[g]
	return ok
}

// ProfileFields are the campus fields whose presence depends on the role.
type ProfileFields struct {
	Gender      *string
	RollNo      *string
	Department  *string
	SocietyName *string
}

// ProfileFor keeps only the fields the role is allowed to carry. Students keep
// gender, roll number and department; organizers additionally keep a society
// name; admins keep none. Empty values are dropped.
func ProfileFor(role UserRole, f ProfileFields) ProfileFields {
	var out ProfileFields
	switch role {
	case UserRoleStudent:
		out.Gender, out.RollNo, out.Department = nonEmpty(f.Gender), nonEmpty(f.RollNo), nonEmpty(f.Department)
	case UserRoleOrganizer:
		out.Gender, out.RollNo, out.Department = nonEmpty(f.Gender), nonEmpty(f.RollNo), nonEmpty(f.Department)
		out.SocietyName = nonEmpty(f.SocietyName)
	}
	return out
}

// Profile returns the campus fields currently set on the user.
func (u *User) Profile() ProfileFields {
	return ProfileFields{
		Gender:      u.Gender,
		RollNo:      u.RollNo,
		Department:  u.Department,
		SocietyName: u.SocietyName,
	}
}

// SetProfile assigns the campus fields after normalising them for the user's role.
func (u *User) SetProfile(f ProfileFields) {
	p := ProfileFor(u.Role, f)
	u.Gender, u.RollNo, u.Department, u.SocietyName = p.Gender, p.RollNo, p.Department, p.SocietyName
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// UserSummary is the minimal user view exposed to organizers at check-in.
type UserSummary struct {
	ID    string   `bson:"_id" json:"id"`
	Name  string   `bson:"name" json:"name"`
	Email string   `bson:"email" json:"email"`
	Role  UserRole `bson:"role,omitempty" json:"role,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Merge overlays the non-empty fields of upd onto p.
func (p ProfileFields) Merge(upd ProfileFields) ProfileFields {
	if v := nonEmpty(upd.Gender); v != nil {
		p.Gender = v
	}
	if v := nonEmpty(upd.RollNo); v != nil {
		p.RollNo = v
	}
	if v := nonEmpty(upd.Department); v != nil {
		p.Department = v
	}
	if v := nonEmpty(upd.SocietyName); v != nil {
		p.SocietyName = v
	}
	return p
}
