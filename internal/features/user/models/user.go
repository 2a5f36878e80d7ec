package models

// Role is fixed when a user record is created and never changes afterwards.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

// User is one person who has messaged the page.
type User struct {
	ID     string `json:"-"`
	Name   string `json:"name"`
	Joined string `json:"joined"`
	Role   Role   `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Icon is the marker shown next to the user in console logs.
func (u *User) Icon() string {
	if u.IsAdmin() {
		return "👑"
	}
	return "😎"
}
