package domain

// Session is the per-browser login state read by route guards and views.
type Session struct {
	Token string
	User  *UserSummary
	Role  Role
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.Authenticated() && s.Role == RoleAdmin
}

// DisplayName falls back to a role label when no user summary is stored.
func (s Session) DisplayName() string {
	if s.User != nil && s.User.Name != "" {
		return s.User.Name
	}
	if s.Role == RoleAdmin {
		return "Admin"
	}
	return "User"
}
