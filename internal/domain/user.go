package domain

import "context"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole treats anything other than "admin" as a regular user.
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// HomePath is where a freshly logged in user lands.
func (r Role) HomePath() string {
	if r == RoleAdmin {
		return "/admin/jobs"
	}
	return "/jobs"
}

type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserSummary is the copy of a user kept in the session, without the password.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

type Credentials struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type LoginResult struct {
	Token   string
	User    UserSummary
	Role    Role
	Message string
}

func (r *LoginResult) RedirectTo() string {
	return r.Role.HomePath()
}

type RegisterRequest struct {
	Name                 string `form:"name" validate:"required"`
	Email                string `form:"email" validate:"required"`
	Password             string `form:"password" validate:"required,min=6"`
	PasswordConfirmation string `form:"password_confirmation" validate:"required,eqfield=Password"`
}

type UserRepository = Repository[User]

type AuthUsecase interface {
	ClassifyRole(creds Credentials) Role
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, req *RegisterRequest) (string, error)
}
