package model

import "github.com/festy23/ticketing/internal/auth"

// UserDTO is the wire form of a user. Passwords are accepted on input
// and never populated on output.
type UserDTO struct {
	UserName        string `json:"userName"                  binding:"required"`
	FirstName       string `json:"firstName"                 binding:"required"`
	LastName        string `json:"lastName"                  binding:"required"`
	PassWord        string `json:"passWord,omitempty"`
	ConfirmPassWord string `json:"confirmPassWord,omitempty"`
	Enabled         *bool  `json:"enabled,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Role            string `json:"role"                      binding:"required"`
	Gender          string `json:"gender,omitempty"`
}

// ToDTO converts a user to its wire form.
func ToDTO(u *User) UserDTO {
	enabled := u.Enabled
	return UserDTO{
		UserName:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Enabled:   &enabled,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Gender:    u.Gender,
	}
}

// ParseRole validates a role name from a request.
func ParseRole(name string) (auth.Role, error) {
	switch r := auth.Role(name); r {
	case auth.RoleAdmin, auth.RoleManager, auth.RoleEmployee:
		return r, nil
	}
	return "", ErrInvalidRole
}
