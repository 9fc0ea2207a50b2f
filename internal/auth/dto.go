package auth

import "github.com/mythrilmerch/mythrilmerch-backend/internal/users"

// Session is the payload returned after register and login.
type Session struct {
	Token string     `json:"token"`
	User  *users.DTO `json:"user"`
}
