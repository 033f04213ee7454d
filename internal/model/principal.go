package model

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) IsCustomer() bool { return p.Role == RoleCustomer }
func (p Principal) IsStaff() bool    { return p.Role == RoleStaff }
func (p Principal) IsAdmin() bool    { return p.Role == RoleAdmin }
