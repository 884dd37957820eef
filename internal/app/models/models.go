package models

// RoleType identifies a member's authorization role
type RoleType string

// Member roles
const (
	RoleMember RoleType = "MEMBER"
	RoleAdmin  RoleType = "ADMIN"
)
