package domain

import "time"

// UserType classifies registered accounts.
type UserType string

const (
	UserTypeCitizen    UserType = "citizen"
	UserTypeEmployer   UserType = "employer"
	UserTypeGovernment UserType = "government"
)

// ValidUserType reports whether t is one of the known account types.
func ValidUserType(t UserType) bool {
	switch t {
	case UserTypeCitizen, UserTypeEmployer, UserTypeGovernment:
		return true
	}
	return false
}

// User is the domain model for a registered account.
// PasswordHash never serializes; API responses carry the user minus password.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	District     string    `json:"district"`
	UserType     UserType  `json:"userType"`
	CreatedAt    time.Time `json:"createdAt"`
}
