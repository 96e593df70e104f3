package dto

import (
	"regexp"

	"github.com/spec-kit/skills-registry/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest payload for new accounts. ConfirmPassword and
// AgreeToTerms are validated but never stored.
type RegisterRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	District        string `json:"district"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
	UserType        string `json:"userType"`
}

// Validate reports field-level issues keyed by field name.
func (r RegisterRequest) Validate() map[string]any {
	issues := make(map[string]any)
	if len(r.FullName) < 3 {
		issues["fullName"] = "Full name must be at least 3 characters"
	}
	if !emailPattern.MatchString(r.Email) {
		issues["email"] = "Please enter a valid email address"
	}
	if len(r.Phone) < 10 {
		issues["phone"] = "Phone number must be at least 10 digits"
	}
	if r.District == "" {
		issues["district"] = "Please select a district"
	}
	if len(r.Username) < 4 {
		issues["username"] = "Username must be at least 4 characters"
	}
	if len(r.Password) < 8 {
		issues["password"] = "Password must be at least 8 characters"
	}
	if r.Password != r.ConfirmPassword {
		issues["confirmPassword"] = "Passwords do not match"
	}
	if !r.AgreeToTerms {
		issues["agreeToTerms"] = "You must agree to the terms and conditions"
	}
	if r.UserType != "" && !domain.ValidUserType(domain.UserType(r.UserType)) {
		issues["userType"] = "User type must be citizen, employer or government"
	}
	return issues
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate reports field-level issues keyed by field name.
func (r LoginRequest) Validate() map[string]any {
	issues := make(map[string]any)
	if r.Username == "" {
		issues["username"] = "Username is required"
	}
	if r.Password == "" {
		issues["password"] = "Password is required"
	}
	return issues
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// MessageResponse carries a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}
