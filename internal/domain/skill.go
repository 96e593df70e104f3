package domain

import "time"

// Skill is a single skill record submitted by a user.
type Skill struct {
	ID                int       `json:"id"`
	UserID            int       `json:"userId"`
	SkillName         string    `json:"skillName"`
	Category          string    `json:"category"`
	ProficiencyLevel  string    `json:"proficiencyLevel"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	Certifications    string    `json:"certifications,omitempty"`
	ValidatedBy       *int      `json:"validatedBy,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CategoryCount is one bucket of a category distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
