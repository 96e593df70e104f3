package domain

import "time"

// Well-known statistic categories seeded at startup.
const (
	StatRegisteredUsers      = "registered_users"
	StatEmployers            = "employers"
	StatInstitutions         = "institutions"
	StatPlacements           = "placements"
	StatSkills               = "skills"
	StatRegionalDistribution = "regional_distribution"
	StatSkillsDistribution   = "skills_distribution"
)

// RegionAll marks a scalar statistic with no regional dimension.
const RegionAll = "all"

// Statistic is one aggregate fact, optionally broken down by region.
type Statistic struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Value     int       `json:"value"`
	Region    string    `json:"region,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
