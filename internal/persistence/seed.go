package persistence

import "github.com/spec-kit/skills-registry/internal/domain"

// seed loads the baseline statistics and sample news inserted once at
// process start, before any request is served.
func (s *Store) seed() {
	seedStats := []struct {
		category string
		value    int
		region   string
	}{
		{domain.StatRegisteredUsers, 1600000, domain.RegionAll},
		{domain.StatEmployers, 42000, domain.RegionAll},
		{domain.StatInstitutions, 850, domain.RegionAll},
		{domain.StatPlacements, 320000, domain.RegionAll},
		{domain.StatSkills, 3200000, domain.RegionAll},

		{domain.StatRegionalDistribution, 42, "dhaka"},
		{domain.StatRegionalDistribution, 23, "chittagong"},
		{domain.StatRegionalDistribution, 12, "khulna"},
		{domain.StatRegionalDistribution, 8, "rajshahi"},
		{domain.StatRegionalDistribution, 6, "sylhet"},
		{domain.StatRegionalDistribution, 5, "barisal"},
		{domain.StatRegionalDistribution, 4, "rangpur"},

		{domain.StatSkillsDistribution, 28, "IT & Technology"},
		{domain.StatSkillsDistribution, 22, "Manufacturing"},
		{domain.StatSkillsDistribution, 18, "Agriculture"},
		{domain.StatSkillsDistribution, 15, "Healthcare"},
		{domain.StatSkillsDistribution, 12, "Services"},
		{domain.StatSkillsDistribution, 10, "Construction"},
		{domain.StatSkillsDistribution, 8, "Education"},
		{domain.StatSkillsDistribution, 5, "Other"},
	}

	ts := now()
	for _, stat := range seedStats {
		id := s.allocStatisticID()
		s.statistics[id] = domain.Statistic{
			ID:        id,
			Category:  stat.category,
			Value:     stat.value,
			Region:    stat.region,
			UpdatedAt: ts,
		}
	}

	seedNews := []domain.News{
		{
			Title:       "National Skills Database Officially Launched",
			Content:     "The Ministry of Education and Ministry of Labour jointly launched the National Skills Database at an event in Dhaka.",
			Category:    "Announcement",
			ImageURL:    "https://images.unsplash.com/photo-1569683795645-b62e50fbf103?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			IsPublished: true,
		},
		{
			Title:       "Upcoming: National Skills Fair 2023",
			Content:     "Over 200 employers will be present at the upcoming Skills Fair to recruit qualified candidates from the database.",
			Category:    "Event",
			ImageURL:    "https://images.unsplash.com/photo-1517048676732-d65bc937f952?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			IsPublished: true,
		},
		{
			Title:       "5,000 Youth Placed Through Skills Matching",
			Content:     "The database has successfully facilitated job placements for 5,000 young workers in its first quarter of operation.",
			Category:    "Success Story",
			ImageURL:    "https://images.unsplash.com/photo-1543269865-cbf427effbad?ixlib=rb-4.0.3&auto=format&fit=crop&w=500&h=300&q=80",
			IsPublished: true,
		},
	}

	for _, item := range seedNews {
		id := s.allocNewsID()
		item.ID = id
		item.PublishedDate = now()
		s.news[id] = item
	}
}
