package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/skills-registry/internal/domain"
	"github.com/spec-kit/skills-registry/internal/repository"
)

func newUser(username, email string) *domain.User {
	return &domain.User{
		Username:     username,
		PasswordHash: "x",
		FullName:     "Test User",
		Email:        email,
		Phone:        "01700000000",
		District:     "dhaka",
		UserType:     domain.UserTypeCitizen,
	}
}

func TestSeedData(t *testing.T) {
	store := NewStore(zap.NewNop())

	counts := store.Counts()
	assert.Equal(t, 0, counts["users"])
	assert.Equal(t, 0, counts["skills"])
	assert.Equal(t, 20, counts["statistics"])
	assert.Equal(t, 3, counts["news"])
}

func TestUserCreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore(zap.NewNop()))

	first := newUser("alice", "alice@example.com")
	require.NoError(t, users.Create(ctx, first))
	second := newUser("bob", "bob@example.com")
	require.NoError(t, users.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestUserCreateEnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore(zap.NewNop()))

	require.NoError(t, users.Create(ctx, newUser("alice", "alice@example.com")))

	err := users.Create(ctx, newUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	err = users.Create(ctx, newUser("other", "alice@example.com"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	all, err := users.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1, "failed registrations must not insert records")
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore(zap.NewNop()))

	created := newUser("alice", "alice@example.com")
	require.NoError(t, users.Create(ctx, created))

	byID, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byEmail, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = users.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserListFiltersByType(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepository(NewStore(zap.NewNop()))

	citizen := newUser("alice", "alice@example.com")
	require.NoError(t, users.Create(ctx, citizen))

	employer := newUser("acme", "acme@example.com")
	employer.UserType = domain.UserTypeEmployer
	require.NoError(t, users.Create(ctx, employer))

	employers, err := users.List(ctx, domain.UserTypeEmployer)
	require.NoError(t, err)
	require.Len(t, employers, 1)
	assert.Equal(t, "acme", employers[0].Username)

	all, err := users.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, []int{1, 2}, []int{all[0].ID, all[1].ID}, "insertion order")
}

func TestSkillsDistributionFallback(t *testing.T) {
	ctx := context.Background()
	store := NewStore(zap.NewNop())
	skills := NewSkillRepository(store)

	seeded, err := skills.Distribution(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 8, "seeded distribution while no skills exist")

	byCategory := make(map[string]int, len(seeded))
	for _, bucket := range seeded {
		byCategory[bucket.Category] = bucket.Count
	}
	assert.Equal(t, 28, byCategory["IT & Technology"])
	assert.Equal(t, 5, byCategory["Other"])

	for i := 0; i < 3; i++ {
		require.NoError(t, skills.Create(ctx, &domain.Skill{UserID: 1, SkillName: "Go", Category: "IT", ProficiencyLevel: "Advanced"}))
	}
	require.NoError(t, skills.Create(ctx, &domain.Skill{UserID: 1, SkillName: "Nursing", Category: "Healthcare", ProficiencyLevel: "Expert"}))

	live, err := skills.Distribution(ctx)
	require.NoError(t, err)

	liveByCategory := make(map[string]int, len(live))
	for _, bucket := range live {
		liveByCategory[bucket.Category] = bucket.Count
	}
	assert.Equal(t, map[string]int{"IT": 3, "Healthcare": 1}, liveByCategory)
}

func TestSkillListings(t *testing.T) {
	ctx := context.Background()
	skills := NewSkillRepository(NewStore(zap.NewNop()))

	require.NoError(t, skills.Create(ctx, &domain.Skill{UserID: 1, SkillName: "Welding", Category: "Manufacturing", ProficiencyLevel: "Intermediate", YearsOfExperience: 4}))
	require.NoError(t, skills.Create(ctx, &domain.Skill{UserID: 2, SkillName: "Farming", Category: "Agriculture", ProficiencyLevel: "Expert", YearsOfExperience: 10}))

	mine, err := skills.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Welding", mine[0].SkillName)

	byID, err := skills.GetByID(ctx, mine[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Welding", byID.SkillName)

	_, err = skills.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	none, err := skills.ListByUser(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)

	manufacturing, err := skills.ListByCategory(ctx, "Manufacturing")
	require.NoError(t, err)
	assert.Len(t, manufacturing, 1)
}

func TestStatisticsUpdateValue(t *testing.T) {
	ctx := context.Background()
	stats := NewStatisticsRepository(NewStore(zap.NewNop()))

	registered, err := stats.ListByCategory(ctx, domain.StatRegisteredUsers)
	require.NoError(t, err)
	require.Len(t, registered, 1)

	updated, err := stats.UpdateValue(ctx, registered[0].ID, 1600001)
	require.NoError(t, err)
	assert.Equal(t, 1600001, updated.Value)
	assert.False(t, updated.UpdatedAt.Before(registered[0].UpdatedAt))

	_, err = stats.UpdateValue(ctx, 9999, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStatisticsIncrementValue(t *testing.T) {
	ctx := context.Background()
	stats := NewStatisticsRepository(NewStore(zap.NewNop()))

	bumped, err := stats.IncrementValue(ctx, domain.StatSkills, domain.RegionAll, 2)
	require.NoError(t, err)
	assert.Equal(t, 3200002, bumped.Value)

	fresh, err := stats.IncrementValue(ctx, domain.StatRegionalDistribution, "mymensingh", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Value, "unknown bucket starts at the delta")
	assert.Equal(t, 21, fresh.ID, "ids continue after the seeded rows")
}

func TestStatisticsCreate(t *testing.T) {
	ctx := context.Background()
	stats := NewStatisticsRepository(NewStore(zap.NewNop()))

	stat := &domain.Statistic{Category: "training_centers", Value: 120, Region: domain.RegionAll}
	require.NoError(t, stats.Create(ctx, stat))
	assert.Equal(t, 21, stat.ID, "ids continue after the seeded rows")

	rows, err := stats.ListByCategory(ctx, "training_centers")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestNewsOrderingAndPublishFilter(t *testing.T) {
	base := time.Now()
	tick := 0
	now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	defer func() { now = time.Now }()

	ctx := context.Background()
	news := NewNewsRepository(NewStore(zap.NewNop()))

	older := &domain.News{Title: "Older", Content: "c", Category: "Event", IsPublished: true}
	require.NoError(t, news.Create(ctx, older))
	draft := &domain.News{Title: "Draft", Content: "c", Category: "Event", IsPublished: false}
	require.NoError(t, news.Create(ctx, draft))
	newest := &domain.News{Title: "Newest", Content: "c", Category: "Event", IsPublished: true}
	require.NoError(t, news.Create(ctx, newest))

	feed, err := news.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 5, "three seeded plus two published")

	assert.Equal(t, "Newest", feed[0].Title)
	assert.Equal(t, "Older", feed[1].Title)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i-1].PublishedDate.Before(feed[i].PublishedDate), "descending by publish date")
	}
	for _, item := range feed {
		assert.True(t, item.IsPublished)
	}

	hidden, err := news.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.False(t, hidden.IsPublished, "GetByID ignores publish state")

	_, err = news.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNewsEqualDatesKeepInsertionOrder(t *testing.T) {
	fixed := time.Now()
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	ctx := context.Background()
	news := NewNewsRepository(NewStore(zap.NewNop()))

	for _, title := range []string{"First", "Second", "Third", "Fourth"} {
		item := &domain.News{Title: title, Content: "c", Category: "Event", IsPublished: true}
		require.NoError(t, news.Create(ctx, item))
	}

	// the seeded rows and the new ones all share one publish date, so
	// ordering falls back to ids
	feed, err := news.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 7)
	for i, item := range feed {
		assert.Equal(t, i+1, item.ID)
	}
	assert.Equal(t, "First", feed[3].Title)
	assert.Equal(t, "Fourth", feed[6].Title)
}
