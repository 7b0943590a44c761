package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifyai/website/internal/catalog"
	"github.com/tifyai/website/internal/database"
	"github.com/tifyai/website/internal/models"
	"github.com/tifyai/website/internal/repository"
)

func newSeededCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	db, err := database.New(database.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Seed(context.Background(), db, database.DefaultSeed()))
	return catalog.New(repository.New(db))
}

func TestCatalog_ListBlogPosts(t *testing.T) {
	c := newSeededCatalog(t)
	ctx := context.Background()

	posts, err := c.ListBlogPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 6)
	for i := 1; i < len(posts); i++ {
		assert.GreaterOrEqual(t, posts[i-1].PublishedDate, posts[i].PublishedDate)
	}
	assert.Equal(t, "future-of-ai-financial-planning", posts[0].Slug)

	parenting, err := c.ListBlogPosts(ctx, "Parenting")
	require.NoError(t, err)
	require.Len(t, parenting, 2)
	assert.Equal(t, "raising-tech-savvy-kids", parenting[0].Slug)
	assert.Equal(t, "building-emotional-intelligence-children", parenting[1].Slug)
}

func TestCatalog_ListCourses(t *testing.T) {
	c := newSeededCatalog(t)
	ctx := context.Background()

	byPrice, err := c.ListCourses(ctx, catalog.CourseQuery{SortBy: catalog.SortPrice})
	require.NoError(t, err)
	require.Len(t, byPrice, 5)
	assert.Equal(t, 0, byPrice[0].Price)
	for i := 1; i < len(byPrice); i++ {
		assert.LessOrEqual(t, byPrice[i-1].Price, byPrice[i].Price)
	}

	popular, err := c.ListCourses(ctx, catalog.CourseQuery{SortBy: catalog.SortPopular})
	require.NoError(t, err)
	require.Len(t, popular, 5)
	assert.Equal(t, 120, popular[0].Popularity)
	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t, popular[i-1].Popularity, popular[i].Popularity)
	}

	crypto, err := c.ListCourses(ctx, catalog.CourseQuery{Category: "Crypto", Format: models.FormatRecorded})
	require.NoError(t, err)
	require.Len(t, crypto, 1)
	assert.Equal(t, "cryptocurrency-investment-fundamentals", crypto[0].Slug)

	online, err := c.ListCourses(ctx, catalog.CourseQuery{Category: catalog.All, Format: models.FormatOnlineLive})
	require.NoError(t, err)
	assert.Len(t, online, 2)
}

func TestCatalog_ListTeamMembers(t *testing.T) {
	c := newSeededCatalog(t)

	members, err := c.ListTeamMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 4)
	for i, m := range members {
		assert.Equal(t, i+1, m.Order)
	}
}

func TestCatalog_Lookups(t *testing.T) {
	c := newSeededCatalog(t)
	ctx := context.Background()

	post, err := c.BlogPost(ctx, "global-economic-trends-2025")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Macro Economics", post.Category)

	course, err := c.Course(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, course)

	product, err := c.Product(ctx, "finance")
	require.NoError(t, err)
	require.NotNil(t, product)
	tiers := catalog.ProductTiers(*product)
	require.Len(t, tiers, 3)
	assert.Equal(t, []string{"Basic budgeting", "1 account sync", "Monthly reports"}, tiers[0].Features)
	assert.Equal(t, []string{"White-label solution", "API access", "Custom integrations", "Dedicated support", "Priority updates"}, tiers[2].Added)
}

type emptyStore struct{ catalog.Store }

func (emptyStore) GetProducts(context.Context) ([]models.Product, error)         { return nil, nil }
func (emptyStore) GetTestimonials(context.Context) ([]models.Testimonial, error) { return nil, nil }

func TestCatalog_EmptyListsAreNotNil(t *testing.T) {
	c := catalog.New(emptyStore{})
	ctx := context.Background()

	products, err := c.ListProducts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)

	testimonials, err := c.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.NotNil(t, testimonials)
}

type failingStore struct{ catalog.Store }

var errStore = errors.New("store unavailable")

func (failingStore) GetBlogPosts(context.Context) ([]models.BlogPost, error) { return nil, errStore }
func (failingStore) GetCourses(context.Context) ([]models.Course, error)     { return nil, errStore }
func (failingStore) GetTeamMembers(context.Context) ([]models.TeamMember, error) {
	return nil, errStore
}

func TestCatalog_StoreErrors(t *testing.T) {
	c := catalog.New(failingStore{})
	ctx := context.Background()

	_, err := c.ListBlogPosts(ctx, "")
	assert.ErrorIs(t, err, errStore)

	_, err = c.ListCourses(ctx, catalog.CourseQuery{})
	assert.ErrorIs(t, err, errStore)

	_, err = c.ListTeamMembers(ctx)
	assert.ErrorIs(t, err, errStore)
}
