package catalog

import (
	"context"

	"github.com/tifyai/website/internal/models"
)

// Store is the read side of the entity store. *repository.Repository
// implements it. Slug lookups return nil, nil when nothing matches.
type Store interface {
	GetBlogPosts(ctx context.Context) ([]models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetCourses(ctx context.Context) ([]models.Course, error)
	GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetTeamMembers(ctx context.Context) ([]models.TeamMember, error)
}

// Catalog answers the site's listing queries against a Store.
type Catalog struct {
	store Store
}

func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// ListBlogPosts returns posts in category ("" or All for every post), newest first.
func (c *Catalog) ListBlogPosts(ctx context.Context, category string) ([]models.BlogPost, error) {
	posts, err := c.store.GetBlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterBlogPosts(posts, category), nil
}

func (c *Catalog) ListCourses(ctx context.Context, q CourseQuery) ([]models.Course, error) {
	courses, err := c.store.GetCourses(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCourses(courses, q), nil
}

func (c *Catalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := c.store.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(products), nil
}

func (c *Catalog) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := c.store.GetTestimonials(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(testimonials), nil
}

// ListTeamMembers returns the team in display order.
func (c *Catalog) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	members, err := c.store.GetTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	return SortTeamMembers(members), nil
}

func (c *Catalog) BlogPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	return c.store.GetBlogPostBySlug(ctx, slug)
}

func (c *Catalog) Course(ctx context.Context, slug string) (*models.Course, error) {
	return c.store.GetCourseBySlug(ctx, slug)
}

func (c *Catalog) Product(ctx context.Context, slug string) (*models.Product, error) {
	return c.store.GetProductBySlug(ctx, slug)
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
