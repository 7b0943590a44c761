package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/tifyai/website/internal/models"
)

// Repository reads the seeded entity store. It never writes: once
// database.Seed has run the data is a read-only snapshot, so a single
// Repository is safe for concurrent use by every request.
//
// Lookups that match nothing return a nil entity and a nil error.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Ping reports whether the underlying database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Blog posts

func (r *Repository) GetBlogPosts(ctx context.Context) ([]models.BlogPost, error) {
	return selectAll[models.BlogPost](ctx, r.db, "blog_posts")
}

func (r *Repository) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	return getOne[models.BlogPost](ctx, r.db, "blog_posts", sq.Eq{"id": id})
}

func (r *Repository) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return getOne[models.BlogPost](ctx, r.db, "blog_posts", sq.Eq{"slug": slug})
}

// Courses

func (r *Repository) GetCourses(ctx context.Context) ([]models.Course, error) {
	return selectAll[models.Course](ctx, r.db, "courses")
}

func (r *Repository) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return getOne[models.Course](ctx, r.db, "courses", sq.Eq{"id": id})
}

func (r *Repository) GetCourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	return getOne[models.Course](ctx, r.db, "courses", sq.Eq{"slug": slug})
}

// Products

func (r *Repository) GetProducts(ctx context.Context) ([]models.Product, error) {
	return selectAll[models.Product](ctx, r.db, "products")
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return getOne[models.Product](ctx, r.db, "products", sq.Eq{"id": id})
}

func (r *Repository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return getOne[models.Product](ctx, r.db, "products", sq.Eq{"slug": slug})
}

// Testimonials

func (r *Repository) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return selectAll[models.Testimonial](ctx, r.db, "testimonials")
}

func (r *Repository) GetTestimonial(ctx context.Context, id string) (*models.Testimonial, error) {
	return getOne[models.Testimonial](ctx, r.db, "testimonials", sq.Eq{"id": id})
}

// Team members

func (r *Repository) GetTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	return selectAll[models.TeamMember](ctx, r.db, "team_members")
}

func (r *Repository) GetTeamMember(ctx context.Context, id string) (*models.TeamMember, error) {
	return getOne[models.TeamMember](ctx, r.db, "team_members", sq.Eq{"id": id})
}

// selectAll returns every row of table in insertion order. The order carries
// no meaning of its own; callers sort.
func selectAll[T any](ctx context.Context, db *sqlx.DB, table string) ([]T, error) {
	query, args, err := sq.Select("*").From(table).OrderBy("rowid").ToSql()
	if err != nil {
		return nil, err
	}

	rows := []T{}
	if err := db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

func getOne[T any](ctx context.Context, db *sqlx.DB, table string, where sq.Eq) (*T, error) {
	query, args, err := sq.Select("*").From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var row T
	if err := db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
