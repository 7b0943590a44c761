package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"

	"github.com/tifyai/website/internal/models"
)

// ErrAlreadySeeded is returned when Seed runs against a store that already holds data.
var ErrAlreadySeeded = errors.New("entity store already seeded")

// SeedSet is the full content loaded into the store at startup.
type SeedSet struct {
	BlogPosts    []models.BlogPost
	Courses      []models.Course
	Products     []models.Product
	Testimonials []models.Testimonial
	TeamMembers  []models.TeamMember
}

// DefaultSeed returns the site's content with freshly generated ids.
func DefaultSeed() SeedSet {
	set := SeedSet{
		BlogPosts:    seedBlogPosts(),
		Courses:      seedCourses(),
		Products:     seedProducts(),
		Testimonials: seedTestimonials(),
		TeamMembers:  seedTeamMembers(),
	}
	set.assignIDs()
	return set
}

func (s *SeedSet) assignIDs() {
	for i := range s.BlogPosts {
		if s.BlogPosts[i].ID == "" {
			s.BlogPosts[i].ID = uuid.NewString()
		}
	}
	for i := range s.Courses {
		if s.Courses[i].ID == "" {
			s.Courses[i].ID = uuid.NewString()
		}
	}
	for i := range s.Products {
		if s.Products[i].ID == "" {
			s.Products[i].ID = uuid.NewString()
		}
	}
	for i := range s.Testimonials {
		if s.Testimonials[i].ID == "" {
			s.Testimonials[i].ID = uuid.NewString()
		}
	}
	for i := range s.TeamMembers {
		if s.TeamMembers[i].ID == "" {
			s.TeamMembers[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the per-kind uniqueness of ids and slugs and the value
// ranges the site relies on. All violations are reported together.
func (s SeedSet) Validate() error {
	var result *multierror.Error

	ids, slugs := newKeySet("blog post id"), newKeySet("blog post slug")
	for _, p := range s.BlogPosts {
		result = multierror.Append(result, ids.add(p.ID), slugs.add(p.Slug))
	}

	ids, slugs = newKeySet("course id"), newKeySet("course slug")
	for _, c := range s.Courses {
		result = multierror.Append(result, ids.add(c.ID), slugs.add(c.Slug))
		if !models.ValidFormat(c.Format) {
			result = multierror.Append(result, fmt.Errorf("course %q: unknown format %q", c.Slug, c.Format))
		}
		if c.Price < 0 {
			result = multierror.Append(result, fmt.Errorf("course %q: negative price %d", c.Slug, c.Price))
		}
	}

	ids, slugs = newKeySet("product id"), newKeySet("product slug")
	for _, p := range s.Products {
		result = multierror.Append(result, ids.add(p.ID), slugs.add(p.Slug))
	}

	ids = newKeySet("testimonial id")
	for _, t := range s.Testimonials {
		result = multierror.Append(result, ids.add(t.ID))
		if t.Rating < 1 || t.Rating > 5 {
			result = multierror.Append(result, fmt.Errorf("testimonial %q: rating %d out of range 1-5", t.Name, t.Rating))
		}
	}

	ids = newKeySet("team member id")
	for _, m := range s.TeamMembers {
		result = multierror.Append(result, ids.add(m.ID))
	}

	return result.ErrorOrNil()
}

// keySet tracks values that must be unique and non-empty within one entity kind.
type keySet struct {
	what string
	seen map[string]struct{}
}

func newKeySet(what string) *keySet {
	return &keySet{what: what, seen: make(map[string]struct{})}
}

// add returns nil when v is new, so it can be passed straight to multierror.Append.
func (k *keySet) add(v string) error {
	if v == "" {
		return fmt.Errorf("empty %s", k.what)
	}
	if _, ok := k.seen[v]; ok {
		return fmt.Errorf("duplicate %s %q", k.what, v)
	}
	k.seen[v] = struct{}{}
	return nil
}

// Seed loads set into an empty store in a single transaction. Missing ids
// are generated. Seeding twice is an error: the store is populated exactly once.
func Seed(ctx context.Context, db *sqlx.DB, set SeedSet) error {
	set.assignIDs()
	if err := set.Validate(); err != nil {
		return fmt.Errorf("invalid seed data: %w", err)
	}

	var n int
	if err := db.GetContext(ctx, &n, `
		SELECT (SELECT COUNT(*) FROM blog_posts) + (SELECT COUNT(*) FROM courses) +
		       (SELECT COUNT(*) FROM products) + (SELECT COUNT(*) FROM testimonials) +
		       (SELECT COUNT(*) FROM team_members)
	`); err != nil {
		return fmt.Errorf("failed to inspect store: %w", err)
	}
	if n > 0 {
		return ErrAlreadySeeded
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertAll(ctx, tx, "blog_posts", `INSERT INTO blog_posts
		(id, title, slug, excerpt, content, category, author_name, author_image, featured_image, published_date, read_time)
		VALUES (:id, :title, :slug, :excerpt, :content, :category, :author_name, :author_image, :featured_image, :published_date, :read_time)`,
		set.BlogPosts); err != nil {
		return err
	}
	if err := insertAll(ctx, tx, "courses", `INSERT INTO courses
		(id, title, slug, description, category, format, price, duration, thumbnail, instructor_name, instructor_image,
		 instructor_bio, instructor_credentials, overview, learning_points, modules, popularity)
		VALUES (:id, :title, :slug, :description, :category, :format, :price, :duration, :thumbnail, :instructor_name, :instructor_image,
		 :instructor_bio, :instructor_credentials, :overview, :learning_points, :modules, :popularity)`,
		set.Courses); err != nil {
		return err
	}
	if err := insertAll(ctx, tx, "products", `INSERT INTO products
		(id, name, slug, description, demo_video_url, free_tier, advanced_tier, advanced_price, enterprise_tier)
		VALUES (:id, :name, :slug, :description, :demo_video_url, :free_tier, :advanced_tier, :advanced_price, :enterprise_tier)`,
		set.Products); err != nil {
		return err
	}
	if err := insertAll(ctx, tx, "testimonials", `INSERT INTO testimonials
		(id, name, role, company, image, content, rating)
		VALUES (:id, :name, :role, :company, :image, :content, :rating)`,
		set.Testimonials); err != nil {
		return err
	}
	if err := insertAll(ctx, tx, "team_members", `INSERT INTO team_members
		(id, name, title, bio, image, display_order)
		VALUES (:id, :name, :title, :bio, :image, :display_order)`,
		set.TeamMembers); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

func insertAll[T any](ctx context.Context, tx *sqlx.Tx, table, query string, rows []T) error {
	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("failed to seed %s: %w", table, err)
		}
	}
	return nil
}
