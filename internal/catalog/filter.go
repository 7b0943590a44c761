package catalog

import (
	"sort"
	"time"

	"github.com/tifyai/website/internal/models"
)

// All is the filter value that disables a category or format filter.
const All = "All"

// Course sort keys. Anything else sorts as SortNewest.
const (
	SortNewest  = "newest"
	SortPopular = "popular"
	SortPrice   = "price"
)

// CourseQuery holds the optional course listing criteria. Empty fields do not filter.
type CourseQuery struct {
	Category string
	Format   string
	SortBy   string
}

func matches(filter, value string) bool {
	return filter == "" || filter == All || filter == value
}

// FilterBlogPosts returns the posts in category (exact, case-sensitive
// match), most recently published first. Posts published on the same day
// keep their input order. The input slice is not modified.
func FilterBlogPosts(posts []models.BlogPost, category string) []models.BlogPost {
	out := make([]models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if matches(category, p.Category) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return publishedAt(out[i]).After(publishedAt(out[j]))
	})
	return out
}

// publishedAt parses the ISO publish date. Unparseable dates sort as the
// zero time, i.e. after every real date.
func publishedAt(p models.BlogPost) time.Time {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, p.PublishedDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FilterCourses applies the category and format filters together and sorts
// the survivors. Every ordering is stable.
//
// The default ordering is descending id. Ids are random, so this is not a
// real recency order; it is kept because clients depend on it until courses
// carry a creation timestamp.
func FilterCourses(courses []models.Course, q CourseQuery) []models.Course {
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if matches(q.Category, c.Category) && matches(q.Format, c.Format) {
			out = append(out, c)
		}
	}

	var less func(a, b models.Course) bool
	switch q.SortBy {
	case SortPopular:
		less = func(a, b models.Course) bool { return a.Popularity > b.Popularity }
	case SortPrice:
		less = func(a, b models.Course) bool { return a.Price < b.Price }
	default:
		less = func(a, b models.Course) bool { return a.ID > b.ID }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// SortTeamMembers returns members ordered by their display order.
func SortTeamMembers(members []models.TeamMember) []models.TeamMember {
	out := append([]models.TeamMember(nil), members...)
	if out == nil {
		out = []models.TeamMember{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
