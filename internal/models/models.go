package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Course delivery formats.
const (
	FormatOnlineLive = "Online Live"
	FormatOffline    = "Offline"
	FormatRecorded   = "Recorded"
)

type BlogPost struct {
	ID            string `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Slug          string `json:"slug" db:"slug"`
	Excerpt       string `json:"excerpt" db:"excerpt"`
	Content       string `json:"content" db:"content"`
	Category      string `json:"category" db:"category"`
	AuthorName    string `json:"authorName" db:"author_name"`
	AuthorImage   string `json:"authorImage" db:"author_image"`
	FeaturedImage string `json:"featuredImage" db:"featured_image"`
	PublishedDate string `json:"publishedDate" db:"published_date"` // ISO date, e.g. 2025-11-10
	ReadTime      int    `json:"readTime" db:"read_time"`           // minutes
}

type Course struct {
	ID                    string     `json:"id" db:"id"`
	Title                 string     `json:"title" db:"title"`
	Slug                  string     `json:"slug" db:"slug"`
	Description           string     `json:"description" db:"description"`
	Category              string     `json:"category" db:"category"`
	Format                string     `json:"format" db:"format"`
	Price                 int        `json:"price" db:"price"` // smallest currency unit, 0 = free
	Duration              string     `json:"duration" db:"duration"`
	Thumbnail             string     `json:"thumbnail" db:"thumbnail"`
	InstructorName        string     `json:"instructorName" db:"instructor_name"`
	InstructorImage       string     `json:"instructorImage" db:"instructor_image"`
	InstructorBio         string     `json:"instructorBio" db:"instructor_bio"`
	InstructorCredentials string     `json:"instructorCredentials" db:"instructor_credentials"`
	Overview              string     `json:"overview" db:"overview"`
	LearningPoints        StringList `json:"learningPoints" db:"learning_points"`
	Modules               StringList `json:"modules" db:"modules"`
	Popularity            int        `json:"popularity" db:"popularity"`
}

// ValidFormat reports whether f is one of the known course formats.
func ValidFormat(f string) bool {
	switch f {
	case FormatOnlineLive, FormatOffline, FormatRecorded:
		return true
	}
	return false
}

type Product struct {
	ID             string  `json:"id" db:"id"`
	Name           string  `json:"name" db:"name"`
	Slug           string  `json:"slug" db:"slug"`
	Description    string  `json:"description" db:"description"`
	DemoVideoURL   *string `json:"demoVideoUrl" db:"demo_video_url"`
	FreeTier       string  `json:"freeTier" db:"free_tier"`
	AdvancedTier   string  `json:"advancedTier" db:"advanced_tier"`
	AdvancedPrice  int     `json:"advancedPrice" db:"advanced_price"`
	EnterpriseTier string  `json:"enterpriseTier" db:"enterprise_tier"`
}

// FeatureTier is one pricing tier of a product with its features in display order.
type FeatureTier struct {
	Name     string   `json:"name"`
	Price    *int     `json:"price"`    // nil means custom pricing
	Features []string `json:"features"` // everything included in this tier
	Added    []string `json:"added"`    // features not in any lower tier
}

type Testimonial struct {
	ID      string `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Role    string `json:"role" db:"role"`
	Company string `json:"company" db:"company"`
	Image   string `json:"image" db:"image"`
	Content string `json:"content" db:"content"`
	Rating  int    `json:"rating" db:"rating"` // 1-5
}

type TeamMember struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Title string `json:"title" db:"title"`
	Bio   string `json:"bio" db:"bio"`
	Image string `json:"image" db:"image"`
	Order int    `json:"order" db:"display_order"`
}

// ChatMessage is what the site's chat widget posts.
type ChatMessage struct {
	Message    string `json:"message"`
	PageSource string `json:"pageSource"`
	Timestamp  string `json:"timestamp"`
}

type ChatReply struct {
	Message string `json:"message"`
}

// StringList is an ordered list of strings stored as a JSON array in a TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("failed to decode string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}
