package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// MemoryDSN keeps the entity store inside the process.
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS blog_posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    excerpt TEXT NOT NULL,
    content TEXT NOT NULL,
    category TEXT NOT NULL,
    author_name TEXT NOT NULL,
    author_image TEXT NOT NULL,
    featured_image TEXT NOT NULL,
    published_date TEXT NOT NULL,
    read_time INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS courses (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    format TEXT NOT NULL,
    price INTEGER NOT NULL,
    duration TEXT NOT NULL,
    thumbnail TEXT NOT NULL,
    instructor_name TEXT NOT NULL,
    instructor_image TEXT NOT NULL,
    instructor_bio TEXT NOT NULL,
    instructor_credentials TEXT NOT NULL,
    overview TEXT NOT NULL,
    learning_points TEXT NOT NULL DEFAULT '[]',
    modules TEXT NOT NULL DEFAULT '[]',
    popularity INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    slug TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL,
    demo_video_url TEXT,
    free_tier TEXT NOT NULL,
    advanced_tier TEXT NOT NULL,
    advanced_price INTEGER NOT NULL,
    enterprise_tier TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS testimonials (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    role TEXT NOT NULL,
    company TEXT NOT NULL,
    image TEXT NOT NULL,
    content TEXT NOT NULL,
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5)
);

CREATE TABLE IF NOT EXISTS team_members (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    title TEXT NOT NULL,
    bio TEXT NOT NULL,
    image TEXT NOT NULL,
    display_order INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_blog_posts_category ON blog_posts(category);
CREATE INDEX IF NOT EXISTS idx_courses_category ON courses(category);
`

// dropSchema clears a file-backed store so every process seeds it afresh.
const dropSchema = `
DROP TABLE IF EXISTS blog_posts;
DROP TABLE IF EXISTS courses;
DROP TABLE IF EXISTS products;
DROP TABLE IF EXISTS testimonials;
DROP TABLE IF EXISTS team_members;
`

// New opens the entity store database and applies the schema.
// An empty dsn opens a private in-memory database. A file database is
// reset, so the store only ever holds what this process seeds.
func New(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	if !isMemory(dsn) {
		path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so pin the pool
	// to a single connection that is never recycled.
	if isMemory(dsn) {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if !isMemory(dsn) {
		if _, err := db.Exec(dropSchema); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to reset database: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
