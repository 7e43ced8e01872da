// Package main is the offline statistics tool.
//
// It opens the same SQLite database the server uses, loads the full blog
// collection, and prints the four aggregate statistics as JSON. The
// aggregation itself is pure (internal/stats); this binary is just the
// loader around it, decoupled from the request/response cycle.
//
// Usage:
//
//	DB_PATH=data/bloglist.db go run ./cmd/stats
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/akutuh/bloglist-api/internal/repository/sqlite"
	"github.com/akutuh/bloglist-api/internal/stats"
)

// report is the printed shape — one object so the output is pipeable
// straight into jq.
type report struct {
	Blogs        int               `json:"blogs"`
	TotalLikes   int               `json:"totalLikes"`
	FavoriteBlog stats.Favorite    `json:"favoriteBlog"`
	MostBlogs    stats.AuthorBlogs `json:"mostBlogs"`
	MostLikes    stats.AuthorLikes `json:"mostLikes"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dbPath := "data/bloglist.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		logger.Error("failed to open database",
			slog.String("path", dbPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer db.Close()

	blogs, err := db.Blogs.List(context.Background())
	if err != nil {
		logger.Error("failed to load blogs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := report{
		Blogs:        len(blogs),
		TotalLikes:   stats.TotalLikes(blogs),
		FavoriteBlog: stats.FavoriteBlog(blogs),
		MostBlogs:    stats.MostBlogs(blogs),
		MostLikes:    stats.MostLikes(blogs),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		logger.Error("failed to encode report", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
