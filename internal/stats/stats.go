// Package stats computes statistics over a collection of blog posts.
//
// Every function here is pure: no I/O, no logging, no store access. The
// caller (cmd/stats, or any future reporting endpoint) is responsible for
// loading the full blog collection; these functions just reduce it.
//
// TIE-BREAK POLICY (applies to all three "most" functions):
// When two candidates score equally, the one that appears FIRST in the
// input wins. Concretely: the first element is the initial candidate and
// only a strictly greater score replaces it. Map iteration order in Go is
// deliberately randomized, so the grouping functions keep a side slice of
// authors in first-appearance order and scan that instead of ranging over
// the map — without it the result would flap between runs.
package stats

import "github.com/akutuh/bloglist-api/internal/model"

// Favorite is the projection returned by FavoriteBlog: only the
// display fields of the winning post, no IDs or timestamps.
type Favorite struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// AuthorBlogs names an author together with how many posts they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes names an author together with their total likes across posts.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes returns the sum of likes across all blogs. Empty input sums to 0.
func TotalLikes(blogs []model.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the projection of the blog with the most likes.
// Empty input returns the zero Favorite — a defined neutral value, not an
// error, so callers can render it without a special case.
func FavoriteBlog(blogs []model.Blog) Favorite {
	if len(blogs) == 0 {
		return Favorite{}
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return Favorite{
		Title:  best.Title,
		Author: best.Author,
		Likes:  best.Likes,
	}
}

// MostBlogs returns the author with the most posts and their post count.
// Empty input returns the zero AuthorBlogs.
func MostBlogs(blogs []model.Blog) AuthorBlogs {
	counts, order := groupByAuthor(blogs, func(model.Blog) int { return 1 })

	var result AuthorBlogs
	for i, author := range order {
		if i == 0 || counts[author] > result.Blogs {
			result = AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}
	return result
}

// MostLikes returns the author with the highest total likes across their
// posts. Empty input returns the zero AuthorLikes.
func MostLikes(blogs []model.Blog) AuthorLikes {
	totals, order := groupByAuthor(blogs, func(b model.Blog) int { return b.Likes })

	var result AuthorLikes
	for i, author := range order {
		if i == 0 || totals[author] > result.Likes {
			result = AuthorLikes{Author: author, Likes: totals[author]}
		}
	}
	return result
}

// groupByAuthor folds a per-blog score into a per-author total, and records
// each author the first time they appear. Scanning the returned order slice
// (not the map) is what makes the tie-break deterministic.
func groupByAuthor(blogs []model.Blog, score func(model.Blog) int) (map[string]int, []string) {
	totals := make(map[string]int, len(blogs))
	order := make([]string, 0, len(blogs))

	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			order = append(order, b.Author)
		}
		totals[b.Author] += score(b)
	}
	return totals, order
}
