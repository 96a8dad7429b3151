// Package search narrows the movies already on screen without another round
// trip to the catalog. Titles are ranked with sahilm/fuzzy; movies that miss
// on title can still match through their genre names.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/marquee/internal/domain"
)

// Result is one movie that survived the filter
type Result struct {
	Movie          domain.Movie
	Position       int    // index in the input slice
	MatchedIndexes []int  // byte offsets into Movie.Title, for highlighting
	Genre          string // set when the match came from a genre name
	Score          int    // higher = better within title matches
}

// Index implements sahilm/fuzzy.Source over movie titles. Titles are kept
// as-is: the matcher folds case rune by rune, so match offsets stay valid
// for the displayed title.
type Index struct {
	movies []domain.Movie
}

func NewIndex(movies []domain.Movie) *Index {
	return &Index{movies: movies}
}

// String returns the title at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.movies[i].Title }

// Len returns the number of movies (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.movies) }

// Filter returns the movies matching query. A blank query keeps every movie
// in its original order. Title matches come first, best first, followed by
// genre-only matches ordered by edit distance.
func Filter(query string, movies []domain.Movie) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]Result, len(movies))
		for i, m := range movies {
			results[i] = Result{Movie: m, Position: i}
		}
		return results
	}

	idx := NewIndex(movies)
	matched := make([]bool, len(movies))
	var results []Result

	for _, m := range sfuzzy.FindFrom(query, idx) {
		matched[m.Index] = true
		results = append(results, Result{
			Movie:          movies[m.Index],
			Position:       m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		})
	}

	type genreHit struct {
		result   Result
		distance int
	}
	var hits []genreHit
	for i, movie := range movies {
		if matched[i] {
			continue
		}
		if genre, distance, ok := matchGenre(query, movie.GenreIDs); ok {
			hits = append(hits, genreHit{
				result:   Result{Movie: movie, Position: i, Genre: genre},
				distance: distance,
			})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})
	for _, h := range hits {
		results = append(results, h.result)
	}

	return results
}

// matchGenre finds the closest genre name containing query as a subsequence
func matchGenre(query string, genreIDs []int) (string, int, bool) {
	names := make([]string, 0, len(genreIDs))
	for _, id := range genreIDs {
		if name, ok := domain.GenreName(id); ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", 0, false
	}

	ranks := fuzzy.RankFindFold(query, names)
	if len(ranks) == 0 {
		return "", 0, false
	}
	sort.Sort(ranks)
	return ranks[0].Target, ranks[0].Distance, true
}

// Movies strips match metadata
func Movies(results []Result) []domain.Movie {
	out := make([]domain.Movie, len(results))
	for i, r := range results {
		out[i] = r.Movie
	}
	return out
}
