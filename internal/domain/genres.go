package domain

// TMDB's movie genre IDs are fixed; /genre/movie/list always returns this set.
var movieGenres = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreName returns the genre name for a TMDB genre ID
func GenreName(id int) (string, bool) {
	name, ok := movieGenres[id]
	return name, ok
}
