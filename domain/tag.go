package domain

// TagCount is one entry of the derived tag vocabulary: a distinct tag string
// and the number of articles carrying it. Tags are not stored entities; the
// vocabulary is computed from the article collection at query time.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
