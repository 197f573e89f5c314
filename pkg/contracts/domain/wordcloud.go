package domain

// WordCount is a single weighted word of a word cloud.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordCloud is the result of scraping an article and counting its words
// after cleaning and stop-word removal. Words are ranked by descending
// count, ties broken alphabetically.
type WordCloud struct {
	URL        string      `json:"url"`
	TotalWords int         `json:"total_words"`
	Words      []WordCount `json:"words"`
	Excerpt    string      `json:"excerpt,omitempty"`
}
