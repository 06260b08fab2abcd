package openlibrary

import "encoding/json"

// SearchResponse is the root container for search.json responses
type SearchResponse struct {
	NumFound int   `json:"numFound"`
	Start    int   `json:"start"`
	Docs     []Doc `json:"docs"`
}

// Doc represents one denormalized search result document
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name,omitempty"`
	AuthorKeys       []string `json:"author_key,omitempty"`
	FirstPublishYear int      `json:"first_publish_year,omitempty"`
	Subjects         []string `json:"subject,omitempty"`
	CoverID          int      `json:"cover_i,omitempty"`
	PageCountMedian  int      `json:"number_of_pages_median,omitempty"`
	ISBN             []string `json:"isbn,omitempty"`
	RatingsAverage   float64  `json:"ratings_average,omitempty"`
}

// Work represents a /works/{id}.json resource. The detail endpoint nests
// author references that require secondary lookups.
type Work struct {
	Key              string      `json:"key"`
	Title            string      `json:"title"`
	FirstPublishDate string      `json:"first_publish_date,omitempty"`
	Description      TextValue   `json:"description,omitempty"`
	Authors          []AuthorRef `json:"authors,omitempty"`
	Subjects         []string    `json:"subjects,omitempty"`
	Covers           []int       `json:"covers,omitempty"`
	FirstSentence    TextValue   `json:"first_sentence,omitempty"`
	Links            []Link      `json:"links,omitempty"`
	Excerpts         []Excerpt   `json:"excerpts,omitempty"`
}

// AuthorRef is a nested author reference inside a work
type AuthorRef struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

// Link is an external link attached to a work
type Link struct {
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Excerpt is a text excerpt attached to a work
type Excerpt struct {
	Excerpt string `json:"excerpt,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Author represents an /authors/{id}.json resource
type Author struct {
	Name         string    `json:"name"`
	PersonalName string    `json:"personal_name,omitempty"`
	BirthDate    string    `json:"birth_date,omitempty"`
	Bio          TextValue `json:"bio,omitempty"`
}

// TextValue handles Open Library fields that are either a bare string or a
// {"type": ..., "value": ...} object depending on the record's age.
type TextValue string

func (t *TextValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = TextValue(s)
		return nil
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Tolerate unexpected shapes rather than failing the whole record
		*t = ""
		return nil
	}
	*t = TextValue(obj.Value)
	return nil
}

func (t TextValue) String() string { return string(t) }
