package document

import "time"

// Author identifies who wrote a document. Either field may be empty.
type Author struct {
	ID   string `json:"id,omitempty" bson:"id,omitempty"`
	Name string `json:"name,omitempty" bson:"name,omitempty"`
}

// Document is the stored entity. A nil Title, Content or Author means the
// field is absent, and a zero Created means no creation time was recorded.
// Created is set once, when the ID is first stored, and never changes after.
type Document struct {
	ID      string    `json:"id" bson:"_id"`
	Title   *string   `json:"title,omitempty" bson:"title,omitempty"`
	Content *string   `json:"content,omitempty" bson:"content,omitempty"`
	Author  *Author   `json:"author,omitempty" bson:"author,omitempty"`
	Created time.Time `json:"created" bson:"created"`
}

// Clone returns a deep copy so callers never share pointers with stored state.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	if d.Title != nil {
		t := *d.Title
		c.Title = &t
	}
	if d.Content != nil {
		s := *d.Content
		c.Content = &s
	}
	if d.Author != nil {
		a := *d.Author
		c.Author = &a
	}
	return &c
}

// SearchRequest holds the optional criteria of a search. A nil slice and an
// empty slice both mean "no constraint" on that dimension; a nil bound means
// the range is open on that side. Bounds are inclusive.
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string { return &s }
