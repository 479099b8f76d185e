package document

import "time"

// Merge builds the value to store for incoming, given the document already
// stored under the same ID (nil when there is none).
//
// An update keeps ID and Created from existing and takes Title, Content and
// Author from incoming. An insert keeps incoming as is and falls back to now
// when incoming has no Created. Neither argument is modified.
func Merge(existing, incoming *Document, now time.Time) *Document {
	merged := &Document{
		ID:      incoming.ID,
		Title:   incoming.Title,
		Content: incoming.Content,
		Author:  incoming.Author,
	}
	if existing != nil {
		merged.ID = existing.ID
		merged.Created = existing.Created
		return merged.Clone()
	}
	merged.Created = incoming.Created
	if merged.Created.IsZero() {
		merged.Created = now
	}
	return merged.Clone()
}
