package document

import (
	"slices"
	"strings"
	"time"
)

// Matches reports whether d satisfies every criterion of r. A nil request
// has no criteria, but documents without a creation time never match.
func (r *SearchRequest) Matches(d *Document) bool {
	if d == nil {
		return false
	}
	if r == nil {
		r = &SearchRequest{}
	}
	return matchesTitlePrefixes(d.Title, r.TitlePrefixes) &&
		matchesContainsContents(d.Content, r.ContainsContents) &&
		matchesAuthorIDs(d.Author, r.AuthorIDs) &&
		matchesCreated(d.Created, r.CreatedFrom, r.CreatedTo)
}

func matchesTitlePrefixes(title *string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	if title == nil {
		return false
	}
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(*title, p)
	})
}

// A document without content never matches a non-empty contains filter.
func matchesContainsContents(content *string, contains []string) bool {
	if len(contains) == 0 {
		return true
	}
	if content == nil {
		return false
	}
	return slices.ContainsFunc(contains, func(s string) bool {
		return strings.Contains(*content, s)
	})
}

func matchesAuthorIDs(author *Author, ids []string) bool {
	if len(ids) == 0 {
		return true
	}
	return author != nil && author.ID != "" && slices.Contains(ids, author.ID)
}

func matchesCreated(created time.Time, from, to *time.Time) bool {
	if created.IsZero() {
		return false
	}
	if from != nil && created.Before(*from) {
		return false
	}
	if to != nil && created.After(*to) {
		return false
	}
	return true
}
