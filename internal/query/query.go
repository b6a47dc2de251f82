package query

import (
	"strings"

	"golang.org/x/text/cases"

	"copydesk/internal/store"
	"copydesk/internal/users"
)

// Options narrow an item listing. Zero values ("all") disable the
// corresponding filter.
type Options struct {
	Kind   store.Kind
	Status store.Status
	Search string
}

// Filter returns the ordered subsequence of items matching the options,
// preserving input order. The search text matches case-insensitively against
// the item title or the resolved author email; authors that cannot be
// resolved match against the "unknown author" placeholder. An empty search
// matches every item. Filter never mutates its input and is idempotent.
func Filter(items []*store.Item, opts Options, dir users.Directory) []*store.Item {
	fold := cases.Fold()
	search := fold.String(strings.TrimSpace(opts.Search))

	out := make([]*store.Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if opts.Kind != "" && item.Kind != opts.Kind {
			continue
		}
		if opts.Status != "" && item.Status != opts.Status {
			continue
		}
		if search != "" && !matchesSearch(fold, item, search, dir) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(fold cases.Caser, item *store.Item, search string, dir users.Directory) bool {
	if strings.Contains(fold.String(item.Title), search) {
		return true
	}
	author := users.DisplayName(dir, item.AuthorID)
	return strings.Contains(fold.String(author), search)
}
