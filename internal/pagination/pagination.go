// Package pagination converts requested page/limit/total triples into SQL
// offsets with the requested page clamped into the valid range.
package pagination

// Offset is the result of resolving a requested page against a total count.
type Offset struct {
	// Offset is the zero-based row offset for the resolved page.
	Offset int
	// ActualPage is the requested page clamped to [1, lastPage].
	ActualPage int
}

// GetOffset computes the row offset for a requested page. lastPage is
// ceil(total/limit); the requested page is clamped to [1, max(lastPage, 1)],
// so total = 0 yields page 1 with offset 0 and a page past the end resolves
// to the last page. limit values below 1 are treated as 1.
func GetOffset(page, limit, total int) Offset {
	if limit < 1 {
		limit = 1
	}

	lastPage := (total + limit - 1) / limit
	if lastPage < 1 {
		lastPage = 1
	}

	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	return Offset{
		Offset:     (page - 1) * limit,
		ActualPage: page,
	}
}
