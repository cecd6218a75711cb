package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows any page can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs for the rendered table view.
type Params struct {
	Limit int
	Page  int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page index to 1-based values.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// PageCount returns how many pages the given total spans at the given limit.
func PageCount(total, limit int) int {
	limit = NormalizeLimit(limit)
	if total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Bounds returns the half-open [start, end) slice bounds for the requested page.
// A page past the end collapses to an empty range at the tail.
func Bounds(total int, params Params) (int, int) {
	limit := NormalizeLimit(params.Limit)
	page := NormalizePage(params.Page)

	start := (page - 1) * limit
	if start >= total {
		return total, total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
