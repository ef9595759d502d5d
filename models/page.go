package models

// PageSize is the fixed number of questions per page.
const PageSize = 10

// Page is one slice of the question list plus the metadata the navigation
// needs. PageIndex is zero-based.
type Page struct {
	Items      []Question `json:"items"`
	TotalCount int64      `json:"total_count"`
	PageSize   int        `json:"page_size"`
	PageIndex  int        `json:"page_index"`
}

func (p Page) TotalPages() int {
	if p.TotalCount == 0 {
		return 0
	}
	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

func (p Page) IsFirst() bool {
	return p.PageIndex == 0
}

func (p Page) IsLast() bool {
	return p.PageIndex >= p.TotalPages()-1
}

func (p Page) HasPrevious() bool {
	return p.PageIndex > 0
}

func (p Page) HasNext() bool {
	return p.PageIndex < p.TotalPages()-1
}

// Window returns up to 2*radius+1 page indexes centered on the current page,
// clamped to the valid range. Used by clients to render a bounded pager.
func (p Page) Window(radius int) []int {
	total := p.TotalPages()
	if total == 0 {
		return []int{}
	}

	start := p.PageIndex - radius
	end := p.PageIndex + radius
	if start < 0 {
		end -= start
		start = 0
	}
	if end > total-1 {
		start -= end - (total - 1)
		end = total - 1
	}
	if start < 0 {
		start = 0
	}

	window := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		window = append(window, i)
	}
	return window
}
