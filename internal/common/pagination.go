package common

import (
	"net/url"
	"strconv"
)

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// Page describes one page of a client side table.
type Page struct {
	Pagination

	Number     int
	TotalPages int
}

// From is the 1-based index of the first row on the page, 0 when empty.
func (p Page) From() int {
	if p.Total == 0 {
		return 0
	}
	return p.Offset + 1
}

// To is the 1-based index of the last row on the page.
func (p Page) To() int {
	to := p.Offset + p.Limit
	if to > p.Total {
		return p.Total
	}
	return to
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Paginate returns the rows of the requested page. Out of range pages are
// clamped to the first or last page.
func Paginate[T any](rows []T, page, perPage int) ([]T, Page) {
	if perPage <= 0 {
		perPage = len(rows)
	}

	totalPages := 1
	if perPage > 0 && len(rows) > 0 {
		totalPages = (len(rows) + perPage - 1) / perPage
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * perPage
	end := offset + perPage
	if end > len(rows) {
		end = len(rows)
	}

	return rows[offset:end], Page{
		Pagination: Pagination{
			Limit:  perPage,
			Offset: offset,
			Total:  len(rows),
		},
		Number:     page,
		TotalPages: totalPages,
	}
}

// PageParam reads the "page" query parameter, defaulting to 1.
func PageParam(q url.Values) int {
	p, err := strconv.Atoi(q.Get("page"))
	if err != nil || p < 1 {
		return 1
	}
	return p
}

// PageURL returns path with q and the page parameter set to page.
func PageURL(path string, q url.Values, page int) string {
	v := url.Values{}
	for k, vals := range q {
		v[k] = append([]string{}, vals...)
	}
	v.Set("page", strconv.Itoa(page))

	return path + "?" + v.Encode()
}
