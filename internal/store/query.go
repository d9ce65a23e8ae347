package store

import "strings"

const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
)

// Query is the filter spec applied to a resource listing. Zero values mean
// "no restriction" for Keyword, Status and DepartmentID; PageNum and
// PageSize fall back to the defaults.
type Query struct {
	Keyword      string
	Status       string
	DepartmentID int64
	PageNum      int
	PageSize     int
}

// Page is the paginated listing envelope: List is a contiguous slice of the
// filtered set in insertion order, Total the filtered count before slicing.
type Page[T any] struct {
	List     []T `json:"list"`
	Total    int `json:"total"`
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
}

// Select filters items by the query and paginates the result. keywordFields
// yields the text fields matched (case-insensitive substring, any-of);
// status and departmentID may be nil for resources without those fields.
// Filtering and pagination are pure over the given snapshot.
func Select[T any](items []T, q Query, keywordFields func(T) []string, status func(T) string, departmentID func(T) int64) Page[T] {
	filtered := items
	if q.Keyword != "" && keywordFields != nil {
		kw := strings.ToLower(q.Keyword)
		filtered = filter(filtered, func(item T) bool {
			for _, f := range keywordFields(item) {
				if strings.Contains(strings.ToLower(f), kw) {
					return true
				}
			}
			return false
		})
	}
	if q.Status != "" && status != nil {
		filtered = filter(filtered, func(item T) bool { return status(item) == q.Status })
	}
	if q.DepartmentID != 0 && departmentID != nil {
		filtered = filter(filtered, func(item T) bool { return departmentID(item) == q.DepartmentID })
	}
	return Paginate(filtered, q.PageNum, q.PageSize)
}

// Paginate slices items into the requested page. Out-of-range pages yield
// an empty list, never an error.
func Paginate[T any](items []T, pageNum, pageSize int) Page[T] {
	if pageNum <= 0 {
		pageNum = DefaultPageNum
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	start := (pageNum - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	list := make([]T, end-start)
	copy(list, items[start:end])

	return Page[T]{
		List:     list,
		Total:    total,
		PageNum:  pageNum,
		PageSize: pageSize,
	}
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
