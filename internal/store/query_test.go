package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	No           string
	Name         string
	Status       string
	DepartmentID int64
}

func rowFields(r row) []string    { return []string{r.No, r.Name} }
func rowStatus(r row) string      { return r.Status }
func rowDepartment(r row) int64   { return r.DepartmentID }
func names(rows []row) []string { // for readable assertions
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

var rows = []row{
	{No: "PC-001", Name: "Equipment Purchase", Status: "executing", DepartmentID: 6},
	{No: "PC-002", Name: "Software Services", Status: "executing", DepartmentID: 4},
	{No: "PC-003", Name: "Office Lease", Status: "terminated", DepartmentID: 3},
	{No: "PC-004", Name: "Cleaning Services", Status: "active", DepartmentID: 3},
	{No: "PC-005", Name: "Equipment Repair", Status: "active", DepartmentID: 6},
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name      string
		query     Query
		wantNames []string
		wantTotal int
	}{
		{
			name:      "no filters returns everything in insertion order",
			query:     Query{},
			wantNames: []string{"Equipment Purchase", "Software Services", "Office Lease", "Cleaning Services", "Equipment Repair"},
			wantTotal: 5,
		},
		{
			name:      "keyword is case-insensitive and matches any field",
			query:     Query{Keyword: "equipment"},
			wantNames: []string{"Equipment Purchase", "Equipment Repair"},
			wantTotal: 2,
		},
		{
			name:      "keyword matches the number field too",
			query:     Query{Keyword: "pc-003"},
			wantNames: []string{"Office Lease"},
			wantTotal: 1,
		},
		{
			name:      "status is exact",
			query:     Query{Status: "active"},
			wantNames: []string{"Cleaning Services", "Equipment Repair"},
			wantTotal: 2,
		},
		{
			name:      "department is exact",
			query:     Query{DepartmentID: 3},
			wantNames: []string{"Office Lease", "Cleaning Services"},
			wantTotal: 2,
		},
		{
			name:      "filters combine conjunctively",
			query:     Query{Keyword: "services", Status: "active", DepartmentID: 3},
			wantNames: []string{"Cleaning Services"},
			wantTotal: 1,
		},
		{
			name:      "no match yields empty list and zero total",
			query:     Query{Keyword: "nonexistent"},
			wantNames: []string{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Select(rows, tt.query, rowFields, rowStatus, rowDepartment)
			assert.Equal(t, tt.wantNames, names(page.List))
			assert.Equal(t, tt.wantTotal, page.Total)
		})
	}
}

func TestSelectNilAccessors(t *testing.T) {
	// Resources without status/department fields pass nil accessors; those
	// filters then never restrict.
	page := Select(rows, Query{Status: "active", DepartmentID: 3}, rowFields, nil, nil)
	assert.Equal(t, 5, page.Total)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		pageNum      int
		pageSize     int
		wantNames    []string
		wantPageNum  int
		wantPageSize int
	}{
		{
			name:     "first page",
			pageNum:  1, pageSize: 2,
			wantNames:   []string{"Equipment Purchase", "Software Services"},
			wantPageNum: 1, wantPageSize: 2,
		},
		{
			name:     "middle page",
			pageNum:  2, pageSize: 2,
			wantNames:   []string{"Office Lease", "Cleaning Services"},
			wantPageNum: 2, wantPageSize: 2,
		},
		{
			name:     "last page is a partial slice",
			pageNum:  3, pageSize: 2,
			wantNames:   []string{"Equipment Repair"},
			wantPageNum: 3, wantPageSize: 2,
		},
		{
			name:     "page beyond the data is empty, not an error",
			pageNum:  9, pageSize: 10,
			wantNames:   []string{},
			wantPageNum: 9, wantPageSize: 10,
		},
		{
			name:     "zero values fall back to defaults",
			pageNum:  0, pageSize: 0,
			wantNames:   []string{"Equipment Purchase", "Software Services", "Office Lease", "Cleaning Services", "Equipment Repair"},
			wantPageNum: DefaultPageNum, wantPageSize: DefaultPageSize,
		},
		{
			name:     "negative values fall back to defaults",
			pageNum:  -3, pageSize: -1,
			wantNames:   []string{"Equipment Purchase", "Software Services", "Office Lease", "Cleaning Services", "Equipment Repair"},
			wantPageNum: DefaultPageNum, wantPageSize: DefaultPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(rows, tt.pageNum, tt.pageSize)
			assert.Equal(t, tt.wantNames, names(page.List))
			assert.Equal(t, len(rows), page.Total, "total is the filtered count before slicing")
			assert.Equal(t, tt.wantPageNum, page.PageNum)
			assert.Equal(t, tt.wantPageSize, page.PageSize)
		})
	}
}

func TestPaginateDoesNotAliasInput(t *testing.T) {
	src := []row{{Name: "a"}, {Name: "b"}}
	page := Paginate(src, 1, 10)
	require.Len(t, page.List, 2)
	page.List[0].Name = "mutated"
	assert.Equal(t, "a", src[0].Name)
}
