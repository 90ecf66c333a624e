// Package pagination assembles backend-paged results and normalizes the
// page/size/sort triple callers send.
package pagination

// Info is the pagination block every backend paged response carries.
type Info struct {
	Number        int32 `json:"number"`
	Size          int32 `json:"size"`
	TotalElements int64 `json:"totalElements"`
}

// Page is an ordered slice of items plus backend-reported pagination.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int32 `json:"pageNumber"`
	PageSize      int32 `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

// Assemble wraps already-shaped items with the backend pagination block.
//
// TotalElements is copied from info verbatim; items are neither counted,
// filtered nor reordered.
func Assemble[T any](items []T, info Info) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Content:       items,
		PageNumber:    info.Number,
		PageSize:      info.Size,
		TotalElements: info.TotalElements,
		TotalPages:    totalPages(info),
	}
}

// AssembleMapped shapes each backend record with fn, preserving order, and
// assembles the result with info.
func AssembleMapped[S, T any](records []S, info Info, fn func(S) T) Page[T] {
	items := make([]T, 0, len(records))
	for _, record := range records {
		items = append(items, fn(record))
	}
	return Assemble(items, info)
}

func totalPages(info Info) int64 {
	if info.Size <= 0 {
		return 0
	}
	size := int64(info.Size)
	return (info.TotalElements + size - 1) / size
}
