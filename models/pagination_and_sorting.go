package models

type PaginationAndSorting struct {
	OffsetId string
	Sorting  SortingField
	Order    SortingOrder
	Limit    int
}

type SortingField string

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

// SortingFieldFrom only lets known column names through, anything else falls
// back to the per-resource default.
func SortingFieldFrom(s string) SortingField {
	if s == "created_at" {
		return SortingField(s)
	}
	return ""
}

func SortingOrderFrom(s string) SortingOrder {
	if s == "ASC" {
		return SortingOrderAsc
	}
	return SortingOrderDesc
}

type PaginationDefaults struct {
	Limit  int
	SortBy SortingField
	Order  SortingOrder
}

func WithPaginationDefaults(p PaginationAndSorting, defaults PaginationDefaults) PaginationAndSorting {
	if p.Limit <= 0 {
		p.Limit = defaults.Limit
	}
	if p.Sorting == "" {
		p.Sorting = defaults.SortBy
	}
	if p.Order == "" {
		p.Order = defaults.Order
	}
	return p
}

type Paginated[T any] struct {
	Items       []T
	HasNextPage bool
}
