package dto

import "github.com/amanahq/amana-backend/models"

type PaginationAndSorting struct {
	OffsetId string `form:"offset_id"`
	Sorting  string `form:"sorting"`
	Order    string `form:"order"`
	Limit    int    `form:"limit" binding:"min=0,max=100"`
}

func AdaptPaginationAndSorting(input PaginationAndSorting) models.PaginationAndSorting {
	return models.PaginationAndSorting{
		OffsetId: input.OffsetId,
		Sorting:  models.SortingFieldFrom(input.Sorting),
		Order:    models.SortingOrderFrom(input.Order),
		Limit:    input.Limit,
	}
}

type Paginated[T any] struct {
	Items       []T  `json:"items"`
	HasNextPage bool `json:"has_next_page"`
}

func AdaptPaginated[Model, Dto any](page models.Paginated[Model], adapt func(Model) Dto) Paginated[Dto] {
	out := Paginated[Dto]{
		Items:       make([]Dto, len(page.Items)),
		HasNextPage: page.HasNextPage,
	}
	for i, item := range page.Items {
		out.Items[i] = adapt(item)
	}
	return out
}
