package search

import (
	"errors"
	"math"
)

// ErrStale - ответ пришёл на запрос, который уже сменили более новым
var ErrStale = errors.New("stale response discarded")

// Page - одна страница выдачи
type Page[T any] struct {
	Items    []T  `json:"items"`
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasNext  bool `json:"has_next"`
	HasPrev  bool `json:"has_prev"`
	Total    int  `json:"total"`
}

// Bounds - limit/offset для страницы page (с 1); некорректные значения заменяются дефолтами
func Bounds(page, pageSize int) (limit, offset, normalizedPage int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	if page > math.MaxInt/pageSize {
		page = math.MaxInt / pageSize
	}
	return pageSize, (page - 1) * pageSize, page
}

// NewPage - страница из уже выбранных хранилищем элементов и общего количества
func NewPage[T any](items []T, page, pageSize, total int) Page[T] {
	limit, offset, page := Bounds(page, pageSize)
	return Page[T]{
		Items:    items,
		Page:     page,
		PageSize: limit,
		HasNext:  offset+len(items) < total,
		HasPrev:  page > 1,
		Total:    total,
	}
}
