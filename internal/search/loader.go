package search

import (
	"context"
	"strings"
	"sync"
)

// Fetcher - диапазонная выборка: элементы [offset, offset+limit) и общее количество совпадений
type Fetcher[T any] func(ctx context.Context, term string, limit, offset int) ([]T, int, error)

// Result - накопленное состояние загрузчика
type Result[T any] struct {
	Term    string `json:"term"`
	Items   []T    `json:"items"`
	Total   int    `json:"total"`
	HasMore bool   `json:"has_more"`
}

// Loader - серверный вариант: каждая порция запрашивается отдельно и дописывается
// к накопленным. Смена запроса сбрасывает накопленное и начинает с первой страницы.
type Loader[T any] struct {
	mu       sync.Mutex
	fetch    Fetcher[T]
	pageSize int

	term   string
	page   int
	items  []T
	total  int
	loaded bool
	// поколение запроса: ответ на устаревший запрос не дописывается
	generation uint64
}

// NewLoader - создание загрузчика
func NewLoader[T any](fetch Fetcher[T], pageSize int) *Loader[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Loader[T]{fetch: fetch, pageSize: pageSize}
}

// Search - новый запрос: накопленное отбрасывается, загружается первая страница
func (l *Loader[T]) Search(ctx context.Context, term string) (Result[T], error) {
	l.mu.Lock()
	l.generation++
	l.term = strings.TrimSpace(term)
	l.page = 0
	l.items = nil
	l.total = 0
	l.loaded = false
	l.mu.Unlock()

	return l.LoadMore(ctx)
}

// LoadMore - подгрузка следующей страницы текущего запроса
func (l *Loader[T]) LoadMore(ctx context.Context) (Result[T], error) {
	l.mu.Lock()
	if l.loaded && len(l.items) >= l.total {
		defer l.mu.Unlock()
		return l.resultLocked(), nil
	}
	generation := l.generation
	term := l.term
	offset := l.page * l.pageSize
	l.mu.Unlock()

	items, total, err := l.fetch(ctx, term, l.pageSize, offset)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		return l.resultLocked(), err
	}
	if generation != l.generation {
		return l.resultLocked(), ErrStale
	}
	l.items = append(l.items, items...)
	l.total = total
	l.page++
	l.loaded = true
	return l.resultLocked(), nil
}

// Term - текущий запрос
func (l *Loader[T]) Term() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.term
}

// Loaded - была ли загружена хотя бы одна страница
func (l *Loader[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Result - накопленные элементы без нового запроса
func (l *Loader[T]) Result() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resultLocked()
}

func (l *Loader[T]) resultLocked() Result[T] {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Result[T]{
		Term:    l.term,
		Items:   items,
		Total:   l.total,
		HasMore: len(l.items) < l.total,
	}
}
