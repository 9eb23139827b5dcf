// Package search - поиск по спискам с накопительной подгрузкой ("показать ещё").
package search

import (
	"strings"
)

// DefaultPageSize - размер порции по умолчанию
const DefaultPageSize = 10

// Fields - строки элемента, по которым идёт поиск
type Fields[T any] func(item T) []string

// Searcher - клиентский вариант: весь список в памяти, видимая часть
// всегда filtered[0 : page*pageSize], смена запроса сбрасывает page в 1.
type Searcher[T any] struct {
	items    []T
	fields   Fields[T]
	pageSize int

	term     string
	page     int
	filtered []T
}

// NewSearcher - создание поиска по items
func NewSearcher[T any](items []T, pageSize int, fields Fields[T]) *Searcher[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &Searcher[T]{items: items, fields: fields, pageSize: pageSize, page: 1}
	s.filter()
	return s
}

// SetTerm - новый поисковый запрос, страница сбрасывается в 1
func (s *Searcher[T]) SetTerm(term string) {
	s.term = strings.TrimSpace(term)
	s.page = 1
	s.filter()
}

// SetPage - сразу открыть page порций (для запросов без состояния).
// Больше, чем есть порций, не открывается.
func (s *Searcher[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if pages := s.pages(); page > pages {
		page = max(pages, 1)
	}
	s.page = page
}

// LoadMore - показать ещё одну порцию
func (s *Searcher[T]) LoadMore() {
	if s.HasMore() {
		s.page++
	}
}

// Visible - видимые элементы
func (s *Searcher[T]) Visible() []T {
	if s.page >= s.pages() {
		return s.filtered
	}
	return s.filtered[:s.page*s.pageSize]
}

// HasMore - есть ли ещё скрытые элементы
func (s *Searcher[T]) HasMore() bool {
	return s.page < s.pages()
}

// Total - количество найденных элементов
func (s *Searcher[T]) Total() int {
	return len(s.filtered)
}

// Page - сколько порций открыто
func (s *Searcher[T]) Page() int {
	return s.page
}

// pages - количество порций в отфильтрованном списке
func (s *Searcher[T]) pages() int {
	return (len(s.filtered) + s.pageSize - 1) / s.pageSize
}

func (s *Searcher[T]) filter() {
	if s.term == "" || s.fields == nil {
		s.filtered = s.items
		return
	}
	needle := strings.ToLower(s.term)
	filtered := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if matches(s.fields(item), needle) {
			filtered = append(filtered, item)
		}
	}
	s.filtered = filtered
}

func matches(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}
