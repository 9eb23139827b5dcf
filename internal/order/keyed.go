package order

import "container/list"

// keyedList - упорядоченное отображение key -> value.
// Вставка, замена и удаление за O(1), обход в порядке добавления.
type keyedList[K comparable, V any] struct {
	index map[K]*list.Element
	order *list.List
}

type keyedEntry[K comparable, V any] struct {
	key   K
	value V
}

func newKeyedList[K comparable, V any]() *keyedList[K, V] {
	return &keyedList[K, V]{index: make(map[K]*list.Element), order: list.New()}
}

// Has - есть ли запись с ключом
func (l *keyedList[K, V]) Has(key K) bool {
	_, ok := l.index[key]
	return ok
}

// Add - добавляет запись, если ключа ещё нет. Возвращает false, если запись уже была.
func (l *keyedList[K, V]) Add(key K, value V) bool {
	if _, ok := l.index[key]; ok {
		return false
	}
	l.index[key] = l.order.PushBack(&keyedEntry[K, V]{key: key, value: value})
	return true
}

// Upsert - заменяет значение существующей записи (позиция сохраняется) или добавляет в конец
func (l *keyedList[K, V]) Upsert(key K, value V) {
	if el, ok := l.index[key]; ok {
		el.Value.(*keyedEntry[K, V]).value = value
		return
	}
	l.index[key] = l.order.PushBack(&keyedEntry[K, V]{key: key, value: value})
}

// Remove - удаляет запись. Возвращает false, если ключа не было.
func (l *keyedList[K, V]) Remove(key K) bool {
	el, ok := l.index[key]
	if !ok {
		return false
	}
	l.order.Remove(el)
	delete(l.index, key)
	return true
}

// Len - количество записей
func (l *keyedList[K, V]) Len() int {
	return l.order.Len()
}

// Values - значения в порядке добавления
func (l *keyedList[K, V]) Values() []V {
	values := make([]V, 0, l.order.Len())
	for el := l.order.Front(); el != nil; el = el.Next() {
		values = append(values, el.Value.(*keyedEntry[K, V]).value)
	}
	return values
}

// Keys - ключи в порядке добавления
func (l *keyedList[K, V]) Keys() []K {
	keys := make([]K, 0, l.order.Len())
	for el := l.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*keyedEntry[K, V]).key)
	}
	return keys
}
