package store

// table is an insertion-ordered collection keyed by a monotonically
// assigned id. Ids are never reused, even after removal.
type table[T any] struct {
	rows  map[int64]T
	order []int64
	next  int64
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[int64]T), next: 1}
}

// insert assigns the next id, builds the row with it and stores the result.
func (t *table[T]) insert(build func(id int64) T) T {
	id := t.next
	t.next++
	row := build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) put(id int64, row T) {
	t.rows[id] = row
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// find returns the first row, in insertion order, matching fn.
func (t *table[T]) find(fn func(T) bool) (T, bool) {
	for _, id := range t.order {
		if row := t.rows[id]; fn(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) len() int { return len(t.order) }
