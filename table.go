package mdp

// ValueTable is the storage backing a QFunction.
//
// Implementations that keep data outside of process memory (see
// package ldbtable) panic on storage failures.
type ValueTable interface {
	Get(key string) (float64, bool)
	Put(key string, value float64)
	// Clear removes all stored values.
	Clear()
}

// MemoryTable is a ValueTable that stores all values in a map.
type MemoryTable struct {
	values map[string]float64
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{
		values: make(map[string]float64),
	}
}

func (t *MemoryTable) Get(key string) (float64, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *MemoryTable) Put(key string, value float64) {
	t.values[key] = value
}

func (t *MemoryTable) Clear() {
	t.values = make(map[string]float64)
}

func (t *MemoryTable) Len() int {
	return len(t.values)
}
