package constraint

type Iterator struct {
	current int
	keys    []string
	table   map[string]Constraint
}

func (r *Iterator) Value() Constraint {
	return r.table[r.keys[r.current]]
}

func (r *Iterator) Name() string {
	return r.keys[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.keys)
}
