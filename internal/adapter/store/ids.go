package store

import "time"

// idGenerator hands out strictly increasing identifiers. Values track the
// wall clock in milliseconds so they stay close to the timestamp ids of the
// seed data, but two calls within the same millisecond still differ.
type idGenerator struct {
	last int64
	now  func() time.Time
}

// observe raises the floor so future ids never collide with id.
func (g *idGenerator) observe(id int64) {
	if id > g.last {
		g.last = id
	}
}

func (g *idGenerator) next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
