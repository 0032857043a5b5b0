package zigzag

// IDAllocator hands out monotonic ids for one entity class.
// Ids start at 0 after Reset and are never reused within a run.
type IDAllocator struct {
	next int
}

// Next returns a fresh id.
func (a *IDAllocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Peek returns the id the next call to Next will return.
func (a *IDAllocator) Peek() int {
	return a.next
}

// Reset restarts the sequence at 0.
func (a *IDAllocator) Reset() {
	a.next = 0
}
