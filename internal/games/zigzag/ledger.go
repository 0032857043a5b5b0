package zigzag

// ContactLedger records when each tile last supported the sphere.
// An entry exists only for tiles that have been the support tile and have
// neither started falling nor been removed.
type ContactLedger struct {
	last map[int]float64
}

// NewContactLedger creates an empty ledger.
func NewContactLedger() *ContactLedger {
	return &ContactLedger{last: make(map[int]float64)}
}

// Touch sets the last contact time of a tile.
func (l *ContactLedger) Touch(tileID int, now float64) {
	l.last[tileID] = now
}

// LastContact returns the last contact time of a tile.
func (l *ContactLedger) LastContact(tileID int) (float64, bool) {
	t, ok := l.last[tileID]
	return t, ok
}

// Delete removes a tile's entry.
func (l *ContactLedger) Delete(tileID int) {
	delete(l.last, tileID)
}

// Len returns the number of entries.
func (l *ContactLedger) Len() int {
	return len(l.last)
}

// Reset removes all entries.
func (l *ContactLedger) Reset() {
	clear(l.last)
}
