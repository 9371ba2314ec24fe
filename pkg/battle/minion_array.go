package battle

// BoardSize is the maximum number of minions on one side.
const BoardSize = 7

// MinionArray is a fixed-capacity container obeying the alive-prefix
// invariant: slots [0, Size()) hold minions, slots [Size(), BoardSize) are
// empty. It never reallocates.
type MinionArray struct {
	minions [BoardSize]Minion
}

// Size returns the number of occupied slots (the index of the first empty
// one).
func (a *MinionArray) Size() int {
	for i := 0; i < BoardSize; i++ {
		if !a.minions[i].Exists() {
			return i
		}
	}
	return BoardSize
}

// Empty reports whether the array holds no minions.
func (a *MinionArray) Empty() bool { return !a.minions[0].Exists() }

// Full reports whether the array is at capacity.
func (a *MinionArray) Full() bool { return a.minions[BoardSize-1].Exists() }

// Contains reports whether i names an occupied slot.
func (a *MinionArray) Contains(i int) bool { return i >= 0 && i < a.Size() }

// At returns a copy of the minion at slot i.
func (a *MinionArray) At(i int) Minion { return a.minions[i] }

// Get returns a mutable pointer to slot i.
func (a *MinionArray) Get(i int) *Minion { return &a.minions[i] }

// Set overwrites slot i directly, without shifting neighbors. Used by the
// minion-order optimizer to build a reordered board from scratch.
func (a *MinionArray) Set(i int, m Minion) { a.minions[i] = m }

// Clear empties every slot.
func (a *MinionArray) Clear() { *a = MinionArray{} }

// Append inserts m after the last occupied slot and returns its index, or
// BoardSize if the array is already full.
func (a *MinionArray) Append(m Minion) int {
	for i := 0; i < BoardSize; i++ {
		if !a.minions[i].Exists() {
			a.minions[i] = m
			return i
		}
	}
	return BoardSize
}

// Insert shifts everything from pos onward one slot to the right and places
// m at pos. It reports false (a no-op) if the array is already full.
func (a *MinionArray) Insert(pos int, m Minion) bool {
	if a.Full() {
		return false
	}
	size := a.Size()
	if pos > size {
		pos = size
	}
	for i := size; i > pos; i-- {
		a.minions[i] = a.minions[i-1]
	}
	a.minions[pos] = m
	return true
}

// Remove deletes the minion at pos, shifting everything after it one slot
// to the left.
func (a *MinionArray) Remove(pos int) {
	size := a.Size()
	for i := pos; i < size-1; i++ {
		a.minions[i] = a.minions[i+1]
	}
	a.minions[size-1] = Minion{}
}

// RemoveAllFrom clears every slot at or after pos.
func (a *MinionArray) RemoveAllFrom(pos int) {
	for i := pos; i < BoardSize; i++ {
		a.minions[i] = Minion{}
	}
}

// ForEach visits every occupied slot in order, including dead minions not
// yet removed by Battle.CheckForDeaths.
func (a *MinionArray) ForEach(fn func(pos int, m *Minion)) {
	for i := 0; i < BoardSize; i++ {
		if !a.minions[i].Exists() {
			break
		}
		fn(i, &a.minions[i])
	}
}

// ForEachAlive visits every occupied slot in order, skipping minions whose
// health has already dropped to zero or below.
func (a *MinionArray) ForEachAlive(fn func(pos int, m *Minion)) {
	for i := 0; i < BoardSize; i++ {
		if !a.minions[i].Exists() {
			break
		}
		if a.minions[i].Alive() {
			fn(i, &a.minions[i])
		}
	}
}
