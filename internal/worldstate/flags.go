package worldstate

// BlockFlags is a bitset modulating the side effects of a SetBlockState
// call (spec.md §4: "Block flags... shaping the side effects of a state
// write").
type BlockFlags uint16

const (
	// NotifyNeighbors triggers update_neighbors after the write.
	NotifyNeighbors BlockFlags = 1 << iota
	// NotifyListeners marks the change for client redraw/broadcast
	// bookkeeping (out of scope here beyond the flag itself — no network
	// layer is wired to it in this core).
	NotifyListeners
	// NoRedraw names the suppression of the client redraw packet that
	// would accompany NotifyListeners. SetBlockState does not read it:
	// the Updates sink receives every committed write.
	NoRedraw
	// SkipDrops names the suppression of loot for the replaced block.
	// Nothing in this core reads it; DropLoot calls are not gated on it.
	SkipDrops
	// Moved marks the write as part of a block-moving operation (piston)
	// rather than a destructive replace, so on_state_replaced can tell
	// the two apart.
	Moved
)

func (f BlockFlags) Has(flag BlockFlags) bool { return f&flag != 0 }

// DefaultFlags is NotifyNeighbors|NotifyListeners, the flag set ordinary
// placement/break code paths use.
const DefaultFlags = NotifyNeighbors | NotifyListeners
