package hfstol

// Symbol identifies one entry of a transducer's alphabet. The key-table
// index equals the Symbol value for every parsed transducer.
type Symbol uint16

const (
	// EPSILON is the empty symbol: it consumes no input and, as an
	// output, contributes nothing to the result string.
	EPSILON Symbol = 0
	// NoSymbol marks an absent symbol in an index- or target-table slot.
	NoSymbol Symbol = 0xFFFF
)

// TableIndex addresses a slot in either the index table or the target
// table. The high bit (TargetTableStart) tags which table it names.
type TableIndex uint32

const (
	// NoIndex marks an absent table reference.
	NoIndex TableIndex = 0xFFFFFFFF
	// TargetTableStart distinguishes a target-table address from an
	// index-table address within the single TableIndex space.
	TargetTableStart TableIndex = 0x80000000
)

// Weight is a real-valued score summed along a traversal path, including
// the terminating final weight.
type Weight float32

// cursorSize bounds the per-lookup output path buffer. It is the sole
// defense against epsilon-cycle divergence: once a path has emitted this
// many output symbols, every deeper recursive call returns immediately.
const cursorSize = 1000
