package fibonacci

import "github.com/agbru/fibdrv/internal/bigdecimal"

// ─────────────────────────────────────────────────────────────────────────────
// Index Bounds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxIndex is the largest index the calculators accept.
	//
	// Fast Doubling keeps F(m+1) in its second register, so computing F(k)
	// requires F(k+1) to fit in bigdecimal.Capacity digits. With a capacity of
	// 128 digits, F(614) is the last value that fits (128 digits) and F(615)
	// is the first that does not (129 digits), which puts the bound at 613.
	MaxIndex int64 = 613

	// MaxFibUint64Index is the largest index whose value fits in a uint64:
	// F(93) = 12200160415121876738, while F(94) exceeds 2^64.
	MaxFibUint64Index = 93
)

// Capacity re-exports the digit capacity the bounds above are derived from.
const Capacity = bigdecimal.Capacity
