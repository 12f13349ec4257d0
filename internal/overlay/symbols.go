package overlay

// RowClass is the background class of a row.
type RowClass string

const (
	RowOdd              RowClass = "odd"
	RowEven             RowClass = "even"
	RowPlayingForBlue   RowClass = "playing-for-blue"
	RowPlayingForOrange RowClass = "playing-for-orange"
)

func (c RowClass) Valid() bool {
	switch c {
	case RowOdd, RowEven, RowPlayingForBlue, RowPlayingForOrange:
		return true
	}
	return false
}

// parity returns the stripe class for the row at index i (0-based).
func parity(i int) RowClass {
	if i%2 == 0 {
		return RowOdd
	}
	return RowEven
}

// Tier is the rating bucket, 0 is the lowest.
type Tier int

const (
	TierTransistor Tier = iota
	TierCircuit
	TierProcessor
	TierOverclocked
	TierQuantum
)

// Tiers lists every tier from lowest to highest.
var Tiers = []Tier{TierTransistor, TierCircuit, TierProcessor, TierOverclocked, TierQuantum}

var tierNames = map[Tier]string{
	TierTransistor:  "division-transistor",
	TierCircuit:     "division-circuit",
	TierProcessor:   "division-processor",
	TierOverclocked: "division-overclocked",
	TierQuantum:     "division-quantum",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "division-unknown"
}

func (t Tier) Valid() bool {
	_, ok := tierNames[t]
	return ok
}

// tierWidth is the rating span of a single tier.
const tierWidth = 20

// TierFor buckets a rating. Ratings below 20 land in the lowest tier and 80 or
// more in the highest.
func TierFor(rating int) Tier {
	// Floor division so negative ratings stay in the lowest tier.
	b := rating / tierWidth
	if rating < 0 && rating%tierWidth != 0 {
		b--
	}
	if b < int(TierTransistor) {
		return TierTransistor
	}
	if b > int(TierQuantum) {
		return TierQuantum
	}
	return Tier(b)
}

// Movement is the rank movement indicator.
type Movement string

const (
	MovementNew  Movement = "new"
	MovementDown Movement = "down"
	MovementUp   Movement = "up"
	MovementSame Movement = "same"
)

// Movements lists every movement indicator.
var Movements = []Movement{MovementNew, MovementDown, MovementUp, MovementSame}

func (m Movement) Valid() bool {
	switch m {
	case MovementNew, MovementDown, MovementUp, MovementSame:
		return true
	}
	return false
}

// MovementFor compares the previous and current rank. A previous rank that is
// numerically smaller than the current one is reported as "down".
func MovementFor(previous *int, current int) Movement {
	if previous == nil {
		return MovementNew
	}
	switch {
	case *previous < current:
		return MovementDown
	case *previous > current:
		return MovementUp
	default:
		return MovementSame
	}
}

// ResultIcon is the per-game icon in a short win history.
type ResultIcon string

const (
	IconWin  ResultIcon = "win"
	IconLoss ResultIcon = "loss"
)

// ResultIcons lists every result icon.
var ResultIcons = []ResultIcon{IconWin, IconLoss}

func (r ResultIcon) Valid() bool {
	return r == IconWin || r == IconLoss
}

// Winner is the side that won a match.
type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "tie"
)

func (w Winner) Valid() bool {
	switch w {
	case WinnerA, WinnerB, WinnerTie:
		return true
	}
	return false
}
