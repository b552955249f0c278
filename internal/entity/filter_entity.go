package entity

// ValueRange holds the observed bounds of a numeric column. Both bounds are
// nil when no active listing matched.
type ValueRange struct {
	Min *float64
	Max *float64
}
