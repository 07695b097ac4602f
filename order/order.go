// Package order defines the order taxonomy shared by every event handler in
// the backtester. Sides cover both trade directions and the strategy signal
// directions which precede them.
package order

// String implements the stringer interface
func (s Side) String() string {
	return string(s)
}

// IsValid returns whether the side is a supported value
func (s Side) IsValid() bool {
	switch s {
	case Buy, Sell, Long, Short, ClosePosition:
		return true
	default:
		return false
	}
}

// String implements the stringer interface
func (t Type) String() string {
	return string(t)
}

// String implements the stringer interface
func (s Status) String() string {
	return string(s)
}
