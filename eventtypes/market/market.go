// Package market provides the tick advancement event which drives strategy
// invocation and portfolio snapshots.
package market

// IsMarket returns whether the event is a market tick
func (m *Market) IsMarket() bool {
	return true
}
