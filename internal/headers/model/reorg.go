package model

import "time"

// Reorg describes one change of the best chain.
//
// Removed lists the positions demoted from the best chain, oldest first. Added lists the new
// best-chain segment above Ancestor in ascending height order; its last element is the new tip.
// A plain extension of the tip has an empty Removed list.
type Reorg struct {
	Chain      ChainType
	Ancestor   Position
	Removed    []Position
	Added      []Position
	OccurredAt time.Time
}

// IsReorg reports whether any best-chain position was demoted.
func (r Reorg) IsReorg() bool {
	return len(r.Removed) > 0
}

// Depth is the number of demoted positions.
func (r Reorg) Depth() int {
	return len(r.Removed)
}

// Tip returns the best-chain tip after the change.
func (r Reorg) Tip() Position {
	if len(r.Added) == 0 {
		return r.Ancestor
	}
	return r.Added[len(r.Added)-1]
}

// OldTip returns the best-chain tip before the change.
func (r Reorg) OldTip() Position {
	if len(r.Removed) == 0 {
		return r.Ancestor
	}
	return r.Removed[len(r.Removed)-1]
}
