package vptree

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the vptree package.
var (
	// ErrInvalidParameter indicates a construction parameter violates its
	// documented constraint (currently: MaxItemsPerNode < 3).
	ErrInvalidParameter = errors.New("vptree: invalid parameter")

	// ErrAlreadyPopulated indicates an attempt to insert items into a tree
	// that already holds a populated set of items.
	ErrAlreadyPopulated = errors.New("vptree: tree is already populated")
)

// Params configures Construct. Use DefaultParams as a starting point and
// override individual fields via Option functions.
//
//	MaxItemsPerNode    — a node with fewer items than this becomes a leaf.
//	                     Must be >= 3.
//	MaxDepth           — depth at which a node becomes a leaf regardless
//	                     of item count, guarding against unbounded recursion.
//	MinSplitFraction   — both sides of an accepted split must hold at
//	                     least this fraction of the incoming item count.
//	MaxShuffleAttempts — how many unacceptable split attempts a node
//	                     tolerates (reshuffling its items between
//	                     attempts) before giving up and storing an
//	                     oversized leaf.
//	Rand               — random source driving the shuffle-and-retry step.
//	                     If nil, Construct seeds one from the current time.
type Params struct {
	MaxItemsPerNode    int
	MaxDepth           int
	MinSplitFraction   float64
	MaxShuffleAttempts int
	Rand               *rand.Rand
}

// DefaultParams returns the defaults named in the package contract:
// MaxItemsPerNode=10, MaxDepth=20, MinSplitFraction=0.01,
// MaxShuffleAttempts=5, and a nil Rand (seeded lazily by Construct).
func DefaultParams() Params {
	return Params{
		MaxItemsPerNode:    10,
		MaxDepth:           20,
		MinSplitFraction:   0.01,
		MaxShuffleAttempts: 5,
	}
}

// Option configures Params for Construct.
type Option func(*Params)

// WithMaxItemsPerNode overrides the leaf-size threshold. Must be >= 3;
// Construct rejects lower values with ErrInvalidParameter.
func WithMaxItemsPerNode(n int) Option {
	return func(p *Params) { p.MaxItemsPerNode = n }
}

// WithMaxDepth overrides the maximum tree depth.
func WithMaxDepth(d int) Option {
	return func(p *Params) { p.MaxDepth = d }
}

// WithMinSplitFraction overrides the minimum acceptable split fraction.
func WithMinSplitFraction(f float64) Option {
	return func(p *Params) { p.MinSplitFraction = f }
}

// WithMaxShuffleAttempts overrides the shuffle-retry budget.
func WithMaxShuffleAttempts(n int) Option {
	return func(p *Params) { p.MaxShuffleAttempts = n }
}

// WithRand overrides the random source used for shuffle-and-retry, so
// construction is reproducible across runs given the same input and seed.
func WithRand(r *rand.Rand) Option {
	return func(p *Params) { p.Rand = r }
}
