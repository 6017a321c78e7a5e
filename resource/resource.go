package resource

import (
	"github.com/cockroachdb/errors"
)

// Resource wraps exactly one hardware capability unit tracked by a pool. It is implemented by
// *Controller, *Encoder, *Connector, *ClockSource, *Audio and *Engine, and by nothing else.
//
// Reference counts are only ever changed by the pool that owns the Resource; the counting
// methods are exported for the pool's benefit and should not be called by other consumers.
type Resource interface {
	// Identity returns the immutable identity of the wrapped hardware object
	Identity() Identity
	// Priority is a variant-specific ranking used to break ties between resources of the same
	// kind. Lower values are preferred.
	Priority() int
	// Sharable returns true if more than one display path may hold this resource at once
	// outside of multi-stream topologies. Only clock sources are sharable.
	Sharable() bool
	// Clone duplicates variant state into a new Resource with a reference count of zero.
	// The clone is marked as cloned and will never touch hardware.
	Clone() Resource
	// ReleaseHW quiesces the wrapped hardware object, if it supports doing so
	ReleaseHW()
	// Destroy destroys the wrapped hardware object. It no-ops for cloned resources.
	Destroy()

	// RefCount returns the number of outstanding claims on this resource
	RefCount() int
	// MST returns true while the resource is held on behalf of a multi-stream signal and
	// therefore tolerates concurrent claims
	MST() bool
	// MSTClaims returns the number of outstanding claims made for a multi-stream signal
	MSTClaims() int
	// Cloned returns true if this resource was produced by Clone
	Cloned() bool

	// AddRef records a new claim. mst indicates whether the claim is made for a
	// multi-stream signal.
	AddRef(mst bool)
	// Unref removes a claim and returns the new reference count. mst must match the value
	// the claim was added with. Removing a claim that does not exist is an assertion failure
	// and leaves the counts unchanged.
	Unref(mst bool) (int, error)
	// ResetUsage drops every claim without any validation
	ResetUsage()
	// Validate checks the reference count invariants of the resource
	Validate() error

	base() *Base
}

// Base holds the state shared by every Resource variant
type Base struct {
	identity  Identity
	refCount  int
	mstClaims int
	cloned    bool
}

func newBase(identity Identity) Base {
	return Base{identity: identity}
}

func (b *Base) base() *Base { return b }

func (b *Base) Identity() Identity { return b.identity }
func (b *Base) RefCount() int      { return b.refCount }
func (b *Base) MST() bool          { return b.mstClaims > 0 }
func (b *Base) MSTClaims() int     { return b.mstClaims }
func (b *Base) Cloned() bool       { return b.cloned }

func (b *Base) AddRef(mst bool) {
	b.refCount++
	if mst {
		b.mstClaims++
	}
}

func (b *Base) Unref(mst bool) (int, error) {
	if b.refCount == 0 {
		return 0, errors.AssertionFailedf("attempted to release %s, which has no outstanding claims", b.identity)
	}
	if mst && b.mstClaims == 0 {
		return b.refCount, errors.AssertionFailedf("attempted to release a multi-stream claim on %s, which has none", b.identity)
	}
	if !mst && b.refCount == b.mstClaims {
		return b.refCount, errors.AssertionFailedf("attempted to release a single-stream claim on %s, which has none", b.identity)
	}

	b.refCount--
	if mst {
		b.mstClaims--
	}
	return b.refCount, nil
}

func (b *Base) ResetUsage() {
	b.refCount = 0
	b.mstClaims = 0
}

func (b *Base) Validate() error {
	if b.refCount < 0 {
		return errors.Newf("%s has a negative reference count %d", b.identity, b.refCount)
	}
	if b.mstClaims > b.refCount {
		return errors.Newf("%s has %d multi-stream claims but only %d claims in total", b.identity, b.mstClaims, b.refCount)
	}
	if single := b.refCount - b.mstClaims; single > 1 {
		return errors.Newf("%s is not sharable but has %d single-stream claims", b.identity, single)
	}
	return nil
}

func (b Base) cloneBase() Base {
	return Base{
		identity: b.identity,
		cloned:   true,
	}
}

func releaseHW(obj Object, cloned bool) {
	if cloned {
		return
	}
	if releaser, ok := obj.(HWReleaser); ok {
		releaser.ReleaseHW()
	}
}

func destroy(obj Object, cloned bool) {
	if cloned || obj == nil {
		return
	}
	obj.Destroy()
}
