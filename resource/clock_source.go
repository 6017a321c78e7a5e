package resource

import (
	"github.com/cockroachdb/errors"
)

// ClockSource wraps a pixel clock generator. It is the only sharable Resource: several
// paths may hold it at once as long as they all agree on the same SharingGroup.
type ClockSource struct {
	Base
	hw    ClockSourceObject
	group SharingGroup
}

var _ Resource = &ClockSource{}

func NewClockSource(hw ClockSourceObject) *ClockSource {
	return &ClockSource{
		Base:  newBase(hw.Identity()),
		hw:    hw,
		group: SharingGroupExclusive,
	}
}

// Priority prefers fixed-frequency clock sources over tunable ones
func (c *ClockSource) Priority() int {
	if c.hw.IsFixedFrequency() {
		return 0
	}
	return 1
}

func (c *ClockSource) Sharable() bool { return true }

func (c *ClockSource) Object() ClockSourceObject { return c.hw }

// SharingGroup returns the group every current holder agreed upon, or SharingGroupExclusive
// if the clock source is free
func (c *ClockSource) SharingGroup() SharingGroup { return c.group }

func (c *ClockSource) Clone() Resource {
	clone := *c
	clone.Base = c.Base.cloneBase()
	clone.group = SharingGroupExclusive
	return &clone
}

func (c *ClockSource) ReleaseHW() { releaseHW(c.hw, c.cloned) }
func (c *ClockSource) Destroy()   { destroy(c.hw, c.cloned) }

// AddSharedRef claims the clock source on behalf of a path in the provided group. The first
// claim sets the group, every later claim must match it.
func (c *ClockSource) AddSharedRef(group SharingGroup) error {
	if c.refCount == 0 {
		c.group = group
	} else if group == SharingGroupExclusive || c.group != group {
		return errors.AssertionFailedf("attempted to claim %s for sharing group %s while it is held for group %s",
			c.identity, group, c.group)
	}

	c.refCount++
	return nil
}

// Unref drops a claim, and returns the clock source to the exclusive group when the last
// claim is dropped
func (c *ClockSource) Unref(mst bool) (int, error) {
	count, err := c.Base.Unref(mst)
	if err != nil {
		return count, err
	}
	if count == 0 {
		c.group = SharingGroupExclusive
	}
	return count, nil
}

func (c *ClockSource) ResetUsage() {
	c.Base.ResetUsage()
	c.group = SharingGroupExclusive
}

// PowerDown stops the generated clock. Clones never touch hardware.
func (c *ClockSource) PowerDown() error {
	if c.cloned {
		return nil
	}
	return c.hw.PowerDown()
}

func (c *ClockSource) Validate() error {
	if c.refCount < 0 {
		return errors.Newf("%s has a negative reference count %d", c.identity, c.refCount)
	}
	if c.refCount == 0 && c.group != SharingGroupExclusive {
		return errors.Newf("%s is unclaimed but still tagged with sharing group %s", c.identity, c.group)
	}
	if c.refCount > 1 && c.group == SharingGroupExclusive {
		return errors.Newf("%s is held %d times for the exclusive sharing group", c.identity, c.refCount)
	}
	return nil
}
