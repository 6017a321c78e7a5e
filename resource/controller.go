package resource

import (
	"github.com/cockroachdb/errors"
)

// Controller wraps a display controller and tracks its power-gating state
type Controller struct {
	Base
	hw     ControllerObject
	gating GatingState
}

var _ Resource = &Controller{}

// NewController wraps a controller hardware object. When powerGating is false the
// controller is permanently GatingNotApplicable. Otherwise it starts out GatingUngated,
// since controllers come up powered.
func NewController(hw ControllerObject, powerGating bool) *Controller {
	c := &Controller{
		Base:   newBase(hw.Identity()),
		hw:     hw,
		gating: GatingNotApplicable,
	}
	if powerGating {
		c.gating = GatingUngated
	}
	return c
}

func (c *Controller) Priority() int  { return 0 }
func (c *Controller) Sharable() bool { return false }

func (c *Controller) Object() ControllerObject { return c.hw }
func (c *Controller) GatingState() GatingState { return c.gating }

func (c *Controller) Clone() Resource {
	clone := *c
	clone.Base = c.Base.cloneBase()
	return &clone
}

func (c *Controller) ReleaseHW() { releaseHW(c.hw, c.cloned) }
func (c *Controller) Destroy()   { destroy(c.hw, c.cloned) }

// Ungate restores power to the controller before its first claim. It is only legal while
// the controller has no claims. Controllers that are already ungated, clones, and
// controllers without power gating are left alone.
func (c *Controller) Ungate() error {
	if c.gating == GatingNotApplicable || c.cloned {
		return nil
	}
	if c.refCount != 0 {
		return errors.AssertionFailedf("attempted to ungate %s while it has %d claims", c.identity, c.refCount)
	}
	if c.gating == GatingUngated {
		return nil
	}

	err := c.hw.SetPowerGating(false)
	if err != nil {
		return errors.Wrapf(err, "failed to disable power gating on %s", c.identity)
	}
	c.gating = GatingUngated
	return nil
}

// Gate removes power from the controller as its last claim is released. It must be called
// while the controller still holds exactly one claim, immediately before that claim is dropped.
func (c *Controller) Gate() error {
	if c.gating == GatingNotApplicable || c.cloned {
		return nil
	}
	if c.refCount != 1 {
		return errors.AssertionFailedf("attempted to gate %s while it has %d claims, expected exactly 1", c.identity, c.refCount)
	}
	if c.gating == GatingGated {
		return errors.AssertionFailedf("attempted to gate %s, which is already gated while claimed", c.identity)
	}

	err := c.hw.SetPowerGating(true)
	if err != nil {
		return errors.Wrapf(err, "failed to enable power gating on %s", c.identity)
	}
	c.gating = GatingGated
	return nil
}

// GateIdle removes power from a controller that has no claims and is still ungated. It
// is used to power down idle controllers after the inventory is built.
func (c *Controller) GateIdle() error {
	if c.gating != GatingUngated || c.cloned || c.refCount != 0 {
		return nil
	}

	err := c.hw.SetPowerGating(true)
	if err != nil {
		return errors.Wrapf(err, "failed to enable power gating on %s", c.identity)
	}
	c.gating = GatingGated
	return nil
}

func (c *Controller) Validate() error {
	err := c.Base.Validate()
	if err != nil {
		return err
	}
	if c.refCount > 1 {
		return errors.Newf("%s has %d claims, controllers can only be claimed once", c.identity, c.refCount)
	}
	return nil
}
