package inventory

import (
	"github.com/vkngwrapper/displaypool/resource"
	"golang.org/x/exp/slices"
)

// object is the state every software hardware object carries
type object struct {
	identity  resource.Identity
	destroyed bool
	released  int
}

func (o *object) Identity() resource.Identity { return o.identity }
func (o *object) Destroy()                    { o.destroyed = true }
func (o *object) ReleaseHW()                  { o.released++ }

// Destroyed returns true once the owning pool has destroyed the object
func (o *object) Destroyed() bool { return o.destroyed }

// ReleaseCount returns the number of times the object was asked to release hardware
func (o *object) ReleaseCount() int { return o.released }

// Controller is a software display controller that records its power-gating state
type Controller struct {
	object
	gated       bool
	gatingCalls int
}

var _ resource.ControllerObject = &Controller{}

func (c *Controller) SetPowerGating(enable bool) error {
	c.gatingCalls++
	c.gated = enable
	return nil
}

// Gated returns true if power is currently removed from the controller
func (c *Controller) Gated() bool { return c.gated }

// GatingCalls returns the number of times power gating was changed
func (c *Controller) GatingCalls() int { return c.gatingCalls }

// Encoder is a software encoder
type Encoder struct {
	object
	external     bool
	paired       resource.Identity
	preferred    resource.EngineID
	engines      resource.EngineMask
	clockSources []uint32
}

var _ resource.EncoderObject = &Encoder{}

func (e *Encoder) IsExternal() bool                      { return e.external }
func (e *Encoder) PairedTransmitter() resource.Identity  { return e.paired }
func (e *Encoder) PreferredEngine() resource.EngineID    { return e.preferred }
func (e *Encoder) SupportedEngines() resource.EngineMask { return e.engines }

func (e *Encoder) SupportsClockSource(clockSource resource.Identity) bool {
	if clockSource.Kind != resource.KindClockSource {
		return false
	}
	return len(e.clockSources) == 0 || slices.Contains(e.clockSources, clockSource.ID)
}

// ClockSource is a software clock generator that counts how often it was powered down
type ClockSource struct {
	object
	fixedFrequency bool
	sharingLevel   resource.SharingLevel
	signals        []resource.Signal
	powerDowns     int
}

var _ resource.ClockSourceObject = &ClockSource{}

func (c *ClockSource) IsFixedFrequency() bool              { return c.fixedFrequency }
func (c *ClockSource) SharingLevel() resource.SharingLevel { return c.sharingLevel }

func (c *ClockSource) SupportsSignal(signal resource.Signal) bool {
	return len(c.signals) == 0 || slices.Contains(c.signals, signal)
}

func (c *ClockSource) PowerDown() error {
	c.powerDowns++
	return nil
}

// PowerDowns returns the number of times the clock output was stopped
func (c *ClockSource) PowerDowns() int { return c.powerDowns }

// Audio is a software audio endpoint
type Audio struct {
	object
	signals []resource.Signal
}

var _ resource.AudioObject = &Audio{}

func (a *Audio) SupportsSignal(signal resource.Signal) bool {
	return len(a.signals) == 0 || slices.Contains(a.signals, signal)
}

// Connector is a software connector
type Connector struct {
	object
}

var _ resource.ConnectorObject = &Connector{}
