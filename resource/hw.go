package resource

//go:generate mockgen -source hw.go -destination ./mocks/hw.go -package mock_resource

// Object is the part of every hardware object that the pool depends upon. Hardware objects
// are created by the adapter layer and handed to the pool inside a Resource; the Resource that
// wraps a hardware object owns it and will Destroy it when the pool is torn down.
type Object interface {
	// Identity returns the immutable identity of the hardware object. It is read once when
	// the Resource is constructed.
	Identity() Identity
	// Destroy releases anything held by the hardware object. It is called exactly once, at
	// pool teardown, and never for resources that belong to a cloned pool.
	Destroy()
}

// HWReleaser is an optional interface for hardware objects that can quiesce themselves when
// their Resource is asked to release hardware. Objects that do not implement it are treated as
// having nothing to release.
type HWReleaser interface {
	ReleaseHW()
}

// ControllerObject is a display controller (a timing generator plus its pipe)
type ControllerObject interface {
	Object
	// SetPowerGating enables (removes power) or disables (restores power) power gating on
	// the controller. It is only called when the adapter reports power gating as supported.
	SetPowerGating(enable bool) error
}

// EncoderObject is a signal encoder or transmitter
type EncoderObject interface {
	Object
	// IsExternal returns true for encoders that live outside the GPU. Internal encoders
	// are preferred during selection.
	IsExternal() bool
	// PairedTransmitter returns the identity of the encoder that is physically bonded to
	// this one for dual-link signals, or NoIdentity
	PairedTransmitter() Identity
	// PreferredEngine returns the single stream engine this encoder would rather be driven
	// by, or EngineInvalid
	PreferredEngine() EngineID
	// SupportedEngines returns every stream engine that can drive this encoder
	SupportedEngines() EngineMask
	// SupportsClockSource returns true if the encoder can be clocked by the provided clock source
	SupportsClockSource(clockSource Identity) bool
}

// ClockSourceObject is a PLL or other pixel clock generator
type ClockSourceObject interface {
	Object
	// IsFixedFrequency returns true for clock sources that cannot be tuned, such as a DP
	// reference clock. Fixed-frequency sources are preferred during selection.
	IsFixedFrequency() bool
	// SharingLevel returns how widely this clock source may be shared between paths
	SharingLevel() SharingLevel
	// SupportsSignal returns true if the clock source can produce a clock for the signal
	SupportsSignal(signal Signal) bool
	// PowerDown stops the clock source's generated output. It is called when the last
	// path using a sharable clock source releases it.
	PowerDown() error
}

// AudioObject is an audio endpoint that can be routed to a display link
type AudioObject interface {
	Object
	// SupportsSignal returns true if audio can be carried over the provided signal
	SupportsSignal(signal Signal) bool
}

// ConnectorObject is a physical or virtual connector
type ConnectorObject interface {
	Object
}
