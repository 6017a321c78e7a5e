// Package display declares the collaborators that a resource pool consumes: the display path whose
// resources it assigns, the adapter that reports feature flags, the GPU, and the link services whose
// handles it stores. None of these are implemented by the pool itself.
package display

import (
	"github.com/vkngwrapper/displaypool/resource"
)

// Plane is one layer composed onto a display path. Every acquired path has a root plane whose
// controller is the path's controller; additional planes each bring their own controller.
type Plane struct {
	Controller resource.Identity
}

// Path is a logical route from a stream engine through one or more links to a display sink. Link 0
// is closest to the GPU (its encoder is driven by the stream engine); the last link drives the connector.
//
// The pool reads a Path during selection and only changes it through the setters below, and only
// once every required resource is known to be available.
type Path interface {
	// DisplayIndex returns the index of this path among all display paths of the adapter
	DisplayIndex() int

	// Acquired returns true if resources are currently assigned to this path
	Acquired() bool
	SetAcquired(acquired bool)
	// AcquireCount is the number of outstanding hardware acquisitions of this path, which is
	// independent of the reference counts of the resources assigned to it
	AcquireCount() int
	SetAcquireCount(count int)

	// Contains returns true if the path is built from the hardware object with the provided identity
	Contains(id resource.Identity) bool
	// Connector returns the identity of the connector at the end of the path
	Connector() resource.Identity

	// LinkCount returns the number of links in the path, which is at least 1
	LinkCount() int
	// LinkEncoder returns the identity of the encoder that drives the link
	LinkEncoder(link int) resource.Identity
	// LinkSignal returns the signal the link is requested to carry
	LinkSignal(link int) resource.Signal
	SetLinkActive(link int, active bool)
	LinkAudio(link int) resource.Identity
	SetLinkAudio(link int, audio resource.Identity)
	SetLinkAudioActive(link int, active bool)

	// StereoSync returns the identity of the encoder used for stereo sync, or resource.NoIdentity
	StereoSync() resource.Identity
	// SyncOutput returns the identity of the encoder used for sync output, or resource.NoIdentity
	SyncOutput() resource.Identity

	ClockSource() resource.Identity
	SetClockSource(clockSource resource.Identity)
	AlternateClockSource() resource.Identity
	SetAlternateClockSource(clockSource resource.Identity)
	// ClockSharingGroup returns the sharing group this path requires of its clock source
	ClockSharingGroup() resource.SharingGroup

	StreamEngine() resource.EngineID
	SetStreamEngine(engine resource.EngineID)

	Planes() []Plane
	AddPlane(plane Plane)
	ClearPlanes()
}

// SourceSignal returns the signal carried by the link closest to the GPU
func SourceSignal(path Path) resource.Signal {
	return path.LinkSignal(0)
}

// SinkSignal returns the signal carried by the link that drives the connector
func SinkSignal(path Path) resource.Signal {
	return path.LinkSignal(path.LinkCount() - 1)
}

// SourceEncoder returns the encoder closest to the stream engine
func SourceEncoder(path Path) resource.Identity {
	return path.LinkEncoder(0)
}
