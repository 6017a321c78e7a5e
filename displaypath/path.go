// Package displaypath is an in-memory display.Path. Hot-plug handlers build one per detected
// topology and hand it to a pool for acquisition.
package displaypath

import (
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
)

// Link is one stage of a display path
type Link struct {
	Encoder     resource.Identity
	Signal      resource.Signal
	Active      bool
	Audio       resource.Identity
	AudioActive bool
}

// Path is a display.Path held entirely in memory
type Path struct {
	displayIndex int
	connector    resource.Identity
	links        []Link

	stereoSync   resource.Identity
	syncOutput   resource.Identity
	sharingGroup resource.SharingGroup

	clockSource    resource.Identity
	altClockSource resource.Identity
	engine         resource.EngineID
	planes         []display.Plane

	acquired     bool
	acquireCount int
}

var _ display.Path = &Path{}

// New creates a path ending at connector. links must be ordered from the stream engine towards
// the connector, and at least one must be provided.
func New(displayIndex int, connector resource.Identity, links ...Link) *Path {
	return &Path{
		displayIndex: displayIndex,
		connector:    connector,
		links:        append([]Link(nil), links...),
		engine:       resource.EngineInvalid,
	}
}

// Copy returns a deep copy of the path, including its acquisition state. It is used alongside a
// cloned pool to try out a configuration without touching the live path.
func (p *Path) Copy() *Path {
	clone := *p
	clone.links = append([]Link(nil), p.links...)
	clone.planes = append([]display.Plane(nil), p.planes...)
	return &clone
}

func (p *Path) DisplayIndex() int { return p.displayIndex }

// SetDisplayIndex renumbers the path
func (p *Path) SetDisplayIndex(displayIndex int) { p.displayIndex = displayIndex }

func (p *Path) Acquired() bool            { return p.acquired }
func (p *Path) SetAcquired(acquired bool) { p.acquired = acquired }
func (p *Path) AcquireCount() int         { return p.acquireCount }
func (p *Path) SetAcquireCount(count int) { p.acquireCount = count }

func (p *Path) Connector() resource.Identity { return p.connector }

func (p *Path) Contains(id resource.Identity) bool {
	if !id.IsValid() {
		return false
	}

	switch id {
	case p.connector, p.stereoSync, p.syncOutput, p.clockSource, p.altClockSource:
		return true
	}
	for _, link := range p.links {
		if link.Encoder == id || link.Audio == id {
			return true
		}
	}
	for _, plane := range p.planes {
		if plane.Controller == id {
			return true
		}
	}
	return p.engine != resource.EngineInvalid && resource.EngineIdentity(p.engine) == id
}

func (p *Path) LinkCount() int { return len(p.links) }

// Link returns a copy of a link, or the zero Link if the index is out of range
func (p *Path) Link(link int) Link {
	if link < 0 || link >= len(p.links) {
		return Link{}
	}
	return p.links[link]
}

func (p *Path) LinkEncoder(link int) resource.Identity {
	return p.Link(link).Encoder
}

func (p *Path) LinkSignal(link int) resource.Signal {
	return p.Link(link).Signal
}

// SetLinkSignal changes the signal requested of a link, e.g. when a sink is re-detected as multi-stream
func (p *Path) SetLinkSignal(link int, signal resource.Signal) {
	if link >= 0 && link < len(p.links) {
		p.links[link].Signal = signal
	}
}

func (p *Path) SetLinkActive(link int, active bool) {
	if link >= 0 && link < len(p.links) {
		p.links[link].Active = active
	}
}

func (p *Path) LinkAudio(link int) resource.Identity {
	return p.Link(link).Audio
}

func (p *Path) SetLinkAudio(link int, audio resource.Identity) {
	if link >= 0 && link < len(p.links) {
		p.links[link].Audio = audio
	}
}

func (p *Path) SetLinkAudioActive(link int, active bool) {
	if link >= 0 && link < len(p.links) {
		p.links[link].AudioActive = active
	}
}

func (p *Path) StereoSync() resource.Identity { return p.stereoSync }

// SetStereoSync attaches the encoder used for stereo sync
func (p *Path) SetStereoSync(encoder resource.Identity) { p.stereoSync = encoder }

func (p *Path) SyncOutput() resource.Identity { return p.syncOutput }

// SetSyncOutput attaches the encoder used for sync output
func (p *Path) SetSyncOutput(encoder resource.Identity) { p.syncOutput = encoder }

func (p *Path) ClockSource() resource.Identity               { return p.clockSource }
func (p *Path) SetClockSource(clockSource resource.Identity) { p.clockSource = clockSource }
func (p *Path) AlternateClockSource() resource.Identity      { return p.altClockSource }

func (p *Path) SetAlternateClockSource(clockSource resource.Identity) {
	p.altClockSource = clockSource
}

func (p *Path) ClockSharingGroup() resource.SharingGroup { return p.sharingGroup }

// SetClockSharingGroup sets the group this path requires of its clock source. Paths that are
// timing-synchronized with each other are given the same group.
func (p *Path) SetClockSharingGroup(group resource.SharingGroup) { p.sharingGroup = group }

func (p *Path) StreamEngine() resource.EngineID          { return p.engine }
func (p *Path) SetStreamEngine(engine resource.EngineID) { p.engine = engine }

// Planes returns a copy of the path's planes, root plane first
func (p *Path) Planes() []display.Plane {
	return append([]display.Plane(nil), p.planes...)
}

func (p *Path) AddPlane(plane display.Plane) { p.planes = append(p.planes, plane) }
func (p *Path) ClearPlanes()                 { p.planes = nil }
