package display

//go:generate mockgen -source link_service.go -destination ./mocks/link_service.go -package mock_display

import (
	"github.com/vkngwrapper/displaypool/resource"
)

// Protocol selects which link service variant drives a link
type Protocol uint8

const (
	ProtocolLegacy Protocol = iota
	ProtocolDisplayPortSST
	ProtocolDisplayPortMST
)

// ProtocolCount is the number of Protocol values
const ProtocolCount = int(ProtocolDisplayPortMST) + 1

var protocolMapping = map[Protocol]string{
	ProtocolLegacy:         "Legacy",
	ProtocolDisplayPortSST: "DisplayPortSST",
	ProtocolDisplayPortMST: "DisplayPortMST",
}

func (p Protocol) String() string {
	return protocolMapping[p]
}

// ProtocolForSignal returns the link service variant that drives a signal
func ProtocolForSignal(signal resource.Signal) Protocol {
	switch {
	case signal.IsMST():
		return ProtocolDisplayPortMST
	case signal.IsDisplayPort():
		return ProtocolDisplayPortSST
	default:
		return ProtocolLegacy
	}
}

// LinkService is an opaque link-training/protocol service created by an external factory. Once
// added to a pool, the pool owns it and will destroy it.
type LinkService interface {
	// Associate tags the service with the display path and link it serves
	Associate(displayIndex, link int)
	// Invalidate marks the service's cached link state as stale
	Invalidate()
	Destroy()
}
