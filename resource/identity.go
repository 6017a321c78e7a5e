package resource

import (
	"fmt"
)

// Kind identifies which family of hardware capability unit a Resource wraps. The declaration
// order of the Kind values is the first key of the pool's inventory order.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindController
	KindEncoder
	KindConnector
	KindClockSource
	KindAudio
	KindEngine
)

// KindCount is one past the largest valid Kind, and can be used to size per-kind tables
const KindCount = int(KindEngine) + 1

// Kinds lists every valid Kind in inventory order
var Kinds = []Kind{KindController, KindEncoder, KindConnector, KindClockSource, KindAudio, KindEngine}

var kindMapping = map[Kind]string{
	KindUnknown:     "Unknown",
	KindController:  "Controller",
	KindEncoder:     "Encoder",
	KindConnector:   "Connector",
	KindClockSource: "ClockSource",
	KindAudio:       "Audio",
	KindEngine:      "Engine",
}

func (k Kind) String() string {
	return kindMapping[k]
}

// EnumID distinguishes multiple instances of the same hardware id, i.e. the second link of a
// bonded transmitter or the second function of a multi-function audio block
type EnumID uint8

// Identity uniquely names a single hardware object. It is immutable after construction
// and is the lookup key for the whole pool.
type Identity struct {
	Kind Kind
	ID   uint32
	Enum EnumID
}

// NoIdentity is the zero Identity, used wherever "no object assigned" must be expressed
var NoIdentity = Identity{}

// IsValid returns false for NoIdentity and any identity whose Kind is unknown
func (i Identity) IsValid() bool {
	return i.Kind != KindUnknown && int(i.Kind) < KindCount
}

func (i Identity) String() string {
	if !i.IsValid() {
		return "None"
	}
	return fmt.Sprintf("%s(%d:%d)", i.Kind, i.ID, i.Enum)
}

// ControllerID builds the identity of the controller with the provided hardware id
func ControllerID(id uint32) Identity {
	return Identity{Kind: KindController, ID: id}
}

// EncoderID builds the identity of the encoder with the provided hardware id and instance
func EncoderID(id uint32, enum EnumID) Identity {
	return Identity{Kind: KindEncoder, ID: id, Enum: enum}
}

// ConnectorID builds the identity of the connector with the provided hardware id
func ConnectorID(id uint32) Identity {
	return Identity{Kind: KindConnector, ID: id}
}

// ClockSourceID builds the identity of the clock source with the provided hardware id
func ClockSourceID(id uint32) Identity {
	return Identity{Kind: KindClockSource, ID: id}
}

// AudioID builds the identity of the audio endpoint with the provided hardware id
func AudioID(id uint32) Identity {
	return Identity{Kind: KindAudio, ID: id}
}

// EngineIdentity builds the identity of the stream engine resource for the provided engine
func EngineIdentity(engine EngineID) Identity {
	return Identity{Kind: KindEngine, ID: uint32(engine)}
}
