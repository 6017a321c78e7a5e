// Package inventory builds the hardware inventory of a display adapter from a declarative
// description. It is used to bring up pools for virtual and headless adapters, whose hardware
// objects only exist in software, and to describe adapters in tests.
package inventory

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/resource"
	"sigs.k8s.io/yaml"
)

// Description is the YAML form of an adapter's display hardware
type Description struct {
	Features Features `json:"features"`
	// FunctionalControllers limits how many controllers can be used. Zero means all of them.
	FunctionalControllers int `json:"functionalControllers,omitempty"`

	Controllers  []ControllerDescription  `json:"controllers,omitempty"`
	Encoders     []EncoderDescription     `json:"encoders,omitempty"`
	Connectors   []ConnectorDescription   `json:"connectors,omitempty"`
	ClockSources []ClockSourceDescription `json:"clockSources,omitempty"`
	Audio        []AudioDescription       `json:"audio,omitempty"`
	Engines      []EngineDescription      `json:"engines,omitempty"`
}

type Features struct {
	PowerGating bool `json:"powerGating,omitempty"`
}

type ControllerDescription struct {
	ID uint32 `json:"id"`
}

// EncoderReference names an encoder by hardware id and enum
type EncoderReference struct {
	ID   uint32 `json:"id"`
	Enum uint8  `json:"enum,omitempty"`
}

type EncoderDescription struct {
	ID       uint32 `json:"id"`
	Enum     uint8  `json:"enum,omitempty"`
	External bool   `json:"external,omitempty"`
	// PairedWith names the encoder bonded to this one for dual-link signals
	PairedWith *EncoderReference `json:"pairedWith,omitempty"`
	// PreferredEngine is tried before any other engine
	PreferredEngine *uint32  `json:"preferredEngine,omitempty"`
	Engines         []uint32 `json:"engines,omitempty"`
	// ClockSources lists the clock sources that can drive this encoder. Empty means all of them.
	ClockSources []uint32 `json:"clockSources,omitempty"`
}

type ConnectorDescription struct {
	ID uint32 `json:"id"`
}

type ClockSourceDescription struct {
	ID             uint32 `json:"id"`
	FixedFrequency bool   `json:"fixedFrequency,omitempty"`
	// SharingLevel is one of NotSharable, DisplayPortMST or DisplayPort
	SharingLevel string `json:"sharingLevel,omitempty"`
	// Signals lists the signals the clock source can generate. Empty means all of them.
	Signals []string `json:"signals,omitempty"`
}

type AudioDescription struct {
	ID      uint32   `json:"id"`
	Signals []string `json:"signals,omitempty"`
}

type EngineDescription struct {
	ID uint32 `json:"id"`
	// Priority is one of Preferred, Normal, MST or Unknown. It defaults to Normal.
	Priority string `json:"priority,omitempty"`
}

// Parse reads a YAML description
func Parse(data []byte) (*Description, error) {
	var description Description
	err := yaml.UnmarshalStrict(data, &description)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse display inventory description")
	}
	return &description, nil
}

// Load reads and builds the description stored at path
func Load(path string) (*Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read display inventory description %s", path)
	}

	description, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return description.Build()
}

// Marshal writes the description back out as YAML
func (d *Description) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

var signals = []resource.Signal{
	resource.SignalNone,
	resource.SignalDVISingleLink,
	resource.SignalDVIDualLink,
	resource.SignalHDMI,
	resource.SignalLVDS,
	resource.SignalRGB,
	resource.SignalDisplayPort,
	resource.SignalDisplayPortMST,
	resource.SignalEDP,
	resource.SignalWireless,
	resource.SignalVirtual,
}

var sharingLevels = []resource.SharingLevel{
	resource.SharingLevelNotSharable,
	resource.SharingLevelDisplayPortMST,
	resource.SharingLevelDisplayPort,
}

var enginePriorities = []resource.EnginePriority{
	resource.EnginePriorityPreferred,
	resource.EnginePriorityNormal,
	resource.EnginePriorityMST,
	resource.EnginePriorityUnknown,
}

func parseEnum[T interface {
	comparable
	String() string
}](field, value string, candidates []T) (T, error) {
	for _, candidate := range candidates {
		if candidate.String() == value {
			return candidate, nil
		}
	}

	var zero T
	return zero, errors.Newf("%s has unknown value %q", field, value)
}

func parseSignals(field string, values []string) ([]resource.Signal, error) {
	parsed := make([]resource.Signal, 0, len(values))
	for _, value := range values {
		signal, err := parseEnum(field, value, signals)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, signal)
	}
	return parsed, nil
}
