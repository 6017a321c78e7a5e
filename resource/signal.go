package resource

// Signal is the electrical/protocol signal a link of a display path drives
type Signal uint32

const (
	SignalNone Signal = iota
	SignalDVISingleLink
	SignalDVIDualLink
	SignalHDMI
	SignalLVDS
	SignalRGB
	SignalDisplayPort
	SignalDisplayPortMST
	SignalEDP
	SignalWireless
	SignalVirtual
)

var signalMapping = map[Signal]string{
	SignalNone:           "None",
	SignalDVISingleLink:  "DVISingleLink",
	SignalDVIDualLink:    "DVIDualLink",
	SignalHDMI:           "HDMI",
	SignalLVDS:           "LVDS",
	SignalRGB:            "RGB",
	SignalDisplayPort:    "DisplayPort",
	SignalDisplayPortMST: "DisplayPortMST",
	SignalEDP:            "EDP",
	SignalWireless:       "Wireless",
	SignalVirtual:        "Virtual",
}

func (s Signal) String() string {
	return signalMapping[s]
}

// IsDualLink returns true for signals that need a bonded encoder pair
func (s Signal) IsDualLink() bool {
	return s == SignalDVIDualLink
}

// IsMST returns true for multi-stream signals, which multiplex several displays through one
// connector
func (s Signal) IsMST() bool {
	return s == SignalDisplayPortMST
}

// IsDisplayPort returns true for every signal carried over a DisplayPort main link
func (s Signal) IsDisplayPort() bool {
	return s == SignalDisplayPort || s == SignalDisplayPortMST || s == SignalEDP
}

// SharingGroup is the equivalence tag under which several display paths may hold the same
// clock source at once. SharingGroupExclusive never shares.
type SharingGroup uint32

const (
	SharingGroupExclusive SharingGroup = iota
	SharingGroupDisplayPort
	SharingGroupAlternativeDPRef
	SharingGroupDisplayPortMST
	// SharingGroup1 through SharingGroup6 are generic groups handed out to sets of displays
	// that are timing-synchronized with each other
	SharingGroup1
	SharingGroup2
	SharingGroup3
	SharingGroup4
	SharingGroup5
	SharingGroup6
)

var sharingGroupMapping = map[SharingGroup]string{
	SharingGroupExclusive:        "Exclusive",
	SharingGroupDisplayPort:      "DisplayPort",
	SharingGroupAlternativeDPRef: "AlternativeDPRef",
	SharingGroupDisplayPortMST:   "DisplayPortMST",
	SharingGroup1:                "Group1",
	SharingGroup2:                "Group2",
	SharingGroup3:                "Group3",
	SharingGroup4:                "Group4",
	SharingGroup5:                "Group5",
	SharingGroup6:                "Group6",
}

func (g SharingGroup) String() string {
	return sharingGroupMapping[g]
}

// SharingLevel is the capability of a clock source to be shared between paths
type SharingLevel uint32

const (
	SharingLevelNotSharable SharingLevel = iota
	SharingLevelDisplayPortMST
	SharingLevelDisplayPort
)

var sharingLevelMapping = map[SharingLevel]string{
	SharingLevelNotSharable:    "NotSharable",
	SharingLevelDisplayPortMST: "DisplayPortMST",
	SharingLevelDisplayPort:    "DisplayPort",
}

func (l SharingLevel) String() string {
	return sharingLevelMapping[l]
}

// Supports reports whether a clock source with this sharing level may serve the provided
// sharing group
func (l SharingLevel) Supports(group SharingGroup) bool {
	switch group {
	case SharingGroupDisplayPortMST:
		return l >= SharingLevelDisplayPortMST
	case SharingGroupDisplayPort, SharingGroupAlternativeDPRef:
		return l >= SharingLevelDisplayPort
	default:
		return true
	}
}

// EngineID names a stream engine. Engine ids index EngineMask bits, so they are limited to 32.
type EngineID uint32

const (
	EngineInvalid EngineID = 0xFFFFFFFF
	MaxEngines             = 32
)

// EngineMask is a set of EngineIDs
type EngineMask uint32

// Has returns true if the engine is present in the mask
func (m EngineMask) Has(engine EngineID) bool {
	if engine >= MaxEngines {
		return false
	}
	return m&(1<<engine) != 0
}

// EngineMaskOf builds a mask from a list of engines
func EngineMaskOf(engines ...EngineID) EngineMask {
	var mask EngineMask
	for _, engine := range engines {
		if engine < MaxEngines {
			mask |= 1 << engine
		}
	}
	return mask
}

// EnginePriority ranks stream engines during selection: lower values are preferred
type EnginePriority uint32

const (
	EnginePriorityPreferred EnginePriority = iota
	EnginePriorityNormal
	// EnginePriorityMST marks engines that should be kept available for multi-stream
	// signals whenever something else can be used
	EnginePriorityMST
	EnginePriorityUnknown
)

var enginePriorityMapping = map[EnginePriority]string{
	EnginePriorityPreferred: "Preferred",
	EnginePriorityNormal:    "Normal",
	EnginePriorityMST:       "MST",
	EnginePriorityUnknown:   "Unknown",
}

func (p EnginePriority) String() string {
	return enginePriorityMapping[p]
}

// GatingState is the power-gating state of a controller
type GatingState uint32

const (
	// GatingNotApplicable is used for every controller when power gating is disabled. A
	// controller in this state never leaves it.
	GatingNotApplicable GatingState = iota
	// GatingGated means power is removed from an idle controller
	GatingGated
	// GatingUngated means the controller is powered and may be driving a display
	GatingUngated
)

var gatingStateMapping = map[GatingState]string{
	GatingNotApplicable: "NotApplicable",
	GatingGated:         "Gated",
	GatingUngated:       "Ungated",
}

func (s GatingState) String() string {
	return gatingStateMapping[s]
}
