package pool

import "github.com/vkngwrapper/core/v2/common"

// CreateFlags indicate specific pool behaviors to activate or deactivate
type CreateFlags int32

var poolCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	poolCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return poolCreateFlagsMapping.FlagsToString(f)
}

const (
	// PoolCreateExternallySynchronized ensures that this pool and every clone made from it
	// will not be synchronized internally. The consumer must guarantee they are used from only one
	// goroutine at a time or are synchronized by some other mechanism.
	PoolCreateExternallySynchronized CreateFlags = 1 << iota
	// PoolCreateDisablePowerGating leaves every controller GatingNotApplicable even when the
	// adapter reports that it supports power gating
	PoolCreateDisablePowerGating
)

func init() {
	PoolCreateExternallySynchronized.Register("PoolCreateExternallySynchronized")
	PoolCreateDisablePowerGating.Register("PoolCreateDisablePowerGating")
}

// AcquireMethod indicates whether an acquisition or release is expected to program hardware
type AcquireMethod int32

const (
	// AcquireMethodHW counts the path acquisition and drives power gating, lookup-table updates
	// and clock power-down
	AcquireMethodHW AcquireMethod = iota
	// AcquireMethodSW only updates reference counts. It is used for speculative
	// configuration and validation passes.
	AcquireMethodSW
)

var acquireMethodMapping = map[AcquireMethod]string{
	AcquireMethodHW: "AcquireMethodHW",
	AcquireMethodSW: "AcquireMethodSW",
}

func (m AcquireMethod) String() string {
	return acquireMethodMapping[m]
}
