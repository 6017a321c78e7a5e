package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/displaypool/displaypath"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
)

func TestAcquireReleaseScenario(t *testing.T) {
	pool, inv := createPool(t, scenarioInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	for _, id := range []resource.Identity{c0, e0, engA, cs0, conn0} {
		require.Equal(t, 1, refCount(t, pool, id), "%s", id)
	}
	require.Zero(t, refCount(t, pool, c1))
	require.Zero(t, refCount(t, pool, e1))
	connector, _ := pool.FindResource(conn0)
	require.False(t, connector.MST())

	require.True(t, p0.Acquired())
	require.Equal(t, 1, p0.AcquireCount())
	require.Equal(t, cs0, p0.ClockSource())
	require.Equal(t, resource.EngineID(0), p0.StreamEngine())
	require.Len(t, p0.Planes(), 1)
	require.Equal(t, c0, p0.Planes()[0].Controller)
	require.True(t, p0.Link(0).Active)
	displayIndex, found := pool.ControllerPathIndex(0)
	require.True(t, found)
	require.Equal(t, 0, displayIndex)

	before := snapshot(t, pool)
	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	require.Equal(t, 2, p0.AcquireCount())
	require.Equal(t, before, snapshot(t, pool))

	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodHW))
	require.Equal(t, 1, p0.AcquireCount())
	require.True(t, p0.Acquired())
	require.Equal(t, before, snapshot(t, pool))

	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodHW))
	require.Zero(t, p0.AcquireCount())
	require.False(t, p0.Acquired())
	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}

	controller, _ := pool.FindResource(c0)
	require.Equal(t, resource.GatingGated, controller.(*resource.Controller).GatingState())
	require.True(t, inv.Controller(0).Gated())
	_, found = pool.ControllerPathIndex(0)
	require.False(t, found)
	require.Equal(t, resource.EngineInvalid, p0.StreamEngine())
	require.False(t, p0.ClockSource().IsValid())
	require.Empty(t, p0.Planes())
	require.False(t, p0.Link(0).Active)

	require.NoError(t, pool.Validate())
}

func TestAcquireSingleStreamConflict(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	p1 := createPath(1, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	before := snapshot(t, pool)

	err := pool.AcquireResources(p1, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrResourceUnavailable)
	require.Equal(t, before, snapshot(t, pool))
	require.False(t, p1.Acquired())
	require.Zero(t, p1.AcquireCount())
	require.Empty(t, p1.Planes())
	require.False(t, pool.CanAcquireResources(p1))
}

func TestAcquireMultiStreamShares(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	p1 := createPath(1, conn0, e0, resource.SignalDisplayPortMST, resource.SharingGroupDisplayPort)

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	require.NoError(t, pool.AcquireResources(p1, AcquireMethodHW))

	connector, _ := pool.FindResource(conn0)
	require.Equal(t, 2, connector.RefCount())
	require.True(t, connector.MST())

	// The clock source is shared through the sharing group, but each path has its own controller
	require.Equal(t, 2, refCount(t, pool, cs0))
	require.Equal(t, 1, refCount(t, pool, c0))
	require.Equal(t, 1, refCount(t, pool, c1))
	require.Equal(t, c1, p1.Planes()[0].Controller)
	require.NoError(t, pool.Validate())

	require.NoError(t, pool.ReleaseResources(p1, AcquireMethodHW))
	require.Equal(t, 1, connector.RefCount())
	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodHW))
	require.Zero(t, connector.RefCount())
	require.False(t, connector.MST())
}

// multiStreamInventory gives each encoder its own engine, so connector availability is the only
// thing that can stop a second path on the shared connector
const multiStreamInventory = `
controllers:
  - id: 0
  - id: 1
  - id: 2
encoders:
  - id: 0
    engines: [0]
  - id: 1
    engines: [1]
connectors:
  - id: 0
clockSources:
  - id: 0
    sharingLevel: DisplayPort
engines:
  - id: 0
  - id: 1
`

func TestAcquireMultiStreamDeparture(t *testing.T) {
	pool, _ := createPool(t, multiStreamInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	p1 := createPath(1, conn0, e0, resource.SignalDisplayPortMST, resource.SharingGroupDisplayPort)
	p2 := createPath(2, conn0, e1, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	require.NoError(t, pool.AcquireResources(p1, AcquireMethodHW))
	require.NoError(t, pool.ReleaseResources(p1, AcquireMethodHW))

	connector, _ := pool.FindResource(conn0)
	require.Equal(t, 1, connector.RefCount())
	require.False(t, connector.MST())

	// Once the multi-stream path is gone the connector is back to a single-stream holder
	before := snapshot(t, pool)
	err := pool.AcquireResources(p2, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrResourceUnavailable)
	require.Contains(t, err.Error(), conn0.String())
	require.Equal(t, before, snapshot(t, pool))
	require.NoError(t, pool.Validate())

	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodHW))
	require.NoError(t, pool.AcquireResources(p2, AcquireMethodHW))
	require.Equal(t, 1, connector.RefCount())
}

func TestAcquireSingleStreamJoinsMultiStream(t *testing.T) {
	pool, _ := createPool(t, multiStreamInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPortMST, resource.SharingGroupDisplayPort)
	p1 := createPath(1, conn0, e1, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	p2 := createPath(2, conn0, e1, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	require.NoError(t, pool.AcquireResources(p1, AcquireMethodHW))

	connector, _ := pool.FindResource(conn0)
	require.Equal(t, 2, connector.RefCount())
	require.Equal(t, 1, connector.MSTClaims())

	// Only one single-stream path rides along with the multi-stream topology
	require.False(t, pool.CanAcquireResources(p2))

	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodHW))
	require.Equal(t, 1, connector.RefCount())
	require.False(t, connector.MST())
	require.NoError(t, pool.Validate())

	require.NoError(t, pool.ReleaseResources(p1, AcquireMethodHW))
	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}
}

func TestAcquireRepeatedIdentity(t *testing.T) {
	pool, _ := createPool(t, `
controllers:
  - id: 0
  - id: 1
encoders:
  - id: 0
    pairedWith: {id: 1}
    engines: [0]
  - id: 1
    pairedWith: {id: 0}
    engines: [0]
connectors:
  - id: 0
clockSources:
  - id: 0
engines:
  - id: 0
`, CreateOptions{})

	primary := resource.EncoderID(0, 0)
	paired := resource.EncoderID(1, 0)

	// The stereo-sync encoder is also the link encoder
	path := createPath(0, conn0, primary, resource.SignalHDMI, resource.SharingGroupExclusive)
	path.SetStereoSync(primary)
	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))
	require.Equal(t, 1, refCount(t, pool, primary))
	require.NoError(t, pool.ReleaseResources(path, AcquireMethodHW))
	require.Zero(t, refCount(t, pool, primary))

	// The second link is driven by the first link's dual-link pair
	path = displaypath.New(1, conn0,
		displaypath.Link{Encoder: primary, Signal: resource.SignalDVIDualLink},
		displaypath.Link{Encoder: paired, Signal: resource.SignalDVIDualLink},
	)
	path.SetSyncOutput(paired)
	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))
	require.Equal(t, 1, refCount(t, pool, primary))
	require.Equal(t, 1, refCount(t, pool, paired))
	require.NoError(t, pool.Validate())

	require.NoError(t, pool.ReleaseResources(path, AcquireMethodHW))
	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}

	var stats Statistics
	pool.CalculateStatistics(&stats)
	require.Zero(t, stats.Transactions.ContractViolations)
}

func TestAcquireSoftwareReentry(t *testing.T) {
	pool, inv := createPool(t, scenarioInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalHDMI, resource.SharingGroupExclusive)
	require.NoError(t, pool.AcquireResources(p0, AcquireMethodSW))
	require.True(t, p0.Acquired())
	require.Zero(t, p0.AcquireCount())

	// Software acquisitions never reach the hardware, but still register the controller
	require.Zero(t, inv.Controller(0).GatingCalls())
	_, found := pool.ControllerPathIndex(0)
	require.True(t, found)

	before := snapshot(t, pool)
	require.NoError(t, pool.AcquireResources(p0, AcquireMethodSW))
	require.Zero(t, p0.AcquireCount())
	require.Equal(t, before, snapshot(t, pool))

	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodSW))
	require.False(t, p0.Acquired())
	require.Zero(t, inv.Controller(0).GatingCalls())
	require.Zero(t, inv.ClockSource(0).PowerDowns())
}

func TestAcquireTransactionalFailure(t *testing.T) {
	pool, _ := createPool(t, `
controllers:
  - id: 0
  - id: 1
encoders:
  - id: 0
    engines: [0]
  - id: 1
    engines: [0]
connectors:
  - id: 0
  - id: 1
clockSources:
  - id: 0
  - id: 1
engines:
  - id: 0
`, CreateOptions{})

	p0 := createPath(0, resource.ConnectorID(0), resource.EncoderID(0, 0), resource.SignalHDMI, resource.SharingGroupExclusive)
	p1 := createPath(1, resource.ConnectorID(1), resource.EncoderID(1, 0), resource.SignalHDMI, resource.SharingGroupExclusive)

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	before := snapshot(t, pool)

	// Everything but the only engine is free, so the failure happens after the controller and
	// clock source have been selected
	err := pool.AcquireResources(p1, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrResourceUnavailable)
	require.Equal(t, before, snapshot(t, pool))
	require.False(t, p1.ClockSource().IsValid())
	require.Equal(t, resource.EngineInvalid, p1.StreamEngine())

	var stats Statistics
	pool.CalculateStatistics(&stats)
	require.Equal(t, 2, stats.Transactions.AcquireAttempts)
	require.Equal(t, 1, stats.Transactions.AcquireFailures)
}

func TestAcquireUnknownResource(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	path := createPath(0, resource.ConnectorID(9), e0, resource.SignalHDMI, resource.SharingGroupExclusive)
	err := pool.AcquireResources(path, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrUnknownResource)

	path = displaypath.New(1, conn0)
	err = pool.AcquireResources(path, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrInvalidPath)

	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}
}

func TestAcquireDualLinkPairing(t *testing.T) {
	pool, _ := createPool(t, `
controllers:
  - id: 0
encoders:
  - id: 0
    pairedWith: {id: 1}
    engines: [0]
  - id: 1
    pairedWith: {id: 0}
    engines: [0]
connectors:
  - id: 0
clockSources:
  - id: 0
engines:
  - id: 0
`, CreateOptions{})

	primary := resource.EncoderID(0, 0)
	paired := resource.EncoderID(1, 0)

	path := createPath(0, conn0, primary, resource.SignalDVIDualLink, resource.SharingGroupExclusive)
	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))
	require.Equal(t, 1, refCount(t, pool, primary))
	require.Equal(t, 1, refCount(t, pool, paired))

	require.NoError(t, pool.ReleaseResources(path, AcquireMethodHW))
	require.Zero(t, refCount(t, pool, primary))
	require.Zero(t, refCount(t, pool, paired))

	// Single link signals leave the pair alone
	path = createPath(0, conn0, primary, resource.SignalDVISingleLink, resource.SharingGroupExclusive)
	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))
	require.Equal(t, 1, refCount(t, pool, primary))
	require.Zero(t, refCount(t, pool, paired))
	require.NoError(t, pool.ReleaseResources(path, AcquireMethodHW))
}

func TestAcquireDualLinkPairInUse(t *testing.T) {
	pool, _ := createPool(t, `
controllers:
  - id: 0
  - id: 1
encoders:
  - id: 0
    pairedWith: {id: 1}
    engines: [0, 1]
  - id: 1
    engines: [0, 1]
connectors:
  - id: 0
  - id: 1
clockSources:
  - id: 0
  - id: 1
engines:
  - id: 0
  - id: 1
`, CreateOptions{})

	single := createPath(0, resource.ConnectorID(1), resource.EncoderID(1, 0), resource.SignalHDMI, resource.SharingGroupExclusive)
	require.NoError(t, pool.AcquireResources(single, AcquireMethodHW))

	dual := createPath(1, resource.ConnectorID(0), resource.EncoderID(0, 0), resource.SignalDVIDualLink, resource.SharingGroupExclusive)
	before := snapshot(t, pool)
	err := pool.AcquireResources(dual, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrResourceUnavailable)
	require.Equal(t, before, snapshot(t, pool))
}

func TestAcquireStereoAndSyncOutput(t *testing.T) {
	pool, _ := createPool(t, `
controllers:
  - id: 0
encoders:
  - id: 0
    engines: [0]
  - id: 1
  - id: 2
connectors:
  - id: 0
clockSources:
  - id: 0
engines:
  - id: 0
`, CreateOptions{})

	path := createPath(0, conn0, resource.EncoderID(0, 0), resource.SignalHDMI, resource.SharingGroupExclusive)
	path.SetStereoSync(resource.EncoderID(1, 0))
	path.SetSyncOutput(resource.EncoderID(2, 0))

	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))
	require.Equal(t, 1, refCount(t, pool, resource.EncoderID(1, 0)))
	require.Equal(t, 1, refCount(t, pool, resource.EncoderID(2, 0)))

	require.NoError(t, pool.ReleaseResources(path, AcquireMethodHW))
	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}
}

func TestAcquireCanAcquireResources(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	require.True(t, pool.CanAcquireResources(p0))
	// Checking claims nothing
	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}
	require.False(t, p0.Acquired())

	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))
	require.True(t, pool.CanAcquireResources(p0))

	p1 := createPath(1, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	require.False(t, pool.CanAcquireResources(p1))
}

func TestReleaseUnacquiredPath(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	path := createPath(0, conn0, e0, resource.SignalHDMI, resource.SharingGroupExclusive)
	requireContractViolation(t, func() error {
		return pool.ReleaseResources(path, AcquireMethodHW)
	})

	var stats Statistics
	pool.CalculateStatistics(&stats)
	require.Equal(t, 1, stats.Transactions.ContractViolations)
	for id, count := range snapshot(t, pool) {
		require.Zero(t, count, "%s", id)
	}
}

func TestAcquireLease(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	path := createPath(0, conn0, e0, resource.SignalHDMI, resource.SharingGroupExclusive)
	lease, err := pool.Acquire(path, AcquireMethodHW)
	require.NoError(t, err)
	require.Same(t, path, lease.Path())
	require.Equal(t, 1, refCount(t, pool, conn0))

	// A second lease on the same path only counts the path
	second, err := pool.Acquire(path, AcquireMethodHW)
	require.NoError(t, err)
	require.Equal(t, 2, path.AcquireCount())

	require.NoError(t, second.Release())
	require.NoError(t, second.Release())
	require.True(t, second.Released())
	require.Equal(t, 1, path.AcquireCount())
	require.Equal(t, 1, refCount(t, pool, conn0))

	// Software re-entry leases release nothing
	reentry, err := pool.Acquire(path, AcquireMethodSW)
	require.NoError(t, err)
	require.NoError(t, reentry.Release())
	require.True(t, path.Acquired())

	require.NoError(t, lease.Release())
	require.NoError(t, lease.Release())
	require.False(t, path.Acquired())
	require.Zero(t, refCount(t, pool, conn0))

	other := createPath(1, conn0, e0, resource.SignalHDMI, resource.SharingGroupExclusive)
	_, err = pool.Acquire(other, AcquireMethodHW)
	require.NoError(t, err)
	_, err = pool.Acquire(path, AcquireMethodHW)
	require.ErrorIs(t, err, resutils.ErrResourceUnavailable)
}

func TestAcquireCloneIsolation(t *testing.T) {
	pool, inv := createPool(t, scenarioInventory, CreateOptions{})

	p0 := createPath(0, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	require.NoError(t, pool.AcquireResources(p0, AcquireMethodHW))

	clone, err := pool.Clone()
	require.NoError(t, err)
	require.True(t, clone.Cloned())
	require.Equal(t, pool.TotalCount(), clone.TotalCount())
	for id, count := range snapshot(t, clone) {
		require.Zero(t, count, "%s", id)
	}
	_, found := clone.ControllerPathIndex(0)
	require.False(t, found)

	originBefore := snapshot(t, pool)
	gatingCalls := []int{inv.Controller(0).GatingCalls(), inv.Controller(1).GatingCalls()}

	// The clone can serve a path the origin could not, because it starts out empty
	trial := createPath(1, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	require.NoError(t, clone.AcquireResources(trial, AcquireMethodHW))
	require.Equal(t, 1, refCount(t, clone, conn0))
	require.Equal(t, originBefore, snapshot(t, pool))

	// Clones never program hardware nor record controller ownership
	_, found = clone.ControllerPathIndex(0)
	require.False(t, found)
	require.NoError(t, clone.ReleaseResources(trial, AcquireMethodHW))
	require.Equal(t, gatingCalls, []int{inv.Controller(0).GatingCalls(), inv.Controller(1).GatingCalls()})
	require.Zero(t, inv.ClockSource(0).PowerDowns())

	// And releasing in the origin leaves the clone alone
	require.NoError(t, clone.AcquireResources(trial, AcquireMethodSW))
	cloneBefore := snapshot(t, clone)
	require.NoError(t, pool.ReleaseResources(p0, AcquireMethodHW))
	require.Equal(t, cloneBefore, snapshot(t, clone))
	require.NoError(t, clone.Validate())
}
