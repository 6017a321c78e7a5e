package pool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/displaypool/display"
	mock_display "github.com/vkngwrapper/displaypool/display/mocks"
	"github.com/vkngwrapper/displaypool/resource"
	"go.uber.org/mock/gomock"
)

type statsDump struct {
	Pool struct {
		Cloned                bool
		PowerGating           bool
		Flags                 string
		FunctionalControllers int
	}
	Total           map[string]int
	Kinds           map[string]map[string]int
	Transactions    map[string]int
	Resources       []map[string]any
	ControllerPaths map[string]int
	LinkServices    []struct {
		DisplayIndex int
		Link         int
		Protocol     string
	}
}

func parseStats(t *testing.T, pool *Pool, detailed bool) statsDump {
	var dump statsDump
	require.NoError(t, json.Unmarshal([]byte(pool.BuildStatsString(detailed)), &dump))
	return dump
}

func TestCalculateStatistics(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{})

	first := createPath(0, conn0, e0, resource.SignalDisplayPortMST, resource.SharingGroupDisplayPort)
	second := createPath(1, conn0, e0, resource.SignalDisplayPortMST, resource.SharingGroupDisplayPort)
	require.NoError(t, pool.AcquireResources(first, AcquireMethodHW))
	require.NoError(t, pool.AcquireResources(second, AcquireMethodHW))

	var stats Statistics
	pool.CalculateStatistics(&stats)

	require.Equal(t, 2, stats.Kinds[resource.KindController].Total)
	require.Equal(t, 2, stats.Kinds[resource.KindController].InUse)
	require.Equal(t, 0, stats.Kinds[resource.KindController].Shared)
	require.Equal(t, 1, stats.Kinds[resource.KindEncoder].InUse)
	require.Equal(t, 2, stats.Kinds[resource.KindEncoder].Claims)
	require.Equal(t, 1, stats.Kinds[resource.KindEncoder].Shared)
	require.Equal(t, 1, stats.Kinds[resource.KindClockSource].Shared)
	require.Equal(t, 7, stats.Total.Total)
	require.Equal(t, 10, stats.Total.Claims)
	require.Equal(t, 2, stats.Transactions.AcquireAttempts)
	require.Zero(t, stats.Transactions.AcquireFailures)

	require.NoError(t, pool.ReleaseResources(second, AcquireMethodHW))
	pool.CalculateStatistics(&stats)
	require.Equal(t, 1, stats.Transactions.Releases)
	require.Equal(t, 5, stats.Total.Claims)
}

func TestBuildStatsString(t *testing.T) {
	pool, _ := createPool(t, scenarioInventory, CreateOptions{Flags: PoolCreateExternallySynchronized})

	path := createPath(4, conn0, e0, resource.SignalHDMI, resource.SharingGroupExclusive)
	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))
	require.Error(t, pool.AcquireResources(createPath(5, conn0, e1, resource.SignalHDMI, resource.SharingGroupExclusive), AcquireMethodHW))

	dump := parseStats(t, pool, false)
	require.False(t, dump.Pool.Cloned)
	require.True(t, dump.Pool.PowerGating)
	require.Equal(t, "PoolCreateExternallySynchronized", dump.Pool.Flags)
	require.Equal(t, 7, dump.Total["Total"])
	require.Equal(t, 5, dump.Total["InUse"])
	require.Equal(t, map[string]int{"Total": 2, "InUse": 1, "Claims": 1, "Shared": 0}, dump.Kinds["Controller"])
	require.Equal(t, map[string]int{"Total": 0, "InUse": 0, "Claims": 0, "Shared": 0}, dump.Kinds["Audio"])
	require.Equal(t, 2, dump.Transactions["AcquireAttempts"])
	require.Equal(t, 1, dump.Transactions["AcquireFailures"])
	require.Nil(t, dump.Resources)
	require.Nil(t, dump.ControllerPaths)
}

func TestBuildStatsStringDetailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	pool, _ := createPool(t, scenarioInventory, CreateOptions{DisplayPathCount: 5})

	service := mock_display.NewMockLinkService(ctrl)
	require.NoError(t, pool.AddLinkService(4, 1, display.ProtocolDisplayPortSST, service))

	path := createPath(4, conn0, e0, resource.SignalDisplayPort, resource.SharingGroupDisplayPort)
	require.NoError(t, pool.AcquireResources(path, AcquireMethodHW))

	dump := parseStats(t, pool, true)
	require.Len(t, dump.Resources, 7)
	require.Equal(t, c0.String(), dump.Resources[0]["Identity"])
	require.Equal(t, "Ungated", dump.Resources[0]["GatingState"])
	require.Equal(t, float64(1), dump.Resources[0]["RefCount"])
	require.Equal(t, false, dump.Resources[2]["External"])
	require.Equal(t, true, dump.Resources[3]["External"])
	require.Equal(t, "DisplayPort", dump.Resources[5]["SharingGroup"])
	require.Equal(t, "Normal", dump.Resources[6]["EnginePriority"])

	require.Equal(t, map[string]int{"0": 4}, dump.ControllerPaths)

	require.Len(t, dump.LinkServices, 1)
	require.Equal(t, 4, dump.LinkServices[0].DisplayIndex)
	require.Equal(t, 1, dump.LinkServices[0].Link)
	require.Equal(t, "DisplayPortSST", dump.LinkServices[0].Protocol)

	service.EXPECT().Destroy()
	pool.ReleaseAllLinkServices()
}
