package pool

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// Statistics is a snapshot of pool usage
type Statistics struct {
	// Kinds is indexed by resource.Kind. The entry for resource.KindUnknown is always empty.
	Kinds        [resource.KindCount]resutils.KindStatistics
	Total        resutils.KindStatistics
	Transactions resutils.TransactionStatistics
}

func (s *Statistics) Clear() {
	for kind := range s.Kinds {
		s.Kinds[kind].Clear()
	}
	s.Total.Clear()
	s.Transactions.Clear()
}

// CalculateStatistics fills stats with the current usage of the pool
func (p *Pool) CalculateStatistics(stats *Statistics) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	p.calculateStatistics(stats)
}

func (p *Pool) calculateStatistics(stats *Statistics) {
	stats.Clear()

	for handle := 0; handle < p.resources.Len(); handle++ {
		res := p.resources.Get(handle)
		stats.Kinds[res.Identity().Kind].AddResource(res.RefCount())
	}
	for kind := range stats.Kinds {
		stats.Total.AddStatistics(&stats.Kinds[kind])
	}
	stats.Transactions = p.transactions
}

func printKindStatistics(json jwriter.ObjectState, stats *resutils.KindStatistics) {
	json.Name("Total").Int(stats.Total)
	json.Name("InUse").Int(stats.InUse)
	json.Name("Claims").Int(stats.Claims)
	json.Name("Shared").Int(stats.Shared)
}

func printResource(json jwriter.ObjectState, res resource.Resource) {
	id := res.Identity()
	json.Name("Identity").String(id.String())
	json.Name("ID").Int(int(id.ID))
	json.Name("Enum").Int(int(id.Enum))
	json.Name("Priority").Int(res.Priority())
	json.Name("RefCount").Int(res.RefCount())
	json.Name("MST").Bool(res.MST())

	switch r := res.(type) {
	case *resource.Controller:
		json.Name("GatingState").String(r.GatingState().String())
	case *resource.Encoder:
		json.Name("External").Bool(r.Object().IsExternal())
		if r.Paired().IsValid() {
			json.Name("Paired").String(r.Paired().String())
		}
	case *resource.ClockSource:
		json.Name("FixedFrequency").Bool(r.Object().IsFixedFrequency())
		json.Name("SharingLevel").String(r.Object().SharingLevel().String())
		json.Name("SharingGroup").String(r.SharingGroup().String())
	case *resource.Engine:
		json.Name("EnginePriority").String(r.EnginePriority().String())
	}
}

// BuildStatsString produces a JSON dump of the pool. When detailed is true, every resource, the
// controller lookup table, and the occupied link-service slots are included.
func (p *Pool) BuildStatsString(detailed bool) string {
	p.logger.Debug("Pool::BuildStatsString", slog.Bool("Detailed", detailed))

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	var stats Statistics
	p.calculateStatistics(&stats)

	writer := jwriter.NewWriter()
	objState := writer.Object()

	poolObj := objState.Name("Pool").Object()
	poolObj.Name("Cloned").Bool(p.cloned)
	poolObj.Name("PowerGating").Bool(p.powerGating)
	poolObj.Name("Flags").String(p.createFlags.String())
	poolObj.Name("FunctionalControllers").Int(p.functionalControllers)
	poolObj.End()

	totalObj := objState.Name("Total").Object()
	printKindStatistics(totalObj, &stats.Total)
	totalObj.End()

	kindsObj := objState.Name("Kinds").Object()
	for _, kind := range resource.Kinds {
		kindObj := kindsObj.Name(kind.String()).Object()
		printKindStatistics(kindObj, &stats.Kinds[kind])
		kindObj.End()
	}
	kindsObj.End()

	transactionsObj := objState.Name("Transactions").Object()
	transactionsObj.Name("AcquireAttempts").Int(stats.Transactions.AcquireAttempts)
	transactionsObj.Name("AcquireFailures").Int(stats.Transactions.AcquireFailures)
	transactionsObj.Name("Releases").Int(stats.Transactions.Releases)
	transactionsObj.Name("ContractViolations").Int(stats.Transactions.ContractViolations)
	transactionsObj.End()

	if detailed {
		resourcesArr := objState.Name("Resources").Array()
		for index := 0; index < p.resources.Len(); index++ {
			resObj := resourcesArr.Object()
			printResource(resObj, p.resources.At(index))
			resObj.End()
		}
		resourcesArr.End()

		controllerPaths := map[uint32]int{}
		p.controllerPaths.Iter(func(controller uint32, displayIndex int) bool {
			controllerPaths[controller] = displayIndex
			return false
		})
		controllers := maps.Keys(controllerPaths)
		slices.Sort(controllers)

		pathsObj := objState.Name("ControllerPaths").Object()
		for _, controller := range controllers {
			pathsObj.Name(strconv.FormatUint(uint64(controller), 10)).Int(controllerPaths[controller])
		}
		pathsObj.End()

		servicesArr := objState.Name("LinkServices").Array()
		p.linkServices.VisitAll(func(path, link int, protocol display.Protocol, _ display.LinkService) {
			serviceObj := servicesArr.Object()
			serviceObj.Name("DisplayIndex").Int(path)
			serviceObj.Name("Link").Int(link)
			serviceObj.Name("Protocol").String(protocol.String())
			serviceObj.End()
		})
		servicesArr.End()
	}

	objState.End()

	return string(writer.Bytes())
}

// Validate checks the reference count invariants of every resource and the consistency of the
// controller lookup table
func (p *Pool) Validate() error {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.validate()
}

func (p *Pool) validate() error {
	var errs error
	for handle := 0; handle < p.resources.Len(); handle++ {
		errs = errors.CombineErrors(errs, p.resources.Get(handle).Validate())
	}

	p.controllerPaths.Iter(func(controllerID uint32, displayIndex int) bool {
		res, found := p.resources.Find(resource.ControllerID(controllerID))
		if !found {
			errs = errors.CombineErrors(errs, errors.Newf("display path %d is registered for unknown controller %d", displayIndex, controllerID))
		} else if res.RefCount() != 1 {
			errs = errors.CombineErrors(errs, errors.Newf("display path %d is registered for %s, which has %d claims", displayIndex, res.Identity(), res.RefCount()))
		}
		return false
	})
	if p.cloned && p.controllerPaths.Count() > 0 {
		errs = errors.CombineErrors(errs, errors.Newf("cloned pool has %d controller lookup entries", p.controllerPaths.Count()))
	}

	return errs
}

// lockedPool validates a pool whose mutex is already held by the caller
type lockedPool Pool

func (l *lockedPool) Validate() error {
	return (*Pool)(l).validate()
}

func (p *Pool) debugValidate() {
	resutils.DebugValidate((*lockedPool)(p))
}
