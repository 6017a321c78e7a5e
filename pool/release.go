package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"golang.org/x/exp/slog"
)

// ReleaseResources returns everything AcquireResources claimed for a display path. If the path has
// been acquired more than once with AcquireMethodHW, only its acquire count is decremented.
//
// Releasing a path that is not acquired, or whose resources have unbalanced counts, is a contract
// violation: builds with the debug_res_utils tag panic, other builds return an assertion failure.
func (p *Pool) ReleaseResources(path display.Path, method AcquireMethod) error {
	p.logger.Debug("Pool::ReleaseResources", slog.Int("DisplayIndex", path.DisplayIndex()), slog.String("Method", method.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.releaseResources(path, method)
}

func (p *Pool) releaseResources(path display.Path, method AcquireMethod) error {
	if !path.Acquired() {
		return p.contractViolation(errors.AssertionFailedf("attempted to release display path %d, which is not acquired", path.DisplayIndex()))
	}

	if path.AcquireCount() > 1 {
		path.SetAcquireCount(path.AcquireCount() - 1)
		return nil
	}

	hw := p.touchesHardware(method)
	mst := display.SinkSignal(path).IsMST()
	var errs error

	if engine := path.StreamEngine(); engine != resource.EngineInvalid {
		errs = errors.CombineErrors(errs, p.unref(resource.EngineIdentity(engine), mst))
		path.SetStreamEngine(resource.EngineInvalid)
	}

	errs = errors.CombineErrors(errs, p.releaseClockSource(path.ClockSource(), hw))
	path.SetClockSource(resource.NoIdentity)
	errs = errors.CombineErrors(errs, p.releaseClockSource(path.AlternateClockSource(), hw))
	path.SetAlternateClockSource(resource.NoIdentity)

	ids, err := p.permanentResources(path)
	if err != nil {
		errs = errors.CombineErrors(errs, p.contractViolation(err))
	}
	for _, id := range ids {
		errs = errors.CombineErrors(errs, p.unref(id, mst))
	}

	for link := 0; link < path.LinkCount(); link++ {
		path.SetLinkActive(link, false)
	}

	for _, plane := range path.Planes() {
		errs = errors.CombineErrors(errs, p.releaseController(plane.Controller, hw))
	}
	path.ClearPlanes()

	path.SetAcquired(false)
	if path.AcquireCount() > 0 {
		path.SetAcquireCount(path.AcquireCount() - 1)
	}
	p.transactions.Releases++

	p.debugValidate()
	return errs
}

// unref drops a claim on a resource that has no release side effects
func (p *Pool) unref(id resource.Identity, mst bool) error {
	res, found := p.resources.Find(id)
	if !found {
		return p.contractViolation(errors.Wrapf(resutils.ErrUnknownResource, "attempted to release %s", id))
	}

	_, err := res.Unref(mst)
	if err != nil {
		return p.contractViolation(err)
	}
	return nil
}
