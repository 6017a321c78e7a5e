package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"golang.org/x/exp/slog"
)

// selection holds the handles of every resource chosen for a display path. Nothing is claimed
// until a complete selection has been made.
type selection struct {
	mst bool

	permanent   []int
	alternate   int
	controller  int
	clockSource int
	engine      int
}

// available returns true if res can be claimed on behalf of a path. Controllers must always be
// free. Anything else may be claimed again by a multi-stream path. A connector held only for
// multi-stream signals also takes one single-stream claim.
func available(res resource.Resource, mst bool) bool {
	switch {
	case res.RefCount() == 0:
		return true
	case res.Identity().Kind == resource.KindController:
		return false
	case mst:
		return true
	default:
		return res.Identity().Kind == resource.KindConnector && res.MST() && res.RefCount() == res.MSTClaims()
	}
}

// AcquireResources assigns a controller, a clock source, and a stream engine to a display path and
// claims every resource the path is built from. Either the whole path is claimed or, on failure,
// nothing is: the returned error wraps resutils.ErrResourceUnavailable, resutils.ErrUnknownResource
// or resutils.ErrInvalidPath and every reference count is left as it was.
//
// Acquiring a path that is already acquired succeeds without claiming anything. With AcquireMethodHW
// it also increments the path's acquire count, which must be balanced by a matching ReleaseResources.
func (p *Pool) AcquireResources(path display.Path, method AcquireMethod) error {
	p.logger.Debug("Pool::AcquireResources", slog.Int("DisplayIndex", path.DisplayIndex()), slog.String("Method", method.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.acquireResources(path, method)
}

func (p *Pool) acquireResources(path display.Path, method AcquireMethod) error {
	p.transactions.AcquireAttempts++

	if path.Acquired() {
		if method == AcquireMethodHW {
			path.SetAcquireCount(path.AcquireCount() + 1)
		}
		return nil
	}

	sel, err := p.selectResources(path)
	if err != nil {
		p.transactions.AcquireFailures++
		p.logger.Debug("    Pool::acquireResources FAILED", slog.Int("DisplayIndex", path.DisplayIndex()), slog.Any("error", err))
		return err
	}

	err = p.commit(path, &sel, method)
	p.debugValidate()
	return err
}

// CanAcquireResources returns true if AcquireResources would succeed for the path right now. It does
// not modify the pool or the path.
func (p *Pool) CanAcquireResources(path display.Path) bool {
	p.logger.Debug("Pool::CanAcquireResources", slog.Int("DisplayIndex", path.DisplayIndex()))

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if path.Acquired() {
		return true
	}
	_, err := p.selectResources(path)
	return err == nil
}

func (p *Pool) selectResources(path display.Path) (selection, error) {
	if p.destroyed {
		return selection{}, errors.New("attempted to acquire resources from a destroyed pool")
	}
	if path.LinkCount() < 1 {
		return selection{}, errors.Wrapf(resutils.ErrInvalidPath, "display path %d has no links", path.DisplayIndex())
	}

	sel := selection{
		mst:       display.SinkSignal(path).IsMST(),
		alternate: -1,
	}

	err := p.selectPermanent(path, &sel)
	if err != nil {
		return sel, err
	}

	var found bool
	sel.controller, found = p.findFreeController(0)
	if !found {
		return sel, errors.Wrapf(resutils.ErrResourceUnavailable, "no free controller for display path %d", path.DisplayIndex())
	}

	sel.clockSource, found = p.findClockSource(path, sel.alternate)
	if !found {
		return sel, errors.Wrapf(resutils.ErrResourceUnavailable, "no clock source for display path %d in sharing group %s",
			path.DisplayIndex(), path.ClockSharingGroup())
	}

	sel.engine, found = p.findStreamEngine(path, sel.mst)
	if !found {
		return sel, errors.Wrapf(resutils.ErrResourceUnavailable, "no stream engine for display path %d", path.DisplayIndex())
	}

	return sel, nil
}

// permanentResources lists every resource the path is built from, each identity once: the
// connector, the link encoders along with their pairs on dual-link signals, then the stereo-sync
// and sync-output encoders
func (p *Pool) permanentResources(path display.Path) ([]resource.Identity, error) {
	var ids []resource.Identity
	add := func(id resource.Identity) {
		if !id.IsValid() {
			return
		}
		for _, existing := range ids {
			if existing == id {
				return
			}
		}
		ids = append(ids, id)
	}

	add(path.Connector())

	for link := 0; link < path.LinkCount(); link++ {
		encoderID := path.LinkEncoder(link)
		if !encoderID.IsValid() {
			continue
		}
		add(encoderID)

		if !path.LinkSignal(link).IsDualLink() {
			continue
		}
		res, found := p.resources.Find(encoderID)
		if !found {
			continue
		}
		encoder, ok := res.(*resource.Encoder)
		if !ok {
			return nil, errors.Wrapf(resutils.ErrInvalidPath, "link %d of display path %d is driven by %s, which is not an encoder",
				link, path.DisplayIndex(), encoderID)
		}
		add(encoder.Paired())
	}

	add(path.StereoSync())
	add(path.SyncOutput())

	return ids, nil
}

// selectPermanent checks every resource the path is already built from
func (p *Pool) selectPermanent(path display.Path, sel *selection) error {
	ids, err := p.permanentResources(path)
	if err != nil {
		return err
	}

	for _, id := range ids {
		handle, found := p.resources.Handle(id)
		if !found {
			return errors.Wrapf(resutils.ErrUnknownResource, "%s on display path %d", id, path.DisplayIndex())
		}
		if !available(p.resources.Get(handle), sel.mst) {
			return errors.Wrapf(resutils.ErrResourceUnavailable, "%s is in use", id)
		}
		sel.permanent = append(sel.permanent, handle)
	}

	if alternate := path.AlternateClockSource(); alternate.IsValid() {
		handle, found := p.resources.Handle(alternate)
		if !found || alternate.Kind != resource.KindClockSource {
			return errors.Wrapf(resutils.ErrUnknownResource, "alternate clock source %s on display path %d", alternate, path.DisplayIndex())
		}
		clockSource := p.resources.Get(handle).(*resource.ClockSource)
		if !clockSourceJoinable(clockSource, path.ClockSharingGroup()) {
			return errors.Wrapf(resutils.ErrResourceUnavailable, "alternate clock source %s is held for sharing group %s",
				alternate, clockSource.SharingGroup())
		}
		sel.alternate = handle
	}

	return nil
}

func (p *Pool) commit(path display.Path, sel *selection, method AcquireMethod) error {
	hw := p.touchesHardware(method)
	group := path.ClockSharingGroup()
	var errs error

	for _, handle := range sel.permanent {
		p.resources.Get(handle).AddRef(sel.mst)
	}
	if sel.alternate >= 0 {
		errs = p.claimClockSource(p.resources.Get(sel.alternate).(*resource.ClockSource), group)
	}

	controller := p.resources.Get(sel.controller).(*resource.Controller)
	clockSource := p.resources.Get(sel.clockSource).(*resource.ClockSource)
	engine := p.resources.Get(sel.engine).(*resource.Engine)

	errs = errors.CombineErrors(errs, p.claimClockSource(clockSource, group))
	engine.AddRef(sel.mst)
	p.claimController(controller, path.DisplayIndex(), hw)

	path.SetClockSource(clockSource.Identity())
	path.SetStreamEngine(engine.EngineID())
	path.ClearPlanes()
	path.AddPlane(display.Plane{Controller: controller.Identity()})
	for link := 0; link < path.LinkCount(); link++ {
		path.SetLinkActive(link, true)
	}

	path.SetAcquired(true)
	if method == AcquireMethodHW {
		path.SetAcquireCount(path.AcquireCount() + 1)
	}
	return errs
}

func (p *Pool) encoder(id resource.Identity) (*resource.Encoder, bool) {
	res, found := p.resources.Find(id)
	if !found {
		return nil, false
	}
	encoder, ok := res.(*resource.Encoder)
	return encoder, ok
}
