package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"golang.org/x/exp/slog"
)

// findFreeController returns the first unclaimed functional controller in enumeration order whose
// hardware id is not in exclude
func (p *Pool) findFreeController(exclude resutils.Mask) (int, bool) {
	found := -1
	ordinal := 0
	p.resources.Visit(resource.KindController, func(handle int, res resource.Resource) bool {
		if p.functionalControllers > 0 && ordinal >= p.functionalControllers {
			return false
		}
		ordinal++

		if res.RefCount() == 0 && !exclude.Has(res.Identity().ID) {
			found = handle
			return false
		}
		return true
	})

	return found, found >= 0
}

// claimController ungates the controller if required and then claims it for a display path. The
// controller must be free.
func (p *Pool) claimController(controller *resource.Controller, displayIndex int, hw bool) {
	if hw {
		p.reportGatingError(controller, controller.Ungate())
	}
	controller.AddRef(false)

	if !p.cloned {
		p.controllerPaths.Put(controller.Identity().ID, displayIndex)
	}
}

// releaseController drops the only claim on a controller, gating it first if required
func (p *Pool) releaseController(id resource.Identity, hw bool) error {
	handle, found := p.resources.Handle(id)
	if !found || id.Kind != resource.KindController {
		return p.contractViolation(errors.Wrapf(resutils.ErrUnknownResource, "attempted to release controller %s", id))
	}

	controller := p.resources.Get(handle).(*resource.Controller)
	if controller.RefCount() != 1 {
		return p.contractViolation(errors.AssertionFailedf("attempted to release %s with %d claims, expected exactly 1",
			id, controller.RefCount()))
	}

	if hw {
		err := p.reportGatingError(controller, controller.Gate())
		if err != nil && errors.IsAssertionFailure(err) {
			return err
		}
	}

	_, err := controller.Unref(false)
	if err != nil {
		return p.contractViolation(err)
	}

	if !p.cloned {
		p.controllerPaths.Delete(id.ID)
	}
	return nil
}

// reportGatingError separates contract violations, which are reported as such, from hardware
// failures, which are logged and otherwise ignored
func (p *Pool) reportGatingError(controller *resource.Controller, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAssertionFailure(err) {
		return p.contractViolation(err)
	}

	p.logger.Warn("failed to change controller power gating",
		slog.String("Identity", controller.Identity().String()),
		slog.String("GatingState", controller.GatingState().String()),
		slog.Any("error", err))
	return err
}

// AcquireController claims an additional controller for a plane of an acquired display path. The
// controller is the first free one whose hardware id is not in exclude, and it is appended to the
// path's planes.
func (p *Pool) AcquireController(path display.Path, exclude resutils.Mask, method AcquireMethod) (resource.Identity, error) {
	p.logger.Debug("Pool::AcquireController", slog.Int("DisplayIndex", path.DisplayIndex()), slog.String("Method", method.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.transactions.AcquireAttempts++
	if !path.Acquired() {
		p.transactions.AcquireFailures++
		return resource.NoIdentity, errors.Wrapf(resutils.ErrInvalidPath, "display path %d must be acquired before additional controllers can be claimed", path.DisplayIndex())
	}

	handle, found := p.findFreeController(exclude)
	if !found {
		p.transactions.AcquireFailures++
		return resource.NoIdentity, errors.Wrapf(resutils.ErrResourceUnavailable, "no free controller for a plane of display path %d", path.DisplayIndex())
	}

	controller := p.resources.Get(handle).(*resource.Controller)
	p.claimController(controller, path.DisplayIndex(), p.touchesHardware(method))
	path.AddPlane(display.Plane{Controller: controller.Identity()})

	p.debugValidate()
	return controller.Identity(), nil
}

// ReleaseController releases a controller claimed with AcquireController and removes its plane from
// the path. The root plane's controller can only be released with ReleaseResources.
func (p *Pool) ReleaseController(path display.Path, id resource.Identity, method AcquireMethod) error {
	p.logger.Debug("Pool::ReleaseController", slog.Int("DisplayIndex", path.DisplayIndex()), slog.String("Identity", id.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	planes := path.Planes()
	planeIndex := -1
	for index, plane := range planes {
		if plane.Controller == id {
			planeIndex = index
			break
		}
	}
	if planeIndex < 0 {
		return p.contractViolation(errors.AssertionFailedf("%s does not drive a plane of display path %d", id, path.DisplayIndex()))
	}
	if planeIndex == 0 {
		return p.contractViolation(errors.AssertionFailedf("%s drives the root plane of display path %d", id, path.DisplayIndex()))
	}

	err := p.releaseController(id, p.touchesHardware(method))
	if err != nil {
		return err
	}
	p.transactions.Releases++

	remaining := make([]display.Plane, 0, len(planes)-1)
	remaining = append(remaining, planes[:planeIndex]...)
	remaining = append(remaining, planes[planeIndex+1:]...)
	path.ClearPlanes()
	for _, plane := range remaining {
		path.AddPlane(plane)
	}

	p.debugValidate()
	return nil
}
