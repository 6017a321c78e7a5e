package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"golang.org/x/exp/slog"
)

// clockSourceJoinable returns true if a path in the provided group may claim the clock source
// given its current holders
func clockSourceJoinable(clockSource *resource.ClockSource, group resource.SharingGroup) bool {
	if clockSource.RefCount() == 0 {
		return true
	}
	return group != resource.SharingGroupExclusive && clockSource.SharingGroup() == group
}

// clockSourceUsable applies the capability filters: the clock source must be able to generate the
// signal, be sharable at the level the group demands, and be reachable from the encoder
func clockSourceUsable(clockSource *resource.ClockSource, signal resource.Signal, group resource.SharingGroup, encoder *resource.Encoder) bool {
	hw := clockSource.Object()
	if !hw.SupportsSignal(signal) || !hw.SharingLevel().Supports(group) {
		return false
	}
	return encoder == nil || encoder.Object().SupportsClockSource(clockSource.Identity())
}

// findClockSource searches in two rounds. A clock source already held for the path's sharing group
// is reused before a free one is taken. The clock source with handle exclude is never returned.
func (p *Pool) findClockSource(path display.Path, exclude int) (int, bool) {
	signal := display.SourceSignal(path)
	group := path.ClockSharingGroup()
	encoder, _ := p.encoder(display.SourceEncoder(path))

	found := -1
	if group != resource.SharingGroupExclusive {
		p.resources.Visit(resource.KindClockSource, func(handle int, res resource.Resource) bool {
			clockSource := res.(*resource.ClockSource)
			if handle == exclude || clockSource.RefCount() == 0 || clockSource.SharingGroup() != group {
				return true
			}
			if clockSourceUsable(clockSource, signal, group, encoder) {
				found = handle
				return false
			}
			return true
		})
		if found >= 0 {
			return found, true
		}
	}

	p.resources.Visit(resource.KindClockSource, func(handle int, res resource.Resource) bool {
		clockSource := res.(*resource.ClockSource)
		if handle == exclude || clockSource.RefCount() != 0 {
			return true
		}
		if clockSourceUsable(clockSource, signal, group, encoder) {
			found = handle
			return false
		}
		return true
	})

	return found, found >= 0
}

// claimClockSource claims a clock source that selection has already found joinable for the group
func (p *Pool) claimClockSource(clockSource *resource.ClockSource, group resource.SharingGroup) error {
	err := clockSource.AddSharedRef(group)
	if err != nil {
		return p.contractViolation(err)
	}
	return nil
}

// releaseClockSource drops a claim on a clock source, powering it down once nothing holds it
func (p *Pool) releaseClockSource(id resource.Identity, hw bool) error {
	if !id.IsValid() {
		return nil
	}

	res, found := p.resources.Find(id)
	if !found || id.Kind != resource.KindClockSource {
		return p.contractViolation(errors.Wrapf(resutils.ErrUnknownResource, "attempted to release clock source %s", id))
	}
	clockSource := res.(*resource.ClockSource)

	count, err := clockSource.Unref(false)
	if err != nil {
		return p.contractViolation(err)
	}

	if count == 0 && hw {
		err = clockSource.PowerDown()
		if err != nil {
			p.logger.Warn("failed to power down clock source", slog.String("Identity", id.String()), slog.Any("error", err))
		}
	}
	return nil
}

// AcquireAlternativeClockSource claims a second clock source for an acquired display path and
// attaches it as the path's alternate. The alternate is never the path's primary clock source,
// and is released along with the rest of the path.
func (p *Pool) AcquireAlternativeClockSource(path display.Path) error {
	p.logger.Debug("Pool::AcquireAlternativeClockSource", slog.Int("DisplayIndex", path.DisplayIndex()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.transactions.AcquireAttempts++
	if !path.Acquired() {
		p.transactions.AcquireFailures++
		return errors.Wrapf(resutils.ErrInvalidPath, "display path %d must be acquired before an alternative clock source can be claimed", path.DisplayIndex())
	}
	if path.AlternateClockSource().IsValid() {
		return nil
	}

	handle, found := p.findAlternativeClockSource(path)
	if !found {
		p.transactions.AcquireFailures++
		return errors.Wrapf(resutils.ErrResourceUnavailable, "no alternative clock source for display path %d", path.DisplayIndex())
	}

	clockSource := p.resources.Get(handle).(*resource.ClockSource)
	err := p.claimClockSource(clockSource, path.ClockSharingGroup())
	if err != nil {
		return err
	}
	path.SetAlternateClockSource(clockSource.Identity())

	p.debugValidate()
	return nil
}

// IsAlternativeClockAvailable returns true if AcquireAlternativeClockSource could find a clock
// source for the path
func (p *Pool) IsAlternativeClockAvailable(path display.Path) bool {
	p.logger.Debug("Pool::IsAlternativeClockAvailable", slog.Int("DisplayIndex", path.DisplayIndex()))

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	_, found := p.findAlternativeClockSource(path)
	return found
}

func (p *Pool) findAlternativeClockSource(path display.Path) (int, bool) {
	if path.LinkCount() < 1 {
		return -1, false
	}

	exclude := -1
	if primary := path.ClockSource(); primary.IsValid() {
		handle, found := p.resources.Handle(primary)
		if found {
			exclude = handle
		}
	}
	return p.findClockSource(path, exclude)
}
