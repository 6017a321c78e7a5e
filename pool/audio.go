package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"golang.org/x/exp/slog"
)

// AttachAudio claims the first free audio endpoint that supports signal and attaches it, active, to
// the link that drives the path's connector
func (p *Pool) AttachAudio(path display.Path, signal resource.Signal) error {
	p.logger.Debug("Pool::AttachAudio", slog.Int("DisplayIndex", path.DisplayIndex()), slog.String("Signal", signal.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if path.LinkCount() < 1 {
		return errors.Wrapf(resutils.ErrInvalidPath, "display path %d has no links", path.DisplayIndex())
	}
	link := path.LinkCount() - 1
	if path.LinkAudio(link).IsValid() {
		return errors.Wrapf(resutils.ErrResourceUnavailable, "display path %d already has audio endpoint %s",
			path.DisplayIndex(), path.LinkAudio(link))
	}

	var audio *resource.Audio
	p.resources.Visit(resource.KindAudio, func(_ int, res resource.Resource) bool {
		candidate := res.(*resource.Audio)
		if candidate.RefCount() == 0 && candidate.Object().SupportsSignal(signal) {
			audio = candidate
			return false
		}
		return true
	})
	if audio == nil {
		return errors.Wrapf(resutils.ErrResourceUnavailable, "no audio endpoint supports %s for display path %d", signal, path.DisplayIndex())
	}

	audio.AddRef(false)
	path.SetLinkAudio(link, audio.Identity())
	path.SetLinkAudioActive(link, true)

	p.debugValidate()
	return nil
}

// DetachAudio releases the audio endpoint of every link of the path
func (p *Pool) DetachAudio(path display.Path) error {
	p.logger.Debug("Pool::DetachAudio", slog.Int("DisplayIndex", path.DisplayIndex()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	var errs error
	for link := 0; link < path.LinkCount(); link++ {
		audio := path.LinkAudio(link)
		if !audio.IsValid() {
			continue
		}

		errs = errors.CombineErrors(errs, p.unref(audio, false))
		path.SetLinkAudio(link, resource.NoIdentity)
		path.SetLinkAudioActive(link, false)
	}

	p.debugValidate()
	return errs
}
