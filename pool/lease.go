package pool

import (
	"github.com/vkngwrapper/displaypool/display"
	"golang.org/x/exp/slog"
)

// Lease is the result of a successful Acquire. Releasing it balances the acquisition exactly once,
// so it can be released early on one code path and again with defer on every other.
type Lease struct {
	pool     *Pool
	path     display.Path
	method   AcquireMethod
	noop     bool
	released bool
}

// Acquire calls AcquireResources and wraps the acquisition in a Lease. Re-entering a path that is
// already acquired with AcquireMethodSW claims nothing, so the returned Lease releases nothing.
func (p *Pool) Acquire(path display.Path, method AcquireMethod) (*Lease, error) {
	p.logger.Debug("Pool::Acquire", slog.Int("DisplayIndex", path.DisplayIndex()), slog.String("Method", method.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	reentry := path.Acquired() && method == AcquireMethodSW
	err := p.acquireResources(path, method)
	if err != nil {
		return nil, err
	}

	return &Lease{
		pool:   p,
		path:   path,
		method: method,
		noop:   reentry,
	}, nil
}

// Path returns the leased display path
func (l *Lease) Path() display.Path {
	return l.path
}

// Released returns true once Release has been called
func (l *Lease) Released() bool {
	return l.released
}

// Release releases the leased display path. Calls after the first do nothing.
func (l *Lease) Release() error {
	if l.released {
		return nil
	}
	l.released = true

	if l.noop {
		return nil
	}
	return l.pool.ReleaseResources(l.path, l.method)
}
