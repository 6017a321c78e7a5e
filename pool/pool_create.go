package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils/linkstore"
	"golang.org/x/exp/slog"
)

const (
	// defaultMaxLinksPerPath is the value that is used as MaxLinksPerPath when none is provided
	// via CreateOptions
	defaultMaxLinksPerPath int = 2
)

// CreateOptions contains optional settings when creating a pool
type CreateOptions struct {
	// Flags indicates specific pool behaviors to activate or deactivate
	Flags CreateFlags
	// MaxLinksPerPath is the number of links per display path that link services can be stored for
	MaxLinksPerPath int
	// DisplayPathCount sizes the link-service store. It can be left at 0 and set up later with
	// SetupLinkServices.
	DisplayPathCount int
}

// New creates an empty Pool
//
// adapter - Queried once for display.FeaturePowerGating
//
// gpu - Reports how many controllers are functional
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, adapter display.Adapter, gpu display.GPU, options CreateOptions) (*Pool, error) {
	if logger == nil {
		return nil, errors.New("a logger must be provided")
	}
	if adapter == nil || gpu == nil {
		return nil, errors.New("both an adapter and a gpu must be provided")
	}
	if options.DisplayPathCount < 0 || options.MaxLinksPerPath < 0 {
		return nil, errors.Newf("invalid link-service store dimensions %d paths by %d links", options.DisplayPathCount, options.MaxLinksPerPath)
	}

	maxLinks := options.MaxLinksPerPath
	if maxLinks == 0 {
		maxLinks = defaultMaxLinksPerPath
	}

	pool := &Pool{
		logger:      logger,
		adapter:     adapter,
		gpu:         gpu,
		createFlags: options.Flags,

		powerGating: options.Flags&PoolCreateDisablePowerGating == 0 &&
			adapter.IsFeatureSupported(display.FeaturePowerGating),
		functionalControllers: gpu.FunctionalControllerCount(),
		maxLinks:              maxLinks,

		resources:       newResourceList(),
		controllerPaths: swiss.NewMap[uint32, int](8),
		linkServices:    linkstore.New[display.Protocol, display.LinkService](options.DisplayPathCount, maxLinks),
	}
	pool.mutex.UseMutex = options.Flags&PoolCreateExternallySynchronized == 0

	logger.Debug("Pool::New",
		slog.String("Flags", options.Flags.String()),
		slog.Bool("PowerGating", pool.powerGating),
		slog.Int("FunctionalControllers", pool.functionalControllers),
	)

	return pool, nil
}

// Destroy destroys every resource and link service owned by the pool. Resources of a cloned pool
// share their hardware objects with the source pool and are left alone. The pool can't be used after
// this call.
func (p *Pool) Destroy() error {
	p.logger.Debug("Pool::Destroy", slog.Bool("Cloned", p.cloned))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.destroyed {
		return errors.New("attempted to destroy a pool that was already destroyed")
	}

	claims := 0
	for handle := 0; handle < p.resources.Len(); handle++ {
		claims += p.resources.Get(handle).RefCount()
	}
	if claims > 0 {
		p.logger.Warn("destroying a display resource pool with outstanding claims", slog.Int("Claims", claims))
	}

	p.resources.Destroy()
	p.linkServices.ReleaseAll()
	p.controllerPaths = swiss.NewMap[uint32, int](0)
	p.destroyed = true

	return nil
}

// Clone creates a structurally identical pool whose resources are clones with every reference count
// at zero. The clone has an empty link-service store and an empty controller lookup table, shares the
// adapter and GPU, and never touches hardware during acquire and release.
func (p *Pool) Clone() (*Pool, error) {
	p.logger.Debug("Pool::Clone")

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	if p.destroyed {
		return nil, errors.New("attempted to clone a pool that was destroyed")
	}

	clone := &Pool{
		logger:      p.logger.With(slog.Bool("Cloned", true)),
		adapter:     p.adapter,
		gpu:         p.gpu,
		createFlags: p.createFlags,

		powerGating:           p.powerGating,
		cloned:                true,
		functionalControllers: p.functionalControllers,
		maxLinks:              p.maxLinks,

		resources:       p.resources.Clone(),
		controllerPaths: swiss.NewMap[uint32, int](8),
		linkServices:    linkstore.New[display.Protocol, display.LinkService](0, p.maxLinks),
	}
	clone.mutex.UseMutex = p.mutex.UseMutex

	return clone, nil
}

// ResetAllUsageCounters drops every claim on every resource without any validation or hardware
// access, and empties the controller lookup table. Display paths are not informed.
func (p *Pool) ResetAllUsageCounters() {
	p.logger.Debug("Pool::ResetAllUsageCounters")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	for handle := 0; handle < p.resources.Len(); handle++ {
		p.resources.Get(handle).ResetUsage()
	}
	p.controllerPaths = swiss.NewMap[uint32, int](8)
}

// ReleaseHW asks the hardware object of every resource to quiesce itself. Reference counts are not
// changed. It does nothing on cloned pools.
func (p *Pool) ReleaseHW() {
	p.logger.Debug("Pool::ReleaseHW", slog.Bool("Cloned", p.cloned))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.cloned {
		return
	}
	for handle := 0; handle < p.resources.Len(); handle++ {
		p.resources.Get(handle).ReleaseHW()
	}
}

// PowerGateIdleControllers removes power from every controller that is unclaimed and still powered.
// It is called once the inventory is complete, since controllers come up powered. It does nothing
// on cloned pools or when power gating is disabled.
func (p *Pool) PowerGateIdleControllers() error {
	p.logger.Debug("Pool::PowerGateIdleControllers")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.cloned || !p.powerGating {
		return nil
	}

	var errs error
	p.resources.Visit(resource.KindController, func(_ int, res resource.Resource) bool {
		err := res.(*resource.Controller).GateIdle()
		if err != nil {
			p.logger.Warn("failed to power gate idle controller", slog.String("Identity", res.Identity().String()), slog.Any("error", err))
			errs = errors.CombineErrors(errs, err)
		}
		return true
	})

	p.debugValidate()
	return errs
}
