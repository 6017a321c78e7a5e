package pool

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/pool/internal/utils"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
	"github.com/vkngwrapper/displaypool/resutils/linkstore"
	"golang.org/x/exp/slog"
)

// Pool is the authoritative inventory of the display hardware capability units of a single
// adapter. It assigns them to display paths on acquisition, returns them on release, and keeps
// reference counts, controller power gating, and clock-source sharing consistent while doing so.
//
// A Pool may be cloned into a copy that tracks counts independently and never touches hardware,
// which is used to validate a prospective display configuration before committing it.
type Pool struct {
	logger      *slog.Logger
	adapter     display.Adapter
	gpu         display.GPU
	createFlags CreateFlags
	mutex       utils.OptionalRWMutex

	powerGating           bool
	cloned                bool
	destroyed             bool
	functionalControllers int
	maxLinks              int

	resources       *resourceList
	controllerPaths *swiss.Map[uint32, int]
	linkServices    *linkstore.Store[display.Protocol, display.LinkService]

	transactions resutils.TransactionStatistics
}

// Cloned returns true if this pool was produced by Clone
func (p *Pool) Cloned() bool {
	return p.cloned
}

// PowerGatingEnabled returns true if controllers added to this pool should track power gating
func (p *Pool) PowerGatingEnabled() bool {
	return p.powerGating
}

// Adapter returns the adapter the pool was created for
func (p *Pool) Adapter() display.Adapter {
	return p.adapter
}

// GPU returns the GPU the pool was created for
func (p *Pool) GPU() display.GPU {
	return p.gpu
}

// AddResource appends a resource to the inventory. It fails for nil and cloned resources, and
// with resutils.ErrDuplicateResource if a resource with the same identity is already present.
func (p *Pool) AddResource(res resource.Resource) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	err := p.resources.Add(res)
	if err != nil {
		return err
	}

	p.logger.Debug("Pool::AddResource", slog.String("Identity", res.Identity().String()), slog.Int("Priority", res.Priority()))
	return nil
}

// FindResource returns the resource with the provided identity
func (p *Pool) FindResource(id resource.Identity) (resource.Resource, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.resources.Find(id)
}

// TotalCount returns the number of resources in the inventory
func (p *Pool) TotalCount() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.resources.Len()
}

// EnumResource returns the resource at the provided index of the inventory order, which sorts
// resources by kind, then by priority, then by hardware id. Indices are only stable until the next
// AddResource.
func (p *Pool) EnumResource(index int) (resource.Resource, error) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	err := resutils.CheckIndex(index, p.resources.Len(), "index")
	if err != nil {
		return nil, err
	}
	return p.resources.At(index), nil
}

// Range returns the enumeration indices occupied by resources of the provided kind
func (p *Pool) Range(kind resource.Kind) Range {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.resources.Range(kind)
}

// ControllerPathIndex returns the index of the display path that currently holds the controller
// with the provided hardware id
func (p *Pool) ControllerPathIndex(controllerID uint32) (int, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.controllerPaths.Get(controllerID)
}

// touchesHardware returns true if an operation performed with the provided method should drive
// hardware side effects. Clones never do.
func (p *Pool) touchesHardware(method AcquireMethod) bool {
	return method == AcquireMethodHW && !p.cloned
}

func (p *Pool) contractViolation(err error) error {
	p.transactions.ContractViolations++
	err = resutils.ContractViolation(err)
	p.logger.Error("display resource contract violated", slog.Any("error", err))
	return err
}
