package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/google/btree"
	"github.com/vkngwrapper/displaypool/resource"
	"github.com/vkngwrapper/displaypool/resutils"
)

const resourceOrderDegree = 8

// Range is a half-open span [Begin, End) of enumeration indices holding every resource of a
// single kind
type Range struct {
	Begin int
	End   int
}

// Len returns the number of resources in the range
func (r Range) Len() int {
	return r.End - r.Begin
}

// resourceKey places a resource in the inventory order: kind, then priority, then hardware id and
// enum. handle is the index of the resource in the resource arena.
type resourceKey struct {
	kind     resource.Kind
	priority int
	id       uint32
	enum     resource.EnumID
	handle   int
}

func resourceKeyLess(left, right resourceKey) bool {
	if left.kind != right.kind {
		return left.kind < right.kind
	}
	if left.priority != right.priority {
		return left.priority < right.priority
	}
	if left.id != right.id {
		return left.id < right.id
	}
	return left.enum < right.enum
}

// resourceList is the ordered inventory of a pool. Resources are kept in an arena so that a
// resource's handle never changes, and are enumerated through a sorted snapshot of the order tree
// that is rebuilt whenever a resource is added.
type resourceList struct {
	resources  []resource.Resource
	identities *swiss.Map[resource.Identity, int]
	order      *btree.BTreeG[resourceKey]

	sorted []int
	ranges [resource.KindCount]Range
}

func newResourceList() *resourceList {
	return &resourceList{
		identities: swiss.NewMap[resource.Identity, int](32),
		order:      btree.NewG[resourceKey](resourceOrderDegree, resourceKeyLess),
	}
}

func (l *resourceList) Add(res resource.Resource) error {
	if res == nil {
		return errors.New("attempted to add a nil resource")
	}
	id := res.Identity()
	if !id.IsValid() {
		return errors.Newf("attempted to add a resource with invalid identity %s", id)
	}
	if res.Cloned() {
		return errors.Newf("attempted to add cloned resource %s; clones can only be added by cloning a pool", id)
	}
	if l.identities.Has(id) {
		return errors.Wrapf(resutils.ErrDuplicateResource, "%s", id)
	}

	handle := len(l.resources)
	l.resources = append(l.resources, res)
	l.identities.Put(id, handle)
	l.order.ReplaceOrInsert(resourceKey{
		kind:     id.Kind,
		priority: res.Priority(),
		id:       id.ID,
		enum:     id.Enum,
		handle:   handle,
	})
	l.rebuild()

	return nil
}

func (l *resourceList) rebuild() {
	l.sorted = l.sorted[:0]
	for kind := range l.ranges {
		l.ranges[kind] = Range{}
	}

	currentKind := resource.KindUnknown
	l.order.Ascend(func(key resourceKey) bool {
		index := len(l.sorted)
		if key.kind != currentKind {
			l.ranges[currentKind].End = index
			currentKind = key.kind
			l.ranges[currentKind].Begin = index
		}
		l.sorted = append(l.sorted, key.handle)
		return true
	})
	l.ranges[currentKind].End = len(l.sorted)

	// Kinds with no resources should still report a range located in enumeration order
	next := len(l.sorted)
	for kind := resource.KindCount - 1; kind > int(resource.KindUnknown); kind-- {
		if l.ranges[kind].Len() == 0 {
			l.ranges[kind] = Range{Begin: next, End: next}
		} else {
			next = l.ranges[kind].Begin
		}
	}
}

func (l *resourceList) Len() int {
	return len(l.resources)
}

func (l *resourceList) Handle(id resource.Identity) (int, bool) {
	return l.identities.Get(id)
}

func (l *resourceList) Find(id resource.Identity) (resource.Resource, bool) {
	handle, ok := l.identities.Get(id)
	if !ok {
		return nil, false
	}
	return l.resources[handle], true
}

func (l *resourceList) Get(handle int) resource.Resource {
	return l.resources[handle]
}

// At returns the resource at an enumeration index
func (l *resourceList) At(index int) resource.Resource {
	return l.resources[l.sorted[index]]
}

func (l *resourceList) HandleAt(index int) int {
	return l.sorted[index]
}

func (l *resourceList) Range(kind resource.Kind) Range {
	if kind == resource.KindUnknown || int(kind) >= resource.KindCount {
		return Range{}
	}
	return l.ranges[kind]
}

// Visit calls visit on every resource of the provided kind in enumeration order, until it returns false
func (l *resourceList) Visit(kind resource.Kind, visit func(handle int, res resource.Resource) bool) {
	r := l.Range(kind)
	for index := r.Begin; index < r.End; index++ {
		handle := l.sorted[index]
		if !visit(handle, l.resources[handle]) {
			return
		}
	}
}

// Clone builds a list of cloned resources. Handles are preserved, so the order tree is shared
// copy-on-write with the source list.
func (l *resourceList) Clone() *resourceList {
	clone := &resourceList{
		resources:  make([]resource.Resource, len(l.resources)),
		identities: swiss.NewMap[resource.Identity, int](uint32(len(l.resources))),
		order:      l.order.Clone(),
		sorted:     make([]int, len(l.sorted)),
		ranges:     l.ranges,
	}

	for handle, res := range l.resources {
		clone.resources[handle] = res.Clone()
		clone.identities.Put(res.Identity(), handle)
	}
	copy(clone.sorted, l.sorted)

	return clone
}

func (l *resourceList) Destroy() {
	for _, res := range l.resources {
		res.Destroy()
	}

	l.resources = nil
	l.identities = swiss.NewMap[resource.Identity, int](0)
	l.order.Clear(false)
	l.sorted = nil
	l.ranges = [resource.KindCount]Range{}
}
