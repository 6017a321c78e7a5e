// Package linkstore holds the handles of per-link protocol services, keyed by display path index,
// link index, and protocol. Handles added to a Store are owned by it and are destroyed when they are
// released, truncated away, or the store is torn down.
package linkstore

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/displaypool/resutils"
)

// Handle is anything that can be stored. Destroy is called once, when the store gives up the handle.
type Handle interface {
	Destroy()
}

type pathEntry[P comparable, H Handle] struct {
	links []*swiss.Map[P, H]
}

func (e *pathEntry[P, H]) count() int {
	total := 0
	for _, link := range e.links {
		if link != nil {
			total += link.Count()
		}
	}
	return total
}

func (e *pathEntry[P, H]) release() {
	for _, link := range e.links {
		if link == nil {
			continue
		}
		link.Iter(func(_ P, handle H) bool {
			handle.Destroy()
			return false
		})
	}
	e.links = nil
}

// Store is a three-dimensional map from (path, link, protocol) to a Handle
type Store[P comparable, H Handle] struct {
	maxLinks int
	paths    []*pathEntry[P, H]
}

// New creates a Store sized for pathCount display paths, each of which may have up to maxLinks links
func New[P comparable, H Handle](pathCount, maxLinks int) *Store[P, H] {
	s := &Store[P, H]{maxLinks: maxLinks}
	s.Setup(pathCount)
	return s
}

// PathCount returns the number of display paths the store is currently sized for
func (s *Store[P, H]) PathCount() int { return len(s.paths) }

// MaxLinks returns the number of links each path may hold services for
func (s *Store[P, H]) MaxLinks() int { return s.maxLinks }

// Setup resizes the store to pathCount display paths. Existing entries are preserved when growing.
// When shrinking, entries for truncated paths are destroyed.
func (s *Store[P, H]) Setup(pathCount int) {
	if pathCount < 0 {
		pathCount = 0
	}

	for i := pathCount; i < len(s.paths); i++ {
		s.paths[i].release()
	}

	if pathCount <= len(s.paths) {
		s.paths = s.paths[:pathCount]
		return
	}

	for len(s.paths) < pathCount {
		s.paths = append(s.paths, &pathEntry[P, H]{})
	}
}

func (s *Store[P, H]) checkSlot(path, link int) error {
	err := resutils.CheckIndex(path, len(s.paths), "path index")
	if err != nil {
		return err
	}
	return resutils.CheckIndex(link, s.maxLinks, "link index")
}

// Add stores a handle in an empty slot. Adding to an occupied slot is a contract violation and
// leaves the existing handle in place.
func (s *Store[P, H]) Add(path, link int, protocol P, handle H) error {
	err := s.checkSlot(path, link)
	if err != nil {
		return err
	}

	entry := s.paths[path]
	for len(entry.links) <= link {
		entry.links = append(entry.links, nil)
	}
	if entry.links[link] == nil {
		entry.links[link] = swiss.NewMap[P, H](4)
	}

	if entry.links[link].Has(protocol) {
		return resutils.ContractViolation(errors.AssertionFailedf("link service slot (%d, %d, %v) is already populated", path, link, protocol))
	}

	entry.links[link].Put(protocol, handle)
	return nil
}

// Get returns the handle stored in a slot, if any
func (s *Store[P, H]) Get(path, link int, protocol P) (H, bool) {
	var zero H
	if s.checkSlot(path, link) != nil {
		return zero, false
	}

	entry := s.paths[path]
	if link >= len(entry.links) || entry.links[link] == nil {
		return zero, false
	}

	return entry.links[link].Get(protocol)
}

// Find returns the handle for protocol on the lowest-indexed link of path that has one
func (s *Store[P, H]) Find(path int, protocol P) (int, H, bool) {
	var zero H
	if resutils.CheckIndex(path, len(s.paths), "path index") != nil {
		return -1, zero, false
	}

	for link, services := range s.paths[path].links {
		if services == nil {
			continue
		}
		handle, ok := services.Get(protocol)
		if ok {
			return link, handle, true
		}
	}

	return -1, zero, false
}

// Count returns the number of handles stored for path
func (s *Store[P, H]) Count(path int) int {
	if resutils.CheckIndex(path, len(s.paths), "path index") != nil {
		return 0
	}
	return s.paths[path].count()
}

// Swap exchanges every entry of two paths, which is used when display paths are renumbered
func (s *Store[P, H]) Swap(pathA, pathB int) error {
	err := resutils.CheckIndex(pathA, len(s.paths), "path index")
	if err != nil {
		return err
	}
	err = resutils.CheckIndex(pathB, len(s.paths), "path index")
	if err != nil {
		return err
	}

	s.paths[pathA], s.paths[pathB] = s.paths[pathB], s.paths[pathA]
	return nil
}

// VisitPath calls visit once for each handle stored for path, in link order
func (s *Store[P, H]) VisitPath(path int, visit func(link int, protocol P, handle H)) {
	if resutils.CheckIndex(path, len(s.paths), "path index") != nil {
		return
	}

	for link, services := range s.paths[path].links {
		if services == nil {
			continue
		}
		services.Iter(func(protocol P, handle H) bool {
			visit(link, protocol, handle)
			return false
		})
	}
}

// VisitAll calls visit once for each handle in the store, in path and link order
func (s *Store[P, H]) VisitAll(visit func(path, link int, protocol P, handle H)) {
	for path := range s.paths {
		s.VisitPath(path, func(link int, protocol P, handle H) {
			visit(path, link, protocol, handle)
		})
	}
}

// ReleasePath destroys every handle stored for path
func (s *Store[P, H]) ReleasePath(path int) {
	if resutils.CheckIndex(path, len(s.paths), "path index") != nil {
		return
	}
	s.paths[path].release()
}

// ReleaseAll destroys every handle in the store. The store keeps its size.
func (s *Store[P, H]) ReleaseAll() {
	for _, entry := range s.paths {
		entry.release()
	}
}
