package pool

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
	"golang.org/x/exp/slog"
)

// SetupLinkServices resizes the link-service store for pathCount display paths. Services of paths
// beyond the new count are destroyed.
func (p *Pool) SetupLinkServices(pathCount int) {
	p.logger.Debug("Pool::SetupLinkServices", slog.Int("PathCount", pathCount))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.linkServices.Setup(pathCount)
}

// AddLinkService hands ownership of a link service to the pool. Adding a service to a slot that is
// already populated is a contract violation, and the caller keeps ownership of a service that
// could not be added.
func (p *Pool) AddLinkService(path, link int, protocol display.Protocol, service display.LinkService) error {
	p.logger.Debug("Pool::AddLinkService", slog.Int("DisplayIndex", path), slog.Int("Link", link), slog.String("Protocol", protocol.String()))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	err := p.linkServices.Add(path, link, protocol, service)
	if err != nil && errors.IsAssertionFailure(err) {
		p.transactions.ContractViolations++
		p.logger.Error("display resource contract violated", slog.Any("error", err))
	}
	return err
}

// LinkService returns the service stored for a link and protocol
func (p *Pool) LinkService(path, link int, protocol display.Protocol) (display.LinkService, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.linkServices.Get(path, link, protocol)
}

// FindLinkService returns the lowest-numbered link of the path that has a service for the protocol
// that drives signal, along with that service
func (p *Pool) FindLinkService(path int, signal resource.Signal) (int, display.LinkService, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.linkServices.Find(path, display.ProtocolForSignal(signal))
}

// SwapLinkServices exchanges every service of two display paths, which is needed when display paths
// are renumbered
func (p *Pool) SwapLinkServices(pathA, pathB int) error {
	p.logger.Debug("Pool::SwapLinkServices", slog.Int("PathA", pathA), slog.Int("PathB", pathB))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.linkServices.Swap(pathA, pathB)
}

// AssociateLinkServices tells every service of the path which path and link it serves
func (p *Pool) AssociateLinkServices(path int) {
	p.logger.Debug("Pool::AssociateLinkServices", slog.Int("DisplayIndex", path))

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	p.linkServices.VisitPath(path, func(link int, _ display.Protocol, service display.LinkService) {
		service.Associate(path, link)
	})
}

// InvalidateLinkServices marks the cached link state of every service stale
func (p *Pool) InvalidateLinkServices() {
	p.logger.Debug("Pool::InvalidateLinkServices")

	p.mutex.RLock()
	defer p.mutex.RUnlock()

	p.linkServices.VisitAll(func(_, _ int, _ display.Protocol, service display.LinkService) {
		service.Invalidate()
	})
}

// ReleaseLinkServicesForPath destroys every service of a display path
func (p *Pool) ReleaseLinkServicesForPath(path int) {
	p.logger.Debug("Pool::ReleaseLinkServicesForPath", slog.Int("DisplayIndex", path))

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.linkServices.ReleasePath(path)
}

// ReleaseAllLinkServices destroys every stored service. The store keeps its size.
func (p *Pool) ReleaseAllLinkServices() {
	p.logger.Debug("Pool::ReleaseAllLinkServices")

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.linkServices.ReleaseAll()
}
