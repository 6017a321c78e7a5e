package pool

import (
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
)

// restrictedEnginePriority is the priority class a path can settle for without searching further.
// Engines reserved for multi-stream signals are only taken by single-stream paths when nothing
// better is free.
func restrictedEnginePriority(mst bool) resource.EnginePriority {
	if mst {
		return resource.EnginePriorityMST
	}
	return resource.EnginePriorityNormal
}

// findStreamEngine selects the stream engine for the encoder closest to the engine. The encoder's
// preferred engine is used if it is available, otherwise the supported engine with the lowest
// priority class is.
func (p *Pool) findStreamEngine(path display.Path, mst bool) (int, bool) {
	encoder, found := p.encoder(display.SourceEncoder(path))
	if !found {
		return -1, false
	}
	hw := encoder.Object()

	if preferred := hw.PreferredEngine(); preferred != resource.EngineInvalid {
		handle, found := p.resources.Handle(resource.EngineIdentity(preferred))
		if found && available(p.resources.Get(handle), mst) {
			return handle, true
		}
	}

	supported := hw.SupportedEngines()
	restricted := restrictedEnginePriority(mst)
	best := -1
	bestPriority := resource.EnginePriorityUnknown

	p.resources.Visit(resource.KindEngine, func(handle int, res resource.Resource) bool {
		engine := res.(*resource.Engine)
		if !supported.Has(engine.EngineID()) || !available(engine, mst) {
			return true
		}

		if best < 0 || engine.EnginePriority() < bestPriority {
			best = handle
			bestPriority = engine.EnginePriority()
		}
		return bestPriority >= restricted
	})

	return best, best >= 0
}
