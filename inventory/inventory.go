package inventory

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/displaypool/display"
	"github.com/vkngwrapper/displaypool/resource"
)

// Engine is a stream engine of the inventory. Engines have no hardware object.
type Engine struct {
	ID       resource.EngineID
	Priority resource.EnginePriority
}

// Inventory is the set of software hardware objects built from a Description. It also serves
// as the display.Adapter and display.GPU of the pool it populates.
type Inventory struct {
	powerGating           bool
	functionalControllers int

	Controllers  []*Controller
	Encoders     []*Encoder
	Connectors   []*Connector
	ClockSources []*ClockSource
	Audio        []*Audio
	Engines      []Engine
}

var _ display.Adapter = &Inventory{}
var _ display.GPU = &Inventory{}

// Target receives the resources of an inventory. *pool.Pool satisfies it.
type Target interface {
	AddResource(res resource.Resource) error
	PowerGatingEnabled() bool
}

// Build creates the hardware objects described by d
func (d *Description) Build() (*Inventory, error) {
	if d.FunctionalControllers < 0 {
		return nil, errors.Newf("functionalControllers must not be negative, got %d", d.FunctionalControllers)
	}

	inventory := &Inventory{
		powerGating:           d.Features.PowerGating,
		functionalControllers: d.FunctionalControllers,
	}

	for _, controller := range d.Controllers {
		inventory.Controllers = append(inventory.Controllers, &Controller{
			object: object{identity: resource.ControllerID(controller.ID)},
		})
	}

	for _, connector := range d.Connectors {
		inventory.Connectors = append(inventory.Connectors, &Connector{
			object: object{identity: resource.ConnectorID(connector.ID)},
		})
	}

	for _, clockSource := range d.ClockSources {
		level := resource.SharingLevelNotSharable
		if clockSource.SharingLevel != "" {
			var err error
			level, err = parseEnum("clockSources.sharingLevel", clockSource.SharingLevel, sharingLevels)
			if err != nil {
				return nil, err
			}
		}
		supported, err := parseSignals("clockSources.signals", clockSource.Signals)
		if err != nil {
			return nil, err
		}

		inventory.ClockSources = append(inventory.ClockSources, &ClockSource{
			object:         object{identity: resource.ClockSourceID(clockSource.ID)},
			fixedFrequency: clockSource.FixedFrequency,
			sharingLevel:   level,
			signals:        supported,
		})
	}

	for _, audio := range d.Audio {
		supported, err := parseSignals("audio.signals", audio.Signals)
		if err != nil {
			return nil, err
		}

		inventory.Audio = append(inventory.Audio, &Audio{
			object:  object{identity: resource.AudioID(audio.ID)},
			signals: supported,
		})
	}

	engineIDs := map[uint32]bool{}
	for _, engine := range d.Engines {
		if engine.ID >= resource.MaxEngines {
			return nil, errors.Newf("engine id %d is out of range, must be less than %d", engine.ID, resource.MaxEngines)
		}
		priority := resource.EnginePriorityNormal
		if engine.Priority != "" {
			var err error
			priority, err = parseEnum("engines.priority", engine.Priority, enginePriorities)
			if err != nil {
				return nil, err
			}
		}

		engineIDs[engine.ID] = true
		inventory.Engines = append(inventory.Engines, Engine{
			ID:       resource.EngineID(engine.ID),
			Priority: priority,
		})
	}

	encoderIDs := map[resource.Identity]bool{}
	for _, encoder := range d.Encoders {
		encoderIDs[resource.EncoderID(encoder.ID, resource.EnumID(encoder.Enum))] = true
	}

	for _, encoder := range d.Encoders {
		obj := &Encoder{
			object:       object{identity: resource.EncoderID(encoder.ID, resource.EnumID(encoder.Enum))},
			external:     encoder.External,
			paired:       resource.NoIdentity,
			preferred:    resource.EngineInvalid,
			clockSources: encoder.ClockSources,
		}

		if encoder.PairedWith != nil {
			obj.paired = resource.EncoderID(encoder.PairedWith.ID, resource.EnumID(encoder.PairedWith.Enum))
			if !encoderIDs[obj.paired] || obj.paired == obj.identity {
				return nil, errors.Newf("%s is paired with %s, which is not another encoder of the inventory", obj.identity, obj.paired)
			}
		}

		for _, engine := range encoder.Engines {
			if !engineIDs[engine] {
				return nil, errors.Newf("%s supports engine %d, which is not part of the inventory", obj.identity, engine)
			}
		}
		obj.engines = resource.EngineMaskOf(toEngineIDs(encoder.Engines)...)

		if encoder.PreferredEngine != nil {
			if !engineIDs[*encoder.PreferredEngine] {
				return nil, errors.Newf("%s prefers engine %d, which is not part of the inventory", obj.identity, *encoder.PreferredEngine)
			}
			obj.preferred = resource.EngineID(*encoder.PreferredEngine)
		}

		inventory.Encoders = append(inventory.Encoders, obj)
	}

	return inventory, nil
}

func toEngineIDs(ids []uint32) []resource.EngineID {
	engines := make([]resource.EngineID, 0, len(ids))
	for _, id := range ids {
		engines = append(engines, resource.EngineID(id))
	}
	return engines
}

func (i *Inventory) IsFeatureSupported(feature display.Feature) bool {
	switch feature {
	case display.FeaturePowerGating:
		return i.powerGating
	default:
		return false
	}
}

func (i *Inventory) FunctionalControllerCount() int {
	return i.functionalControllers
}

// Populate wraps every hardware object in a Resource and adds it to target. The target takes
// ownership of the hardware objects, so an inventory should only populate a single pool; use
// pool cloning to get more.
func (i *Inventory) Populate(target Target) error {
	var resources []resource.Resource

	for _, controller := range i.Controllers {
		resources = append(resources, resource.NewController(controller, target.PowerGatingEnabled()))
	}
	for _, encoder := range i.Encoders {
		resources = append(resources, resource.NewEncoder(encoder))
	}
	for _, connector := range i.Connectors {
		resources = append(resources, resource.NewConnector(connector))
	}
	for _, clockSource := range i.ClockSources {
		resources = append(resources, resource.NewClockSource(clockSource))
	}
	for _, audio := range i.Audio {
		resources = append(resources, resource.NewAudio(audio))
	}
	for _, engine := range i.Engines {
		resources = append(resources, resource.NewEngine(engine.ID, engine.Priority))
	}

	for _, res := range resources {
		err := target.AddResource(res)
		if err != nil {
			return errors.Wrapf(err, "failed to add %s", res.Identity())
		}
	}
	return nil
}

// Controller returns the controller with the provided hardware id
func (i *Inventory) Controller(id uint32) *Controller {
	for _, controller := range i.Controllers {
		if controller.identity.ID == id {
			return controller
		}
	}
	return nil
}

// ClockSource returns the clock source with the provided hardware id
func (i *Inventory) ClockSource(id uint32) *ClockSource {
	for _, clockSource := range i.ClockSources {
		if clockSource.identity.ID == id {
			return clockSource
		}
	}
	return nil
}
