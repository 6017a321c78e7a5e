package resource

// Engine is a stream engine. There is no hardware object behind it beyond its id; its
// priority class is only used to break ties during selection.
type Engine struct {
	Base
	engine   EngineID
	priority EnginePriority
}

var _ Resource = &Engine{}

func NewEngine(engine EngineID, priority EnginePriority) *Engine {
	return &Engine{
		Base:     newBase(EngineIdentity(engine)),
		engine:   engine,
		priority: priority,
	}
}

func (e *Engine) Priority() int  { return int(e.priority) }
func (e *Engine) Sharable() bool { return false }

func (e *Engine) EngineID() EngineID             { return e.engine }
func (e *Engine) EnginePriority() EnginePriority { return e.priority }

func (e *Engine) Clone() Resource {
	clone := *e
	clone.Base = e.Base.cloneBase()
	return &clone
}

func (e *Engine) ReleaseHW() {}
func (e *Engine) Destroy()   {}
