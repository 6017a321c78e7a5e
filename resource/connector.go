package resource

type Connector struct {
	Base
	hw ConnectorObject
}

var _ Resource = &Connector{}

func NewConnector(hw ConnectorObject) *Connector {
	return &Connector{
		Base: newBase(hw.Identity()),
		hw:   hw,
	}
}

func (c *Connector) Priority() int  { return 0 }
func (c *Connector) Sharable() bool { return false }

func (c *Connector) Object() ConnectorObject { return c.hw }

func (c *Connector) Clone() Resource {
	clone := *c
	clone.Base = c.Base.cloneBase()
	return &clone
}

func (c *Connector) ReleaseHW() { releaseHW(c.hw, c.cloned) }
func (c *Connector) Destroy()   { destroy(c.hw, c.cloned) }
