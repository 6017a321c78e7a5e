package resource

type Audio struct {
	Base
	hw AudioObject
}

var _ Resource = &Audio{}

func NewAudio(hw AudioObject) *Audio {
	return &Audio{
		Base: newBase(hw.Identity()),
		hw:   hw,
	}
}

func (a *Audio) Priority() int  { return 0 }
func (a *Audio) Sharable() bool { return false }

func (a *Audio) Object() AudioObject { return a.hw }

func (a *Audio) Clone() Resource {
	clone := *a
	clone.Base = a.Base.cloneBase()
	return &clone
}

func (a *Audio) ReleaseHW() { releaseHW(a.hw, a.cloned) }
func (a *Audio) Destroy()   { destroy(a.hw, a.cloned) }
