package resource

// Encoder wraps a signal encoder. Some encoders are bonded in pairs and must be claimed and
// released together for dual-link signals.
type Encoder struct {
	Base
	hw     EncoderObject
	paired Identity
}

var _ Resource = &Encoder{}

func NewEncoder(hw EncoderObject) *Encoder {
	return &Encoder{
		Base:   newBase(hw.Identity()),
		hw:     hw,
		paired: hw.PairedTransmitter(),
	}
}

// Priority prefers internal encoders over external ones
func (e *Encoder) Priority() int {
	if e.hw.IsExternal() {
		return 1
	}
	return 0
}

func (e *Encoder) Sharable() bool { return false }

func (e *Encoder) Object() EncoderObject { return e.hw }

// Paired returns the identity of the bonded encoder, or NoIdentity
func (e *Encoder) Paired() Identity { return e.paired }

func (e *Encoder) Clone() Resource {
	clone := *e
	clone.Base = e.Base.cloneBase()
	return &clone
}

func (e *Encoder) ReleaseHW() { releaseHW(e.hw, e.cloned) }
func (e *Encoder) Destroy()   { destroy(e.hw, e.cloned) }
