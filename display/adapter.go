package display

// Feature is an adapter capability that changes pool behavior
type Feature uint32

const (
	// FeaturePowerGating indicates that idle controllers may be power gated
	FeaturePowerGating Feature = iota
)

var featureMapping = map[Feature]string{
	FeaturePowerGating: "PowerGating",
}

func (f Feature) String() string {
	return featureMapping[f]
}

// Adapter answers feature-flag queries. The pool reads it during construction only.
type Adapter interface {
	IsFeatureSupported(feature Feature) bool
}

// GPU describes the GPU the inventory belongs to
type GPU interface {
	// FunctionalControllerCount returns the number of controllers that can be used, which may be
	// fewer than the number of controllers in the inventory when some have been harvested. A value
	// of zero or less means that every controller is functional.
	FunctionalControllerCount() int
}
