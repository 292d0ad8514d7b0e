package sceneio

import "errors"

// Sentinel errors identifying the decoder's own error space (spec §7),
// distinct from the engine's construction-time errors in core.
var (
	ErrMalformedJSON       = errors.New("sceneio: malformed JSON")
	ErrUnknownMaterialType = errors.New("sceneio: unknown material type")
	ErrUnknownPrimitiveType = errors.New("sceneio: unknown primitive type")
	ErrDanglingReference   = errors.New("sceneio: primitive references unknown material")
	ErrUnresolvableAspectRatio = errors.New("sceneio: aspect ratio is neither a number nor an \"A/B\" string")
)

// DecodeError wraps a decode-time failure with the JSON field or name that
// caused it, following the sentinel-plus-wrapper pattern used throughout
// the engine's own construction errors.
type DecodeError struct {
	Field  string
	Reason error
}

func (e *DecodeError) Error() string {
	return "sceneio: " + e.Field + ": " + e.Reason.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}
