package suggestion

import "errors"

// ErrExternalServiceUnavailable marks a text-generation transport or parse
// failure. It never escapes the generative suggester; the deterministic
// fallback always recovers it.
var ErrExternalServiceUnavailable = errors.New("generative suggestion service unavailable")
