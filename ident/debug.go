package ident

import (
	"fmt"
	"io"
	"os"
)

// debugOn gates the innermost per-sample accumulation trace, adapted from
// ntru/debug.go: a logger call on that hot path would be too costly to
// leave unconditionally compiled in, so it is an os.Getenv check instead
// of a zerolog call, matching NTRU_DEBUG's own reasoning.
var debugOn = os.Getenv("SYSID_DEBUG") == "1"

// dbg writes a trace line unconditionally; callers on a hot path should
// guard the call with debugOn themselves so the variadic argument list
// isn't boxed and built when tracing is off.
func dbg(w io.Writer, f string, a ...any) {
	fmt.Fprintf(w, f, a...)
}
