// Package debug holds process-wide debug switches, read once from the
// environment at startup.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Patch bool
	Diff  bool
	Merge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("DOCPATCH_DEBUG_PATCH")
	d.Diff = boolEnv("DOCPATCH_DEBUG_DIFF")
	d.Merge = boolEnv("DOCPATCH_DEBUG_MERGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Merge() bool {
	return d.Merge
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
