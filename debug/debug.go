package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Visit bool
	XPath bool
	Map   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Visit = boolEnv("MARKUP_DEBUG_VISIT")
	d.XPath = boolEnv("MARKUP_DEBUG_XPATH")
	d.Map = boolEnv("MARKUP_DEBUG_MAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Visit() bool {
	return d.Visit
}
func XPath() bool {
	return d.XPath
}
func Map() bool {
	return d.Map
}
