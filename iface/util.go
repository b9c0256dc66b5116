package iface

import "strconv"

// itoaIndex stringifies a numeric link index the way the decoders do
// before the cross-reference resolver rewrites it to a symbolic name.
func itoaIndex(i int) string {
	return strconv.Itoa(i)
}
