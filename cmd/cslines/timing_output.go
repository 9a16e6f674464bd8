package main

import (
	"fmt"
	"io"

	"cslines/internal/driver"
	"cslines/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer, cache *driver.Cache) {
	if out == nil || timer == nil {
		return
	}
	fmt.Fprint(out, timer.Summary())
	if cache != nil {
		hits, misses := cache.Stats()
		fmt.Fprintf(out, "  cache: %d hit(s), %d miss(es)\n", hits, misses)
	}
}
