// README: Offline quote runner; executes canned scenarios against fixture data and prints results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"
)

func main() {
	var strict bool
	var timeout time.Duration
	flag.BoolVar(&strict, "strict", false, "exit non-zero when any scenario fails")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "total timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	runner := NewRunner()
	results := runner.RunAll(ctx)

	fmt.Println("\n== Summary ==")
	quoted, omitted := 0, 0
	for _, r := range results {
		if r.Omitted {
			omitted++
		} else {
			quoted++
		}
	}
	fmt.Printf("QUOTED=%d OMITTED=%d\n", quoted, omitted)

	if strict && quoted == 0 {
		os.Exit(1)
	}
}
