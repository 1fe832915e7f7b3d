// Command ulidgen prints freshly generated ULIDs to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aatuh/ulid-toolkit/entropy"
	"github.com/aatuh/ulid-toolkit/idgen"
)

func main() {
	n := flag.Int("n", 1, "number of identifiers to generate")
	seed := flag.Uint64("seed", 0, "use a seeded deterministic source (0 = crypto)")
	atMs := flag.Int64("t", -1, "encode this Unix millisecond timestamp instead of now")
	flag.Parse()

	if *n < 1 {
		fmt.Fprintln(os.Stderr, "ulidgen: -n must be at least 1")
		os.Exit(2)
	}

	var opts []idgen.Option
	if *seed != 0 {
		opts = append(opts, idgen.WithEntropy(entropy.NewSeededSource(*seed)))
	}
	g := idgen.New(opts...)

	for i := 0; i < *n; i++ {
		if *atMs >= 0 {
			id, err := g.GenerateAt(time.UnixMilli(*atMs).UTC())
			if err != nil {
				fmt.Fprintf(os.Stderr, "ulidgen: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(id)
			continue
		}
		fmt.Println(g.Generate())
	}
}
