// Command galaxydemo materializes a handful of sectors around the origin
// and prints a summary of what the generator produced: useful for eyeballing
// output while iterating on the generation formulas.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deepfield/genesis/internal/logkit"
	"github.com/deepfield/genesis/internal/sector"
)

var log = logkit.WithComponent("galaxydemo")

func main() {
	var (
		seed       = flag.Uint64("seed", 1, "galaxy seed")
		radius     = flag.Int("radius", 1, "sectors to sweep in each direction from the origin")
		maxSystems = flag.Int("max-systems", 30, "cap on systems generated per sector")
		logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	if err := logkit.Init(logkit.Config{Level: *logLevel, ToStdout: true}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logkit.Close()
	log = logkit.WithComponent("galaxydemo")

	log.Info("generating galaxy: seed=%d radius=%d", *seed, *radius)

	var totalSystems, totalPlanets, totalHabitable int
	for x := -*radius; x <= *radius; x++ {
		for y := -*radius; y <= *radius; y++ {
			for z := -*radius; z <= *radius; z++ {
				s := sector.Generate(*seed, sector.Coord{X: int32(x), Y: int32(y), Z: int32(z)}, *maxSystems)
				totalSystems += len(s.Systems)
				for _, sys := range s.Systems {
					totalPlanets += len(sys.Planets)
					for _, p := range sys.Planets {
						if p.HabitabilityIndex > 0.3 {
							totalHabitable++
						}
					}
				}
			}
		}
	}

	fmt.Printf("systems: %d\n", totalSystems)
	fmt.Printf("planets: %d\n", totalPlanets)
	fmt.Printf("potentially habitable planets: %d\n", totalHabitable)
}
