package sector_test

import (
	"testing"

	"github.com/deepfield/genesis/internal/sector"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := sector.Generate(1, sector.Coord{X: 3, Y: -2, Z: 0}, 30)
	b := sector.Generate(1, sector.Coord{X: 3, Y: -2, Z: 0}, 30)

	if len(a.Systems) != len(b.Systems) {
		t.Fatalf("system count differs: %d != %d", len(a.Systems), len(b.Systems))
	}
	for i := range a.Systems {
		if a.Systems[i].ID != b.Systems[i].ID {
			t.Fatalf("system %d ID differs", i)
		}
	}
}

func TestGenerateVariesWithCoord(t *testing.T) {
	a := sector.Generate(1, sector.Coord{X: 0, Y: 0, Z: 0}, 30)
	b := sector.Generate(1, sector.Coord{X: 1, Y: 0, Z: 0}, 30)

	if len(a.Systems) == len(b.Systems) {
		same := true
		for i := range a.Systems {
			if a.Systems[i].ID != b.Systems[i].ID {
				same = false
				break
			}
		}
		if same {
			t.Error("expected different coords to produce different sectors")
		}
	}
}

func TestSystemsStayNearSectorCenter(t *testing.T) {
	coord := sector.Coord{X: 5, Y: 5, Z: 5}
	s := sector.Generate(7, coord, 30)

	for _, sys := range s.Systems {
		cx := (float64(coord.X) + 0.5) * sector.SideLengthLY
		if dx := sys.Position.X - cx; dx < -sector.SideLengthLY || dx > sector.SideLengthLY {
			t.Errorf("system X %f too far from sector center %f", sys.Position.X, cx)
		}
	}
}

func TestGenerateCapsAtMaxSystems(t *testing.T) {
	coord := sector.Coord{X: 0, Y: 0, Z: 0}
	uncapped := sector.Generate(1, coord, 30)
	if len(uncapped.Systems) == 0 {
		t.Skip("seed/coord produced zero systems before capping; nothing to cap")
	}

	capped := sector.Generate(1, coord, 1)
	if len(capped.Systems) > 1 {
		t.Fatalf("capped sector has %d systems, want <= 1", len(capped.Systems))
	}
	if len(capped.Systems) > len(uncapped.Systems) {
		t.Fatalf("capped sector (%d) has more systems than uncapped (%d)", len(capped.Systems), len(uncapped.Systems))
	}
}
