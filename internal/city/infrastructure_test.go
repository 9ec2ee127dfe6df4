package city

import "testing"

func TestPlacementUniqueBuildings(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		buildings := GenerateSkyline(NewRand(seed), 80, 1920, 1080)
		table := PlaceInfrastructure(NewRand(seed^0xF00), buildings)

		seen := map[int]bool{}
		for _, p := range table {
			if seen[p.Building] {
				t.Fatalf("seed %d: building %d assigned twice", seed, p.Building)
			}
			seen[p.Building] = true
			if p.Building < 0 || p.Building >= len(buildings) {
				t.Fatalf("seed %d: placement index %d out of range", seed, p.Building)
			}
		}
	}
}

func TestEndToEndSparseCounts(t *testing.T) {
	r := NewRand(1234)
	buildings := GenerateSkyline(r, 100, 1920, 1080)
	table := PlaceInfrastructure(r, buildings)

	// Exactly two placements of every sparse kind across the whole skyline.
	counts := map[FeatureMask]int{}
	for _, p := range table {
		counts[p.Feature]++
	}
	for _, kind := range SparseFeatures {
		if counts[kind] != SparseFeatureCopies {
			t.Errorf("feature %b: %d placements, want %d", kind, counts[kind], SparseFeatureCopies)
		}
	}

	// No building carries more than one sparse bit; the crane is the only
	// extra bit allowed, and only on otherwise-bare megatall towers.
	for i, b := range buildings {
		if n := b.Features.SparseCount(); n > 1 {
			t.Errorf("building %d: %d sparse feature bits set", i, n)
		}
		if b.Features.HasAny(FeatureCrane) {
			if b.Floors <= MegatallFloors {
				t.Errorf("building %d: crane on a %d-floor building", i, b.Floors)
			}
			if b.Features.SparseCount() != 0 {
				t.Errorf("building %d: crane alongside a sparse feature", i)
			}
		}
	}
}

func TestMegatallFallbackCrane(t *testing.T) {
	r := NewRand(5)
	buildings := GenerateSkyline(r, 150, 1920, 1080)
	PlaceInfrastructure(r, buildings)
	for i, b := range buildings {
		if b.Floors > MegatallFloors && b.Features == 0 {
			t.Errorf("building %d: megatall (%d floors) left bare", i, b.Floors)
		}
	}
}

func TestTinySkylineDoesNotLoop(t *testing.T) {
	// Fewer buildings than table entries: the allocator must terminate and
	// still never double-book.
	buildings := GenerateSkyline(NewRand(3), 2, 400, 600)
	table := PlaceInfrastructure(NewRand(3), buildings)
	if len(table) > len(buildings) {
		t.Fatalf("placed %d features on %d buildings", len(table), len(buildings))
	}
	seen := map[int]bool{}
	for _, p := range table {
		if seen[p.Building] {
			t.Fatalf("building %d assigned twice", p.Building)
		}
		seen[p.Building] = true
	}
}

func TestEnsureInfrastructureIdempotent(t *testing.T) {
	c := NewCity(DefaultOptions(), 1920, 1080)
	before := make([]Placement, len(c.Infra))
	copy(before, c.Infra)

	c.EnsureInfrastructure()
	c.EnsureInfrastructure()

	if len(c.Infra) != len(before) {
		t.Fatalf("table size changed on re-entry: %d -> %d", len(before), len(c.Infra))
	}
	for i := range before {
		if c.Infra[i] != before[i] {
			t.Fatalf("table entry %d changed on re-entry", i)
		}
	}
}
