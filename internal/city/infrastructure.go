package city

// Placement pins one sparse feature instance to one building.
type Placement struct {
	Feature  FeatureMask
	Building int
}

// PlaceInfrastructure assigns SparseFeatureCopies instances of each sparse
// feature kind to distinct buildings. Real skylines carry a handful of these
// regardless of how many towers there are, so the count is global and fixed
// rather than a per-building probability roll.
//
// For each instance a random building index is resampled until an unoccupied
// one is found, bounded by len(buildings) attempts; an exhausted search skips
// that instance (a missing accessory beats an infinite loop). Buildings over
// the megatall floor threshold that end up with nothing get a maintenance
// crane so the tallest towers are never bare.
func PlaceInfrastructure(r *Rand, buildings []Building) []Placement {
	if len(buildings) == 0 {
		return nil
	}
	table := make([]Placement, 0, len(SparseFeatures)*SparseFeatureCopies)
	occupied := make(map[int]bool, len(SparseFeatures)*SparseFeatureCopies)

	for _, feature := range SparseFeatures {
		for inst := 0; inst < SparseFeatureCopies; inst++ {
			idx := -1
			for try := 0; try < len(buildings); try++ {
				cand := r.Intn(len(buildings))
				if cand < 0 || cand >= len(buildings) {
					continue
				}
				if !occupied[cand] {
					idx = cand
					break
				}
			}
			if idx < 0 {
				continue // skyline smaller than the table; skip this copy
			}
			occupied[idx] = true
			buildings[idx].Features |= feature
			table = append(table, Placement{Feature: feature, Building: idx})
		}
	}

	// Fallback rule: bare megatall towers get a crane.
	for i := range buildings {
		b := &buildings[i]
		if b.Floors > MegatallFloors && b.Features.SparseCount() == 0 {
			b.Features |= FeatureCrane
		}
	}
	return table
}
