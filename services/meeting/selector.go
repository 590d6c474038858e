package meeting

import "meetslot/models"

// runs merges consecutive atomic ranges accepted by keep and returns the
// merged ranges lasting at least duration minutes.
func runs(atoms []atomicRange, duration int, keep func(atomicRange) bool) []models.TimeRange {
	var out []models.TimeRange
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if end-start >= duration && end > start {
			out = append(out, models.MustRange(start, end))
		}
		start = -1
	}
	for _, a := range atoms {
		if keep(a) {
			if start < 0 {
				start = a.when.Start()
			}
			continue
		}
		flush(a.when.Start())
	}
	if len(atoms) > 0 {
		flush(atoms[len(atoms)-1].when.End())
	}
	return out
}

// optionalSeeds returns every non-empty optional attendee set shared by a
// window of adjacent mandatory-free atoms lasting at least duration minutes,
// keeping only the sets of largest size.
func optionalSeeds(atoms []atomicRange, duration int) []attendeeSet {
	best := 0
	seen := map[string]bool{}
	var seeds []attendeeSet
	for i := range atoms {
		if !atoms[i].mandatoryFree {
			continue
		}
		common := atoms[i].freeOptional
		total := 0
		for j := i; j < len(atoms) && atoms[j].mandatoryFree; j++ {
			common = common.intersect(atoms[j].freeOptional)
			if len(common) == 0 || len(common) < best {
				break
			}
			total += atoms[j].when.Duration()
			if total < duration {
				continue
			}
			if len(common) > best {
				best = len(common)
				seen = map[string]bool{}
				seeds = nil
			}
			if k := common.key(); !seen[k] {
				seen[k] = true
				seeds = append(seeds, common)
			}
		}
	}
	return seeds
}

// optionalFit expands each seed set to its maximal ranges and picks one set.
// Ties between equally large sets go to the set whose first range starts
// earliest. Two such sets cannot share a first start: their union would then
// fit too and be larger.
func optionalFit(atoms []atomicRange, duration int) []models.TimeRange {
	var chosen []models.TimeRange
	for _, seed := range optionalSeeds(atoms, duration) {
		ranges := runs(atoms, duration, func(a atomicRange) bool {
			return a.mandatoryFree && a.freeOptional.containsAll(seed)
		})
		if len(ranges) == 0 {
			continue
		}
		if chosen == nil || ranges[0].Start() < chosen[0].Start() {
			chosen = ranges
		}
	}
	return chosen
}

// mandatoryFit merges all mandatory-free atoms regardless of optional attendees.
func mandatoryFit(atoms []atomicRange, duration int) []models.TimeRange {
	return runs(atoms, duration, func(a atomicRange) bool { return a.mandatoryFree })
}

// selectRanges applies the optional-first policy with mandatory-only fallback.
// Without mandatory attendees the fallback is skipped when optional attendees
// were requested: their availability alone decides the answer.
func selectRanges(atoms []atomicRange, duration int, hasMandatory, hasOptional bool) []models.TimeRange {
	if hasOptional {
		if ranges := optionalFit(atoms, duration); len(ranges) > 0 {
			return dedupe(ranges)
		}
		if !hasMandatory {
			return []models.TimeRange{}
		}
	}
	return dedupe(mandatoryFit(atoms, duration))
}

// dedupe sorts by start and removes identical ranges.
func dedupe(ranges []models.TimeRange) []models.TimeRange {
	models.SortByStart(ranges)
	out := make([]models.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if len(out) > 0 && out[len(out)-1].Equal(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
