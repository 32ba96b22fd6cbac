package availability

import "bookwell/models"

// EffectiveProviderAvailability clips a provider's availability to a
// service's slot mask. An empty mask keeps the provider set unchanged.
// Otherwise, for each day the provider works, the first mask interval that
// overlaps the provider's window wins and the window is clipped to
// [max(starts), min(ends)]; days with no overlapping mask interval are
// dropped entirely. Providers carry at most one effective interval per day
// after masking.
func EffectiveProviderAvailability(providerSet, mask Set) Set {
	if len(mask) == 0 {
		return providerSet
	}

	effective := make(Set)
	for day, ivs := range providerSet {
		if len(ivs) == 0 {
			continue
		}
		p := ivs[0]
		for _, m := range mask[day] {
			if !Overlaps(p.Start, p.End, m.Start, m.End) {
				continue
			}
			effective[day] = []models.WeeklyInterval{{
				DayOfWeek: p.DayOfWeek,
				Start:     max(p.Start, m.Start),
				End:       min(p.End, m.End),
			}}
			break
		}
	}
	return effective
}

// CommonWindows intersects the effective provider availability with the
// consumer's availability. For each day present in both sets, every consumer
// interval overlapping the provider's single effective interval emits the
// overlap window [max(starts), min(ends)]. Days present on only one side
// are skipped. Pure: identical inputs always yield identical output.
func CommonWindows(effectiveProvider, consumerSet Set) Set {
	windows := make(Set)
	for day, pivs := range effectiveProvider {
		if len(pivs) == 0 {
			continue
		}
		p := pivs[0]
		for _, c := range consumerSet[day] {
			if !Overlaps(p.Start, p.End, c.Start, c.End) {
				continue
			}
			windows[day] = append(windows[day], models.WeeklyInterval{
				DayOfWeek: p.DayOfWeek,
				Start:     max(p.Start, c.Start),
				End:       min(p.End, c.End),
			})
		}
	}
	sortIntervals(windows)
	return windows
}
