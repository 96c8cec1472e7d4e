package store

// Diff summarizes the difference between two store snapshots: paths
// present only in the newer snapshot, paths dropped from the older one,
// and paths present in both but holding different values. Every slice is
// sorted (inherited from EnumerateWritables' ordering).
type Diff struct {
	Added   []string
	Removed []string
	Changed []string
}

// DiffStores compares before against after and reports what changed
// (spec §6's "snapshot / load / diff" boundary operation).
func DiffStores(before, after *Store) Diff {
	var d Diff
	for _, e := range after.EnumerateWritables() {
		prior, ok := before.Get(e.Path)
		switch {
		case !ok:
			d.Added = append(d.Added, e.Path)
		case !prior.Equal(e.Value):
			d.Changed = append(d.Changed, e.Path)
		}
	}
	for _, e := range before.EnumerateWritables() {
		if _, ok := after.Get(e.Path); !ok {
			d.Removed = append(d.Removed, e.Path)
		}
	}
	return d
}
