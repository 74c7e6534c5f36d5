package models

// RegionFilter restricts which source rows contribute to the index.
// The zero value accepts every row.
type RegionFilter struct {
	regions []string
	set     map[string]struct{}
}

// NoRegionFilter returns a filter accepting every row.
func NoRegionFilter() RegionFilter {
	return RegionFilter{}
}

// NewRegionFilter builds a filter accepting exactly the given region values.
// Empty strings and duplicates are dropped; an empty result means no filter.
func NewRegionFilter(regions ...string) RegionFilter {
	f := RegionFilter{set: make(map[string]struct{}, len(regions))}
	for _, r := range regions {
		if r == "" {
			continue
		}
		if _, dup := f.set[r]; dup {
			continue
		}
		f.set[r] = struct{}{}
		f.regions = append(f.regions, r)
	}
	if len(f.regions) == 0 {
		return RegionFilter{}
	}
	return f
}

// Active reports whether the filter restricts anything.
func (f RegionFilter) Active() bool {
	return len(f.regions) > 0
}

// Accepts reports whether a row with the given region value passes.
// Comparison is exact string equality.
func (f RegionFilter) Accepts(region string) bool {
	if !f.Active() {
		return true
	}
	_, ok := f.set[region]
	return ok
}

// Regions returns the accepted regions in declaration order.
func (f RegionFilter) Regions() []string {
	out := make([]string, len(f.regions))
	copy(out, f.regions)
	return out
}
