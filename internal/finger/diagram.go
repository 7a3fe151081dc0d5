package finger

// Diagram tracks the highlighted region of the hand illustration.
// At most one region is highlighted at a time.
type Diagram struct {
	active Region
}

// Highlight clears the current region, then highlights region if it is set.
func (d *Diagram) Highlight(region Region) {
	d.Clear()
	if region == RegionNone {
		return
	}
	d.active = region
}

// Clear removes any highlight.
func (d *Diagram) Clear() {
	d.active = RegionNone
}

// Active returns the highlighted region, or RegionNone.
func (d *Diagram) Active() Region {
	return d.active
}

// IsActive reports whether region is the highlighted one.
func (d *Diagram) IsActive(region Region) bool {
	return region != RegionNone && d.active == region
}
