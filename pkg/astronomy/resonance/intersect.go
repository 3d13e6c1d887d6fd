package resonance

// crossesWindow reports whether the curve of r crosses the left, right or
// bottom edge of w, tested in that order.
//
// The top edge is never tested. A curve entering only through the top and
// leaving through the same edge is therefore not reported.
func crossesWindow(r ThreeBody, w Window) bool {
	sing := r.Singularity()
	left := r.Value(w.XMin)
	right := r.Value(w.XMax)
	bottom := r.Inverse(w.YMin)

	if sing < w.XMin || sing > w.XMax {
		switch {
		case w.ContainsY(left):
			return true
		case w.ContainsY(right):
			return true
		default:
			return w.ContainsX(bottom)
		}
	}

	// The asymptote lies inside [XMin, XMax]: an edge sitting exactly on it
	// is approached, not crossed, and the bottom edge is split in two.
	switch {
	case sing != w.XMin && w.ContainsY(left):
		return true
	case sing != w.XMax && w.ContainsY(right):
		return true
	case bottom >= w.XMin && bottom < sing:
		return true
	default:
		return bottom > sing && bottom <= w.XMax
	}
}
