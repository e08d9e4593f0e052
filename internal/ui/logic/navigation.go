package logic

// Navigator handles navigation and viewport management for a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, totalItems int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = viewportHeight
	n.totalItems = totalItems
}

// MaxIndex returns the maximum selectable index, -1 for an empty list
func (n *Navigator) MaxIndex() int {
	return n.totalItems - 1
}

// SetSelectedIndex clamps index into the list, ensures it's visible and
// returns the resulting selection and viewport offset
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	if index > n.MaxIndex() {
		index = n.MaxIndex()
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move moves the selection by delta
func (n *Navigator) Move(delta int) (int, int) {
	return n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageSize returns how far a page up/down moves, leaving some overlap
func (n *Navigator) PageSize() int {
	pageSize := n.viewportHeight - 2
	if pageSize < 1 {
		pageSize = 1
	}
	return pageSize
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	// If selected item is above viewport, scroll up
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	// Determine if we'll have scroll indicators
	needsTopIndicator := n.viewportOffset > 0
	needsBottomIndicator := n.viewportOffset+n.viewportHeight < n.totalItems

	// Even without a bottom indicator the top one may push the last item out
	if !needsBottomIndicator && needsTopIndicator {
		if n.totalItems-n.viewportOffset > n.viewportHeight-1 {
			needsBottomIndicator = true
		}
	}

	effectiveHeight := n.viewportHeight
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	// If selected item is below effective viewport, scroll down
	if n.selectedIndex >= n.viewportOffset+effectiveHeight {
		newOffset := n.selectedIndex - effectiveHeight + 1

		maxPossibleOffset := n.totalItems - effectiveHeight
		if maxPossibleOffset < 0 {
			maxPossibleOffset = 0
		}
		if newOffset > maxPossibleOffset {
			newOffset = maxPossibleOffset
		}
		if newOffset < 0 {
			newOffset = 0
		}
		n.viewportOffset = newOffset
	}

	// The viewport should never run past the end of the list
	maxOffset := n.totalItems - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
