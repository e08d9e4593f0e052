package ui

import (
	"holoholo/internal/debounce"
	"holoholo/internal/storefront"
)

// timerFiredMsg is posted by the LoopScheduler when a timer elapses
type timerFiredMsg struct {
	handle debounce.Handle
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	title string
	err   error
}

// shareResultMsg contains the result of copying a share link
type shareResultMsg struct {
	productID int
	name      string
	platform  storefront.Platform
	url       string
	err       error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
