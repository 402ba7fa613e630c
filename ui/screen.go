package ui

import (
	"sync"

	"github.com/boneycircuitry/megamega2612/controller"
)

// Screen holds the display line written by the controller's goroutines
// and read by the view on its poll tick.
type Screen struct {
	mu    sync.Mutex
	label string
	value string
}

var _ controller.Display = (*Screen)(nil)

// Show stores the current selection.
func (s *Screen) Show(label, value string) {
	s.mu.Lock()
	s.label = label
	s.value = value
	s.mu.Unlock()
}

// Line returns the stored selection.
func (s *Screen) Line() (label, value string) {
	s.mu.Lock()
	label = s.label
	value = s.value
	s.mu.Unlock()
	return
}
