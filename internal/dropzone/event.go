package dropzone

import "dropzone/internal/domain"

// FileList is the host's array-like list of files delivered by a picker or drop
type FileList interface {
	Len() int
	Item(i int) domain.File
}

// Files is a FileList over a slice
type Files []domain.File

func (f Files) Len() int               { return len(f) }
func (f Files) Item(i int) domain.File { return f[i] }

// toSlice copies a FileList into an ordered slice, skipping nil items
func toSlice(list FileList) []domain.File {
	if list == nil {
		return nil
	}
	out := make([]domain.File, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		if f := list.Item(i); f != nil {
			out = append(out, f)
		}
	}
	return out
}

// DragEvent is a drag gesture delivered by the host.
// Position is informational only.
type DragEvent struct {
	X, Y  int
	Files FileList // set on drop

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault stops the host from applying its own handling
func (e *DragEvent) PreventDefault() { e.defaultPrevented = true }

// StopPropagation stops the event from reaching enclosing handlers
func (e *DragEvent) StopPropagation() { e.propagationStopped = true }

func (e *DragEvent) DefaultPrevented() bool   { return e.defaultPrevented }
func (e *DragEvent) PropagationStopped() bool { return e.propagationStopped }

// Origin identifies where an activation came from
type Origin int

const (
	// OriginZone is an activation on the zone itself
	OriginZone Origin = iota
	// OriginPicker is an activation on the picker control
	OriginPicker
)

// Picker is the host's native file picker control
type Picker interface {
	// Open shows the picker
	Open()
	// Reset clears the picker's value so the same file can be picked again
	Reset()
}
