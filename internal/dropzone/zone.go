package dropzone

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"dropzone/internal/domain"
	"dropzone/internal/eventbus"
)

// Options configure a zone. They are set once by the host.
type Options struct {
	Required bool
	Multiple bool
	Accept   []string // ordered accept patterns
	Name     string   // passthrough label

	// LegacyEvents also emits the deprecated "selected" notification
	LegacyEvents bool
}

// Flags are the presentational projections of zone state
type Flags struct {
	DragActive bool
	Errored    bool
	HasFiles   bool
}

// Zone reacts to picker and drag gestures, validates the delivered files
// and owns the resulting Selection. Methods must be called from a single
// goroutine, one event at a time.
type Zone struct {
	id         string
	opts       Options
	sel        Selection
	dragActive bool

	bus    eventbus.EventBus
	picker Picker
	logger *slog.Logger
}

// New creates a zone. bus and picker may be nil.
func New(opts Options, bus eventbus.EventBus, picker Picker) *Zone {
	opts.Accept = append([]string(nil), opts.Accept...)
	return &Zone{
		id:     uuid.NewString(),
		opts:   opts,
		bus:    bus,
		picker: picker,
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the logger used for selection diagnostics
func (z *Zone) SetLogger(logger *slog.Logger) {
	if logger != nil {
		z.logger = logger.With("zone", z.id)
	}
}

// SetPicker attaches the host's picker control
func (z *Zone) SetPicker(p Picker) {
	z.picker = p
}

// ID identifies the zone in notifications
func (z *Zone) ID() string { return z.id }

// Options returns a copy of the zone's configuration
func (z *Zone) Options() Options {
	opts := z.opts
	opts.Accept = append([]string(nil), z.opts.Accept...)
	return opts
}

// Selection gives read access to the selected files and last error
func (z *Zone) Selection() *Selection { return &z.sel }

// DragActive reports whether a drag is currently over the zone
func (z *Zone) DragActive() bool { return z.dragActive }

// Flags returns the current presentational flags
func (z *Zone) Flags() Flags {
	return Flags{
		DragActive: z.dragActive,
		Errored:    z.sel.Errored(),
		HasFiles:   z.sel.HasFiles(),
	}
}

// Activate handles a primary activation such as a click. Activations on the
// zone open the picker; activations that originate on the picker itself are
// ignored. It reports whether the picker was opened.
func (z *Zone) Activate(origin Origin) bool {
	if origin == OriginPicker || z.picker == nil {
		return false
	}
	z.logger.Debug("opening picker")
	z.picker.Open()
	return true
}

// PickerCompleted handles the picker delivering files.
// An empty list is ignored.
func (z *Zone) PickerCompleted(list FileList) error {
	files := toSlice(list)
	if len(files) == 0 {
		return nil
	}
	return z.selectFiles(files, false)
}

// DragEnter marks the zone drag-active
func (z *Zone) DragEnter(e *DragEvent) {
	suppress(e)
	z.dragActive = true
}

// DragOver keeps the zone drag-active
func (z *Zone) DragOver(e *DragEvent) {
	suppress(e)
	z.dragActive = true
}

// DragLeave clears the drag-active mark
func (z *Zone) DragLeave(e *DragEvent) {
	suppress(e)
	z.dragActive = false
}

// Drop clears the drag-active mark and selects the dropped files
func (z *Zone) Drop(e *DragEvent) error {
	suppress(e)
	z.dragActive = false

	var files []domain.File
	if e != nil {
		files = toSlice(e.Files)
	}
	if len(files) == 0 {
		return nil
	}
	return z.selectFiles(files, true)
}

func suppress(e *DragEvent) {
	if e == nil {
		return
	}
	e.PreventDefault()
	e.StopPropagation()
}

func (z *Zone) selectFiles(files []domain.File, dropped bool) error {
	z.sel.setError(nil)
	defer z.resetPicker()

	if dropped && !z.opts.Multiple && len(files) > 1 {
		return z.reject(newArityError(len(files)))
	}
	if err := Validate(files, z.opts.Accept); err != nil {
		return z.reject(err)
	}

	z.sel.setFiles(files)
	z.logger.Info("selection changed", "count", len(files), "dropped", dropped)

	if z.bus != nil {
		z.bus.Publish(eventbus.ChangeEvent{Source: z.id, Files: z.sel.Files()})
		if z.opts.LegacyEvents {
			z.bus.Publish(eventbus.SelectedEvent{Source: z.id, Files: z.sel.Files()})
		}
	}
	return nil
}

func (z *Zone) reject(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		z.logger.Warn("selection rejected", "kind", verr.Kind.String(), "error", verr.Message)
	}

	if z.sel.setError(err) && z.bus != nil {
		z.bus.Publish(eventbus.ErrorEvent{Source: z.id, Err: err})
	}
	return err
}

func (z *Zone) resetPicker() {
	if z.picker != nil {
		z.picker.Reset()
	}
}
