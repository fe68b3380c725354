package page

// Alert is a handle to a dismissible notification element. Alerts are
// server-rendered; this package never creates them.
type Alert interface {
	// Close dismisses the alert. Closing an alert that is already gone is a
	// no-op; implementations must not surface an error for a double close.
	Close()
}

// SubmitEvent is the per-attempt event delivered to submit handlers.
type SubmitEvent interface {
	// PreventDefault blocks the default submission action.
	PreventDefault()
	// StopPropagation stops the event from reaching further handlers.
	StopPropagation()
}

// SubmitHandler reacts to a single submit attempt.
type SubmitHandler func(SubmitEvent)

// Form is a handle to a submittable form element.
type Form interface {
	// CheckValidity reports whether every constrained field is currently
	// valid, mirroring the native constraint-validation contract.
	CheckValidity() bool
	// AddClass adds a CSS marker class. Adding a class the form already
	// carries is a no-op.
	AddClass(name string)
	// HasClass reports whether the form carries the class.
	HasClass(name string) bool
	// OnSubmit registers a handler invoked on every submit attempt until the
	// returned registration is closed.
	OnSubmit(handler SubmitHandler) Registration
}

// Registration is a disposable token for an attached handler.
type Registration interface {
	Close()
}

// RegistrationFunc adapts a release function to the Registration interface.
type RegistrationFunc func()

func (f RegistrationFunc) Close() {
	if f != nil {
		f()
	}
}

// Document exposes the elements present on a page at the moment behaviors
// attach. Elements added later are not covered.
type Document interface {
	Alerts() []Alert
	Forms() []Form
}
