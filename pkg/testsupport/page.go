// Package testsupport provides in-memory page handles so behavior contracts
// can be exercised without a live browser environment.
package testsupport

import (
	"sync"

	"github.com/tejaspathak99/pagekit/pkg/page"
)

// FakeAlert records close calls. Close is safe to call repeatedly.
type FakeAlert struct {
	mu     sync.Mutex
	closes int
}

func (a *FakeAlert) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closes++
}

// Closed reports whether the alert has been dismissed at least once.
func (a *FakeAlert) Closed() bool {
	return a.CloseCalls() > 0
}

// CloseCalls reports how many times Close ran, including redundant calls.
func (a *FakeAlert) CloseCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closes
}

// FakeSubmitEvent records the outcome of a single submit attempt.
type FakeSubmitEvent struct {
	mu        sync.Mutex
	prevented bool
	stopped   bool
}

func (e *FakeSubmitEvent) PreventDefault() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prevented = true
}

func (e *FakeSubmitEvent) StopPropagation() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
}

// DefaultPrevented reports whether the submission was blocked.
func (e *FakeSubmitEvent) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}

// PropagationStopped reports whether the event was stopped.
func (e *FakeSubmitEvent) PropagationStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

// FakeForm implements page.Form with a scriptable validity state.
type FakeForm struct {
	mu       sync.Mutex
	valid    bool
	classes  []string
	handlers map[int]page.SubmitHandler
	nextID   int
}

// NewFakeForm constructs a form whose CheckValidity reports valid.
func NewFakeForm(valid bool) *FakeForm {
	return &FakeForm{valid: valid, handlers: map[int]page.SubmitHandler{}}
}

// SetValid flips the form's validity state between submit attempts.
func (f *FakeForm) SetValid(valid bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.valid = valid
}

func (f *FakeForm) CheckValidity() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

func (f *FakeForm) AddClass(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.classes {
		if existing == name {
			return
		}
	}
	f.classes = append(f.classes, name)
}

func (f *FakeForm) HasClass(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.classes {
		if existing == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the class list in addition order.
func (f *FakeForm) Classes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.classes...)
}

func (f *FakeForm) OnSubmit(handler page.SubmitHandler) page.Registration {
	if handler == nil {
		return page.RegistrationFunc(nil)
	}
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.handlers[id] = handler
	f.mu.Unlock()

	return page.RegistrationFunc(func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.handlers, id)
	})
}

// HandlerCount reports how many submit handlers are currently attached.
func (f *FakeForm) HandlerCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handlers)
}

// Submit simulates one submit attempt, invoking every attached handler with
// a fresh event, and returns that event for inspection.
func (f *FakeForm) Submit() *FakeSubmitEvent {
	f.mu.Lock()
	handlers := make([]page.SubmitHandler, 0, len(f.handlers))
	for id := 0; id < f.nextID; id++ {
		if handler, ok := f.handlers[id]; ok {
			handlers = append(handlers, handler)
		}
	}
	f.mu.Unlock()

	event := &FakeSubmitEvent{}
	for _, handler := range handlers {
		handler(event)
	}
	return event
}

// FakeDocument is an in-memory page.Document.
type FakeDocument struct {
	alerts []page.Alert
	forms  []page.Form
}

// NewFakeDocument wraps the supplied handles as a document.
func NewFakeDocument(alerts []page.Alert, forms []page.Form) *FakeDocument {
	return &FakeDocument{
		alerts: append([]page.Alert(nil), alerts...),
		forms:  append([]page.Form(nil), forms...),
	}
}

func (d *FakeDocument) Alerts() []page.Alert {
	return append([]page.Alert(nil), d.alerts...)
}

func (d *FakeDocument) Forms() []page.Form {
	return append([]page.Form(nil), d.forms...)
}
