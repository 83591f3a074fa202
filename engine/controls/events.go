package controls

import "slices"

// EventKind identifies one of the four lifecycle notifications.
type EventKind int

const (
	// EventWake fires when the controls start moving after a still frame.
	EventWake EventKind = iota
	// EventUpdate fires on every frame that changed the camera.
	EventUpdate
	// EventRest fires once per motion when every axis has settled under the rest threshold.
	EventRest
	// EventSleep fires on the first still frame after a moving one.
	EventSleep
)

func (k EventKind) String() string {
	switch k {
	case EventWake:
		return "wake"
	case EventUpdate:
		return "update"
	case EventRest:
		return "rest"
	case EventSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// Listener receives lifecycle notifications. Methods are called synchronously from Update
// in registration order and must not call Update themselves.
type Listener interface {
	OnWake()
	OnUpdate()
	OnRest()
	OnSleep()
}

// ListenerFuncs adapts optional callbacks to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Wake   func()
	Update func()
	Rest   func()
	Sleep  func()
}

var _ Listener = ListenerFuncs{}

func (l ListenerFuncs) OnWake() {
	if l.Wake != nil {
		l.Wake()
	}
}

func (l ListenerFuncs) OnUpdate() {
	if l.Update != nil {
		l.Update()
	}
}

func (l ListenerFuncs) OnRest() {
	if l.Rest != nil {
		l.Rest()
	}
}

func (l ListenerFuncs) OnSleep() {
	if l.Sleep != nil {
		l.Sleep()
	}
}

// EventFunc adapts a single callback taking the event kind to Listener.
type EventFunc func(kind EventKind)

var _ Listener = EventFunc(nil)

func (f EventFunc) OnWake()   { f(EventWake) }
func (f EventFunc) OnUpdate() { f(EventUpdate) }
func (f EventFunc) OnRest()   { f(EventRest) }
func (f EventFunc) OnSleep()  { f(EventSleep) }

type listenerEntry struct {
	id       int
	listener Listener
}

// AddListener registers l and returns a function that unregisters it.
// The returned function is safe to call more than once.
func (oc *orbitControls) AddListener(l Listener) (remove func()) {
	oc.nextListenerID++
	id := oc.nextListenerID
	oc.listeners = append(oc.listeners, listenerEntry{id: id, listener: l})
	// removal copies so a dispatch in progress keeps iterating the old slice
	return func() {
		oc.listeners = slices.DeleteFunc(slices.Clone(oc.listeners), func(entry listenerEntry) bool {
			return entry.id == id
		})
	}
}

// dispatch delivers kind to every registered listener.
func (oc *orbitControls) dispatch(kind EventKind) {
	if kind != EventUpdate {
		oc.logger.Debug("controls lifecycle", "event", kind)
	}
	for _, entry := range oc.listeners {
		switch kind {
		case EventWake:
			entry.listener.OnWake()
		case EventUpdate:
			entry.listener.OnUpdate()
		case EventRest:
			entry.listener.OnRest()
		case EventSleep:
			entry.listener.OnSleep()
		}
	}
}
