package events

// Publisher delivers events to interested parties. Stores accept a nil
// Publisher and simply skip notification.
type Publisher interface {
	Publish(event Event)
}

// Handler receives published events
type Handler func(Event)

// Compile-time verification that *Bus implements Publisher
var _ Publisher = (*Bus)(nil)
