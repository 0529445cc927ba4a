package ports

// Channel names a delivery mechanism for notifications.
type Channel string

const ChannelEmail Channel = "email"

// Notification is a plain description of an outbound message: which channel
// carries it and what it says. Rendering and delivery belong to the
// dispatcher consuming these.
type Notification struct {
	Channel Channel
	To      string
	Subject string
	Body    string
}

// Notifier accepts notifications for asynchronous delivery. Enqueue must not
// block the caller's request path beyond queue back-pressure.
type Notifier interface {
	Enqueue(n Notification)
}
