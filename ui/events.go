package ui

// EventType names a user interaction with the page
type EventType string

// events raised by the page
const (
	UserIconClicked   EventType = "user-icon:click"
	OpenLoginClicked  EventType = "open-login:click"
	LogoutClicked     EventType = "logout:click"
	LoginSubmitted    EventType = "login-form:submit"
	SignupSubmitted   EventType = "signup-form:submit"
	CloseClicked      EventType = "close:click"
	BackgroundClicked EventType = "modal-background:click"
)

// Event is a user interaction. Modal is set for close and background clicks.
type Event struct {
	Type  EventType
	Modal Modal
}

// Handler handles an Event
type Handler func(Event)

// EventSource lets handlers be registered for page events
type EventSource interface {
	On(eventType EventType, handler Handler)
}

// RemovalControl is the control that removes one participant from an activity.
// It belongs to a single render of the activities list.
type RemovalControl struct {
	Activity string
	Email    string
	Visible  bool
	onClick  func(*RemovalControl)
}

// OnClick sets the handler run when the control is clicked
func (c *RemovalControl) OnClick(handler func(*RemovalControl)) {
	c.onClick = handler
}

// Click runs the control's handler. Hidden controls cannot be clicked.
func (c *RemovalControl) Click() bool {
	if !c.Visible || c.onClick == nil {
		return false
	}
	c.onClick(c)
	return true
}
