package ui

// Severity is the kind of a message shown to the user
type Severity string

// message severities
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Modal identifies one of the overlay panels of the page
type Modal string

// modals of the page
const (
	UserMenuModal Modal = "user-menu-modal"
	LoginModal    Modal = "login-modal"
)

// Modals lists every modal of the page
var Modals = []Modal{UserMenuModal, LoginModal}

// MessageRegion identifies a region of the page that shows a single message
type MessageRegion string

// message regions of the page
const (
	StatusMessage MessageRegion = "message"
	LoginMessage  MessageRegion = "login-message"
)

// ActivityCard is the rendered form of one activity
type ActivityCard struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []string
}

// LoginForm holds the values of the login form fields
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// SignupForm holds the values of the sign-up form fields
type SignupForm struct {
	Email    string `validate:"required,email"`
	Activity string `validate:"required"`
}

// View is the page the controller renders into. Implementations are only
// ever called from the controller's event loop.
type View interface {
	EventSource

	SetUserDisplay(text string)
	// SetAuthControls shows the logout control when authenticated and the
	// login trigger otherwise
	SetAuthControls(authenticated bool)
	SetSignupVisible(visible bool)

	// RenderActivities replaces the activities list with cards and returns the
	// removal controls created for them. Controls of earlier renders are discarded.
	RenderActivities(cards []ActivityCard) []*RemovalControl
	// RenderActivitiesError replaces the activities list with text
	RenderActivitiesError(text string)
	// RemovalControls returns the removal controls of the latest render
	RemovalControls() []*RemovalControl
	// SetActivityOptions replaces the activity options of the sign-up form
	SetActivityOptions(names []string)

	ShowMessage(region MessageRegion, text string, severity Severity)
	HideMessage(region MessageRegion)

	ShowModal(modal Modal)
	HideModal(modal Modal)

	LoginForm() LoginForm
	ResetLoginForm()
	SignupForm() SignupForm
	ResetSignupForm()
}
