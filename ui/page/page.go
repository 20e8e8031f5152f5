package page

import (
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/ui"
)

const loadingText = "Loading activities..."

// Message is the state of a message region
type Message struct {
	Text     string
	Severity ui.Severity
	Visible  bool
}

// Page is an in-memory ui.View. It keeps the state of every region of the
// activities page and renders it as HTML. Like a browser document it is not
// safe for concurrent use; callers serialise access through the event loop.
type Page struct {
	cfg      *config.AppConfig
	handlers map[ui.EventType][]ui.Handler

	userDisplay   string
	authenticated bool
	signupVisible bool

	cards     []ui.ActivityCard
	controls  []*ui.RemovalControl
	listError string
	options   []string

	messages map[ui.MessageRegion]Message
	modals   map[ui.Modal]bool

	loginForm  ui.LoginForm
	signupForm ui.SignupForm
}

// New creates a page in its initial, not yet loaded state
func New(cfg *config.AppConfig) *Page {
	return &Page{
		cfg:         cfg,
		handlers:    map[ui.EventType][]ui.Handler{},
		userDisplay: cfg.Messages.NotLoggedIn,
		listError:   loadingText,
		messages:    map[ui.MessageRegion]Message{},
		modals:      map[ui.Modal]bool{},
	}
}

// On registers handler for events of the given type
func (p *Page) On(eventType ui.EventType, handler ui.Handler) {
	p.handlers[eventType] = append(p.handlers[eventType], handler)
}

// Dispatch runs the handlers registered for the event in registration order
func (p *Page) Dispatch(event ui.Event) {
	for _, handler := range p.handlers[event.Type] {
		handler(event)
	}
}

// FillLoginForm sets the values of the login form fields
func (p *Page) FillLoginForm(username, password string) {
	p.loginForm = ui.LoginForm{Username: username, Password: password}
}

// FillSignupForm sets the values of the sign-up form fields
func (p *Page) FillSignupForm(email, activity string) {
	p.signupForm = ui.SignupForm{Email: email, Activity: activity}
}

// ClickRemoval clicks the visible removal control of email in activity.
// It reports whether such a control exists.
func (p *Page) ClickRemoval(activity, email string) bool {
	for _, control := range p.controls {
		if control.Activity == activity && control.Email == email {
			return control.Click()
		}
	}
	return false
}

func (p *Page) SetUserDisplay(text string) {
	p.userDisplay = text
}

func (p *Page) SetAuthControls(authenticated bool) {
	p.authenticated = authenticated
}

func (p *Page) SetSignupVisible(visible bool) {
	p.signupVisible = visible
}

func (p *Page) RenderActivities(cards []ui.ActivityCard) []*ui.RemovalControl {
	p.cards = append([]ui.ActivityCard(nil), cards...)
	p.listError = ""
	p.controls = nil

	for _, card := range cards {
		for _, email := range card.Participants {
			p.controls = append(p.controls, &ui.RemovalControl{
				Activity: card.Name,
				Email:    email,
			})
		}
	}

	return append([]*ui.RemovalControl(nil), p.controls...)
}

func (p *Page) RenderActivitiesError(text string) {
	p.cards = nil
	p.controls = nil
	p.listError = text
}

func (p *Page) RemovalControls() []*ui.RemovalControl {
	return append([]*ui.RemovalControl(nil), p.controls...)
}

func (p *Page) SetActivityOptions(names []string) {
	p.options = append([]string(nil), names...)
}

func (p *Page) ShowMessage(region ui.MessageRegion, text string, severity ui.Severity) {
	p.messages[region] = Message{Text: text, Severity: severity, Visible: true}
}

func (p *Page) HideMessage(region ui.MessageRegion) {
	message := p.messages[region]
	message.Visible = false
	p.messages[region] = message
}

func (p *Page) ShowModal(modal ui.Modal) {
	p.modals[modal] = true
}

func (p *Page) HideModal(modal ui.Modal) {
	p.modals[modal] = false
}

func (p *Page) LoginForm() ui.LoginForm {
	return p.loginForm
}

func (p *Page) ResetLoginForm() {
	p.loginForm = ui.LoginForm{}
}

func (p *Page) SignupForm() ui.SignupForm {
	return p.signupForm
}

func (p *Page) ResetSignupForm() {
	p.signupForm = ui.SignupForm{}
}

// UserDisplay returns the text of the user label
func (p *Page) UserDisplay() string {
	return p.userDisplay
}

// LoginTriggerVisible reports whether the controls that open the login modal are shown
func (p *Page) LoginTriggerVisible() bool {
	return !p.authenticated
}

// LogoutVisible reports whether the logout control is shown
func (p *Page) LogoutVisible() bool {
	return p.authenticated
}

// SignupVisible reports whether the sign-up form container is shown
func (p *Page) SignupVisible() bool {
	return p.signupVisible
}

// Cards returns the rendered activity cards
func (p *Page) Cards() []ui.ActivityCard {
	return append([]ui.ActivityCard(nil), p.cards...)
}

// ListText returns the text shown in place of the activities list, if any
func (p *Page) ListText() string {
	return p.listError
}

// Options returns the activity options of the sign-up form
func (p *Page) Options() []string {
	return append([]string(nil), p.options...)
}

// Message returns the state of a message region
func (p *Page) Message(region ui.MessageRegion) Message {
	return p.messages[region]
}

// ModalVisible reports whether modal is shown
func (p *Page) ModalVisible(modal ui.Modal) bool {
	return p.modals[modal]
}
