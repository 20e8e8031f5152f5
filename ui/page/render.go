package page

import (
	"io"
	"strings"

	"github.com/unicsmcr/hs_activities/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// form actions of the rendered page, served by the frontend router
const (
	UserIconAction   = "/ui/user-icon"
	OpenLoginAction  = "/ui/open-login"
	LoginAction      = "/ui/login"
	LogoutAction     = "/ui/logout"
	SignupAction     = "/ui/signup"
	UnregisterAction = "/ui/unregister"
)

// CloseAction returns the form action of a modal's close control
func CloseAction(modal ui.Modal) string {
	return "/ui/modals/" + string(modal) + "/close"
}

// BackgroundAction returns the form action of a modal's background overlay
func BackgroundAction(modal ui.Modal) string {
	return "/ui/modals/" + string(modal) + "/background"
}

// Render writes the page as an HTML document
func (p *Page) Render(w io.Writer) error {
	return p.Node().Render(w)
}

// Node returns the page as a gomponents node
func (p *Page) Node() g.Node {
	return h.Doctype(
		h.HTML(
			g.Attr("lang", "en"),
			h.Head(
				h.Meta(g.Attr("charset", "UTF-8")),
				h.TitleEl(g.Text(p.cfg.Name)),
			),
			h.Body(
				h.Header(
					h.H1(g.Text(p.cfg.Name)),
					postButton(UserIconAction, h.ID("user-icon"), g.Text("👤")),
				),
				p.userMenuModal(),
				p.loginModal(),
				h.Main(
					h.Section(
						h.ID("activities-container"),
						h.H3(g.Text("Available Activities")),
						p.activitiesList(),
					),
					p.signupContainer(),
				),
			),
		),
	)
}

func (p *Page) userMenuModal() g.Node {
	return modal(ui.UserMenuModal, p.modals[ui.UserMenuModal],
		h.P(h.ID("user-display"), g.Text(p.userDisplay)),
		h.Div(
			h.ID("user-menu-buttons"),
			hiddenIf(p.authenticated),
			postButton(OpenLoginAction, h.ID("open-login-btn"), g.Text("Login")),
		),
		h.Div(
			h.ID("logout-section"),
			hiddenIf(!p.authenticated),
			postButton(LogoutAction, h.ID("logout-btn"), g.Text("Logout")),
		),
	)
}

func (p *Page) loginModal() g.Node {
	return modal(ui.LoginModal, p.modals[ui.LoginModal],
		h.H3(g.Text("Login")),
		h.Form(
			h.ID("login-form"),
			h.Method("post"),
			h.Action(LoginAction),
			field("username", "Username:", "text", p.loginForm.Username),
			field("password", "Password:", "password", ""),
			h.Button(h.Type("submit"), g.Text("Login")),
		),
		p.message(ui.LoginMessage),
	)
}

func (p *Page) activitiesList() g.Node {
	if p.listError != "" {
		return h.Div(h.ID("activities-list"), h.P(g.Text(p.listError)))
	}

	return h.Div(
		h.ID("activities-list"),
		g.Map(p.cards, p.activityCard),
	)
}

func (p *Page) activityCard(card ui.ActivityCard) g.Node {
	var participants g.Node
	if len(card.Participants) == 0 {
		participants = h.P(h.Em(g.Text(p.cfg.Messages.NoParticipants)))
	} else {
		participants = h.Div(
			h.Class("participants-section"),
			h.H5(g.Text("Participants:")),
			h.Ul(
				h.Class("participants-list"),
				g.Map(card.Participants, func(email string) g.Node {
					return p.participantRow(card.Name, email)
				}),
			),
		)
	}

	return h.Div(
		h.Class("activity-card"),
		h.H4(g.Text(card.Name)),
		h.P(g.Text(card.Description)),
		h.P(h.Strong(g.Text("Schedule:")), g.Text(" "+card.Schedule)),
		h.P(h.Strong(g.Text("Availability:")), g.Textf(" %d spots left", card.SpotsLeft)),
		h.Div(h.Class("participants-container"), participants),
	)
}

func (p *Page) participantRow(activity, email string) g.Node {
	display := "none"
	if control := p.control(activity, email); control != nil && control.Visible {
		display = "block"
	}

	return h.Li(
		h.Span(h.Class("participant-email"), g.Text(email)),
		h.Form(
			h.Method("post"),
			h.Action(UnregisterAction),
			hiddenInput("activity", activity),
			hiddenInput("email", email),
			h.Button(
				h.Type("submit"),
				h.Class("delete-btn"),
				g.Attr("data-activity", activity),
				g.Attr("data-email", email),
				g.Attr("style", "display: "+display+";"),
				g.Text("❌"),
			),
		),
	)
}

func (p *Page) signupContainer() g.Node {
	display := "none"
	if p.signupVisible {
		display = "block"
	}

	return h.Section(
		h.ID("signup-container"),
		g.Attr("style", "display: "+display+";"),
		h.H3(g.Text("Sign Up for an Activity")),
		h.Form(
			h.ID("signup-form"),
			h.Method("post"),
			h.Action(SignupAction),
			field("email", "Student Email:", "email", p.signupForm.Email),
			h.Div(
				h.Class("form-group"),
				h.Label(h.For("activity"), g.Text("Select Activity:")),
				h.Select(
					h.ID("activity"),
					h.Name("activity"),
					h.Required(),
					h.Option(h.Value(""), g.Text("-- Select an activity --")),
					g.Map(p.options, func(name string) g.Node {
						return h.Option(h.Value(name), g.If(name == p.signupForm.Activity, h.Selected()), g.Text(name))
					}),
				),
			),
			h.Button(h.Type("submit"), g.Text("Sign Up")),
		),
		p.message(ui.StatusMessage),
	)
}

func (p *Page) message(region ui.MessageRegion) g.Node {
	message := p.messages[region]
	classes := []string{}
	if message.Severity != "" {
		classes = append(classes, string(message.Severity))
	}
	if !message.Visible {
		classes = append(classes, "hidden")
	}

	return h.Div(h.ID(string(region)), h.Class(strings.Join(classes, " ")), g.Text(message.Text))
}

func (p *Page) control(activity, email string) *ui.RemovalControl {
	for _, control := range p.controls {
		if control.Activity == activity && control.Email == email {
			return control
		}
	}
	return nil
}

func modal(id ui.Modal, visible bool, content ...g.Node) g.Node {
	return h.Div(
		h.ID(string(id)),
		g.If(visible, h.Class("modal")),
		g.If(!visible, h.Class("modal hidden")),
		h.Form(
			h.Class("modal-background"),
			h.Method("post"),
			h.Action(BackgroundAction(id)),
			h.Button(h.Type("submit"), g.Attr("aria-label", "Close")),
		),
		h.Div(
			h.Class("modal-content"),
			postButton(CloseAction(id), h.Class("close"), g.Text("×")),
			g.Group(content),
		),
	)
}

func postButton(action string, children ...g.Node) g.Node {
	return h.Form(
		h.Method("post"),
		h.Action(action),
		h.Button(append([]g.Node{h.Type("submit")}, children...)...),
	)
}

func field(name, label, inputType, value string) g.Node {
	return h.Div(
		h.Class("form-group"),
		h.Label(h.For(name), g.Text(label)),
		h.Input(h.Type(inputType), h.ID(name), h.Name(name), h.Value(value), h.Required()),
	)
}

func hiddenInput(name, value string) g.Node {
	return h.Input(h.Type("hidden"), h.Name(name), h.Value(value))
}

func hiddenIf(hidden bool) g.Node {
	return g.If(hidden, h.Class("hidden"))
}
