package tui

import (
	"strings"

	"lostfound-cli/internal/nav"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type authField int

const (
	authProfile authField = iota
	authUsername
	authEmail
	authPassword
	authConfirm
	authSubmit
	authToggle
)

var (
	loginFields  = []authField{authEmail, authPassword, authSubmit, authToggle}
	signupFields = []authField{authProfile, authUsername, authEmail, authPassword, authConfirm, authSubmit, authToggle}
)

// authScreen is a gate only: nothing is verified. Login and sign-up both
// replace the stack with the listing.
type authScreen struct {
	env *env
	id  int

	welcome bool
	login   bool
	focus   int

	profile  photoField
	username textinput.Model
	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model

	pendingSubmit bool
	dialog        *dialog
	width         int
	height        int
}

func newAuthScreen(e *env, gen int, _ nav.Params) *authScreen {
	s := &authScreen{
		env:      e,
		id:       gen,
		welcome:  true,
		login:    true,
		profile:  newPhotoField("Path to a profile picture"),
		username: newAuthInput("Username"),
		email:    newAuthInput("Email"),
		password: newAuthInput("Password"),
		confirm:  newAuthInput("Confirm Password"),
		width:    80,
		height:   24,
	}
	s.password.EchoMode = textinput.EchoPassword
	s.confirm.EchoMode = textinput.EchoPassword
	s.layout()
	return s
}

func newAuthInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	return in
}

func (s *authScreen) route() nav.Route { return nav.RouteAuth }
func (s *authScreen) gen() int         { return s.id }
func (s *authScreen) init() tea.Cmd    { return nil }

func (s *authScreen) fields() []authField {
	if s.login {
		return loginFields
	}
	return signupFields
}

func (s *authScreen) focused() authField {
	f := s.fields()
	return f[min(s.focus, len(f)-1)]
}

func (s *authScreen) input(f authField) *textinput.Model {
	switch f {
	case authProfile:
		return &s.profile.input
	case authUsername:
		return &s.username
	case authEmail:
		return &s.email
	case authPassword:
		return &s.password
	case authConfirm:
		return &s.confirm
	}
	return nil
}

func (s *authScreen) setFocus(i int) tea.Cmd {
	var cmds []tea.Cmd
	n := len(s.fields())
	i = (i%n + n) % n
	if s.focused() == authProfile && s.fields()[i] != authProfile {
		cmds = append(cmds, s.profile.pick(s.env, s.id))
	}
	for _, f := range signupFields {
		if in := s.input(f); in != nil {
			in.Blur()
		}
	}
	s.focus = i
	if in := s.input(s.focused()); in != nil {
		cmds = append(cmds, in.Focus())
	}
	return tea.Batch(cmds...)
}

func (s *authScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case photoPickedMsg:
		if !s.profile.apply(s.env, msg) || !s.pendingSubmit {
			return nil
		}
		s.pendingSubmit = false
		return s.submit()

	case tea.KeyMsg:
		if ok, cmd := handleDialogKey(&s.dialog, msg); ok {
			return cmd
		}
		return s.handleKey(msg)
	}

	if in := s.input(s.focused()); in != nil && !s.welcome {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (s *authScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.welcome {
		switch msg.String() {
		case "enter", " ":
			s.welcome = false
			return s.setFocus(0)
		case "q", "esc":
			return tea.Quit
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		s.welcome = true
		return nil
	case "tab", "down":
		return s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s.setFocus(s.focus - 1)
	case "ctrl+s":
		return s.submit()
	case "enter":
		switch s.focused() {
		case authSubmit:
			return s.submit()
		case authToggle:
			s.login = !s.login
			s.pendingSubmit = false
			return s.setFocus(0)
		default:
			return s.setFocus(s.focus + 1)
		}
	}

	if in := s.input(s.focused()); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (s *authScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.email.Value())
	if s.login {
		if email == "" || s.password.Value() == "" {
			s.dialog = errorDialog("Please enter both email and password")
			return nil
		}
		s.env.log.Info("login")
		return replaceCmd(nav.RouteListing, nil)
	}

	username := strings.TrimSpace(s.username.Value())
	if email == "" || username == "" || s.password.Value() == "" || s.confirm.Value() == "" || s.profile.ref() == "" {
		s.dialog = errorDialog("Please fill all fields including profile picture")
		return nil
	}
	if !s.profile.resolved() {
		if cmd := s.profile.pick(s.env, s.id); cmd != nil {
			s.pendingSubmit = true
			return cmd
		}
	}
	if s.profile.err != "" || s.profile.uri == "" {
		s.dialog = errorDialog("Please fill all fields including profile picture")
		return nil
	}
	if s.password.Value() != s.confirm.Value() {
		s.dialog = errorDialog("Passwords don't match!")
		return nil
	}
	s.env.log.Info("sign up", "username", username)
	return replaceCmd(nav.RouteListing, nav.AuthParams{Username: username, ProfileImage: s.profile.uri}.Encode())
}

func (s *authScreen) setSize(width, height int) {
	s.width, s.height = width, height
	s.layout()
}

func (s *authScreen) layout() {
	w := max(min(s.width-8, 48), 16)
	for _, f := range signupFields {
		if in := s.input(f); in != nil {
			in.Width = w - 4
		}
	}
}

func (s *authScreen) view() string {
	if s.dialog != nil {
		return overlayDialog(s.width, s.height, s.dialog)
	}
	if s.welcome {
		return s.viewWelcome()
	}

	bodyW := max(min(s.width-8, 48), 16)
	title := "Login"
	toggle := "Don't have an account? Sign Up"
	if !s.login {
		title = "Sign Up"
		toggle = "Already have an account? Login"
	}

	parts := []string{styleHeader().Render(title), ""}
	labels := map[authField]string{
		authProfile:  "Profile Picture",
		authUsername: "Username",
		authEmail:    "Email",
		authPassword: "Password",
		authConfirm:  "Confirm Password",
	}
	for _, f := range s.fields() {
		focused := f == s.focused()
		switch f {
		case authSubmit:
			btn := lipgloss.NewStyle().Padding(0, 2).Foreground(colorBrandFg).Background(colorBrand)
			if focused {
				btn = btn.Bold(true).Underline(true)
			}
			parts = append(parts, "", "  "+btn.Render(title))
		case authToggle:
			st := lipgloss.NewStyle().Foreground(colorAccent)
			if focused {
				st = st.Underline(true).Bold(true)
			}
			parts = append(parts, "", "  "+st.Render(toggle))
		default:
			note := ""
			if f == authProfile {
				note = s.profile.note(bodyW-2, "Upload Profile Picture")
			}
			parts = append(parts, renderField(bodyW, labels[f], s.input(f).View(), focused, note))
		}
	}
	parts = append(parts, "", styleMuted().Render("tab: next  enter: select  esc: welcome  ctrl+c: quit"))

	form := strings.Join(parts, "\n")
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, form)
}

func (s *authScreen) viewWelcome() string {
	icon := lipgloss.NewStyle().Foreground(colorBrand).Bold(true).Render(glyphSearch())
	btn := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(colorBrandFg).
		Background(colorBrand).
		Render("Get Started " + glyphArrow())
	body := lipgloss.JoinVertical(lipgloss.Center,
		icon,
		"",
		styleLabel().Render("Welcome to Lost & Found Hub"),
		styleLabel().Render("Let's Reunite What's Lost"),
		"",
		btn,
		"",
		styleMuted().Render("enter: continue  q: quit"),
	)
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, body)
}
