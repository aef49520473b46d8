package tui

import (
	"errors"
	"strings"
	"time"

	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type createField int

const (
	fieldTitle createField = iota
	fieldDescription
	fieldPhoto
	fieldType
	fieldSubmit
	fieldCount
)

// itemTypeChoices cycles on the type field; the empty choice means the
// category default.
var itemTypeChoices = []model.ItemType{"", model.ItemTypeWallet, model.ItemTypeKey, model.ItemTypePhone, model.ItemTypeBag}

// createScreen is the report-lost/report-found form.
type createScreen struct {
	env *env
	id  int

	category model.Category
	width    int
	height   int

	title   textinput.Model
	desc    textarea.Model
	photo   photoField
	typeIdx int
	focus   createField

	submitting    bool
	pendingSubmit bool
	draft         nav.DraftParams
	spinner       spinner.Model
	dialog        *dialog
	notice        string
}

func newCreateScreen(e *env, gen int, params nav.Params) *createScreen {
	s := &createScreen{
		env:      e,
		id:       gen,
		category: model.ParseCategory(params.Get(nav.KeyType)),
		width:    80,
		height:   24,
		title:    textinput.New(),
		desc:     textarea.New(),
		photo:    newPhotoField("Path to a photo (optional)"),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if s.category == model.CategoryFound {
		s.title.Placeholder = "What did you find?"
	} else {
		s.title.Placeholder = "What did you lose?"
	}
	s.title.Prompt = ""
	s.desc.Placeholder = "Provide details about the item..."
	s.desc.ShowLineNumbers = false
	s.desc.Prompt = ""
	s.desc.SetHeight(4)
	s.layout()
	return s
}

func (s *createScreen) route() nav.Route { return nav.RouteCreate }
func (s *createScreen) gen() int         { return s.id }

func (s *createScreen) init() tea.Cmd {
	return s.focusField(fieldTitle)
}

func (s *createScreen) heading() string {
	if s.category == model.CategoryFound {
		return "Report Found Item"
	}
	return "Report Lost Item"
}

func (s *createScreen) focusField(f createField) tea.Cmd {
	var cmds []tea.Cmd
	if s.focus == fieldPhoto && f != fieldPhoto {
		cmds = append(cmds, s.photo.pick(s.env, s.id))
	}
	s.title.Blur()
	s.desc.Blur()
	s.photo.input.Blur()
	s.focus = f
	switch f {
	case fieldTitle:
		cmds = append(cmds, s.title.Focus())
	case fieldDescription:
		cmds = append(cmds, s.desc.Focus())
	case fieldPhoto:
		cmds = append(cmds, s.photo.input.Focus())
	}
	return tea.Batch(cmds...)
}

func (s *createScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case photoPickedMsg:
		return s.applyPhoto(msg)

	case submitDoneMsg:
		s.submitting = false
		s.env.log.Info("post submitted", "category", string(s.draft.Category), "refresh", s.draft.Refresh)
		draft := s.draft
		s.dialog = &dialog{
			title: "Success",
			body:  "Your post has been created!",
			ok:    navigateCmd(nav.RouteListing, draft.Encode()),
		}
		return nil

	case editorDoneMsg:
		text, changed, err := readEditorResult(msg)
		if err != nil {
			s.env.log.Warn("description editor", "err", err)
			s.dialog = errorDialog("Editor failed: " + err.Error())
			return nil
		}
		s.desc.SetValue(text)
		s.notice = "No changes from " + editorName()
		if changed {
			s.notice = "Updated from " + editorName()
		}
		return s.focusField(fieldDescription)

	case spinner.TickMsg:
		if !s.submitting {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		if ok, cmd := handleDialogKey(&s.dialog, msg); ok {
			return cmd
		}
		return s.handleKey(msg)
	}
	return s.updateFocused(msg)
}

func (s *createScreen) applyPhoto(msg photoPickedMsg) tea.Cmd {
	if !s.photo.apply(s.env, msg) || !s.pendingSubmit {
		return nil
	}
	s.pendingSubmit = false
	return s.submit()
}

func (s *createScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		// A pending submit dies with this screen's generation.
		return backCmd
	case "ctrl+s":
		return s.submit()
	}
	if s.submitting {
		return nil
	}
	s.notice = ""

	switch msg.String() {
	case "ctrl+e":
		cmd, err := editInEditor(s.id, s.desc.Value())
		if err != nil {
			s.dialog = errorDialog("Editor failed: " + err.Error())
			return nil
		}
		return cmd
	case "tab", "down":
		if msg.String() == "down" && s.focus == fieldDescription {
			break
		}
		return s.focusField((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		if msg.String() == "up" && s.focus == fieldDescription {
			break
		}
		return s.focusField((s.focus + fieldCount - 1) % fieldCount)
	case "enter":
		switch s.focus {
		case fieldTitle:
			return s.focusField(fieldDescription)
		case fieldPhoto:
			return s.focusField(fieldType)
		case fieldType:
			s.typeIdx = (s.typeIdx + 1) % len(itemTypeChoices)
			return nil
		case fieldSubmit:
			return s.submit()
		}
	case "left", "right", " ":
		if s.focus == fieldType {
			step := 1
			if msg.String() == "left" {
				step = len(itemTypeChoices) - 1
			}
			s.typeIdx = (s.typeIdx + step) % len(itemTypeChoices)
			return nil
		}
	}
	return s.updateFocused(msg)
}

func (s *createScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldTitle:
		s.title, cmd = s.title.Update(msg)
	case fieldDescription:
		s.desc, cmd = s.desc.Update(msg)
	case fieldPhoto:
		s.photo.input, cmd = s.photo.input.Update(msg)
	}
	return cmd
}

// submit validates, then waits for the simulated network delay. The draft
// is built once here; the success dialog forwards it unchanged.
func (s *createScreen) submit() tea.Cmd {
	if s.submitting {
		return nil
	}
	if err := nav.ValidateDraft(s.title.Value(), s.desc.Value()); err != nil {
		s.rejected(err)
		return nil
	}

	if !s.photo.resolved() {
		if cmd := s.photo.pick(s.env, s.id); cmd != nil {
			s.pendingSubmit = true
			return cmd
		}
	}
	if s.photo.err != "" {
		s.dialog = errorDialog("Could not use that photo: " + s.photo.err)
		return nil
	}

	draft, err := nav.NewDraft(
		s.title.Value(),
		s.desc.Value(),
		s.photo.uri,
		s.category,
		itemTypeChoices[s.typeIdx],
		s.env.now(),
		s.env.cfg.Catalog.DraftImage,
	)
	if err != nil {
		s.rejected(err)
		return nil
	}
	s.draft = draft
	s.submitting = true
	s.title.Blur()
	s.desc.Blur()
	s.photo.input.Blur()

	gen := s.id
	return tea.Batch(
		s.spinner.Tick,
		tea.Tick(s.env.cfg.UI.SubmitDelay, func(time.Time) tea.Msg { return submitDoneMsg{gen: gen} }),
	)
}

func (s *createScreen) rejected(err error) {
	text := err.Error()
	var ve nav.ValidationError
	if errors.As(err, &ve) {
		text = ve.Message
	}
	s.env.log.Info("create post rejected", "err", err)
	s.dialog = errorDialog(text)
}

func (s *createScreen) setSize(width, height int) {
	s.width, s.height = width, height
	s.layout()
}

func (s *createScreen) layout() {
	w := max(min(s.width-4, 72), 20)
	s.title.Width = w - 4
	s.photo.input.Width = w - 4
	s.desc.SetWidth(w - 2)
}

func (s *createScreen) view() string {
	header := styleHeader().Render(fitLine(glyphBack()+"  "+s.heading(), max(s.width-2, 1)))
	if s.dialog != nil {
		return header + "\n" + overlayDialog(s.width, max(s.height-1, 1), s.dialog)
	}

	bodyW := max(min(s.width-4, 72), 20)
	photoNote := s.photo.note(bodyW-2, "Add Photo: a placeholder is used when empty")

	descMarker := "  "
	if s.focus == fieldDescription {
		descMarker = lipgloss.NewStyle().Foreground(colorBrand).Render(glyphSelect()) + " "
	}
	descBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		MarginLeft(2).
		Render(s.desc.View())

	typeMarker := "  "
	if s.focus == fieldType {
		typeMarker = lipgloss.NewStyle().Foreground(colorBrand).Render(glyphSelect()) + " "
	}
	typeLabel := "default (" + string(s.env.cfg.Catalog.DefaultType(s.category)) + ")"
	if t := itemTypeChoices[s.typeIdx]; t != "" {
		typeLabel = glyphItemType(t) + " " + string(t)
	}

	submitLabel := "Submit Post"
	if s.submitting {
		submitLabel = s.spinner.View() + " Submitting..."
	}
	btn := lipgloss.NewStyle().Padding(0, 2).Foreground(colorBrandFg).Background(colorBrand)
	if s.focus == fieldSubmit && !s.submitting {
		btn = btn.Bold(true).Underline(true)
	}
	if s.submitting {
		btn = btn.Background(colorMuted)
	}

	parts := []string{
		header,
		styleMuted().Render(" " + s.notice),
		renderField(bodyW, "Title", s.title.View(), s.focus == fieldTitle, ""),
		"",
		descMarker + styleLabel().Render("Description"),
		descBox,
		"",
		renderField(bodyW, "Image", s.photo.input.View(), s.focus == fieldPhoto, photoNote),
		"",
		typeMarker + styleLabel().Render("Type") + "  " + glyphBack() + " " + typeLabel + " " + glyphArrow(),
		"",
		"  " + btn.Render(submitLabel),
		"",
		styleMuted().Render(" tab: next field  ctrl+e: edit description  ctrl+s: submit  esc: back"),
	}
	return fitBlock(strings.Join(parts, "\n"), s.width, s.height)
}
