package tui

import (
	"strings"
	"time"

	"lostfound-cli/internal/listing"
	"lostfound-cli/internal/model"
	"lostfound-cli/internal/nav"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type listingTab int

const (
	tabLost listingTab = iota
	tabFound
	tabNotifications
	tabCount
)

const sidebarWidth = 30

var sidebarMenu = []string{"Notifications", "Report Lost Item", "Report Found Item", "Logout"}

// listingScreen is the home board: lost and found tabs over a snapshot that
// is populated asynchronously from the params it was navigated with.
type listingScreen struct {
	env *env
	id  int

	params nav.Params
	draft  nav.DraftParams
	auth   nav.AuthParams

	width  int
	height int

	tab     listingTab
	loading bool
	snap    listing.Snapshot

	list      list.Model
	spinner   spinner.Model
	search    textinput.Model
	searching bool
	sidebar   bool
	menuIdx   int
}

func newListingScreen(e *env, gen int, params nav.Params) *listingScreen {
	s := &listingScreen{
		env:     e,
		id:      gen,
		width:   80,
		height:  24,
		list:    newItemList(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:  textinput.New(),
	}
	s.search.Placeholder = "Search items..."
	s.search.Prompt = glyphSearch() + " "
	s.setParams(params)
	s.layout()
	return s
}

func (s *listingScreen) setParams(params nav.Params) {
	s.params = params.Clone()
	s.draft = nav.DecodeDraft(s.params)
	s.auth = nav.DecodeAuth(s.params)
	s.loading = true
	s.snap = listing.Snapshot{}
	s.list.SetItems(nil)
	if s.draft.HasDraft() {
		s.tab = tabLost
		if model.ParseCategory(string(s.draft.Category)) == model.CategoryFound {
			s.tab = tabFound
		}
	}
}

func (s *listingScreen) route() nav.Route { return nav.RouteListing }
func (s *listingScreen) gen() int         { return s.id }

func (s *listingScreen) init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.scheduleLoad())
}

// scheduleLoad populates after the configured delay. The result carries the
// generation it was scheduled for.
func (s *listingScreen) scheduleLoad() tea.Cmd {
	gen, draft, loader := s.id, s.draft, s.env.loader
	return tea.Tick(s.env.cfg.UI.LoadDelay, func(time.Time) tea.Msg {
		snap, err := loader.Load(draft)
		return loadDoneMsg{gen: gen, snap: snap, err: err}
	})
}

// renew rebuilds from scratch when the incoming params differ. The sign-up
// identity is kept when the new params do not carry one.
func (s *listingScreen) renew(gen int, params nav.Params) tea.Cmd {
	next := params.Clone()
	for _, k := range []string{nav.KeyUsername, nav.KeyProfileImage} {
		if next.Get(k) == "" && s.params.Get(k) != "" {
			next[k] = s.params.Get(k)
		}
	}
	if next.Equal(s.params) {
		return s.resume()
	}
	s.id = gen
	s.setParams(next)
	s.env.log.Info("listing rebuild", "gen", gen, "draft", s.draft.HasDraft())
	return s.init()
}

func (s *listingScreen) resume() tea.Cmd {
	if s.loading {
		return s.spinner.Tick
	}
	return nil
}

func (s *listingScreen) category() model.Category {
	if s.tab == tabFound {
		return model.CategoryFound
	}
	return model.CategoryLost
}

func (s *listingScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loadDoneMsg:
		s.loading = false
		s.snap = msg.snap
		if msg.err != nil {
			s.env.log.Error("populate listing failed", "err", msg.err, "gen", s.id)
		} else {
			s.env.log.Info("listing loaded", "gen", s.id,
				"lost", s.snap.Len(model.CategoryLost), "found", s.snap.Len(model.CategoryFound))
		}
		s.refresh()
		return nil

	case spinner.TickMsg:
		if !s.loading {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	if s.searching {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return cmd
	}
	return nil
}

func (s *listingScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.sidebar {
		return s.handleSidebarKey(msg)
	}
	if s.searching && s.search.Focused() {
		switch msg.String() {
		case "esc":
			s.closeSearch()
			return nil
		case "enter", "down":
			s.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		s.refresh()
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "m":
		s.sidebar = true
		s.menuIdx = 0
		s.layout()
		return nil
	case "/":
		if !s.searching {
			s.searching = true
			s.layout()
		}
		return s.search.Focus()
	case "esc":
		if s.searching {
			s.closeSearch()
		}
		return nil
	case "tab", "right", "l":
		s.setTab((s.tab + 1) % tabCount)
		return nil
	case "shift+tab", "left", "h":
		s.setTab((s.tab + tabCount - 1) % tabCount)
		return nil
	case "1":
		s.setTab(tabLost)
		return nil
	case "2":
		s.setTab(tabFound)
		return nil
	case "3":
		s.setTab(tabNotifications)
		return nil
	case "n":
		return pushCmd(nav.RouteCreate, nav.CategoryParams(s.category()))
	case "enter":
		if it, ok := s.selected(); ok {
			return pushCmd(nav.RouteDetail, nav.DetailFromItem(it).Encode())
		}
		return nil
	}

	if s.loading || s.tab == tabNotifications {
		return nil
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return cmd
}

func (s *listingScreen) handleSidebarKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "m":
		s.closeSidebar()
	case "up", "k", "ctrl+p":
		s.menuIdx = (s.menuIdx + len(sidebarMenu) - 1) % len(sidebarMenu)
	case "down", "j", "ctrl+n":
		s.menuIdx = (s.menuIdx + 1) % len(sidebarMenu)
	case "enter":
		s.closeSidebar()
		switch s.menuIdx {
		case 0:
			s.setTab(tabNotifications)
		case 1:
			return pushCmd(nav.RouteCreate, nav.CategoryParams(model.CategoryLost))
		case 2:
			return pushCmd(nav.RouteCreate, nav.CategoryParams(model.CategoryFound))
		case 3:
			s.env.log.Info("logout")
			return replaceCmd(nav.RouteAuth, nil)
		}
	}
	return nil
}

func (s *listingScreen) closeSidebar() {
	s.sidebar = false
	s.layout()
}

func (s *listingScreen) closeSearch() {
	s.searching = false
	s.search.SetValue("")
	s.search.Blur()
	s.layout()
	s.refresh()
}

func (s *listingScreen) setTab(t listingTab) {
	if s.tab == t {
		return
	}
	s.tab = t
	s.list.Select(0)
	s.refresh()
}

// visible is the current tab's items after the search filter.
func (s *listingScreen) visible() []model.Item {
	if s.loading || s.tab == tabNotifications {
		return nil
	}
	return listing.Filter(s.snap.Items(s.category()), s.search.Value())
}

func (s *listingScreen) refresh() {
	s.list.SetItems(itemRows(s.visible()))
}

func (s *listingScreen) selected() (model.Item, bool) {
	if s.loading || s.tab == tabNotifications {
		return model.Item{}, false
	}
	row, ok := s.list.SelectedItem().(itemRow)
	if !ok {
		return model.Item{}, false
	}
	return row.item, true
}

func (s *listingScreen) setSize(width, height int) {
	s.width, s.height = width, height
	s.layout()
}

func (s *listingScreen) mainWidth() int {
	if s.sidebar {
		return max(s.width-sidebarWidth, 20)
	}
	return s.width
}

// layout sizes the list to what is left after header, tabs and footer.
func (s *listingScreen) layout() {
	chrome := 4
	if s.searching {
		chrome++
	}
	w := s.mainWidth() - 2
	s.list.SetSize(max(w, 10), max(s.height-chrome, 3))
	s.search.Width = max(w-4, 10)
}

func (s *listingScreen) view() string {
	header := s.viewHeader()
	footer := styleMuted().Render(fitLine(" enter: open  /: search  tab: switch  n: new post  m: menu  q: quit", s.width))

	bodyH := max(s.height-2, 1)
	mainW := s.mainWidth()
	main := fitBlock(s.viewMain(mainW-2), mainW, bodyH)
	main = lipgloss.NewStyle().PaddingLeft(1).Render(main)
	main = fitBlock(main, mainW, bodyH)
	if s.sidebar {
		side := fitBlock(s.viewSidebar(), sidebarWidth, bodyH)
		main = lipgloss.JoinHorizontal(lipgloss.Top, side, main)
	}
	return strings.Join([]string{header, main, footer}, "\n")
}

func (s *listingScreen) viewHeader() string {
	left := glyphMenu() + "  Lost & Found"
	right := glyphSearch()
	gap := max(s.width-2-xansi.StringWidth(left)-xansi.StringWidth(right), 1)
	return styleHeader().Render(left + strings.Repeat(" ", gap) + right)
}

func (s *listingScreen) viewTabs() string {
	active := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorBrandFg).Background(colorBrand)
	idle := lipgloss.NewStyle().Padding(0, 1).Foreground(colorBrand)
	labels := []string{"Lost Items", "Found Items", "Notifications"}
	out := make([]string, 0, len(labels))
	for i, l := range labels {
		if listingTab(i) == s.tab {
			out = append(out, active.Render(l))
		} else {
			out = append(out, idle.Render(l))
		}
	}
	return strings.Join(out, " ")
}

func (s *listingScreen) viewMain(width int) string {
	var parts []string
	if s.searching {
		parts = append(parts, renderInputLine(width, s.search.View()))
	}
	parts = append(parts, s.viewTabs(), "")

	switch {
	case s.loading:
		parts = append(parts, s.spinner.View()+" Loading posts...")
	case s.tab == tabNotifications:
		parts = append(parts, styleMuted().Render("No new notifications"))
	case len(s.list.Items()) == 0:
		parts = append(parts, styleMuted().Render("No "+string(s.category())+" items found"))
	default:
		parts = append(parts, s.list.View())
	}
	return strings.Join(parts, "\n")
}

func (s *listingScreen) viewSidebar() string {
	w := sidebarWidth - 2
	lines := []string{
		"",
		styleLabel().Render(truncate(s.auth.DisplayName(), w)),
	}
	if img := strings.TrimSpace(s.auth.ProfileImage); img != "" {
		lines = append(lines, styleMuted().Render(truncate(img, w)))
	}
	lines = append(lines, styleMuted().Render(strings.Repeat(glyphHRule(), w)))
	for i, item := range sidebarMenu {
		marker := "  "
		st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
		if i == s.menuIdx {
			marker = glyphArrow() + " "
			st = st.Bold(true).Foreground(colorSelectedFg).Background(colorSelectedBg)
		}
		lines = append(lines, marker+st.Render(truncate(item, w-3)))
	}
	lines = append(lines, "", styleMuted().Render("enter: select  esc: close"))

	box := lipgloss.NewStyle().
		Width(sidebarWidth - 1).
		PaddingLeft(1).
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorCardBorder)
	return box.Render(strings.Join(lines, "\n"))
}
