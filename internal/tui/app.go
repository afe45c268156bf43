// Package tui implements the swatch terminal playground.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/swatch/internal/colormap"
	"github.com/opencode-ai/swatch/internal/models"
	"github.com/opencode-ai/swatch/internal/presets"
	"github.com/opencode-ai/swatch/internal/tui/components"
	"github.com/opencode-ai/swatch/internal/tui/styles"
)

// Config configures the playground.
type Config struct {
	// Theme names the chrome palette.
	Theme string
	// DefaultSet seeds sets created without a preset.
	DefaultSet models.ColorSet
	// Presets can seed new sets from the new set form.
	Presets []*presets.Preset
	// InitialSets are preset names created before the first render.
	InitialSets []string
}

// Run launches the playground with the default configuration.
func Run() error {
	return RunWithConfig(Config{})
}

// RunWithConfig launches the playground.
func RunWithConfig(cfg Config) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type mode int

const (
	modeBrowse mode = iota
	modePicker
	modeNewSet
)

type previewButton struct {
	variant colormap.Variant
	label   string
	icon    string
	key     string
}

var previewButtons = []previewButton{
	{variant: colormap.TextVariant, label: "Text Button", icon: "add", key: "1"},
	{variant: colormap.FillVariant, label: "Fill Button", icon: "add", key: "2"},
	{variant: colormap.OutlineVariant, label: "Outline Button", icon: "send", key: "3"},
}

type model struct {
	width  int
	height int
	styles styles.Styles

	session *session
	presets []*presets.Preset

	mode     mode
	focusSet string
	roleIdx  int
	picker   picker

	nameInput textinput.Model
	seedIdx   int

	previews []string
	disabled bool

	status    string
	statusErr bool
}

const (
	minWidth  = 60
	minHeight = 20
)

func newModel(cfg Config) (model, error) {
	defaultSet := cfg.DefaultSet
	if defaultSet == (models.ColorSet{}) {
		defaultSet = models.DefaultColorSet
	}

	nameInput := textinput.New()
	nameInput.Prompt = "Color set name: "
	nameInput.CharLimit = 32

	m := model{
		styles:    styles.BuildStyles(styles.Lookup(cfg.Theme)),
		session:   newSession(defaultSet),
		presets:   cfg.Presets,
		nameInput: nameInput,
		previews:  make([]string, len(previewButtons)),
	}

	for _, name := range cfg.InitialSets {
		preset, err := presets.Find(cfg.Presets, name)
		if err != nil {
			return model{}, err
		}
		if err := m.session.store.AddSetFrom(preset.Name, preset.Colors); err != nil {
			return model{}, err
		}
		if m.focusSet == "" {
			m.focusSet = preset.Name
		}
	}
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modePicker:
			return m.updatePicker(msg)
		case modeNewSet:
			return m.updateNewSet(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := m.session.names()
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "n":
		m.mode = modeNewSet
		m.seedIdx = 0
		m.nameInput.SetValue("")
		cmd := m.nameInput.Focus()
		return m, cmd
	case "tab":
		m.focusSet = components.NextSet(m.focusSet, names)
	case "up", "k":
		if m.roleIdx > 0 {
			m.roleIdx--
		}
	case "down", "j":
		if m.roleIdx < len(models.Roles)-1 {
			m.roleIdx++
		}
	case "enter":
		editor := m.session.editor(m.focusSet)
		if editor == nil {
			return m, nil
		}
		role := models.Roles[m.roleIdx]
		m.picker = newPicker(role, editor.State().Get(role))
		m.mode = modePicker
		m.status = ""
	case "d":
		m.disabled = !m.disabled
	default:
		for i, button := range previewButtons {
			if msg.String() == button.key {
				m.previews[i] = components.NextSet(m.previews[i], names)
			}
		}
	}
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		value, err := m.picker.Value()
		if err != nil {
			m.picker.err = err
			return m, nil
		}
		editor := m.session.editor(m.focusSet)
		if editor == nil {
			m.mode = modeBrowse
			return m, nil
		}
		if _, err := editor.Edit(m.picker.role, value); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("%s %s = %s", m.focusSet, m.picker.role, value), false)
		}
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m model) updateNewSet(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.nameInput.Blur()
		return m, nil
	case "ctrl+p":
		m.seedIdx = (m.seedIdx + 1) % (len(m.presets) + 1)
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if !m.session.store.Collection().CanAdd(name) {
			return m, nil
		}
		var err error
		if preset := m.seedPreset(); preset != nil {
			err = m.session.store.AddSetFrom(name, preset.Colors)
		} else {
			err = m.session.store.AddSet(name)
		}
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.focusSet = name
		m.roleIdx = 0
		m.mode = modeBrowse
		m.nameInput.Blur()
		m.setStatus(fmt.Sprintf("created %s", name), false)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m model) seedPreset() *presets.Preset {
	if m.seedIdx == 0 || m.seedIdx > len(m.presets) {
		return nil
	}
	return m.presets[m.seedIdx-1]
}

func (m *model) setStatus(message string, isErr bool) {
	m.status = message
	m.statusErr = isErr
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n", joinLines(m.smallViewLines()))
		}
	}

	lines := []string{
		m.styles.Title.Render("swatch · color set playground"),
		"",
	}

	switch m.mode {
	case modeNewSet:
		lines = append(lines, m.newSetLines()...)
	default:
		lines = append(lines, m.browseLines()...)
	}

	if m.status != "" {
		style := m.styles.Muted
		if m.statusErr {
			style = m.styles.Error
		}
		lines = append(lines, "", style.Render(m.status))
	}

	lines = append(lines, "", m.actionBar())
	return fmt.Sprintf("%s\n", joinLines(lines))
}

func (m model) actionBar() string {
	switch m.mode {
	case modePicker:
		return components.RenderQuickActionBar(m.styles, components.PickerActions())
	case modeNewSet:
		name := strings.TrimSpace(m.nameInput.Value())
		return components.RenderQuickActionBar(m.styles, components.NewSetActions(m.session.store.Collection().CanAdd(name)))
	default:
		return components.RenderQuickActionBar(m.styles, components.BrowseActions(m.session.store.Collection().Len() > 0))
	}
}

func (m model) browseLines() []string {
	editor := m.session.editor(m.focusSet)
	if editor == nil {
		return []string{components.EmptySets().Render(m.styles)}
	}

	selected := models.Roles[m.roleIdx]
	setPanel := joinLines(components.RenderColorSet(m.styles, editor.Name(), editor.State(), selected))
	if m.mode == modePicker {
		pickerLines := []string{"", m.picker.View()}
		if m.picker.err != nil {
			pickerLines = append(pickerLines, m.styles.Error.Render(m.picker.err.Error()))
		}
		setPanel += joinLines(pickerLines)
	}

	left := lipgloss.JoinVertical(lipgloss.Left, setPanel, "", m.historyBlock())
	return []string{lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", m.previewBlock())}
}

func (m model) previewBlock() string {
	names := m.session.names()
	state := colormap.Default
	if m.disabled {
		state = colormap.Disabled
	}

	blocks := []string{m.styles.Title.Render("Preview (" + state.String() + ")")}
	for i, button := range previewButtons {
		selected := m.previews[i]
		var body string
		if set, ok := m.session.set(selected); ok {
			cm := colormap.New(button.variant, state, set)
			body = components.RenderButton(button.variant, cm, components.ButtonProps{
				TextLabel: button.label,
				Icon:      button.icon,
				Disabled:  m.disabled,
			})
		} else {
			body = components.EmptyPreview(button.key).RenderCompact(m.styles)
		}
		blocks = append(blocks, "", body, components.RenderSetSelector(m.styles, selected, names))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (m model) historyBlock() string {
	history := m.session.history.Snapshot()
	if len(history) == 0 {
		return components.EmptyHistory().RenderCompact(m.styles)
	}
	lines := []string{m.styles.Muted.Render("Recent edits")}
	for i := len(history) - 1; i >= 0; i-- {
		event := history[i]
		line := fmt.Sprintf("%s %s", event.Timestamp.Format("15:04:05"), event.SetName)
		if event.Slot != "" {
			line += fmt.Sprintf(" %s → %s", event.Slot, event.Value)
		} else {
			line += " created"
		}
		lines = append(lines, m.styles.Muted.Render(line))
	}
	return joinLines(lines)
}

func (m model) newSetLines() []string {
	seed := "default palette"
	if preset := m.seedPreset(); preset != nil {
		seed = "preset " + preset.Name
	}
	lines := []string{
		m.nameInput.View(),
		m.styles.Muted.Render("Seed: " + seed),
	}
	name := strings.TrimSpace(m.nameInput.Value())
	if name != "" && !m.session.store.Collection().CanAdd(name) {
		lines = append(lines, m.styles.Warning.Render(fmt.Sprintf("%q already exists", name)))
	}
	return lines
}

func (m model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
