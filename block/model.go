package block

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codeblock/buffer"
	"github.com/iw2rmb/codeblock/mode"
)

// Model is a Bubble Tea code block.
//
// Model is a value, but its document and selected mode live behind
// pointers, so copies taken by a host observe the same content. Update and
// HandleKey return the model to carry focus, menu and scroll state.
type Model struct {
	cfg      Config
	host     Host
	readOnly bool

	res mode.Resolution
	buf *buffer.Buffer
	st  *state

	focused   bool
	menuOpen  bool
	menuIndex int

	width    int
	height   int
	viewport viewport.Model
}

type state struct {
	mode string

	lastVersion uint64
	lastText    string
	lastMode    string
}

// New builds a block from host parameters. It never fails: unknown modes
// are kept, and an unknown default mode is logged and replaced.
func New(p Params) Model {
	cfg := p.Config
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	host := p.Host
	if host == nil {
		host = plainHost{}
	}

	res := mode.Resolve(mode.Options{
		Modes:           cfg.Modes,
		DefaultMode:     cfg.DefaultMode,
		FallbackToFirst: cfg.FallbackToFirst,
	})
	for _, w := range res.Warnings {
		cfg.Logger.Warn("code block: unknown default mode",
			slog.String("defaultMode", w.DefaultMode),
			slog.String("fallback", w.Fallback),
		)
	}

	m := Model{
		cfg:      cfg,
		host:     host,
		readOnly: p.ReadOnly,
		res:      res,
		buf:      buffer.New(p.Data.Code, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		st:       &state{mode: mode.Initial(p.Data.Mode, res)},
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.st.lastVersion = m.buf.Version()
	m.st.lastText = m.buf.Text()
	m.st.lastMode = m.st.mode
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Buffer exposes the text surface document.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Modes returns the effective mode registry.
func (m Model) Modes() mode.Registry { return m.res.Modes }

// Warnings returns the configuration warnings recorded at construction.
func (m Model) Warnings() []mode.Warning {
	return append([]mode.Warning(nil), m.res.Warnings...)
}

// Mode returns the selected mode key.
func (m Model) Mode() string { return m.st.mode }

func (m Model) ReadOnly() bool { return m.readOnly }

// Placeholder returns the translated placeholder text.
func (m Model) Placeholder() string {
	p := m.cfg.Placeholder
	if p == "" {
		p = DefaultPlaceholder
	}
	return m.host.Translate(p)
}

// Save reads the live text and the selected mode.
func (m Model) Save() Data {
	return Data{Code: m.buf.Text(), Mode: m.st.mode}
}

// Data is an alias for Save.
func (m Model) Data() Data { return m.Save() }

// SetData stores d and pushes its code into the text surface. An empty
// d.Mode keeps the selected mode. No change event is fired.
func (m Model) SetData(d Data) {
	m.buf.SetText(d.Code)
	if d.Mode != "" {
		m.st.mode = d.Mode
	}
	m.st.lastVersion = m.buf.Version()
	m.st.lastText = m.buf.Text()
	m.st.lastMode = m.st.mode
}

// SetMode selects key. Keys outside the registry are accepted.
func (m Model) SetMode(key string) {
	if key == "" || key == m.st.mode {
		return
	}
	m.st.mode = key
	m.notify()
}

// Paste replaces the code with the plain text of a pasted <pre> element and
// keeps the mode. It reports whether the event was accepted.
func (m Model) Paste(ev PasteEvent) bool {
	if m.readOnly || !acceptsPaste(ev) {
		return false
	}
	m.buf.ReplaceAll(textContent(ev.Node))
	m.notify()
	return true
}

// SetSize sets the rendered width and the text surface height in rows.
// A height of 0 grows the surface with its content.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.viewport.Width = m.innerWidth()
	m.viewport.Height = m.height
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes focus and closes the mode menu.
func (m Model) Blur() Model {
	m.focused = false
	m.menuOpen = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// MenuOpen reports whether the mode option list is shown.
func (m Model) MenuOpen() bool { return m.menuOpen }

func (m Model) notify() {
	ver := m.buf.Version()
	if ver == m.st.lastVersion && m.st.mode == m.st.lastMode {
		return
	}
	m.st.lastVersion = ver
	text := m.buf.Text()
	if text == m.st.lastText && m.st.mode == m.st.lastMode {
		return
	}
	m.st.lastText = text
	m.st.lastMode = m.st.mode
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ChangeEvent{
			Version: ver,
			Data:    Data{Code: text, Mode: m.st.mode},
			Cursor:  m.buf.Cursor(),
		})
	}
}

func (m *Model) rebuildContent() {
	if m.height > 0 {
		m.viewport.SetContent(m.renderSurface())
	}
}

func (m *Model) followCursor() {
	if m.height > 0 {
		followRow(&m.viewport, m.buf.Cursor().Row)
	}
}

// followRow scrolls vp the minimum amount that makes row visible.
func followRow(vp *viewport.Model, row int) {
	h := vp.Height - vp.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := vp.YOffset
	if row < y {
		vp.SetYOffset(row)
	} else if row >= y+h {
		vp.SetYOffset(row - h + 1)
	}
}
