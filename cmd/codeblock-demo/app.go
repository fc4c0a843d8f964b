package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codeblock/block"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true)
	styleSubtle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type app struct {
	host   *demoHost
	blocks []block.Model
	focus  int

	outputPath string
	logger     *slog.Logger

	changes      *int
	status       string
	statusErr    bool
	quitWithSave bool

	width int
}

func newApp(recs []block.Data, cfg block.Config, readOnly bool, outputPath string, logger *slog.Logger) app {
	host := newDemoHost()
	block.Register(host)

	changes := new(int)
	cfg.OnChange = func(ev block.ChangeEvent) {
		*changes++
		logger.Debug("block changed", slog.Uint64("version", ev.Version), slog.String("mode", ev.Data.Mode))
	}

	a := app{
		host:       host,
		outputPath: outputPath,
		logger:     logger,
		changes:    changes,
	}
	for i, d := range recs {
		m := block.New(block.Params{Data: d, Config: cfg, ReadOnly: readOnly, Host: host})
		if i != 0 {
			m = m.Blur()
		}
		a.blocks = append(a.blocks, m)
	}
	return a
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		for i := range a.blocks {
			a.blocks[i] = a.blocks[i].SetSize(msg.Width, 0)
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		if err := a.save(); err != nil {
			return a, nil
		}
		a.quitWithSave = true
		return a, tea.Quit
	case "ctrl+s":
		_ = a.save()
		return a, nil
	}

	if len(a.blocks) == 0 {
		return a, nil
	}
	var consumed bool
	a.blocks[a.focus], consumed = a.blocks[a.focus].HandleKey(msg)
	if consumed {
		return a, nil
	}

	switch msg.String() {
	case "tab":
		a.moveFocus(1)
	case "shift+tab":
		a.moveFocus(-1)
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

// moveFocus cycles focus by delta blocks.
func (a *app) moveFocus(delta int) {
	n := len(a.blocks)
	if n < 2 {
		return
	}
	a.blocks[a.focus] = a.blocks[a.focus].Blur()
	a.focus = ((a.focus+delta)%n + n) % n
	a.blocks[a.focus] = a.blocks[a.focus].Focus()
}

func (a *app) save() error {
	if a.outputPath == "" {
		a.status = "records are written to stdout on exit"
		a.statusErr = false
		return nil
	}
	if err := writeRecords(a.outputPath, a.records()); err != nil {
		a.logger.Error("write failed", slog.String("path", a.outputPath), slog.Any("err", err))
		a.status = err.Error()
		a.statusErr = true
		return err
	}
	a.status = fmt.Sprintf("wrote %d records to %s", len(a.blocks), a.outputPath)
	a.statusErr = false
	return nil
}

func (a app) records() []block.Data {
	out := make([]block.Data, 0, len(a.blocks))
	for _, b := range a.blocks {
		out = append(out, b.Save())
	}
	return out
}

func (a app) View() string {
	var sb strings.Builder
	title := "code"
	if tb, ok := a.host.boxes[block.ToolName]; ok {
		title = tb.Icon + " " + tb.Title
	}
	sb.WriteString(styleTitle.Render(title))
	sb.WriteString(styleSubtle.Render(fmt.Sprintf("  block %d/%d", a.focus+1, len(a.blocks))))
	sb.WriteString("\n\n")

	for _, b := range a.blocks {
		sb.WriteString(b.View())
		sb.WriteString("\n")
	}

	help := "ctrl+o language · tab indent · ctrl+s save · ctrl+q quit"
	sb.WriteString(styleSubtle.Render(fmt.Sprintf("%s · %d changes", help, *a.changes)))
	if a.status != "" {
		sb.WriteString("\n")
		if a.statusErr {
			sb.WriteString(styleError.Render(a.status))
		} else {
			sb.WriteString(styleSubtle.Render(a.status))
		}
	}
	return sb.String()
}
