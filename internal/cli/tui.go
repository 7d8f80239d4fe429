package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wordlattice/lattice/pkg/observability"
	"github.com/wordlattice/lattice/pkg/pipeline"
)

// Stage states shown in the progress view.
const (
	stagePending = iota
	stageRunning
	stageDone
)

var (
	tuiDoneStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	tuiRunningStyle = lipgloss.NewStyle().Foreground(colorCyan)
	tuiPendingStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// stageMsg updates one stage of the progress view.
type stageMsg struct {
	name   string
	state  int
	detail string
}

// resultMsg carries the pipeline outcome and ends the program.
type resultMsg struct {
	result *pipeline.Result
	err    error
}

type tickMsg time.Time

// buildModel is the bubbletea model for the interactive build view.
type buildModel struct {
	source string
	stages []string
	state  map[string]int
	detail map[string]string
	frame  int
	result *pipeline.Result
	err    error
}

func newBuildModel(source string) buildModel {
	return buildModel{
		source: source,
		stages: []string{"load", "build", "minimize", "export"},
		state:  map[string]int{},
		detail: map[string]string{},
	}
}

func (m buildModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = context.Canceled
			return m, tea.Quit
		}
	case stageMsg:
		m.state[msg.name] = msg.state
		if msg.detail != "" {
			m.detail[msg.name] = msg.detail
		}
		return m, nil
	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case tickMsg:
		m.frame++
		return m, tick()
	}
	return m, nil
}

func (m buildModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Building " + m.source))
	b.WriteString("\n\n")

	for _, stage := range m.stages {
		switch m.state[stage] {
		case stageDone:
			b.WriteString("  " + tuiDoneStyle.Render(iconSuccess) + " " + stage)
		case stageRunning:
			frame := spinnerFrames[m.frame%len(spinnerFrames)]
			b.WriteString("  " + tuiRunningStyle.Render(frame) + " " + stage)
		default:
			b.WriteString("  " + tuiPendingStyle.Render("·") + " " + tuiPendingStyle.Render(stage))
		}
		if d := m.detail[stage]; d != "" {
			b.WriteString(" " + StyleDim.Render(d))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("ctrl+c to cancel"))
	b.WriteString("\n")
	return b.String()
}

// tuiHooks feeds build events into the running bubbletea program.
type tuiHooks struct {
	observability.NoopBuildHooks
	p *tea.Program
}

func (h tuiHooks) OnLoadStart(ctx context.Context, source string) {
	h.p.Send(stageMsg{name: "load", state: stageRunning})
}

func (h tuiHooks) OnLoadComplete(ctx context.Context, source string, words int, d time.Duration, err error) {
	h.p.Send(stageMsg{name: "load", state: stageDone, detail: fmt.Sprintf("%d lines", words)})
}

func (h tuiHooks) OnBuildStart(ctx context.Context, source string) {
	// Local loads skip the load hooks, mark the stage done anyway.
	h.p.Send(stageMsg{name: "load", state: stageDone})
	h.p.Send(stageMsg{name: "build", state: stageRunning})
}

func (h tuiHooks) OnBuildProgress(ctx context.Context, words int) {
	h.p.Send(stageMsg{name: "build", state: stageRunning, detail: fmt.Sprintf("%d words", words)})
}

func (h tuiHooks) OnBuildComplete(ctx context.Context, source string, nodes int, d time.Duration, err error) {
	h.p.Send(stageMsg{name: "build", state: stageDone, detail: fmt.Sprintf("%d nodes", nodes)})
}

func (h tuiHooks) OnMinimizeStart(ctx context.Context, nodes int) {
	h.p.Send(stageMsg{name: "minimize", state: stageRunning})
}

func (h tuiHooks) OnMinimizeComplete(ctx context.Context, merged int, d time.Duration, err error) {
	h.p.Send(stageMsg{name: "minimize", state: stageDone, detail: fmt.Sprintf("merged %d", merged)})
}

func (h tuiHooks) OnExportStart(ctx context.Context, formats []string) {
	h.p.Send(stageMsg{name: "export", state: stageRunning})
}

func (h tuiHooks) OnExportComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	h.p.Send(stageMsg{name: "export", state: stageDone, detail: strings.Join(formats, ", ")})
}

// runBuildInteractive runs the pipeline behind a live progress view.
func (c *CLI) runBuildInteractive(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	p := tea.NewProgram(newBuildModel(sourceLabel(opts)), tea.WithContext(ctx))

	observability.SetBuildHooks(tuiHooks{p: p})
	defer observability.Reset()

	go func() {
		result, err := runner.Execute(ctx, opts)
		p.Send(resultMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	m := final.(buildModel)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func sourceLabel(opts pipeline.Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return "word list"
}
