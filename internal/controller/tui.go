package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "sccremover.dev/pkg/sccremover/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// TUI implements UI using Bubble Tea for interactive display. The worker
// talks to the program through Send, so log calls never touch the model
// directly.
type TUI struct {
	input  io.Reader
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	final   *runModel
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(newRunModel(), tea.WithInput(t.input), tea.WithOutput(t.output))
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		final, err := t.program.Run()
		if err != nil {
			return
		}

		if model, ok := final.(runModel); ok {
			t.mu.Lock()
			t.final = &model
			t.mu.Unlock()
		}
	}()

	return nil
}

// Close stops the program and prints the summary so it stays in the scrollback.
func (t *TUI) Close(ctx context.Context) {
	program, done := t.handles()
	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
		return
	}

	t.mu.Lock()
	final := t.final
	t.mu.Unlock()

	if final != nil && final.summary != nil {
		_, _ = fmt.Fprintf(t.output, "%s\n%s\n", renderSummaryTable(*final.summary), summaryStatus(*final.summary))
	}
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait(ctx context.Context) {
	_, done := t.handles()
	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Confirm shows the confirmation screen and waits for the answer.
func (t *TUI) Confirm(ctx context.Context, root m.Path) (bool, error) {
	program, done := t.handles()
	if program == nil {
		return false, fmt.Errorf("ui not started")
	}

	reply := make(chan bool, 1)
	program.Send(confirmRequestMsg{root: root, reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-done:
		return false, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Log appends an entry to the live log view.
func (t *TUI) Log(_ context.Context, entry m.LogEntry) {
	if program, _ := t.handles(); program != nil {
		program.Send(logMsg(entry))
	}
}

// DisplaySummary switches the program to its final screen.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if program, _ := t.handles(); program != nil {
		program.Send(summaryMsg(summary))
	}

	return nil
}

// DisplayReport prints a stored report without starting the program.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("Run %s on %s", report.Summary.RunID, report.Summary.Root)))

	for _, entry := range report.Entries {
		fmt.Fprintf(&b, "%s\n", FormatLogEntry(entry))
	}

	fmt.Fprintf(&b, "\n%s\n%s\n", renderSummaryTable(report.Summary), statusLine(report.Summary))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func (t *TUI) handles() (*tea.Program, chan struct{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program, t.done
}

type confirmRequestMsg struct {
	root  m.Path
	reply chan<- bool
}

type logMsg m.LogEntry

type summaryMsg m.Summary

type runState int

const (
	stateIdle runState = iota
	stateConfirm
	stateRunning
	stateDone
)

// runModel is the Bubble Tea model of a removal run.
type runModel struct {
	state    runState
	root     m.Path
	reply    chan<- bool
	spinner  spinner.Model
	lines    []string
	summary  *m.Summary
	height   int
	offset   int // lines scrolled up from the bottom
	quitting bool
}

func newRunModel() runModel {
	return runModel{
		state:   stateIdle,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.height = msg.Height

		return rm, nil

	case confirmRequestMsg:
		rm.state = stateConfirm
		rm.root = msg.root
		rm.reply = msg.reply

		return rm, nil

	case logMsg:
		if rm.state == stateIdle {
			rm.state = stateRunning
		}

		rm.lines = append(rm.lines, FormatLogEntry(m.LogEntry(msg)))
		if rm.offset > 0 {
			rm.offset++
		}

		return rm, nil

	case summaryMsg:
		summary := m.Summary(msg)
		rm.summary = &summary
		rm.state = stateDone

		return rm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd

	case tea.KeyMsg:
		return rm.handleKeyPress(msg)
	}

	return rm, nil
}

//nolint:cyclop // Key handling requires multiple cases for UI navigation
func (rm runModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		rm = rm.answer(false)
		rm.quitting = true

		return rm, tea.Quit
	}

	if rm.state == stateConfirm {
		switch msg.String() {
		case "y", "Y":
			rm = rm.answer(true)
			rm.state = stateRunning

			return rm, nil
		case "n", "N", "q", "esc", "enter":
			rm = rm.answer(false)
			rm.quitting = true

			return rm, tea.Quit
		}

		return rm, nil
	}

	switch msg.String() {
	case "q", "esc":
		if rm.state == stateDone {
			rm.quitting = true
			return rm, tea.Quit
		}

	case "up", "k":
		if rm.offset < rm.maxOffset() {
			rm.offset++
		}

	case "down", "j":
		if rm.offset > 0 {
			rm.offset--
		}

	case "g", "home":
		rm.offset = rm.maxOffset()

	case "G", "end":
		rm.offset = 0
	}

	return rm, nil
}

// answer delivers the confirmation result once.
func (rm runModel) answer(ok bool) runModel {
	if rm.reply != nil {
		rm.reply <- ok
		rm.reply = nil
	}

	return rm
}

// visibleLines returns how many log lines fit on screen.
func (rm runModel) visibleLines() int {
	if rm.height == 0 {
		return 15 // Default
	}

	// Title, status line, footer and their blank lines.
	available := rm.height - 6
	if available < 1 {
		return 1
	}

	return available
}

func (rm runModel) maxOffset() int {
	maxOff := len(rm.lines) - rm.visibleLines()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (rm runModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("SCC Remover"))
	b.WriteString("\n\n")

	switch rm.state {
	case stateIdle:
		fmt.Fprintf(&b, "%s Preparing...\n", rm.spinner.View())
	case stateConfirm:
		b.WriteString(promptStyle.Render(confirmationPrompt(rm.root)))
		b.WriteString("\n")
	case stateRunning:
		rm.renderLines(&b)
		fmt.Fprintf(&b, "\n%s Removing SCC content...\n", rm.spinner.View())
	case stateDone:
		rm.renderLines(&b)

		if rm.summary != nil {
			fmt.Fprintf(&b, "\n%s\n", statusLine(*rm.summary))
		}

		b.WriteString(faintStyle.Render("↑/↓ scroll • q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (rm runModel) renderLines(b *strings.Builder) {
	end := len(rm.lines) - rm.offset
	start := end - rm.visibleLines()

	if start < 0 {
		start = 0
	}

	for _, line := range rm.lines[start:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func statusLine(summary m.Summary) string {
	if summary.Aborted {
		return failureStyle.Render(summaryStatus(summary))
	}

	return successStyle.Render(summaryStatus(summary))
}
