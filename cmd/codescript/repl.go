package main

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/codescript/codescript"
)

const (
	mainPrompt         = "code> "
	continuationPrompt = "  ... "
)

type replTheme struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	pending lipgloss.Style
	source  lipgloss.Style
	display lipgloss.Style
	echo    lipgloss.Style
	failure lipgloss.Style
	note    lipgloss.Style
	name    lipgloss.Style
	panel   lipgloss.Style
}

func newReplTheme() replTheme {
	ink := lipgloss.Color("#0EA5E9")
	leaf := lipgloss.Color("#22C55E")
	ember := lipgloss.Color("#F43F5E")
	ash := lipgloss.Color("#71717A")
	sand := lipgloss.Color("#EAB308")

	return replTheme{
		title:   lipgloss.NewStyle().Bold(true).Foreground(ink),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(ink),
		pending: lipgloss.NewStyle().Foreground(ash),
		source:  lipgloss.NewStyle().Foreground(ash),
		display: lipgloss.NewStyle(),
		echo:    lipgloss.NewStyle().Foreground(leaf),
		failure: lipgloss.NewStyle().Foreground(ember),
		note:    lipgloss.NewStyle().Italic(true).Foreground(ash),
		name:    lipgloss.NewStyle().Foreground(sand),
		panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(ink).
			PaddingLeft(1),
	}
}

var theme = newReplTheme()

// transcriptEntry is one submitted snippet. DISPLAY lines are kept apart from
// the assignment echo and from the error that aborted the run.
type transcriptEntry struct {
	source  []string
	display []string
	echo    string
	err     string
	note    string
}

type replPanel int

const (
	panelNone replPanel = iota
	panelBindings
	panelSyntax
)

func (p replPanel) toggle(target replPanel) replPanel {
	if p == target {
		return panelNone
	}
	return target
}

type replKeys struct {
	Submit   key.Binding
	Discard  key.Binding
	Older    key.Binding
	Newer    key.Binding
	Complete key.Binding
	Bindings key.Binding
	Syntax   key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

func (k replKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.Bindings, k.Syntax, k.Quit}
}

func (k replKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Discard, k.Complete},
		{k.Older, k.Newer, k.Clear},
		{k.Bindings, k.Syntax, k.Quit},
	}
}

var replKeyMap = replKeys{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run, or continue an open block")),
	Discard:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "drop the open block")),
	Older:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "older line")),
	Newer:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "newer line")),
	Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete name")),
	Bindings: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bindings")),
	Syntax:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "syntax")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear transcript")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
}

type replModel struct {
	input      textinput.Model
	help       help.Model
	engine     *codescript.Engine
	exec       *codescript.Execution
	output     *bytes.Buffer
	pending    []string
	transcript []transcriptEntry
	recall     []string
	recallAt   int
	panel      replPanel
	height     int
	ready      bool
	quitting   bool
}

func newREPLModel() replModel {
	input := textinput.New()
	input.Placeholder = "DISPLAY(\"hello\")"
	input.Prompt = mainPrompt
	input.PromptStyle = theme.prompt
	input.CharLimit = 1000
	input.Width = 72
	input.Focus()

	output := new(bytes.Buffer)
	engine := codescript.NewEngine(codescript.Config{Stdout: output})

	return replModel{
		input:    input,
		help:     help.New(),
		engine:   engine,
		exec:     engine.NewExecution(),
		output:   output,
		recallAt: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(mainPrompt)-2, 20)
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, replKeyMap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, replKeyMap.Clear):
			m.transcript = nil
			return m, nil
		case key.Matches(msg, replKeyMap.Bindings):
			m.panel = m.panel.toggle(panelBindings)
			return m, nil
		case key.Matches(msg, replKeyMap.Syntax):
			m.panel = m.panel.toggle(panelSyntax)
			return m, nil
		case key.Matches(msg, replKeyMap.Discard):
			return m.discardPending(), nil
		case key.Matches(msg, replKeyMap.Older):
			return m.stepRecall(-1), nil
		case key.Matches(msg, replKeyMap.Newer):
			return m.stepRecall(1), nil
		case key.Matches(msg, replKeyMap.Complete):
			return m.complete(), nil
		case key.Matches(msg, replKeyMap.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit either runs a colon command, buffers a line of an unfinished block,
// or runs everything buffered once every '{' is closed.
func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.recallAt = -1

	trimmed := strings.TrimSpace(line)
	if len(m.pending) == 0 {
		if trimmed == "" {
			return m, nil
		}
		if strings.HasPrefix(trimmed, ":") {
			return m.runCommand(trimmed)
		}
	}
	if trimmed != "" {
		m.recall = append(m.recall, line)
	}

	m.pending = append(m.pending, line)
	source := strings.Join(m.pending, "\n")
	if codescript.OpenBraces(source) > 0 {
		m.input.Prompt = continuationPrompt
		return m, nil
	}

	m.pending = nil
	m.input.Prompt = mainPrompt
	m.transcript = append(m.transcript, m.evaluate(source))
	return m, nil
}

func (m replModel) runCommand(command string) (tea.Model, tea.Cmd) {
	switch strings.Fields(command)[0] {
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	case ":help", ":h":
		m.help.ShowAll = !m.help.ShowAll
	case ":bindings", ":b":
		m.panel = m.panel.toggle(panelBindings)
	case ":syntax", ":s":
		m.panel = m.panel.toggle(panelSyntax)
	case ":clear", ":c":
		m.transcript = nil
	case ":reset", ":r":
		m.exec = m.engine.NewExecution()
		m.transcript = append(m.transcript, transcriptEntry{note: "bindings reset; only builtins remain"})
	default:
		m.transcript = append(m.transcript, transcriptEntry{
			err: fmt.Sprintf("unknown command %s (try :help, :bindings, :syntax, :clear, :reset, :quit)", command),
		})
	}
	return m, nil
}

func (m replModel) discardPending() replModel {
	if len(m.pending) == 0 {
		m.input.SetValue("")
		return m
	}
	m.transcript = append(m.transcript, transcriptEntry{
		note: fmt.Sprintf("dropped %d unfinished line(s)", len(m.pending)),
	})
	m.pending = nil
	m.input.SetValue("")
	m.input.Prompt = mainPrompt
	return m
}

// stepRecall moves through previously entered lines; -1 is older, 1 newer.
// Stepping past the newest line empties the input.
func (m replModel) stepRecall(step int) replModel {
	if len(m.recall) == 0 {
		return m
	}
	switch {
	case m.recallAt == -1 && step < 0:
		m.recallAt = len(m.recall) - 1
	case m.recallAt == -1:
		return m
	default:
		m.recallAt += step
	}
	switch {
	case m.recallAt < 0:
		m.recallAt = 0
	case m.recallAt >= len(m.recall):
		m.recallAt = -1
		m.input.SetValue("")
		return m
	}
	m.input.SetValue(m.recall[m.recallAt])
	m.input.CursorEnd()
	return m
}

// evaluate runs source against the session's execution. Bindings made before
// an error stay in place.
func (m replModel) evaluate(source string) transcriptEntry {
	entry := transcriptEntry{source: strings.Split(source, "\n")}
	m.output.Reset()

	script, err := m.engine.Compile(source)
	if err != nil {
		entry.err = err.Error()
		return entry
	}
	runErr := script.RunIn(m.exec)
	entry.display = displayLines(m.output.String())
	if runErr != nil {
		entry.err = runErr.Error()
		return entry
	}
	entry.echo = assignmentEcho(script.Program(), m.exec)
	return entry
}

func displayLines(out string) []string {
	if out == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

// assignmentEcho shows the value bound by a trailing assignment, if any.
func assignmentEcho(program *codescript.Program, exec *codescript.Execution) string {
	if len(program.Statements) == 0 {
		return ""
	}
	assign, ok := program.Statements[len(program.Statements)-1].(*codescript.AssignStmt)
	if !ok {
		return ""
	}
	val, err := exec.Env().Lookup(assign.Name)
	if err != nil {
		return ""
	}
	return assign.Name + " = " + val.Inspect()
}

// complete extends the identifier under the cursor using keywords and the
// names currently bound in the session.
func (m replModel) complete() replModel {
	value := m.input.Value()
	start := strings.LastIndexFunc(value, func(r rune) bool { return !isNameRune(r) }) + 1
	prefix := value[start:]
	if prefix == "" {
		return m
	}

	var candidates []string
	for _, word := range append(codescript.Keywords(), m.exec.Env().Names()...) {
		if strings.HasPrefix(word, prefix) {
			candidates = append(candidates, word)
		}
	}
	slices.Sort(candidates)
	candidates = slices.Compact(candidates)

	switch len(candidates) {
	case 0:
	case 1:
		m.input.SetValue(value[:start] + candidates[0])
		m.input.CursorEnd()
	default:
		m.transcript = append(m.transcript, transcriptEntry{note: "candidates: " + strings.Join(candidates, "  ")})
	}
	return m
}

func isNameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (m replModel) View() string {
	if m.quitting {
		return theme.note.Render("bye") + "\n"
	}
	if !m.ready {
		return "starting codescript..."
	}

	var panel string
	switch m.panel {
	case panelBindings:
		panel = renderBindings(m.exec.Globals())
	case panelSyntax:
		panel = renderSyntax()
	}
	footer := m.help.View(replKeyMap)

	chrome := 4 + len(m.pending) + lipgloss.Height(footer)
	if panel != "" {
		chrome += lipgloss.Height(panel) + 1
	}
	lines := transcriptLines(m.transcript)
	if budget := m.height - chrome; budget > 0 && len(lines) > budget {
		lines = lines[len(lines)-budget:]
	}

	var b strings.Builder
	b.WriteString(theme.title.Render("codescript") + theme.note.Render("  statements run as you enter them") + "\n\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	if panel != "" {
		b.WriteString(panel + "\n")
	}
	for i, line := range m.pending {
		prompt := continuationPrompt
		if i == 0 {
			prompt = mainPrompt
		}
		b.WriteString(theme.pending.Render(prompt+line) + "\n")
	}
	b.WriteString(m.input.View() + "\n")
	b.WriteString(footer)
	return b.String()
}

func transcriptLines(entries []transcriptEntry) []string {
	var lines []string
	for _, entry := range entries {
		for i, src := range entry.source {
			prompt := continuationPrompt
			if i == 0 {
				prompt = mainPrompt
			}
			lines = append(lines, theme.source.Render(prompt+src))
		}
		for _, out := range entry.display {
			lines = append(lines, theme.display.Render(out))
		}
		if entry.echo != "" {
			lines = append(lines, theme.echo.Render(entry.echo))
		}
		if entry.err != "" {
			for _, errLine := range strings.Split(entry.err, "\n") {
				lines = append(lines, theme.failure.Render(errLine))
			}
		}
		if entry.note != "" {
			lines = append(lines, theme.note.Render(entry.note))
		}
	}
	return lines
}

// renderBindings lists variables and then functions, each sorted by name.
func renderBindings(globals map[string]codescript.Value) string {
	var variables, functions []string
	for _, name := range slices.Sorted(maps.Keys(globals)) {
		val := globals[name]
		if val.Kind() == codescript.KindCallable {
			functions = append(functions, theme.name.Render(name))
			continue
		}
		variables = append(variables, fmt.Sprintf("%s %s %s", theme.name.Render(name), theme.note.Render(val.Kind().String()), val.Inspect()))
	}

	lines := []string{theme.title.Render("bindings")}
	if len(variables) == 0 {
		lines = append(lines, theme.note.Render("no variables yet; assign with name = value"))
	}
	lines = append(lines, variables...)
	if len(functions) > 0 {
		lines = append(lines, "functions: "+strings.Join(functions, ", "))
	}
	return theme.panel.Render(strings.Join(lines, "\n"))
}

var keywordNotes = map[string]string{
	"while": "while cond { ... } else { ... }  loop while cond is true; else runs once if the body never did",
	"until": "until cond { ... } else { ... }  loop while cond is false",
	"else":  "after a loop block: a block, or an if (rejected when run)",
	"if":    "parsed, rejected when run",
	"and":   "parsed, rejected when run",
	"or":    "parsed, rejected when run",
	"xor":   "parsed, rejected when run",
	"true":  "boolean literal",
	"false": "boolean literal",
	"null":  "displays as an empty line",
}

func renderSyntax() string {
	lines := []string{theme.title.Render("syntax")}
	for _, word := range codescript.Keywords() {
		lines = append(lines, theme.name.Render(fmt.Sprintf("%-6s", word))+" "+keywordNotes[word])
	}
	lines = append(lines,
		"",
		"name = expr          bind in the single session namespace",
		"+ &                  add numbers, or join when either side is text",
		"-                    subtract numbers (text joins, as with +)",
		"<                    compare numbers; == != <= > >= are rejected",
		"# ...                comment to end of line; ';' ends a statement",
	)
	return theme.panel.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	_, err := tea.NewProgram(newREPLModel(), tea.WithAltScreen()).Run()
	return err
}
