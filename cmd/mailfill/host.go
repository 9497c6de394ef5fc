package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/mailfill/autocomplete"
	"github.com/iw2rmb/mailfill/config"
)

const title = "mailfill: enter an email address"

// fieldRow is the screen row of the email field, right under the title.
const fieldRow = 1

// hostState is shared with the component callbacks, which only see a pointer.
type hostState struct {
	completion *string
	submitted  bool
}

type model struct {
	input textinput.Model
	email autocomplete.Model
	hub   *autocomplete.PointerHub
	help  help.Model
	host  *hostState

	configPath string
	log        *log.Logger
	status     string
	mountCmd   tea.Cmd
}

func newModel(cfg *config.Config, configPath string, logger *log.Logger) model {
	host := &hostState{}

	in := textinput.New()
	in.Prompt = "email> "
	in.Placeholder = "you@example.com"
	in.CharLimit = 254
	in.Focus()

	wcfg := cfg.Widget()
	wcfg.Logger = logger
	wcfg.OnCompletion = func(text string) {
		host.completion = &text
	}
	wcfg.OnSubmit = func() {
		host.submitted = true
	}

	m := model{
		input:      in,
		hub:        autocomplete.NewPointerHub(),
		help:       help.New(),
		host:       host,
		configPath: configPath,
		log:        logger,
	}
	m.email, m.mountCmd = autocomplete.New(wcfg).Mount(m.hub)
	m.email = m.email.SetOrigin(0, fieldRow).SetSize(lipgloss.Width(in.View()), 1)
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.mountCmd)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = max(0, msg.Width-len(m.input.Prompt)-1)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.email, cmd = m.email.Unmount()
			return m, tea.Sequence(cmd, tea.Quit)
		case "ctrl+r":
			m.reload()
			return m, nil
		}
		if m.email.IsActionKey(msg) {
			m.email, cmd = m.email.Check(autocomplete.KeyEvent{Key: msg})
			m.settle()
			return m, cmd
		}
		var inputCmd tea.Cmd
		m.input, inputCmd = m.input.Update(msg)
		m.email, cmd = m.email.Check(autocomplete.KeyEvent{Key: msg, Value: m.input.Value()})
		m.settle()
		return m, tea.Batch(inputCmd, cmd)

	case tea.MouseMsg, autocomplete.SubmitMsg:
		m.email, cmd = m.email.Update(msg)
		m.settle()
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// settle applies whatever the component callbacks reported during the last
// update.
func (m *model) settle() {
	if c := m.host.completion; c != nil {
		m.host.completion = nil
		m.input.SetValue(*c)
		m.input.CursorEnd()
		m.status = "completed " + *c
	}
	if m.host.submitted {
		m.host.submitted = false
		m.status = fmt.Sprintf("submitted %q", m.input.Value())
		m.log.Info("submit", "value", m.input.Value())
	}
	m.email = m.email.SetSize(lipgloss.Width(m.input.View()), 1)
}

func (m *model) reload() {
	if m.configPath == "" {
		m.status = "no config file"
		return
	}
	cfg, err := config.Load(m.configPath)
	if err != nil {
		m.log.Warn("reload failed", "err", err)
		m.status = "reload failed: " + err.Error()
		return
	}
	m.email = m.email.SetDomains(cfg.Domains)
	m.status = fmt.Sprintf("reloaded %d domains", len(m.email.Domains()))
}

func (m model) View() string {
	status := m.status
	if status == "" {
		status = "ready"
	}
	screen := strings.Join([]string{
		title,
		m.input.View(),
		"",
		status,
		"",
		m.help.View(m.email.KeyMap()),
		"",
		"",
		"",
		"",
		"",
		"",
		"",
	}, "\n")
	return m.email.Overlay(screen)
}
