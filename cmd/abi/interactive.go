package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/evm-abi/abi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateInputSig modelState = iota
	stateSelectAction
	stateInputPayload
	stateShowResult
)

type action int

const (
	actionDecode action = iota
	actionDecodeLenient
	actionEncode
)

var actionNames = []string{
	"decode (strict)",
	"decode (lenient)",
	"encode",
}

type interactiveModel struct {
	err      error
	coder    *abi.Coder
	funcName string
	sigInput textinput.Model
	payload  textinput.Model
	result   string
	selected int
	state    modelState
}

func newInteractiveModel(sig string) *interactiveModel {
	si := textinput.New()
	si.Placeholder = "transfer(address,uint256)"
	si.Prompt = "signature: "
	si.Width = 60
	si.SetValue(sig)
	si.Focus()

	pi := textinput.New()
	pi.Width = 60

	return &interactiveModel{
		sigInput: si,
		payload:  pi,
		state:    stateInputSig,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputSig && m.state != stateInputPayload {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectAction && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectAction && m.selected < len(actionNames)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateInputSig:
				name, coder, err := abi.ParseSignature(m.sigInput.Value())
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.funcName = name
				m.coder = coder
				m.sigInput.Blur()
				m.state = stateSelectAction

			case stateSelectAction:
				m.preparePayload()
				m.state = stateInputPayload

			case stateInputPayload:
				m.runAction()
				m.payload.Blur()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateSelectAction:
				m.state = stateInputSig
				m.sigInput.Focus()
			case stateInputPayload:
				m.payload.Blur()
				m.state = stateSelectAction
			case stateShowResult:
				m.state = stateSelectAction
				m.result = ""
				m.err = nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case stateInputSig:
		m.sigInput, cmd = m.sigInput.Update(msg)
	case stateInputPayload:
		m.payload, cmd = m.payload.Update(msg)
	}
	return m, cmd
}

func (m *interactiveModel) preparePayload() {
	m.payload.SetValue("")
	if action(m.selected) == actionEncode {
		m.payload.Prompt = "values: "
		m.payload.Placeholder = "42,[1,2],0xdeadbeef"
	} else {
		m.payload.Prompt = "calldata: "
		m.payload.Placeholder = "0x..."
	}
	m.payload.Focus()
}

func (m *interactiveModel) runAction() {
	switch action(m.selected) {
	case actionEncode:
		values, err := parseArgList(m.coder.Types(), m.payload.Value())
		if err != nil {
			m.err = err
			return
		}
		data, err := m.coder.EncodeAll(values...)
		if err != nil {
			m.err = err
			return
		}
		var b strings.Builder
		for off := 0; off < len(data); off += abi.WordSize {
			end := off + abi.WordSize
			if end > len(data) {
				end = len(data)
			}
			fmt.Fprintf(&b, "%04x: %x\n", off, data[off:end])
		}
		m.err = nil
		m.result = b.String()

	default:
		mode := abi.ModeStrict
		if action(m.selected) == actionDecodeLenient {
			mode = abi.ModeLenient
		}
		raw := strings.TrimPrefix(strings.TrimSpace(m.payload.Value()), "0x")
		data, err := hex.DecodeString(raw)
		if err != nil {
			m.err = fmt.Errorf("decode hex: %w", err)
			return
		}
		values, err := m.coder.DecodeAll(data, mode)
		if err != nil {
			m.err = err
			return
		}
		var b strings.Builder
		for i, v := range values {
			fmt.Fprintf(&b, "arg%d %s = %s\n", i, m.coder.Types()[i], formatValue(v))
		}
		m.err = nil
		m.result = b.String()
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ABI Coder"))
	if m.coder != nil {
		b.WriteString(" ")
		b.WriteString(funcStyle.Render(m.funcName))
		b.WriteString(typeStyle.Render(m.coder.String()))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateInputSig:
		b.WriteString("Enter a function signature:\n\n")
		b.WriteString(m.sigInput.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter confirm • ctrl+c quit"))

	case stateSelectAction:
		b.WriteString("Select an action:\n\n")
		for i, name := range actionNames {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + name))
			} else {
				b.WriteString(cursor + name)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter confirm • esc back • q quit"))

	case stateInputPayload:
		b.WriteString(actionNames[m.selected])
		b.WriteString("\n\n")
		b.WriteString(m.payload.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		b.WriteString(actionNames[m.selected])
		b.WriteString(":\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(sig string) error {
	p := tea.NewProgram(newInteractiveModel(sig), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
