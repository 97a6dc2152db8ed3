package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/routelens/bgpls"
	"github.com/routelens/bgpls/linkstate"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB")).
			Padding(0, 1)

	tlvStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	hexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2563EB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err      error
	input    textinput.Model
	tlvs     []linkstate.RawTLV
	selected int
	state    inspectorState
}

type inspectorState int

const (
	stateEnterHex inspectorState = iota
	stateListTLVs
	stateShowTLV
)

func newInspectorModel(data []byte) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "01:07:00:02:10:05"
	ti.Prompt = "hex> "
	ti.Width = 60
	ti.Focus()

	m := &inspectorModel{input: ti, state: stateEnterHex}
	if len(data) > 0 {
		m.loadStream(data)
	}
	return m
}

// loadStream scans data as a TLV stream, falling back to treating it as a
// single headerless MT-ID payload when scanning fails.
func (m *inspectorModel) loadStream(data []byte) {
	tlvs, err := linkstate.ScanTLVs(data)
	if err != nil {
		if _, mtidErr := linkstate.DecodeMTID(data); mtidErr == nil {
			tlvs = []linkstate.RawTLV{{Type: bgpls.TypeMultiTopologyID, Value: data}}
			err = nil
		}
	}
	if err != nil {
		m.err = err
		m.state = stateEnterHex
		return
	}
	m.err = nil
	m.tlvs = tlvs
	m.selected = 0
	m.state = stateListTLVs
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateEnterHex {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateListTLVs && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateListTLVs && m.selected < len(m.tlvs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateEnterHex:
				data, err := parseHex(m.input.Value())
				if err != nil {
					m.err = err
					return m, nil
				}
				m.loadStream(data)
				return m, nil

			case stateListTLVs:
				m.state = stateShowTLV

			case stateShowTLV:
				m.state = stateListTLVs
			}

		case "esc":
			switch m.state {
			case stateListTLVs:
				m.state = stateEnterHex
				m.input.Focus()
				m.err = nil
			case stateShowTLV:
				m.state = stateListTLVs
			}
		}
	}

	if m.state == stateEnterHex {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("lsdump — link-state TLV inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEnterHex:
		b.WriteString("Enter a TLV stream or MT-ID payload as hex:\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: decode  ctrl+c: quit"))

	case stateListTLVs:
		for i, tlv := range m.tlvs {
			line := fmt.Sprintf("type %-5d %-30s %4d bytes", tlv.Type, tlv.Name(), len(tlv.Value))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(tlvStyle.Render("  " + line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("up/down: select  enter: inspect  esc: new input  q: quit"))

	case stateShowTLV:
		tlv := m.tlvs[m.selected]
		b.WriteString(tlvStyle.Render(fmt.Sprintf("type %d (%s), %d bytes", tlv.Type, tlv.Name(), len(tlv.Value))))
		b.WriteString("\n\n")
		b.WriteString(hexStyle.Render(hexText(tlv.Value)))
		b.WriteString("\n\n")
		b.WriteString(m.renderDecoded(tlv))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter/esc: back  q: quit"))
	}

	return b.String()
}

func (m *inspectorModel) renderDecoded(tlv linkstate.RawTLV) string {
	decoded, err := linkstate.DecodeTLV(tlv)
	if err != nil {
		return errorStyle.Render(err.Error()) + "\n"
	}

	var b strings.Builder
	if mtid, ok := decoded.(*linkstate.MTID); ok {
		for _, topo := range mtid.Topologies {
			fmt.Fprintf(&b, "  R=%04b  mt-id=%d\n", topo.Reserved, topo.ID)
		}
		b.WriteString("\n")
	}
	b.WriteString(decoded.JSON())
	b.WriteString("\n")
	return b.String()
}

func hexText(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, ":")
}

func runInteractive(data []byte) error {
	p := tea.NewProgram(newInspectorModel(data))
	_, err := p.Run()
	return err
}
