package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wavicon/icon"
)

type tickMsg time.Time

type previewModel struct {
	frames []*image.RGBA
	views  []string // pre-rendered frames
	frame  int
	delay  time.Duration
	paused bool
}

func newPreviewModel(frames []*image.RGBA, delay time.Duration) previewModel {
	p := pixelStyles{}
	views := make([]string, len(frames))
	for i, f := range frames {
		views[i] = p.render(f)
	}
	return previewModel{frames: frames, views: views, delay: delay}
}

func (m previewModel) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			m.paused = !m.paused
		case "right", "l":
			m.frame = (m.frame + 1) % len(m.frames)
		case "left", "h":
			m.frame = (m.frame + len(m.frames) - 1) % len(m.frames)
		}

	case tickMsg:
		if !m.paused {
			m.frame = (m.frame + 1) % len(m.frames)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m previewModel) View() string {
	status := fmt.Sprintf("frame %d/%d", m.frame+1, len(m.frames))
	if m.paused {
		status += " (paused)"
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return m.views[m.frame] + "\n" +
		statusStyle.Render(status) + "\n" +
		helpStyle.Render("space pause · ←/→ step · q quit") + "\n"
}

// pixelStyles caches one lipgloss style per colour pair.
type pixelStyles map[[2]color.RGBA]lipgloss.Style

func (p pixelStyles) style(fg, bg color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{fg, bg}
	if s, ok := p[key]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(icon.Hex(fg)[:7]))
	if bg.A != 0 {
		s = s.Background(lipgloss.Color(icon.Hex(bg)[:7]))
	}
	p[key] = s
	return s
}

// render draws img with half-block characters, two pixel rows per line.
// Fully transparent pixels are left blank.
func (p pixelStyles) render(img *image.RGBA) string {
	b := img.Bounds()
	var result strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			var bot color.RGBA
			if y+1 < b.Max.Y {
				bot = img.RGBAAt(x, y+1)
			}
			switch {
			case top.A == 0 && bot.A == 0:
				result.WriteString(" ")
			case top == bot:
				result.WriteString(p.style(top, color.RGBA{}).Render("█"))
			case bot.A == 0:
				result.WriteString(p.style(top, color.RGBA{}).Render("▀"))
			case top.A == 0:
				result.WriteString(p.style(bot, color.RGBA{}).Render("▄"))
			default:
				result.WriteString(p.style(top, bot).Render("▀"))
			}
		}
		result.WriteString("\n")
	}
	return result.String()
}

func runPreview(args []string, stdout, stderr io.Writer) error {
	var lf logFlags
	var wf waveFlags
	useGUI := false
	fs := newFlagSet("preview", stderr)
	lf.register(fs)
	wf.register(fs)
	fs.BoolVar(&useGUI, "gui", false, "Play in a window (requires a build with -tags gui)")
	if err := parse(fs, args); err != nil {
		return err
	}
	defer startLogging(lf, stderr)()

	if err := wf.cfg.Validate(); err != nil {
		return err
	}
	if wf.delay <= 0 {
		return errors.New("preview delay must be positive")
	}
	frames := wf.cfg.Render()
	delay := time.Duration(wf.delay) * 10 * time.Millisecond

	if useGUI {
		return runGUIPreview(frames, delay)
	}
	if !isTerminal(stdout) {
		return errors.New("terminal preview needs a terminal on stdout (try -gui)")
	}
	_, err := tea.NewProgram(newPreviewModel(frames, delay), tea.WithOutput(stdout)).Run()
	return err
}
