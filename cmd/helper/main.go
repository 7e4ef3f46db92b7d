// An interactive assistant for a game being played elsewhere: type each
// guess with the tile colors the game showed, and the helper narrows
// the candidates and ranks what to try next. The word-list maintenance
// flags also work without entering the TUI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/namsral/flag"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordle_explorer/internal/helper"
	"github.com/domino14/wordle_explorer/internal/lexicon"
)

type Config struct {
	dataPath string
	add      string
	drop     string
	confirm  string
	limit    int
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("helper", flag.ContinueOnError)

	fs.StringVar(&c.dataPath, "data-path", os.Getenv("WORDLE_DATA_PATH"),
		"directory holding the word list files")
	fs.StringVar(&c.add, "add", "", "add a word to the corpus and exit")
	fs.StringVar(&c.drop, "drop", "", "drop a word from the corpus and exit")
	fs.StringVar(&c.confirm, "confirm", "", "mark a word as a confirmed answer and exit")
	fs.IntVar(&c.limit, "limit", 12, "how many ranked candidates to show")
	return fs.Parse(args)
}

var (
	exactStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("#538d4e"))

	presentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("#b59f3b"))

	absentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("#3a3a3c"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func renderTiles(guess, marks string) string {
	var sb strings.Builder
	for i := 0; i < len(guess) && i < len(marks); i++ {
		letter := " " + strings.ToUpper(string(guess[i])) + " "
		switch marks[i] {
		case 'g':
			sb.WriteString(exactStyle.Render(letter))
		case 'y':
			sb.WriteString(presentStyle.Render(letter))
		default:
			sb.WriteString(absentStyle.Render(letter))
		}
	}
	return sb.String()
}

type model struct {
	textInput textinput.Model
	sess      *helper.Session
	dataPath  string
	limit     int
	history   []string
	status    string
}

func initialModel(dataPath string, limit int, sess *helper.Session) model {
	ti := textinput.New()
	ti.Placeholder = "guess marks"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 20

	return model{
		textInput: ti,
		sess:      sess,
		dataPath:  dataPath,
		limit:     limit,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.Type {

		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.textInput.Value())
			m.textInput.Reset()
			m.status = ""
			if line == "" {
				return m, nil
			}
			if strings.HasPrefix(line, "!") {
				return m.runCommand(line), nil
			}
			return m.runGuess(line), nil
		}
	}
	m.textInput, cmd = m.textInput.Update(msg)

	return m, cmd
}

func (m model) runGuess(line string) model {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		m.status = errorStyle.Render("type a guess and its marks, e.g. \"arose xygxx\"")
		return m
	}
	move, err := m.sess.Guess(fields[0], fields[1])
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m
	}
	m.history = append(m.history, renderTiles(move.Guess, move.Feedback))
	if move.Solved {
		m.status = exactStyle.Render(" solved! ") + " !reset starts a new game"
	} else if move.Exhausted {
		m.status = errorStyle.Render(
			"a position has no letters left; check your marks (!reset starts over)")
	}
	return m
}

func (m model) runCommand(line string) model {
	fields := strings.Fields(line)
	if len(fields) == 1 && fields[0] == "!reset" {
		m.sess.Reset()
		m.history = nil
		m.status = "new game"
		return m
	}
	if len(fields) != 2 {
		m.status = errorStyle.Render("commands: !add <word>, !drop <word>, !confirm <word>, !reset")
		return m
	}
	var err error
	switch fields[0] {
	case "!add":
		err = lexicon.Add(m.dataPath, fields[1])
	case "!drop":
		err = lexicon.Drop(m.dataPath, fields[1])
	case "!confirm":
		err = lexicon.Confirm(m.dataPath, fields[1])
	default:
		m.status = errorStyle.Render("unknown command " + fields[0])
		return m
	}
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m
	}
	corpus, err := lexicon.Load(m.dataPath)
	if err != nil {
		m.status = errorStyle.Render(err.Error())
		return m
	}
	// Replay the game so far against the edited corpus.
	sess := helper.NewSession(corpus)
	for _, mv := range m.sess.Moves() {
		if _, err := sess.Guess(mv.Guess, mv.Feedback); err != nil {
			m.status = errorStyle.Render(err.Error())
			return m
		}
	}
	m.sess = sess
	m.status = fmt.Sprintf("%s %s ok; corpus now has %d words",
		fields[0], fields[1], corpus.Len())
	return m
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString("wordle helper\n\n")
	for _, row := range m.history {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	if len(m.history) > 0 {
		cons := m.sess.Constraints()
		fmt.Fprintf(&sb, "\npattern %s", cons.Pinned())
		if unplaced := cons.Unplaced(); !unplaced.Empty() {
			fmt.Fprintf(&sb, "  unplaced %s", unplaced)
		}
		sb.WriteByte('\n')
	}
	if !m.sess.Solved() {
		sb.WriteByte('\n')
		sb.WriteString(m.sess.FormatRanked(m.limit))
		sb.WriteByte('\n')
	}
	if m.status != "" {
		sb.WriteString("\n" + m.status + "\n")
	}
	sb.WriteString("\n" + m.textInput.View() + "\n\n")
	sb.WriteString(faintStyle.Render(
		"guess + marks narrows (g exact, y present, x absent). esc quits."))
	sb.WriteByte('\n')
	return sb.String()
}

func maintain(cfg *Config) (bool, error) {
	switch {
	case cfg.add != "":
		return true, lexicon.Add(cfg.dataPath, cfg.add)
	case cfg.drop != "":
		return true, lexicon.Drop(cfg.dataPath, cfg.drop)
	case cfg.confirm != "":
		return true, lexicon.Confirm(cfg.dataPath, cfg.confirm)
	}
	return false, nil
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if edited, err := maintain(cfg); edited {
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		fmt.Println("word lists updated")
		return
	}

	corpus, err := lexicon.Load(cfg.dataPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading-corpus")
	}

	p := tea.NewProgram(initialModel(cfg.dataPath, cfg.limit, helper.NewSession(corpus)))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
