// Package tui is the interactive terminal quiz player. It walks the
// generated questions one at a time, in multiple-choice or typed-answer
// mode, and finishes with a score summary.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/quiz"
)

// answerMode selects how the player answers the current question.
type answerMode int

const (
	modeChoice answerMode = iota
	modeTyped
)

// PlayModel is the Bubble Tea model for a quiz run.
type PlayModel struct {
	questions []quiz.Question
	index     int
	mode      answerMode

	selected  int
	submitted bool
	chosen    string
	input     textinput.Model

	correct int
	done    bool
}

// NewPlay creates a player over the quiz result. The result must hold
// at least one question.
func NewPlay(result quiz.Result) PlayModel {
	ti := textinput.New()
	ti.Placeholder = "type the missing answer"
	ti.Focus()

	return PlayModel{
		questions: result.Ordered(),
		input:     ti,
	}
}

func (m PlayModel) Init() tea.Cmd {
	return m.input.Focus()
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.mode == modeTyped && !m.submitted {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch kmsg.String() {
	case "ctrl+c", "q":
		if m.done || kmsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case "enter":
		return m.handleEnter()
	case "tab":
		if !m.submitted {
			if m.mode == modeChoice {
				m.mode = modeTyped
			} else {
				m.mode = modeChoice
			}
			return m, nil
		}
	case "up", "k":
		if m.mode == modeChoice && !m.submitted && m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if m.mode == modeChoice && !m.submitted && m.selected < len(m.current().Options)-1 {
			m.selected++
		}
		return m, nil
	}

	if m.mode == modeTyped && !m.submitted {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PlayModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	if !m.submitted {
		q := m.current()
		if m.mode == modeChoice {
			m.chosen = q.Options[m.selected]
		} else {
			m.chosen = strings.TrimSpace(m.input.Value())
		}
		m.submitted = true
		if m.isCorrect() {
			m.correct++
		}
		return m, nil
	}

	// Advance past the feedback view.
	m.index++
	if m.index >= len(m.questions) {
		m.done = true
		return m, nil
	}
	m.submitted = false
	m.selected = 0
	m.chosen = ""
	m.input.SetValue("")
	return m, nil
}

func (m PlayModel) current() quiz.Question {
	return m.questions[m.index]
}

// isCorrect compares case-insensitively in typed mode; picking from
// options is exact.
func (m PlayModel) isCorrect() bool {
	if m.mode == modeTyped {
		return strings.EqualFold(m.chosen, m.current().Answer)
	}
	return m.chosen == m.current().Answer
}

func (m PlayModel) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.content())
	return v
}

func (m PlayModel) content() string {
	if len(m.questions) == 0 {
		return dimStyle.Render("No questions to play.")
	}
	if m.done {
		return m.summaryView()
	}

	var b strings.Builder
	q := m.current()

	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(progressLine(m.index, len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	if m.mode == modeChoice {
		b.WriteString(m.choicesView(q))
	} else {
		b.WriteString(m.typedView(q))
	}

	b.WriteString("\n")
	if m.submitted {
		b.WriteString(hintStyle.Render("enter: next  ·  ctrl+c: quit"))
	} else {
		b.WriteString(hintStyle.Render("enter: submit  ·  tab: switch answer mode  ·  ctrl+c: quit"))
	}

	return b.String()
}

func (m PlayModel) choicesView(q quiz.Question) string {
	var b strings.Builder
	labels := "ABCDEFGHIJ"

	for i, opt := range q.Options {
		prefix := "  "
		if i == m.selected && !m.submitted {
			prefix = "▸ "
		}
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.submitted && opt == q.Answer:
			b.WriteString(correctStyle.Render(line))
		case m.submitted && opt == m.chosen:
			b.WriteString(wrongStyle.Render(line))
		case !m.submitted && i == m.selected:
			b.WriteString(selectedStyle.Render(line))
		default:
			b.WriteString(bodyStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m PlayModel) typedView(q quiz.Question) string {
	if !m.submitted {
		return m.input.View()
	}

	var b strings.Builder
	if m.isCorrect() {
		b.WriteString(correctStyle.Render("Correct: " + q.Answer))
	} else {
		b.WriteString(wrongStyle.Render("You answered: "+m.chosen) + "\n")
		b.WriteString(correctStyle.Render("Correct answer: " + q.Answer))
	}
	return b.String()
}

func (m PlayModel) summaryView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz complete"))
	b.WriteString("\n\n")

	line := fmt.Sprintf("Score: %d / %d", m.correct, len(m.questions))
	if m.correct*2 >= len(m.questions) {
		b.WriteString(correctStyle.Render(line))
	} else {
		b.WriteString(wrongStyle.Render(line))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter or q: exit"))
	return b.String()
}

// progressLine renders a fixed-width bar of answered vs remaining
// questions.
func progressLine(answered, total int) string {
	const width = 24
	filled := 0
	if total > 0 {
		filled = answered * width / total
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// Run starts the player and blocks until the quiz ends.
func Run(result quiz.Result) error {
	_, err := tea.NewProgram(NewPlay(result)).Run()
	return err
}
