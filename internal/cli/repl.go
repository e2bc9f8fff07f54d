// Package cli implements an interactive spell-check prompt for testing and
// debugging, mirroring the teacher's own bufio-driven REPL loop.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/affixspell/internal/logger"
	"github.com/bastiangx/affixspell/pkg/checker"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2d7d46", Dark: "#5fd787"})
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#a5222f", Dark: "#ff6b6b"}).Bold(true)
	suggestStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	forbiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#a5222f", Dark: "#ff6b6b"}).Italic(true)
)

// InputHandler drives the interactive prompt: read a token from stdin,
// report correctness, and print ranked suggestions when the token fails
// validation.
type InputHandler struct {
	checker      *checker.Checker
	log          *log.Logger
	requestCount int
}

// NewInputHandler binds an InputHandler to checker, logging through a
// dedicated "spellcli" logger (internal/logger).
func NewInputHandler(c *checker.Checker) *InputHandler {
	return &InputHandler{checker: c, log: logger.New("spellcli")}
}

// Start begins the interactive loop: prompt, read a line, check it,
// repeat until stdin closes.
func (h *InputHandler) Start() error {
	h.log.Print("affixspell CLI [BETA]")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a word and press Enter to check it (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}
		h.handleInput(token)
	}
}

func (h *InputHandler) handleInput(token string) {
	h.requestCount++
	result := h.checker.Spell(token)

	switch {
	case result.Forbidden:
		fmt.Println(forbiddenStyle.Render(fmt.Sprintf("%s is forbidden", token)))
	case result.Correct:
		fmt.Println(correctStyle.Render(fmt.Sprintf("%s is correct", token)))
		if result.Warn {
			h.log.Warnf("%s is flagged for review", token)
		}
	default:
		fmt.Println(incorrectStyle.Render(fmt.Sprintf("%s is not correct", token)))
		suggestions := h.checker.Suggest(token)
		if len(suggestions) == 0 {
			h.log.Warn("no suggestions found")
			return
		}
		for i, s := range suggestions {
			fmt.Println(suggestStyle.Render(fmt.Sprintf("%2d. %s", i+1, s)))
		}
	}
}
