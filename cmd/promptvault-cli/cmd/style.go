package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"promptvault/internal/domain"
)

var (
	greenBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("●")
	amberBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("●")
	redBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("●")
	grayBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("○")

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// badge renders a status as a colored dot.
func badge(s domain.Status) string {
	switch s {
	case domain.StatusGreen:
		return greenBadge
	case domain.StatusAmber:
		return amberBadge
	case domain.StatusRed:
		return redBadge
	default:
		return grayBadge
	}
}

// confirm asks the user a yes/no question on the terminal. The --yes flag
// skips the prompt; destructive commands call this before acting.
func confirm(question string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
