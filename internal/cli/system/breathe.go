package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/tui"
)

type BreatheCmd struct {
	Cycles int `short:"c" default:"4" help:"Number of 4-7-8 breathing cycles before the session completes."`
}

func (c *BreatheCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewBreatheModel(c.Cycles), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
