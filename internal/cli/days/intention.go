package days

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/stillday/internal/cli"
)

type IntentionCmd struct {
	Text []string `arg:"" help:"Intention for the day."`
}

func (c *IntentionCmd) Validate() error {
	if strings.TrimSpace(strings.Join(c.Text, " ")) == "" {
		return errors.New("intention cannot be empty")
	}
	return nil
}

func (c *IntentionCmd) Run(ctx *cli.Context) error {
	ctx.Planner.SetIntention(strings.Join(c.Text, " "))
	fmt.Printf("Intention set: %s\n", ctx.Planner.Today().Intention)
	return nil
}
