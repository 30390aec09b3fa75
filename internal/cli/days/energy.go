package days

import (
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/validation"
)

type EnergyCmd struct {
	Level string `arg:"" enum:"low,medium,high" help:"Energy level: low, medium, or high."`
}

func (c *EnergyCmd) Run(ctx *cli.Context) error {
	energy, err := validation.ParseEnergy(c.Level)
	if err != nil {
		return err
	}
	ctx.Planner.SetEnergy(energy)
	fmt.Printf("Energy recorded: %s\n", energy)
	return nil
}
