package days

import (
	"errors"
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/models"
)

type ReflectCmd struct {
	WentWell  []string `short:"w" help:"Something that went well today (repeatable, up to 3)."`
	FeltHeavy string   `short:"f" help:"Something that felt heavy today."`
	Gratitude string   `short:"g" help:"One thing you're grateful for."`
}

func (c *ReflectCmd) Validate() error {
	if len(c.WentWell) == 0 && c.FeltHeavy == "" && c.Gratitude == "" {
		return errors.New("nothing to reflect on, pass at least one of --went-well, --felt-heavy, --gratitude")
	}
	return nil
}

func (c *ReflectCmd) Run(ctx *cli.Context) error {
	reflection := models.Reflection{
		WentWell:  c.WentWell,
		FeltHeavy: c.FeltHeavy,
		Gratitude: c.Gratitude,
	}
	// A reflection written after letting go keeps the release marker.
	if existing := ctx.Planner.Today().Reflection; existing != nil {
		reflection.LetGo = existing.LetGo
	}
	ctx.Planner.SaveReflection(reflection)
	fmt.Println("Reflection saved. Rest well.")
	return nil
}
