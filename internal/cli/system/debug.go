package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/stillday/internal/cli"
	"github.com/julianstephens/stillday/internal/constants"
	"github.com/julianstephens/stillday/internal/models"
)

type DebugCmd struct {
	Path         *DebugPathCmd         `cmd:"" help:"Show storage path."`
	DumpEntries  *DebugDumpEntriesCmd  `cmd:"" help:"Dump all day entries as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *cli.Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.GetConfigPath(),
	}
	return printJSON(output)
}

type DebugDumpEntriesCmd struct {
	Date string `arg:"" optional:"" help:"Dump a single day (YYYY-MM-DD) instead of all entries."`
}

func (cmd *DebugDumpEntriesCmd) Run(ctx *cli.Context) error {
	entries := map[string]models.DayEntry{}
	ctx.Store.Read(constants.StorageKeyEntries, &entries)

	if cmd.Date != "" {
		entry, ok := entries[cmd.Date]
		if !ok {
			return fmt.Errorf("no entry stored for %s", cmd.Date)
		}
		return printJSON(entry)
	}
	return printJSON(entries)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings := models.DefaultSettings()
	ctx.Store.Read(constants.StorageKeySettings, &settings)
	return printJSON(settings)
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
