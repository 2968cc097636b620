package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	_ "github.com/joho/godotenv/autoload"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"

	"github.com/blackroad/qualityctl/internal"
	"github.com/blackroad/qualityctl/internal/apperr"
	"github.com/blackroad/qualityctl/internal/models"
	"github.com/blackroad/qualityctl/internal/render"
	pkgconfig "github.com/blackroad/qualityctl/pkg/config"
)

func main() {
	cmd := &cli.Command{
		Name:  "qc",
		Usage: "Checklist and defect tracker backed by a local SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Sources: cli.EnvVars("QC_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			listCommand(),
			addCommand(),
			updateCommand(),
			resolveCommand(),
			statusCommand(),
			exportCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openApp loads configuration (defaults when no config file is given) and
// wires the application. Callers must Close the returned App.
func openApp(cmd *cli.Command) (*internal.App, error) {
	cfg := internal.NewDefaultConfig()
	if path := cmd.String("config"); path != "" {
		if err := pkgconfig.Load(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := pkgconfig.LoadIfExists(internal.DefaultConfigPath(), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return internal.NewApp(internal.WithConfig(cfg))
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List checklist items or defects",
		ArgsUsage: "<checklist|defects>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "Filter checklist items by category"},
			&cli.StringFlag{Name: "filter-status", Usage: "Filter defects by status"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			switch kind := cmd.Args().First(); kind {
			case "checklist":
				items, err := app.Service().ListChecklist(ctx, cmd.String("category"))
				if err != nil {
					return err
				}
				fmt.Print(render.ChecklistTable(items))
			case "defects":
				defects, err := app.Service().ListDefects(ctx, cmd.String("filter-status"))
				if err != nil {
					return err
				}
				fmt.Print(render.DefectTable(defects))
			default:
				return fmt.Errorf("list: expected checklist or defects, got %q", kind)
			}
			return nil
		},
	}
}

// addInput carries the add command arguments through validation. The input
// vocabulary for severity is constrained here, not in the store.
type addInput struct {
	Kind     string
	Title    string
	Severity string
}

// Validate validates the add command input.
func (in addInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Kind, validation.Required, validation.In("checklist", "defect")),
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Severity, validation.In(
			models.SeverityLow, models.SeverityMedium, models.SeverityHigh, models.SeverityCritical,
		)),
	)
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a checklist item or log a defect",
		ArgsUsage: "<checklist|defect> <title>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "Checklist item category", Value: "general"},
			&cli.StringFlag{Name: "severity", Usage: "One of low, medium, high, critical", Value: models.SeverityMedium},
			&cli.StringFlag{Name: "description", Usage: "Defect description"},
			&cli.StringFlag{Name: "component", Usage: "Defect component", Value: "general"},
			&cli.StringFlag{Name: "assignee", Usage: "Defect assignee"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in := addInput{
				Kind:     cmd.Args().Get(0),
				Title:    cmd.Args().Get(1),
				Severity: cmd.String("severity"),
			}
			if err := in.Validate(); err != nil {
				return fmt.Errorf("add: %w", err)
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if in.Kind == "checklist" {
				id, err := app.Service().AddChecklistItem(ctx, models.ChecklistItem{
					Title:    in.Title,
					Category: cmd.String("category"),
					Severity: in.Severity,
				})
				if err != nil {
					return err
				}
				fmt.Println(render.AddedChecklist(id, in.Title))
				return nil
			}

			id, err := app.Service().AddDefect(ctx, models.Defect{
				Title:       in.Title,
				Description: cmd.String("description"),
				Severity:    in.Severity,
				Component:   cmd.String("component"),
				Assignee:    cmd.String("assignee"),
			})
			if err != nil {
				return err
			}
			fmt.Println(render.LoggedDefect(id, in.Title))
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	return &cli.Command{
		Name:      "update",
		Usage:     "Update a checklist item's status",
		ArgsUsage: "<id> <status>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "notes", Usage: "Notes to attach to the item"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := parseID(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("update: %w", err)
			}
			status := cmd.Args().Get(1)
			if status == "" {
				return fmt.Errorf("update: status is required")
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			err = app.Service().UpdateChecklistStatus(ctx, id, status, cmd.String("notes"))
			if errors.Is(err, apperr.ErrNotFound) {
				fmt.Println(render.NotFound("checklist item", id))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(render.Updated(id, status))
			return nil
		},
	}
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Mark a defect as resolved",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := parseID(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("resolve: %w", err)
			}

			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			err = app.Service().ResolveDefect(ctx, id)
			if errors.Is(err, apperr.ErrNotFound) {
				fmt.Println(render.NotFound("defect", id))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(render.Resolved(id))
			return nil
		},
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the aggregate dashboard",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			stats, err := app.Service().Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Print(render.Dashboard(stats))
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all data as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write the export to a file instead of stdout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			doc, err := app.Service().Export(ctx)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("export: encode: %w", err)
			}

			if out := cmd.String("output"); out != "" {
				if err := atomic.WriteFile(out, bytes.NewReader(append(data, '\n'))); err != nil {
					return fmt.Errorf("export: write %s: %w", out, err)
				}
				fmt.Println(render.ExportedTo(out))
				return nil
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	if arg == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
