package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mejla/cmd/app/commands"
	"github.com/allisson/mejla/internal/app"
	"github.com/allisson/mejla/internal/config"
)

func profileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Value:   "default",
		Usage:   "Settings profile name",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getEmailCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "configure",
			Usage: "Create or edit the email settings of a profile interactively",
			Flags: []cli.Flag{
				profileFlag(),
				&cli.StringFlag{
					Name:  "field",
					Value: "all",
					Usage: commands.FieldSelectorUsage(),
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				settingsUseCase, err := container.SettingsUseCase()
				if err != nil {
					return err
				}

				return commands.RunConfigure(
					ctx,
					settingsUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("profile"),
					cmd.String("field"),
				)
			},
		},
		{
			Name:  "show",
			Usage: "Show the stored settings of a profile without secrets",
			Flags: []cli.Flag{profileFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				settingsUseCase, err := container.SettingsUseCase()
				if err != nil {
					return err
				}

				return commands.RunShow(
					ctx,
					settingsUseCase,
					commands.DefaultIO().Writer,
					cmd.String("profile"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "send",
			Usage: "Send an email using the settings of a profile",
			Flags: []cli.Flag{
				profileFlag(),
				&cli.StringFlag{
					Name:    "subject",
					Aliases: []string{"s"},
					Usage:   "Subject overriding the stored template",
				},
				&cli.StringFlag{
					Name:    "body",
					Aliases: []string{"b"},
					Usage:   "Body overriding the stored template",
				},
				&cli.StringSliceFlag{
					Name:    "attach",
					Aliases: []string{"a"},
					Usage:   "File to attach (repeatable)",
				},
				&cli.StringSliceFlag{
					Name:    "replace",
					Aliases: []string{"r"},
					Usage:   "Template replacement as placeholder=value (repeatable)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				settingsUseCase, err := container.SettingsUseCase()
				if err != nil {
					return err
				}

				return commands.RunSend(
					ctx,
					settingsUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.SendOptions{
						Profile:      cmd.String("profile"),
						Subject:      cmd.String("subject"),
						Body:         cmd.String("body"),
						Attachments:  cmd.StringSlice("attach"),
						Replacements: cmd.StringSlice("replace"),
					},
				)
			},
		},
		{
			Name:  "verify",
			Usage: "Check that every stored profile decrypts with the encryption password",
			Flags: []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				settingsUseCase, err := container.SettingsUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerify(
					ctx,
					settingsUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}
