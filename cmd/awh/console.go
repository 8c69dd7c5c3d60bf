package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osci-tools/anaconda-webui-harness/internal/console"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

func newConsoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConsoleUse,
		Short: messages.ConsoleShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(messages.ConsoleNeedsCmd)
			}

			logPath, err := cmd.Flags().GetString("log")
			if err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf(messages.ConsoleOpenLogFmt, logPath, err)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			return console.Capture(cmd.Context(), out, args[0], args[1:]...)
		},
	}
	cmd.Flags().String("log", "", messages.ConsoleFlagLog)
	return cmd
}
