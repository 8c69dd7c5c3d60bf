package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
	"github.com/osci-tools/anaconda-webui-harness/internal/storage"
)

func newDisksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DisksUse,
		Short: messages.DisksShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := connect(cmd)
			if err != nil {
				return err
			}

			output, err := m.Execute(storage.ListDisksCommand)
			if err != nil {
				return fmt.Errorf(messages.StorageListDisksFmt, err)
			}
			for disk := range storage.ParseDisks(output) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), disk)
			}
			return nil
		},
	}
}
