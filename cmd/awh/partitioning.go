package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
	"github.com/osci-tools/anaconda-webui-harness/internal/storage"
)

func newResetPartitioningCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ResetPartitioningUse,
		Short: messages.ResetPartitioningShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := connect(cmd)
			if err != nil {
				return err
			}
			bus, err := storage.NewBus(m)
			if err != nil {
				return err
			}
			if err := bus.ResetPartitioning(); err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), messages.ResetPartitioningDone)
			return nil
		},
	}
}

func newInitModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InitModeUse,
		Short: messages.InitModeShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf(messages.InitModeInvalidFmt, args[0])
			}

			_, m, err := connect(cmd)
			if err != nil {
				return err
			}
			bus, err := storage.NewBus(m)
			if err != nil {
				return err
			}
			if err := bus.SetInitializationMode(int32(mode)); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.InitModeDoneFmt, mode)
			return nil
		},
	}
}
