package main

import (
	"github.com/spf13/cobra"

	"github.com/osci-tools/anaconda-webui-harness/internal/config"
	"github.com/osci-tools/anaconda-webui-harness/internal/machine"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// defaultConfigPath is where the CLI looks for the harness config unless
// --config points elsewhere.
const defaultConfigPath = "harness.toml"

// dialFunc is swapped out in tests so commands run against a stub target.
var dialFunc = func(cfg config.Machine) (machine.Machine, error) {
	ssh, err := machine.Dial(cfg)
	if err != nil {
		return nil, err
	}
	return ssh, nil
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("config", defaultConfigPath, messages.ConfigFlag)

	cmd.AddCommand(newDisksCmd())
	cmd.AddCommand(newResetPartitioningCmd())
	cmd.AddCommand(newInitModeCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConsoleCmd())
	return cmd
}

// loadConfig resolves the --config flag and loads the harness config.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// connect loads the config and dials the target machine.
func connect(cmd *cobra.Command) (*config.Config, machine.Machine, error) {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	m, err := dialFunc(cfg.Machine)
	if err != nil {
		return nil, nil, err
	}
	return cfg, m, nil
}
