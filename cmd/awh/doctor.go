package main

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osci-tools/anaconda-webui-harness/internal/doctor"
	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, path)

			var results []doctor.Result

			configResult, cfg := doctor.CheckConfig(path)
			results = append(results, configResult)
			results = append(results, doctor.CheckBrowser(cfg))

			// Target checks only make sense with a loaded config.
			if cfg != nil {
				target := net.JoinHostPort(cfg.Machine.Address, strconv.Itoa(cfg.Machine.Port))
				m, dialErr := dialFunc(cfg.Machine)
				if dialErr != nil {
					results = append(results, doctor.Result{
						Status:         doctor.StatusFail,
						CheckName:      messages.DoctorCheckNameMachine,
						Message:        fmt.Sprintf(messages.DoctorMachineUnreachableFmt, target, dialErr),
						Recommendation: messages.DoctorMachineUnreachableRecommend,
					})
				} else {
					results = append(results, doctor.CheckMachine(m, target))
					results = append(results, doctor.CheckBusAddress(m))
					results = append(results, doctor.CheckTargetTools(m)...)
				}
			}

			failures := 0
			for _, result := range results {
				printResult(out, result)
				if result.Status == doctor.StatusFail {
					failures++
				}
			}

			if failures > 0 {
				_, _ = fmt.Fprintf(out, messages.DoctorHasFailuresFmt, failures)
				return errors.New(messages.DoctorFailed)
			}
			_, _ = fmt.Fprint(out, messages.DoctorAllOKMsg)
			return nil
		},
	}
}

func printResult(out io.Writer, result doctor.Result) {
	status := string(result.Status)
	switch result.Status {
	case doctor.StatusOK:
		status = color.GreenString(status)
	case doctor.StatusWarn:
		status = color.YellowString(status)
	case doctor.StatusFail:
		status = color.RedString(status)
	}
	_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", status, result.CheckName, result.Message)
	if result.Recommendation != "" {
		_, _ = fmt.Fprintf(out, "       %s\n", result.Recommendation)
	}
}
