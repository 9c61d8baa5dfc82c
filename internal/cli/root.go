package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/buildinfo"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "bimtek",
		Short:        "bimtek — pendaftaran bimbingan teknis client",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			dir, err := configDir()
			if err != nil {
				return
			}
			cleanup, _ = logger.Setup(logger.Config{
				Dir:   dir,
				Debug: debug,
			})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to the config dir's logs/bimtek.log")

	cmd.AddCommand(endpointCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(submitCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildinfo.String())
		},
	}
}
