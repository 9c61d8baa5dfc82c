package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/usecase"
)

func listCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registrations, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			// The data layer carries no timeout of its own; the caller
			// bounds latency with a context deadline.
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			regs, err := usecase.NewListRegistrations(app.gateway).Execute(ctx)
			if err != nil {
				return err
			}

			if len(regs) == 0 {
				fmt.Println("(no registrations yet)")
				return nil
			}

			fmt.Println(renderTable(regs))
			fmt.Printf("%d registration(s)\n", len(regs))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout for the fetch")
	return cmd
}
