package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/usecase"
)

func submitCmd() *cobra.Command {
	var file string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new registration from a YAML form file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			receipt, err := usecase.NewSubmitRegistration(app.forms, app.gateway).Execute(ctx, file)
			if err != nil {
				return err
			}

			fmt.Printf("Submitted at %s (status %d).\n",
				receipt.SubmittedAt.Format(time.RFC3339), receipt.StatusCode)
			fmt.Println("Note: the backend answers opaquely; delivery to the sheet itself is not confirmed.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the registration form YAML")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall timeout for the submission")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
