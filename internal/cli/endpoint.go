package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/usecase"
)

func endpointCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "endpoint",
		Short: "Manage the backend endpoint URL",
	}

	c.AddCommand(endpointSetCmd())
	c.AddCommand(endpointShowCmd())
	return c
}

func endpointSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <url>",
		Short: "Store the backend endpoint URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if err := usecase.NewConfigureEndpoint(app.store).Execute(args[0]); err != nil {
				return err
			}
			fmt.Printf("Endpoint saved: %s\n", args[0])
			return nil
		},
	}
}

func endpointShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the endpoint URL the client would use",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			url := app.resolver.Resolve()
			if url == "" {
				fmt.Println("(not configured — run `bimtek endpoint set <url>`)")
				return nil
			}
			fmt.Println(url)
			return nil
		},
	}
}
