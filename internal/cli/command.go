package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/dispatch/internal/wire"
)

// CommandCmd returns the command command, the entry point for structured
// commands produced by an external intent extractor.
func CommandCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "command [json]",
		Short: "Execute a structured JSON command",
		Long: `Execute one structured command, as emitted by the intent layer.
The payload is taken from the argument, or from stdin when the
argument is "-" or absent.

Examples:
  dispatch command '{"type":"new_task","person":"ahmet","task":"taşıma","duration":{"value":2,"unit":"saat"}}'
  echo '{"type":"task_done","person":"mehmet"}' | dispatch command -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload []byte
			if len(args) == 1 && args[0] != "-" {
				payload = []byte(args[0])
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				payload = data
			}

			result, err := wire.CommandService().ExecuteRaw(context.Background(), payload)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal result: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("✓ %s\n", result.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
