package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		blob, err := a.Engine.ExportJSON()
		if err != nil {
			return err
		}
		if exportPath == "" {
			fmt.Println(string(blob))
			return nil
		}
		if err := os.WriteFile(exportPath, blob, 0o600); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Progress exported to %s\n", exportPath)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress from an exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Engine.ImportJSON(cmd.Context(), raw); err != nil {
			return err
		}
		fmt.Println("Progress imported.")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "Write to file instead of stdout")
}
