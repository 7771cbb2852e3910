package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shavecost/shavecost/costmodel"
)

var coefficientsCmd = &cobra.Command{
	Use:   "coefficients",
	Short: "Inspect and validate kernel coefficient override files",
}

var validateCoefficientsPath string

var coefficientsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a coefficients override file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := costmodel.ValidateCoefficientsFile(validateCoefficientsPath); err != nil {
			return fmt.Errorf("invalid coefficients file: %w", err)
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	coefficientsValidateCmd.Flags().StringVar(&validateCoefficientsPath, "file", "", "Path to the coefficients YAML file")
	coefficientsValidateCmd.MarkFlagRequired("file")
	coefficientsCmd.AddCommand(coefficientsValidateCmd)
}
