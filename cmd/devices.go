package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shavecost/shavecost/costmodel"

	_ "github.com/shavecost/shavecost/shave/device"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List supported devices and the kernels each one implements",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := costmodel.BuildDefaultRegistry()
		if err != nil {
			return err
		}
		for _, dev := range registry.Devices() {
			fmt.Printf("%s:\n", dev.String())
			for _, name := range registry.Select(dev).List() {
				fmt.Printf("  %s\n", name)
			}
		}
		return nil
	},
}
