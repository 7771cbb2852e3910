package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shavecost/shavecost/costmodel"
	"github.com/shavecost/shavecost/shave"

	_ "github.com/shavecost/shavecost/shave/device"
	_ "github.com/shavecost/shavecost/shave/provider"
)

var (
	estimateDevice string
	estimateKernel string
	estimateParams []int32
	estimateInW    int64
	estimateInH    int64
	estimateInC    int64
	estimateInB    int64
	estimateOutW   int64
	estimateOutH   int64
	estimateOutC   int64
	estimateOutB   int64
	estimateLayout string
	skipCache      bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the DPU cycle cost of a single SHAVE kernel invocation",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, ok := shave.ParseVPUDevice(estimateDevice)
		if !ok {
			return fmt.Errorf("unknown device %q", estimateDevice)
		}
		layout, ok := parseLayout(estimateLayout)
		if !ok {
			return fmt.Errorf("unknown layout %q", estimateLayout)
		}

		registry, err := costmodel.BuildDefaultRegistry()
		if err != nil {
			return err
		}
		provider, err := costmodel.BuildDefaultProvider(registry)
		if err != nil {
			return err
		}
		model := costmodel.New(provider, costmodel.WithLogger(logrus.StandardLogger()))

		params := make([]shave.Param, len(estimateParams))
		for i, p := range estimateParams {
			params[i] = shave.IntParam(p)
		}

		wl := shave.SHAVEWorkload{
			Name:   estimateKernel,
			Device: dev,
			Inputs: []shave.VPUTensor{{W: estimateInW, H: estimateInH, C: estimateInC, B: estimateInB, DType: shave.DataTypeFLOAT16, Layout: layout}},
			Outputs: []shave.VPUTensor{{W: estimateOutW, H: estimateOutH, C: estimateOutC, B: estimateOutB, DType: shave.DataTypeFLOAT16, Layout: layout}},
			Params: params,
		}

		cycles := model.ComputeCycles(wl, skipCache)
		if shave.IsError(cycles) {
			return fmt.Errorf("estimate failed: %s", shave.Text(cycles))
		}
		fmt.Println(uint32(cycles))
		return nil
	},
}

func parseLayout(s string) (shave.Layout, bool) {
	for l := shave.LayoutZXY; l <= shave.LayoutZMAJOR; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return 0, false
}

func init() {
	estimateCmd.Flags().StringVar(&estimateDevice, "device", "NPU4.0", "Target device generation")
	estimateCmd.Flags().StringVar(&estimateKernel, "kernel", "", "Kernel name")
	estimateCmd.Flags().Int32SliceVar(&estimateParams, "params", nil, "Kernel-specific integer parameters")
	estimateCmd.Flags().Int64Var(&estimateInW, "in-w", 1, "Input width")
	estimateCmd.Flags().Int64Var(&estimateInH, "in-h", 1, "Input height")
	estimateCmd.Flags().Int64Var(&estimateInC, "in-c", 1, "Input channels")
	estimateCmd.Flags().Int64Var(&estimateInB, "in-b", 1, "Input batch")
	estimateCmd.Flags().Int64Var(&estimateOutW, "out-w", 1, "Output width")
	estimateCmd.Flags().Int64Var(&estimateOutH, "out-h", 1, "Output height")
	estimateCmd.Flags().Int64Var(&estimateOutC, "out-c", 1, "Output channels")
	estimateCmd.Flags().Int64Var(&estimateOutB, "out-b", 1, "Output batch")
	estimateCmd.Flags().StringVar(&estimateLayout, "layout", "XYZ", "Tensor memory layout")
	estimateCmd.Flags().BoolVar(&skipCache, "skip-cache", false, "Bypass the result cache for this query")
	estimateCmd.MarkFlagRequired("kernel")
}
