// circbench compares the exact minimal-sum-of-squares circular mean with
// the conventional resultant (vector) mean on noisy heading observations.
// For each noise level it draws wrapped-normal samples around a random
// true heading and reports the RMS estimation error of both methods.
package main

import (
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datarhei/circular"
	"github.com/datarhei/circular/dist"
	"github.com/datarhei/circular/stat"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		trials   int
		samples  int
		sigmaMin float64
		sigmaMax float64
		step     float64
		seed     int64
	)

	cmd := &cobra.Command{
		Use:           "circbench",
		Short:         "Benchmark circular mean estimators on noisy headings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return run(logger, trials, samples, sigmaMin, sigmaMax, step, seed)
		},
	}

	cmd.Flags().IntVar(&trials, "trials", 500, "number of trials per noise level")
	cmd.Flags().IntVar(&samples, "samples", 100, "number of observations per trial")
	cmd.Flags().Float64Var(&sigmaMin, "sigma-min", 5, "lowest noise level in degrees")
	cmd.Flags().Float64Var(&sigmaMax, "sigma-max", 100, "highest noise level in degrees")
	cmd.Flags().Float64Var(&step, "sigma-step", 5, "noise level increment in degrees")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for time-based")

	return cmd
}

func run(logger *zap.Logger, trials, samples int, sigmaMin, sigmaMax, step float64, seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	src := rand.New(rand.NewSource(seed))

	logger.Info("starting benchmark",
		zap.Int("trials", trials),
		zap.Int("samples", samples),
		zap.Int64("seed", seed),
	)

	for sigma := sigmaMin; sigma <= sigmaMax; sigma += step {
		rmsExact, rmsResultant, elapsed, err := measure(src, trials, samples, sigma)
		if err != nil {
			return err
		}

		logger.Info("noise level done",
			zap.Float64("sigma", sigma),
			zap.Float64("rms_exact", rmsExact),
			zap.Float64("rms_resultant", rmsResultant),
			zap.Duration("elapsed", elapsed),
		)
	}

	return nil
}

func measure(src *rand.Rand, trials, samples int, sigma float64) (float64, float64, time.Duration, error) {
	heading := src.Float64() * 360

	noise, err := dist.NewWrappedNormal(heading, sigma, circular.UnsignedDegrees)
	if err != nil {
		return 0, 0, 0, err
	}

	truth := circular.UnsignedDegrees.Value(heading)
	values := make([]circular.Value, samples)

	var sumSqrExact, sumSqrResultant float64

	start := time.Now()

	for t := 0; t < trials; t++ {
		for i := range values {
			values[i] = noise.Sample(src)
		}

		exact := stat.Mean(values)[0]
		resultant, _ := stat.ResultantMean(values)

		errExact := exact.SDist(truth)
		errResultant := resultant.SDist(truth)

		sumSqrExact += errExact * errExact
		sumSqrResultant += errResultant * errResultant
	}

	n := float64(trials - 1)
	if trials < 2 {
		n = 1
	}

	return math.Sqrt(sumSqrExact / n), math.Sqrt(sumSqrResultant / n), time.Since(start), nil
}
