// Command fftadapt exercises the builder surface from the command line:
// benchmarking adapters at each planner effort and inspecting the shape
// negotiation for a given request.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/fftadapt"
)

func main() {
	root := &cobra.Command{
		Use:           "fftadapt",
		Short:         "FFT shape negotiation and adapter tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newBenchCmd(), newShapesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type request struct {
	shape   []int
	sizes   []int
	axes    []int
	kind    string
	inverse bool
	threads int
}

func (r *request) bindFlags(cmd *cobra.Command) {
	cmd.Flags().String("shape", "1024", "array shape, e.g. 64x64")
	cmd.Flags().String("sizes", "", "transform lengths per axis, e.g. 32x128 (empty: from shape)")
	cmd.Flags().String("axes", "", "axes to transform, e.g. 0,1 (empty: defaults)")
	cmd.Flags().String("kind", "c2c", "transform kind: c2c or real")
	cmd.Flags().Bool("inverse", false, "build the inverse transform")
	cmd.Flags().Int("threads", 1, "engine thread count")
}

func (r *request) parse(cmd *cobra.Command) error {
	var err error

	shapeStr, _ := cmd.Flags().GetString("shape")
	if r.shape, err = parseDims(shapeStr, "x"); err != nil {
		return err
	}

	sizesStr, _ := cmd.Flags().GetString("sizes")
	if sizesStr != "" {
		if r.sizes, err = parseDims(sizesStr, "x"); err != nil {
			return err
		}
	}

	axesStr, _ := cmd.Flags().GetString("axes")
	if axesStr != "" {
		if r.axes, err = parseDims(axesStr, ","); err != nil {
			return err
		}
	}

	r.kind, _ = cmd.Flags().GetString("kind")
	r.inverse, _ = cmd.Flags().GetBool("inverse")
	r.threads, _ = cmd.Flags().GetInt("threads")

	return nil
}

func (r *request) build(opts fftadapt.Options) (*fftadapt.Adapter, error) {
	opts.Threads = r.threads

	a := fftadapt.NewArray(r.inputDType(), r.shape...)

	switch {
	case r.kind == "real" && r.inverse:
		return fftadapt.IRFFTN(a, r.sizes, r.axes, opts)
	case r.kind == "real":
		return fftadapt.RFFTN(a, r.sizes, r.axes, opts)
	case r.inverse:
		return fftadapt.IFFTN(a, r.sizes, r.axes, opts)
	default:
		return fftadapt.FFTN(a, r.sizes, r.axes, opts)
	}
}

func (r *request) inputDType() fftadapt.DType {
	if r.kind == "real" && !r.inverse {
		return fftadapt.Float64
	}

	return fftadapt.Complex128
}

func newBenchCmd() *cobra.Command {
	req := &request{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time adapter construction and execution at every planner effort",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := req.parse(cmd); err != nil {
				return err
			}

			iters, _ := cmd.Flags().GetInt("iters")

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()

			efforts := []fftadapt.Effort{
				fftadapt.Estimate, fftadapt.Measure, fftadapt.Patient, fftadapt.Exhaustive,
			}

			bar := progressbar.Default(int64(len(efforts)*iters), "bench")

			for _, effort := range efforts {
				buildStart := time.Now()

				adapter, err := req.build(fftadapt.Options{Effort: effort})
				if err != nil {
					return err
				}

				buildTime := time.Since(buildStart)

				execStart := time.Now()

				for i := 0; i < iters; i++ {
					if _, err := adapter.Call(); err != nil {
						return err
					}

					_ = bar.Add(1)
				}

				perCall := time.Since(execStart) / time.Duration(iters)

				logger.Info("bench",
					zap.String("effort", effort.String()),
					zap.Ints("input_shape", adapter.InputShape()),
					zap.Ints("output_shape", adapter.OutputShape()),
					zap.Bool("copies", adapter.OwnsInput()),
					zap.Duration("build", buildTime),
					zap.Duration("per_call", perCall),
				)
			}

			return nil
		},
	}

	req.bindFlags(cmd)
	cmd.Flags().Int("iters", 50, "executions per effort level")

	return cmd
}

func newShapesCmd() *cobra.Command {
	req := &request{}

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Show the negotiated buffer shapes for a transform request",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := req.parse(cmd); err != nil {
				return err
			}

			adapter, err := req.build(fftadapt.Options{})
			if err != nil {
				return err
			}

			fmt.Printf("array shape:   %v\n", req.shape)
			fmt.Printf("input shape:   %v\n", adapter.InputShape())
			fmt.Printf("output shape:  %v\n", adapter.OutputShape())
			fmt.Printf("axes:          %v\n", adapter.Axes())
			fmt.Printf("copy adapter:  %v\n", adapter.OwnsInput())

			return nil
		},
	}

	req.bindFlags(cmd)

	return cmd
}

func parseDims(s, sep string) ([]int, error) {
	parts := strings.Split(s, sep)
	dims := make([]int, 0, len(parts))

	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", part, err)
		}

		dims = append(dims, v)
	}

	return dims, nil
}
