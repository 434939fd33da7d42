package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/born-ml/kinet/internal/codegen"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		seed    uint64
		pkg     string
		name    string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "gen <layers>",
		Short: "Generate a Go test with literal weights for a topology",
		Long: `Generates a Go test that builds a network of the given topology, loads
random literal inputs, weights and biases, and checks every output neuron
against its dot product written out as a constant expression.

<layers> is a comma separated list of neuron counts, input layer first.`,
		Example: "  kinet gen 4,3,2 --seed 1 -o network_test.go",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sizes, err := codegen.ParseTopology(args[0])
			if err != nil {
				return err
			}
			c, err := codegen.NewCase(sizes, seed)
			if err != nil {
				return err
			}

			opts := []codegen.Option{codegen.WithPackage(pkg)}
			if name != "" {
				opts = append(opts, codegen.WithTestName(name))
			}
			if outPath == "" {
				return codegen.Generate(a.out, c, opts...)
			}

			var buf bytes.Buffer
			if err := codegen.Generate(&buf, c, opts...); err != nil {
				return err
			}
			//nolint:gosec // Generated source is meant to be readable.
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			neurons, weights := c.Stats()
			a.logger.Info("generated test", "file", outPath, "layers", len(sizes), "neurons", neurons, "weights", weights)
			return nil
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&seed, "seed", 0, "random seed for the literals, 0 picks a random one")
	f.StringVar(&pkg, "package", "nn_test", "package clause of the generated file")
	f.StringVar(&name, "name", "", "test function name (default TestNetwork<topology>)")
	f.StringVarP(&outPath, "out", "o", "", "write to file instead of stdout")
	return cmd
}
