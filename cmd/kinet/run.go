package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/kinet/activation"
	"github.com/born-ml/kinet/backend"
	"github.com/born-ml/kinet/backend/metered"
	"github.com/born-ml/kinet/compute"
	"github.com/born-ml/kinet/nn"
)

// The sweep feeds all 2^n bit patterns, so n stays small.
const maxSweepInputs = 8

type runOptions struct {
	layers  []int
	hidden  activation.Function
	output  activation.Function
	kind    backend.Kind
	seed    uint64
	rate    float32
	xavier  bool
	metered bool
}

func newRunCmd(a *app) *cobra.Command {
	o := runOptions{
		hidden: activation.ReLU{},
		output: activation.Sigmoid{},
	}
	envErr := kindFromEnv(&o.kind)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sweep every bit pattern of the input layer through a network",
		Long: `Builds a network, then sets the input neurons to each bit pattern in turn
(bit k drives input neuron k) and prints every output neuron.`,
		Example: "  kinet run --layers 3,10,16,8 --hidden relu --output sigmoid --seed 1",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil && !cmd.Flags().Changed("backend") {
				return fmt.Errorf("%s: %w", envBackend, envErr)
			}
			return a.sweep(o)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&o.layers, "layers", []int{3, 10, 16, 8}, "neurons per layer, input first")
	f.Var(activationValue{&o.hidden}, "hidden", "hidden layer activation: "+strings.Join(activation.Names(), ", "))
	f.Var(activationValue{&o.output}, "output", "output layer activation")
	f.Var(kindValue{&o.kind}, "backend", "numeric driver: auto, naive or blas (default from "+envBackend+")")
	f.Uint64Var(&o.seed, "seed", 0, "weight initialization seed, 0 picks a random one")
	f.Float32Var(&o.rate, "rate", 0, "rate passed to activations (negative slope of leaky-relu)")
	f.BoolVar(&o.xavier, "xavier", false, "use Xavier initialization instead of U(0, 1)")
	f.BoolVar(&o.metered, "metered", false, "log driver call counts after the sweep")
	return cmd
}

func (a *app) sweep(o runOptions) error {
	driver, err := backend.New(o.kind)
	if err != nil {
		return err
	}
	var counter *metered.Driver
	if o.metered {
		counter = metered.New(driver)
		driver = counter
	}
	m := compute.New(driver)

	opts := []nn.Option{nn.WithRate(o.rate)}
	if o.seed != 0 {
		opts = append(opts, nn.WithSeed(o.seed))
	}
	if o.xavier {
		opts = append(opts, nn.WithInitializer(nn.Xavier))
	}

	var net nn.Network
	if err := net.Init(o.layers, o.hidden, o.output, m, opts...); err != nil {
		return fmt.Errorf("init network: %w", err)
	}
	defer net.Release()

	inputs := net.NeuronsInLayer(0)
	if inputs > maxSweepInputs {
		return fmt.Errorf("input layer has %d neurons, the sweep supports at most %d", inputs, maxSweepInputs)
	}
	a.logger.Debug("network ready",
		"layers", o.layers,
		"parameters", net.ParameterCount(),
		"driver", m.Name(),
		"hidden", o.hidden.Name(),
		"output", o.output.Name())

	values := make([]float32, inputs)
	for pattern := 0; pattern < 1<<inputs; pattern++ {
		for bit := range values {
			values[bit] = float32((pattern >> bit) & 1)
		}
		if err := net.SetInputs(values...); err != nil {
			return err
		}
		for i, v := range net.Outputs() {
			fmt.Fprintf(a.out, "%0*b -> v[%d] = %.2f\n", inputs, pattern, i, v)
		}
	}

	if counter != nil {
		c := counter.Counts()
		a.logger.Info("driver calls", "dot", c.Dot, "sum", c.Sum, "sumRange", c.SumRange, "total", c.Total())
	}
	return nil
}
