// Command circuitsim builds and steps a few seed circuits from the
// command line. It exists to exercise circuitsim outside of the test
// suite -- none of its output is a contractual part of the solver.
package main

import (
	"fmt"
	"os"

	"circuitsim"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("package", "circuitsim/cmd")

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circuitsim",
	Short: "Build and step small seed circuits",
	Long:  `circuitsim runs a handful of reference circuits and prints their steady-state or transient behavior.`,
}

var steps int

func init() {
	rootCmd.PersistentFlags().IntVar(&steps, "steps", 1, "number of Step calls to run before printing results")
	rootCmd.AddCommand(resistorCmd, rcCmd, rlCmd, powerCmd, lineCmd)
}

var resistorCmd = &cobra.Command{
	Use:   "resistor",
	Short: "10 ohm resistor across a 10V source",
	Run: func(cmd *cobra.Command, args []string) {
		cb := circuitsim.NewCircuitBuilder()
		v := circuitsim.NewVoltageSource(10)
		r := circuitsim.NewResistor(10)
		addOrDie(cb, v, r)
		connectOrDie(cb, v, 0, r, 0)
		connectOrDie(cb, r, 1, v, 1)
		groundOrDie(cb, v, 1)

		circ := buildOrDie(cb)
		runSteps(circ)
		fmt.Printf("current=%.4fA power=%.4fW\n", r.Current(), r.Power())
	},
}

var rcCmd = &cobra.Command{
	Use:   "rc",
	Short: "RC charging transient (1k ohm, ~1mF, dt=0.05s)",
	Run: func(cmd *cobra.Command, args []string) {
		const dt = 0.05
		cb := circuitsim.NewCircuitBuilder()
		v := circuitsim.NewVoltageSource(5)
		r := circuitsim.NewResistor(1000)
		c := circuitsim.NewCapacitor(0.932e-3, dt)
		addOrDie(cb, v, r, c)
		connectOrDie(cb, v, 0, r, 0)
		connectOrDie(cb, r, 1, c, 0)
		connectOrDie(cb, c, 1, v, 1)
		groundOrDie(cb, v, 1)

		circ := buildOrDie(cb)
		for i := 0; i < steps; i++ {
			if !circ.Step(dt) {
				log.Fatal("step failed")
			}
			fmt.Printf("t=%.2fs capacitor voltage=%.4fV\n", float64(i+1)*dt, c.StoredVoltage())
		}
	},
}

var rlCmd = &cobra.Command{
	Use:   "rl",
	Short: "RL current-rise transient (5 ohm, 1H, dt=0.001s)",
	Run: func(cmd *cobra.Command, args []string) {
		const dt = 0.001
		cb := circuitsim.NewCircuitBuilder()
		v := circuitsim.NewVoltageSource(5)
		r := circuitsim.NewResistor(5)
		l := circuitsim.NewInductor(1, dt)
		addOrDie(cb, v, r, l)
		connectOrDie(cb, v, 0, r, 0)
		connectOrDie(cb, r, 1, l, 0)
		connectOrDie(cb, l, 1, v, 1)
		groundOrDie(cb, v, 1)

		circ := buildOrDie(cb)
		for i := 0; i < steps; i++ {
			if !circ.Step(dt) {
				log.Fatal("step failed")
			}
			fmt.Printf("t=%.4fs inductor current=%.4fA\n", float64(i+1)*dt, l.StoredCurrent())
		}
	},
}

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "PowerVoltageSource converging onto a 10 ohm load",
	Run: func(cmd *cobra.Command, args []string) {
		cb := circuitsim.NewCircuitBuilder()
		pv := circuitsim.NewPowerVoltageSource(1, 10)
		r := circuitsim.NewResistor(10)
		addOrDie(cb, pv, r)
		connectOrDie(cb, pv, 0, r, 0)
		connectOrDie(cb, r, 1, pv, 1)
		groundOrDie(cb, pv, 1)

		circ := buildOrDie(cb)
		for i := 0; i < steps; i++ {
			if !circ.Step(0.01) {
				log.Fatal("step failed")
			}
			fmt.Printf("iteration=%d voltage=%.4fV load power=%.4fW\n", i+1, pv.Voltage(), r.Power())
		}
	},
}

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "virtual-resistor chain collapsed into a single Line",
	Run: func(cmd *cobra.Command, args []string) {
		cb := circuitsim.NewCircuitBuilder()
		v := circuitsim.NewVoltageSource(10)
		a := circuitsim.NewVirtualResistor(3)
		b := circuitsim.NewVirtualResistor(4)
		d := circuitsim.NewVirtualResistor(5)
		addOrDie(cb, v, a, b, d)
		connectOrDie(cb, v, 0, a, 0)
		connectOrDie(cb, a, 1, b, 0)
		connectOrDie(cb, b, 1, d, 0)
		connectOrDie(cb, d, 1, v, 1)
		groundOrDie(cb, v, 1)

		circ := buildOrDie(cb)
		runSteps(circ)
		fmt.Print(circ.ToDot())
	},
}

func runSteps(circ *circuitsim.Circuit) {
	for i := 0; i < steps; i++ {
		if !circ.Step(0.01) {
			log.Fatal("step failed")
		}
	}
}

func addOrDie(cb *circuitsim.CircuitBuilder, cs ...circuitsim.Component) {
	for _, c := range cs {
		if _, err := cb.Add(c); err != nil {
			log.WithError(err).Fatal("add failed")
		}
	}
}

func connectOrDie(cb *circuitsim.CircuitBuilder, a circuitsim.Component, i int, b circuitsim.Component, j int) {
	if err := cb.Connect(a, i, b, j); err != nil {
		log.WithError(err).Fatal("connect failed")
	}
}

func groundOrDie(cb *circuitsim.CircuitBuilder, c circuitsim.Component, pin int) {
	if err := cb.Ground(c, pin); err != nil {
		log.WithError(err).Fatal("ground failed")
	}
}

func buildOrDie(cb *circuitsim.CircuitBuilder) *circuitsim.Circuit {
	circ, err := cb.Build()
	if err != nil {
		log.WithError(err).Fatal("build failed")
	}
	return circ
}
