// Command evmrun loads a fixture or a fixture bundle from disk and runs
// it, printing the resulting stack, return data and logs. Adapted from
// Gealber-evm-simulator/example/example.go's main(), rebuilt on
// github.com/urfave/cli/v2 instead of a hand-rolled main() with two
// hard-coded example functions.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	"github.com/nimbusvm/evmcore/fixture"
	"github.com/nimbusvm/evmcore/runner"
	"github.com/nimbusvm/evmcore/state"
)

func main() {
	app := &cli.App{
		Name:  "evmrun",
		Usage: "run EVM bytecode fixtures against a local, in-memory world state",
		Commands: []*cli.Command{
			runCommand(),
			bundleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "run a single fixture file",
		ArgsUsage: "<fixture.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the result as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one fixture path", 1)
			}
			fx, err := fixture.Load(c.Args().Get(0))
			if err != nil {
				return err
			}
			outcomes, err := runner.Run([]*fixture.Fixture{fx}, state.New())
			if err != nil {
				return err
			}
			return printOutcomes(outcomes, c.Bool("json"))
		},
	}
}

func bundleCommand() *cli.Command {
	return &cli.Command{
		Name:      "bundle",
		Usage:     "run a JSON array of fixtures against one shared state",
		ArgsUsage: "<bundle.json>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the result as JSON"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one bundle path", 1)
			}
			fixtures, err := fixture.LoadBundle(c.Args().Get(0))
			if err != nil {
				return err
			}
			outcomes, err := runner.Run(fixtures, state.New())
			if err != nil {
				return err
			}
			return printOutcomes(outcomes, c.Bool("json"))
		},
	}
}

func printOutcomes(outcomes []*runner.Outcome, asJSON bool) error {
	for i, o := range outcomes {
		if asJSON {
			b, err := json.Marshal(outcomeView(o))
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			continue
		}
		fmt.Printf("--- fixture %d ---\n", i)
		fmt.Printf("success: %v\n", o.Result.Success)
		fmt.Printf("return:  %s\n", hexutil.Encode(o.Result.ReturnData))
		for _, w := range o.Result.Stack {
			fmt.Printf("stack:   %s\n", w.Hex())
		}
		for _, l := range o.Result.Logs {
			fmt.Printf("log:     address=%s data=%s topics=%d\n", l.Address.Hex(), hexutil.Encode(l.Data), len(l.Topics))
		}
	}
	return nil
}

type outcomeJSON struct {
	Success bool     `json:"success"`
	Return  string   `json:"return"`
	Stack   []string `json:"stack"`
}

func outcomeView(o *runner.Outcome) outcomeJSON {
	stack := make([]string, len(o.Result.Stack))
	for i, w := range o.Result.Stack {
		stack[i] = w.Hex()
	}
	return outcomeJSON{
		Success: o.Result.Success,
		Return:  hexutil.Encode(o.Result.ReturnData),
		Stack:   stack,
	}
}
