package command

import (
	"lovedj/config"
	commandHandler "lovedj/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewCatalogHandler, commandHandler.NewSimulateHandler)

type Command struct {
	catalogCommandHandler  *commandHandler.CatalogHandler
	simulateCommandHandler *commandHandler.SimulateHandler
}

// NewCommand .
func NewCommand(
	catalogCommandHandler *commandHandler.CatalogHandler,
	simulateCommandHandler *commandHandler.SimulateHandler,
) *Command {
	return &Command{
		catalogCommandHandler:  catalogCommandHandler,
		simulateCommandHandler: simulateCommandHandler,
	}
}

// Configure 在建立依賴前調整設定
type Configure func(*config.Configuration)

func Register(rootCmd *cobra.Command, newCmd func(...Configure) (*Command, func(), error)) {
	var out string
	checkModels := &cobra.Command{
		Use:   "check-models",
		Short: "enumerate the model catalog once and print the dropdown labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.catalogCommandHandler.CheckModels(cmd, out)
		},
	}
	checkModels.Flags().StringVarP(&out, "out", "o", "", "also write the catalog as JSON to this file")

	var opts commandHandler.SimulateOptions
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "run a first date in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			var configure []Configure
			if opts.Mock {
				configure = append(configure, func(conf *config.Configuration) {
					conf.LLM.MockEnabled = true
				})
			}
			command, cleanup, err := newCmd(configure...)
			if err != nil {
				return err
			}
			defer cleanup()

			return command.simulateCommandHandler.Simulate(cmd, opts)
		},
	}
	flags := simulate.Flags()
	flags.IntVarP(&opts.Rounds, "rounds", "r", 0, "conversation rounds (0 = configured default)")
	flags.StringVarP(&opts.Model, "model", "m", "", "model id or dropdown label")
	flags.StringVarP(&opts.Theme, "theme", "t", "", "where the date takes place")
	flags.StringVar(&opts.NameA, "name-a", "", "name of agent A")
	flags.StringVar(&opts.NameB, "name-b", "", "name of agent B")
	flags.BoolVar(&opts.Mock, "mock", false, "use the offline mock provider")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "print token usage when done")

	rootCmd.AddCommand(checkModels, simulate)
}
