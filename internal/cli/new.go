package cli

import (
	"fmt"

	"github.com/alvivar/jam/internal/config"
	"github.com/alvivar/jam/internal/generate"
	"github.com/alvivar/jam/internal/output"
	"github.com/alvivar/jam/internal/scaffold"
	"github.com/spf13/cobra"
)

type newOptions struct {
	output bool
	noComp bool
	noSys  bool
	start  bool
	queue  bool
	force  bool
	order  string
	dir    string
}

var newOpts newOptions

func init() {
	f := newCmd.Flags()
	f.BoolVarP(&newOpts.output, "output", "o", false, "Create the files")
	f.BoolVar(&newOpts.noComp, "nocomp", false, "Ignore the Component")
	f.BoolVar(&newOpts.noSys, "nosys", false, "Ignore the System")
	f.BoolVar(&newOpts.start, "start", false, "Add a Start() dependency hook to the System")
	f.BoolVar(&newOpts.queue, "queue", false, "Add a queue to the Component and drain it in the System")
	f.BoolVar(&newOpts.force, "force", false, "Overwrite existing files when used with -o")
	f.StringVar(&newOpts.order, "order", "", "Print order: system-first or component-first")
	f.StringVar(&newOpts.dir, "dir", "", "Directory to write files into (default: current directory)")

	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a Component & System",
	Long: `Print a Component and its System for <name>, and with -o write them as
<name>.cs and <name>System.cs.

Defaults for -o, --start, --queue and --order can be stored with 'jam config set'.

Examples:
  jam new Player
  jam new Player -o --queue
  jam new Enemy --start --nosys`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		name := args[0]

		flags := generate.Flags{
			Start:       boolSetting(cmd, "start", newOpts.start, config.KeyStart),
			Queue:       boolSetting(cmd, "queue", newOpts.queue, config.KeyQueue),
			NoComponent: newOpts.noComp,
			NoSystem:    newOpts.noSys,
		}
		write := boolSetting(cmd, "output", newOpts.output, config.KeyOutput)

		orderName := newOpts.order
		if !cmd.Flags().Changed("order") {
			orderName = config.Get(config.KeyOrder)
		}
		order, err := generate.ParseOrder(orderName)
		if err != nil {
			return err
		}

		artifacts := generate.RenderOrdered(name, flags, order)
		output.Debug("rendered", "name", name, "artifacts", len(artifacts), "order", order)

		for _, w := range scaffold.CheckIdentifier(name) {
			output.Warn(w)
		}

		var result *scaffold.Result
		if write {
			result, err = scaffold.Write(artifacts, scaffold.Options{Dir: newOpts.dir, Force: newOpts.force})
			if err != nil {
				return err
			}
		}

		w := cmd.OutOrStdout()
		for _, a := range artifacts {
			fmt.Fprintf(w, "\n\n%s\n", a.Text)
		}

		if write {
			if len(artifacts) > 0 {
				fmt.Fprint(w, "\n\n")
			}
			for _, f := range result.Files {
				output.Generated(w, f)
			}
		} else if len(artifacts) > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w)
		output.Done(w)
		return nil
	},
}

// boolSetting returns the flag value when given on the command line, else
// the configured default.
func boolSetting(cmd *cobra.Command, flag string, value bool, key string) bool {
	if cmd.Flags().Changed(flag) {
		return value
	}
	return config.GetBool(key)
}
