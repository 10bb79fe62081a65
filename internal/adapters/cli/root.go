package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-cli/internal/app/paginate"
	"github.com/jsamuelsen11/todo-cli/internal/platform/httpclient"
	"github.com/jsamuelsen11/todo-cli/internal/platform/logging"
)

func (r *runner) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "Manage tasks in your hosted task list",
		Long: `todo lists, views, adds and completes tasks in your hosted task list.

Projects, sections, labels, filters and assignees can be referred to by name
(case-insensitive, partial matches allowed when unique) or by id:<id>.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&r.opts.JSON, "json", false, "print a JSON envelope instead of text")
	flags.BoolVarP(&r.opts.Verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&r.opts.Profile, "profile", os.Getenv(ProfileEnv), "configuration profile (env "+ProfileEnv+")")

	root.AddCommand(
		r.tasksCommand(),
		r.projectsCommand(),
		r.doctorCommand(),
	)
	return root
}

// setup bootstraps dependencies and seeds the command context with the
// logger and a fresh request ID shared by every API call of the invocation.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return nil
	}

	env, err := r.boot(cmd.Context(), r.opts)
	if err != nil {
		return err
	}
	r.env = env

	id := httpclient.NewRequestID()
	ctx := httpclient.WithRequestID(cmd.Context(), id)
	if env.Logger != nil {
		ctx = logging.WithInvocation(ctx, env.Logger, id, cmd.CommandPath())
	}
	cmd.SetContext(ctx)
	return nil
}

// limitFlags registers --limit, --all and --cursor on a listing command.
type limitFlags struct {
	limit  int
	all    bool
	cursor string
}

func (l *limitFlags) register(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().IntVarP(&l.limit, "limit", "n", defaultLimit, "maximum number of results")
	cmd.Flags().BoolVar(&l.all, "all", false, "fetch every result")
	cmd.Flags().StringVar(&l.cursor, "cursor", "", "resume from a cursor printed by a previous listing")
	cmd.MarkFlagsMutuallyExclusive("limit", "all")
}

func (l *limitFlags) value() int {
	if l.all {
		return paginate.All
	}
	return l.limit
}
