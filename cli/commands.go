package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check  CheckCmd  `cmd:"" help:"Check that an input file holds exactly one valid expression."`
	Eval   EvalCmd   `cmd:"" help:"Evaluate an expression given on the command line."`
	Lines  LinesCmd  `cmd:"" help:"Show the line map of an input file."`
	Parse  ParseCmd  `cmd:"" help:"Parse an input file and print its expression tree."`
	Repl   ReplCmd   `cmd:"" help:"Start an interactive expression prompt."`
	Tokens TokensCmd `cmd:"" help:"Show lexical tokens from an input file."`
	Watch  WatchCmd  `cmd:"" help:"Check an input file again whenever it changes."`
}
