package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "pylox [script]",
	Short:         "pylox interpreter",
	Long:          `pylox is a tree-walking interpreter for the Lox language.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runRoot,
}

// Execute runs the root command and returns the process exit code the
// caller should use (spec §6: 0 clean, 65 a syntax/parse/resolve
// error, 70 a runtime error).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := err.(exitCode); ok {
			return int(code)
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// exitCode lets runRoot signal a specific process exit status without
// cobra printing it as an ordinary error.
type exitCode int

func (e exitCode) Error() string { return "" }
