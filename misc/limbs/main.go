package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	hostnum "github.com/shabbyrobe/go-hostnum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// This is a cheap-and-nasty tool for poking at the runtime from a shell while
// debugging generated code: it shows how a value is split into limbs and what
// a builtin does with a given set of operands.

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "limbs",
	Short:        "Inspect hostnum values and builtins",
	SilenceUsage: true,
}

var splitCmd = &cobra.Command{
	Use:   "split <n>...",
	Short: "Show the form and limbs of decimal values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			v, err := hostnum.IntFromString(arg)
			if err != nil {
				return err
			}
			hi, lo := v.Raw()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, safe:%v\n", v, v.Form(), v.IsSafe())
			fmt.Fprintf(cmd.OutOrStdout(), "  limbs: {hi: %#x, lo: %#x}\n", hi, lo)
			fmt.Fprintf(cmd.OutOrStdout(), "  canonical: %s\n", v.Canonical().Form())
		}
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <builtin> [operand]...",
	Short: "Call a builtin through a checked runtime",
	Long: `Operands are parsed as follows:

  true, false   bool
  w:HI:LO       wide Int from two limbs, e.g. w:0x1:0x80000000
  -123          raw host integer (for normalize_u32, make_u64, ...)
  123           Int literal, narrow if the host can hold it exactly
  "text"        string; anything else unquoted is also a string`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		operands := make([]hostnum.Value, 0, len(args)-1)
		for _, arg := range args[1:] {
			v, err := parseOperand(arg)
			if err != nil {
				return err
			}
			operands = append(operands, v)
		}

		logger := zap.NewNop()
		if verbose {
			var err error
			if logger, err = zap.NewDevelopment(); err != nil {
				return err
			}
			defer logger.Sync()
		}

		out, err := call(hostnum.New(hostnum.Config{Logger: logger}), args[0], operands)
		if err != nil {
			return err
		}
		spew.Fdump(cmd.OutOrStdout(), out)
		return nil
	},
}

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List builtin names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range hostnum.Builtins() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log runtime failures")
	rootCmd.AddCommand(splitCmd, evalCmd, builtinsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// call turns a runtime failure back into an error so it can be reported.
func call(rt *hostnum.Runtime, name string, operands []hostnum.Value) (out hostnum.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("runtime failure: %w", rerr)
		}
	}()
	return rt.Call(name, operands...)
}

func parseOperand(s string) (hostnum.Value, error) {
	switch {
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil

	case strings.HasPrefix(s, "w:"):
		parts := strings.Split(s[2:], ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("wide operand %q must be w:HI:LO", s)
		}
		hi, err := strconv.ParseUint(parts[0], 0, 32)
		if err != nil {
			return nil, err
		}
		lo, err := strconv.ParseUint(parts[1], 0, 32)
		if err != nil {
			return nil, err
		}
		return hostnum.IntFromRaw(uint32(hi), uint32(lo)), nil

	case strings.HasPrefix(s, "-"):
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			return v, nil
		}

	case len(s) > 0 && s[0] >= '0' && s[0] <= '9':
		if v, err := hostnum.IntFromString(s); err == nil {
			return v, nil
		}

	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		return s[1 : len(s)-1], nil
	}

	return s, nil
}
