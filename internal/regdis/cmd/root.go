package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"regdis/internal/bytecode"
	"regdis/internal/codefile"
	"regdis/internal/opcode"
	"regdis/internal/regdis/log"
	"regdis/internal/ui/colorize"
)

var (
	flagRaw       bool
	flagJSON      bool
	flagShowCode  bool
	flagNoColor   bool
	flagDebug     bool
	flagCurrent   int
	flagFirstLine int
	flagDepth     int
)

// Listing is the JSON output structure, one node per code unit.
type Listing struct {
	Name         string                 `json:"name" jsonschema:"title=Name,description=Code unit name"`
	Filename     string                 `json:"filename" jsonschema:"title=Filename,description=Source file the unit was compiled from"`
	FirstLine    int                    `json:"firstLine" jsonschema:"title=First Line,description=First source line of the unit"`
	Instructions []bytecode.Instruction `json:"instructions" jsonschema:"title=Instructions,description=Decoded instruction stream"`
	Nested       []Listing              `json:"nested,omitempty" jsonschema:"title=Nested,description=Code units found in the constant pool"`
}

var rootCmd = &cobra.Command{
	Use:   "regdis [file]",
	Short: "Disassemble register-based bytecode",
	Long: `regdis decodes compiled code units into a readable instruction listing:
resolved operands, source line annotations, jump target markers, and
exception handler tables.

Input is a code unit container (.rdc). With --raw, the file is treated
as a bare instruction buffer and operands stay numeric.`,
	Example: `
# Disassemble a code unit container
regdis program.rdc

# Bare bytecode, no lookup tables
regdis --raw code.bin

# Machine-readable output
regdis --json program.rdc
  `,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Setup(flagDebug)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		if flagRaw {
			text, err := bytecode.TextBytes(opcode.Default(), data)
			if err != nil {
				return describeDecodeError(err)
			}
			return printListing(cmd, text)
		}

		cu, err := codefile.FromBytes(data, false)
		if err != nil {
			var unsupported *codefile.UnsupportedInputError
			if errors.As(err, &unsupported) {
				return fmt.Errorf("%s is not a code unit container (use --raw for bare bytecode)", args[0])
			}
			return err
		}
		slog.Debug("Loaded code unit", "name", cu.Name, "codeBytes", len(cu.Code), "consts", len(cu.Consts))

		if flagJSON {
			listing, err := buildListing(cu, flagDepth)
			if err != nil {
				return describeDecodeError(err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(listing)
		}

		if flagShowCode {
			fmt.Fprintln(cmd.OutOrStdout(), bytecode.Info(cu))
			fmt.Fprintln(cmd.OutOrStdout())
		}

		opts := &bytecode.Options{
			Current:   flagCurrent,
			FirstLine: flagFirstLine,
			Depth:     flagDepth,
		}
		text, err := bytecode.Text(opcode.Default(), cu, opts)
		if err != nil {
			return describeDecodeError(err)
		}
		return printListing(cmd, text)
	},
}

// buildListing decodes a code unit and its nested units into the JSON
// output tree.
func buildListing(cu *bytecode.CodeUnit, depth int) (*Listing, error) {
	insts, err := bytecode.Instructions(opcode.Default(), cu, flagFirstLine)
	if err != nil {
		return nil, err
	}
	l := &Listing{
		Name:         cu.Name,
		Filename:     cu.Filename,
		FirstLine:    cu.FirstLine,
		Instructions: insts,
	}
	if depth == 0 {
		return l, nil
	}
	if depth > 0 {
		depth--
	}
	for _, c := range cu.Consts {
		if c.Kind != bytecode.ConstCode || c.Code == nil {
			continue
		}
		sub, err := buildListing(c.Code, depth)
		if err != nil {
			return nil, err
		}
		l.Nested = append(l.Nested, *sub)
	}
	return l, nil
}

// describeDecodeError keeps the two fatal decode failures
// distinguishable at the CLI boundary.
func describeDecodeError(err error) error {
	var unknown *bytecode.UnknownOpcodeError
	if errors.As(err, &unknown) {
		return fmt.Errorf("corrupt bytecode: %w", err)
	}
	var truncated *bytecode.TruncatedError
	if errors.As(err, &truncated) {
		return fmt.Errorf("corrupt bytecode: %w", err)
	}
	return err
}

func printListing(cmd *cobra.Command, text string) error {
	if !flagNoColor && term.IsTerminal(os.Stdout.Fd()) {
		colored, err := colorize.Listing(text)
		if err == nil {
			text = colored
		}
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func init() {
	rootCmd.Flags().BoolVar(&flagRaw, "raw", false, "Treat input as a bare instruction buffer")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit instructions as JSON")
	rootCmd.Flags().BoolVar(&flagShowCode, "show-code", false, "Print code unit metadata before the listing")
	rootCmd.Flags().IntVar(&flagCurrent, "current", bytecode.NoCurrent, "Byte offset to mark as the current instruction")
	rootCmd.Flags().IntVar(&flagFirstLine, "first-line", 0, "Override the first source line number")
	rootCmd.Flags().IntVar(&flagDepth, "depth", -1, "Recursion depth into nested code units (-1 = unlimited)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func Execute() {
	// Bypass fang when output is piped so nothing styles the listing.
	if !term.IsTerminal(os.Stdout.Fd()) {
		os.Setenv("REGDIS_NO_COLOR", "1")
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
