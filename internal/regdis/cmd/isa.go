package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"regdis/internal/opcode"
	"regdis/internal/regdis/styles"
)

// isaMarkdown builds a markdown reference for the instruction set.
func isaMarkdown(tab *opcode.Table) string {
	var b strings.Builder
	b.WriteString("# Instruction Set\n\n")
	b.WriteString("Encodings are little-endian. Prefixing an instruction with `WIDE`\n")
	b.WriteString("widens its operand fields for that one instruction; jump operands\n")
	b.WriteString("are signed offsets relative to the instruction's own start.\n\n")
	b.WriteString("| Op | Mnemonic | Operands | Size | Wide size | Branch |\n")
	b.WriteString("|---:|----------|----------|-----:|----------:|:------:|\n")
	for _, info := range tab.Ops() {
		kinds := make([]string, len(info.Imm))
		for i, k := range info.Imm {
			kinds[i] = k.String()
		}
		operands := strings.Join(kinds, ", ")
		if operands == "" {
			operands = "—"
		}
		branch := ""
		if info.Branch {
			branch = "yes"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %d | %d | %s |\n",
			info.Code, info.Name, operands, info.Size, info.WideSize, branch)
	}
	b.WriteString("\n# Intrinsics\n\n")
	b.WriteString("| Index | Name |\n|------:|------|\n")
	for i, name := range tab.Intrinsics() {
		if name == "" {
			continue
		}
		fmt.Fprintf(&b, "| %d | %s |\n", i, name)
	}
	return b.String()
}

var isaCmd = &cobra.Command{
	Use:   "isa",
	Short: "Show the instruction set reference",
	Long:  "Print a reference table of every opcode, its operand layout, encoded sizes, and the intrinsic function table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		markdown := isaMarkdown(opcode.Default())

		if flagNoColor || !term.IsTerminal(os.Stdout.Fd()) {
			fmt.Fprint(cmd.OutOrStdout(), markdown)
			return nil
		}

		width := 100
		if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 && w < width {
			width = w
		}
		rendered, err := styles.GetMarkdownRenderer(width).Render(markdown)
		if err != nil {
			fmt.Fprint(cmd.OutOrStdout(), markdown)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(isaCmd)
}
