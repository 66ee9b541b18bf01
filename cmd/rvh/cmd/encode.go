/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/blacktop/go-riscvh"
	"github.com/spf13/cobra"
)

var encodeBase uint64

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Uint64VarP(&encodeBase, "base", "b", 0, "Value to apply the assignments on top of")
}

var encodeCmd = &cobra.Command{
	Use:   "encode CSR FIELD=VALUE...",
	Short: "Build a raw CSR value from field assignments",
	Long: `Build a raw CSR value from field assignments.

Values are Go integer literals (0x, 0b, 0o and _ separators allowed), true/false
for single-bit fields, or variant names for enumerated fields.`,
	Example: `  rvh encode hgatp MODE=Sv48x4 VMID=0x2a3f PPN=0x123456789ab
  rvh encode hstatus --base 0x200000000 SPV=1 VTSR=true`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csr, err := riscvh.LookupCSR(args[0])
		if err != nil {
			return err
		}
		l, _ := riscvh.LayoutOf(csr)

		assign, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		v, err := l.Encode(encodeBase, assign)
		if err != nil {
			return err
		}
		logger.V(1).Info("encoded", "csr", csr.String(), "base", hex(encodeBase), "value", hex(v))

		fmt.Fprintln(cmd.OutOrStdout(), hex(v))
		return nil
	},
}

func parseAssignments(args []string) (map[string]string, error) {
	assign := make(map[string]string, len(args))
	for _, a := range args {
		name, val, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q: want FIELD=VALUE", a)
		}
		if _, dup := assign[strings.ToUpper(name)]; dup {
			return nil, fmt.Errorf("field %s assigned twice", name)
		}
		assign[strings.ToUpper(name)] = val
	}
	return assign, nil
}
