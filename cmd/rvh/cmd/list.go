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
	"io"
	"strings"
	"text/tabwriter"

	"github.com/blacktop/go-riscvh"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list [CSR]",
	Aliases: []string{"ls"},
	Short:   "List hypervisor CSRs, or the fields of one CSR",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		if len(args) == 0 {
			listCSRs(w)
			return nil
		}

		csr, err := riscvh.LookupCSR(args[0])
		if err != nil {
			return err
		}
		l, _ := riscvh.LayoutOf(csr)
		listFields(w, l)
		return nil
	},
}

var privNames = []string{"U", "S", "HS", "M"}

func listCSRs(w io.Writer) {
	fmt.Fprintln(w, "ADDR\tNAME\tPRIV\tACCESS\tFIELDS\tDESCRIPTION")
	for _, l := range riscvh.Layouts() {
		access := "RW"
		if l.CSR.ReadOnly() {
			access = "RO"
		}
		fmt.Fprintf(w, "0x%03x\t%s\t%s\t%s\t%d\t%s\n",
			uint16(l.CSR), l.Name(), privNames[l.CSR.Privilege()], access, len(l.Fields), l.Doc)
	}
}

func listFields(w io.Writer, l *riscvh.Layout) {
	fmt.Fprintf(w, "%s (0x%03x): %s\n", l.Name(), uint16(l.CSR), l.Doc)
	if len(l.Fields) == 0 {
		fmt.Fprintln(w, "  no fields, all 64 bits are significant")
		return
	}
	fmt.Fprintln(w, "BITS\tNAME\tVALUES\tDESCRIPTION")
	for _, f := range l.Fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", bitRange(f), f.Name, legalValues(f), f.Doc)
	}
}

func bitRange(f riscvh.Field) string {
	if f.Lo == f.Hi {
		return fmt.Sprintf("%d", f.Lo)
	}
	return fmt.Sprintf("%d:%d", f.Hi, f.Lo)
}

func legalValues(f riscvh.Field) string {
	if f.Enum == nil {
		if f.Width() == 1 {
			return "0-1"
		}
		return fmt.Sprintf("0-0x%x", f.Max())
	}
	vals := make([]string, 0, len(f.Enum.Variants))
	for _, v := range f.Enum.Variants {
		vals = append(vals, fmt.Sprintf("%s=%d", v.Name, v.Code))
	}
	return strings.Join(vals, " ")
}
