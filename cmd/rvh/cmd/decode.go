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
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/blacktop/go-riscvh"
	"github.com/spf13/cobra"
)

// DecodeResult is the JSON form of a decoded register value.
type DecodeResult struct {
	CSR    string              `json:"csr"`
	Value  string              `json:"value"`
	Fields []riscvh.FieldValue `json:"fields"`
	Error  string              `json:"error,omitempty"`
}

var decodeJSON bool

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVarP(&decodeJSON, "json", "j", false, "Output JSON")
}

var decodeCmd = &cobra.Command{
	Use:   "decode CSR VALUE",
	Short: "Split a raw CSR value into its fields",
	Example: `  rvh decode hgatp 0x92a3f123456789ab
  rvh decode hstatus 0x200000080 --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		csr, err := riscvh.LookupCSR(args[0])
		if err != nil {
			return err
		}
		raw, err := parseValue(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		l, _ := riscvh.LayoutOf(csr)

		fields, derr := l.Decode(raw)
		logger.V(1).Info("decoded", "csr", csr.String(), "value", hex(raw), "fields", len(fields))

		if decodeJSON {
			result := DecodeResult{CSR: csr.String(), Value: hex(raw), Fields: fields}
			if derr != nil {
				result.Error = derr.Error()
			}
			return writeJSON(cmd.OutOrStdout(), result)
		}

		printDecoded(cmd.OutOrStdout(), l, raw, fields)
		return derr
	},
}

func printDecoded(w io.Writer, l *riscvh.Layout, raw uint64, fields []riscvh.FieldValue) {
	fmt.Fprintf(w, "%s = %s\n", l.Name(), hex(raw))
	for _, fv := range fields {
		line := fmt.Sprintf("  %-10s [%s] = 0x%x", fv.Name, bitRange(fv.Field), fv.Value)
		switch {
		case fv.Variant != "":
			line += " (" + fv.Variant + ")"
		case fv.Field.Enum != nil:
			line += " (illegal)"
		}
		fmt.Fprintln(w, line)
	}
}

func parseValue(s string) (uint64, error) {
	return strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 0, 64)
}

func hex(v uint64) string { return fmt.Sprintf("0x%016x", v) }

func writeJSON(w io.Writer, v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(w, string(out))
	return nil
}
