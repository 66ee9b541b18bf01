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
	"os"
	"strings"

	"github.com/blacktop/go-riscvh"
	"github.com/blacktop/go-riscvh/csrfile"
	"github.com/spf13/cobra"
)

// CSRState maps register names to values ("0x..." or any Go integer literal).
type CSRState map[string]string

// EmulateResult represents the emulation result
type EmulateResult struct {
	State   CSRState       `json:"state"`
	Metrics riscvh.Metrics `json:"metrics"`
	Error   string         `json:"error,omitempty"`
}

var (
	emulateState string
	emulatePriv  string
	emulateJSON  bool
)

func init() {
	rootCmd.AddCommand(emulateCmd)
	emulateCmd.Flags().StringVarP(&emulateState, "state", "s", "", "JSON file with initial CSR state")
	emulateCmd.Flags().StringVarP(&emulatePriv, "priv", "p", "hs", "Privilege level to run at (u, s, hs, m)")
	emulateCmd.Flags().BoolVarP(&emulateJSON, "json", "j", false, "Output JSON")
}

var emulateCmd = &cobra.Command{
	Use:     "emulate [STATEMENT...]",
	Aliases: []string{"emu"},
	Short:   "Run CSR operations against an emulated hypervisor CSR file",
	Long: `Run CSR operations against an emulated hypervisor CSR file and print the
resulting register state.

Statements are applied in order:
  csr=VALUE          write the whole register
  csr.FIELD=VALUE    read-modify-write one field
  +csr.FLAG          set a single-bit field in place
  -csr.FLAG          clear a single-bit field in place
  !csr=VALUE         update the register as hardware would (ignores read-only)

Initial state can be provided via --state pointing to a JSON object of
register names to values.`,
	Example: `  rvh emulate hgatp.MODE=Sv39x4 hgatp.VMID=1 +hstatus.SPV +hvip.VSTIP
  rvh emulate --state guest.json --json '!hgeip=0x4' hgeip=0`,
	RunE: runEmulate,
}

func runEmulate(cmd *cobra.Command, args []string) error {
	// Read initial state if provided
	var initialState CSRState
	if emulateState != "" {
		stateData, err := os.ReadFile(emulateState)
		if err != nil {
			return fmt.Errorf("failed to read state file: %w", err)
		}
		if err := json.Unmarshal(stateData, &initialState); err != nil {
			return fmt.Errorf("failed to parse state JSON: %w", err)
		}
	}

	priv, err := parsePrivilege(emulatePriv)
	if err != nil {
		return err
	}

	riscvh.ResetMetrics()
	file, err := emulate(initialState, priv, args)

	if !emulateJSON {
		if err != nil {
			return err
		}
		printState(cmd, file)
		return nil
	}

	result := &EmulateResult{Metrics: riscvh.GetMetrics()}
	if err != nil {
		result.Error = err.Error()
	} else {
		result.State = snapshotState(file)
	}
	return writeJSON(cmd.OutOrStdout(), result)
}

// emulate builds a CSR file from state and applies stmts through a hart.
func emulate(state CSRState, priv uint8, stmts []string) (*csrfile.File, error) {
	file := csrfile.New(
		csrfile.WithPrivilege(priv),
		csrfile.WithLogger(logger.WithName("csrfile")),
	)
	for name, val := range state {
		csr, err := riscvh.LookupCSR(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		v, err := parseValue(val)
		if err != nil {
			return nil, fmt.Errorf("failed to load state: invalid value %q for %s: %w", val, csr, err)
		}
		if err := file.Inject(csr, v); err != nil {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
	}

	hart, err := riscvh.NewHart(file, riscvh.WithLogger(logger.WithName("hart")))
	if err != nil {
		return nil, fmt.Errorf("failed to bind hart: %w", err)
	}
	defer hart.Close()

	for _, stmt := range stmts {
		if err := applyStatement(file, hart, stmt); err != nil {
			return nil, fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return file, nil
}

func applyStatement(file *csrfile.File, hart *riscvh.Hart, stmt string) error {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return fmt.Errorf("empty statement")
	}

	switch stmt[0] {
	case '+', '-':
		_, f, err := lookupField(stmt[1:])
		if err != nil {
			return err
		}
		if f.Width() != 1 {
			return fmt.Errorf("%s is %d bits wide, only single-bit fields can be set or cleared", f, f.Width())
		}
		if stmt[0] == '+' {
			return hart.SetFlag(riscvh.Flag{Field: f})
		}
		return hart.ClearFlag(riscvh.Flag{Field: f})
	case '!':
		lhs, rhs, ok := strings.Cut(stmt[1:], "=")
		if !ok {
			return fmt.Errorf("want !csr=VALUE")
		}
		csr, err := riscvh.LookupCSR(lhs)
		if err != nil {
			return err
		}
		v, err := parseValue(rhs)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", rhs, err)
		}
		return file.Inject(csr, v)
	}

	lhs, rhs, ok := strings.Cut(stmt, "=")
	if !ok {
		return fmt.Errorf("want csr=VALUE or csr.FIELD=VALUE")
	}
	if !strings.Contains(lhs, ".") {
		csr, err := riscvh.LookupCSR(lhs)
		if err != nil {
			return err
		}
		v, err := parseValue(rhs)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", rhs, err)
		}
		return hart.Write(csr, v)
	}

	l, f, err := lookupField(lhs)
	if err != nil {
		return err
	}
	cur, err := hart.Read(l.CSR)
	if err != nil {
		return err
	}
	next, err := l.Encode(cur, map[string]string{f.Name: rhs})
	if err != nil {
		return err
	}
	return hart.Write(l.CSR, next)
}

// lookupField resolves "csr.FIELD".
func lookupField(ref string) (*riscvh.Layout, riscvh.Field, error) {
	name, field, ok := strings.Cut(strings.TrimSpace(ref), ".")
	if !ok {
		return nil, riscvh.Field{}, fmt.Errorf("want csr.FIELD, got %q", ref)
	}
	csr, err := riscvh.LookupCSR(name)
	if err != nil {
		return nil, riscvh.Field{}, err
	}
	l, _ := riscvh.LayoutOf(csr)
	f, ok := l.Field(field)
	if !ok {
		return nil, riscvh.Field{}, fmt.Errorf("%s has no field %q", csr, field)
	}
	return l, f, nil
}

func parsePrivilege(s string) (uint8, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "0":
		return riscvh.PrivUser, nil
	case "s", "1":
		return riscvh.PrivSupervisor, nil
	case "hs", "h", "2":
		return riscvh.PrivHypervisor, nil
	case "m", "3":
		return riscvh.PrivMachine, nil
	}
	return 0, fmt.Errorf("invalid privilege level %q (want u, s, hs or m)", s)
}

func snapshotState(file *csrfile.File) CSRState {
	state := CSRState{}
	for csr, v := range file.Snapshot() {
		if v != 0 {
			state[csr.String()] = hex(v)
		}
	}
	return state
}

// printState decodes every non-zero register in address order.
func printState(cmd *cobra.Command, file *csrfile.File) {
	out := cmd.OutOrStdout()
	snap := file.Snapshot()
	var printed int
	for _, csr := range riscvh.CSRs() {
		v := snap[csr]
		if v == 0 {
			continue
		}
		l, _ := riscvh.LayoutOf(csr)
		fields, err := l.Decode(v)
		if err != nil {
			logger.Info("register holds an illegal value", "csr", csr.String(), "error", err.Error())
		}
		printDecoded(out, l, v, fields)
		printed++
	}
	if printed == 0 {
		fmt.Fprintln(out, "all registers are zero")
	}
}
