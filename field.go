package riscvh

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field describes a named bit range of one CSR.
type Field struct {
	CSR  CSR
	Name string
	Lo   uint
	Hi   uint
	// Enum restricts the field to a closed set of codes. Nil for plain
	// numeric fields and flags.
	Enum *Enum
	Doc  string
}

// Width returns the number of bits in the field.
func (f Field) Width() uint { return f.Hi - f.Lo + 1 }

// Mask returns the in-place mask of the field.
func (f Field) Mask() uint64 { return rangeMask(f.Lo, f.Hi) }

// Max returns the largest value the field can hold.
func (f Field) Max() uint64 { return f.Mask() >> f.Lo }

func (f Field) String() string {
	if f.Lo == f.Hi {
		return fmt.Sprintf("%s.%s[%d]", f.CSR, f.Name, f.Lo)
	}
	return fmt.Sprintf("%s.%s[%d:%d]", f.CSR, f.Name, f.Hi, f.Lo)
}

// Flag is a single-bit field. Only flags may be passed to the atomic
// set/clear operations of a Hart.
type Flag struct {
	Field
}

// Bit returns the bit position of the flag.
func (f Flag) Bit() uint { return f.Lo }

func newField(csr CSR, name string, lo, hi uint, doc string) Field {
	checkRange(lo, hi)
	return Field{CSR: csr, Name: name, Lo: lo, Hi: hi, Doc: doc}
}

func newEnumField(csr CSR, name string, lo, hi uint, e *Enum, doc string) Field {
	f := newField(csr, name, lo, hi, doc)
	f.Enum = e
	return f
}

func newFlag(csr CSR, name string, bit uint, doc string) Flag {
	return Flag{newField(csr, name, bit, bit, doc)}
}

// Variant is one legal code of an enumerated field.
type Variant struct {
	Name string
	Code uint64
	Doc  string
}

// Enum is the runtime descriptor of an enumerated field's legal codes.
type Enum struct {
	Name     string
	Variants []Variant
}

// Lookup returns the variant for code.
func (e *Enum) Lookup(code uint64) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Code == code {
			return v, true
		}
	}
	return Variant{}, false
}

// Parse resolves a variant by case-insensitive name.
func (e *Enum) Parse(name string) (Variant, bool) {
	for _, v := range e.Variants {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

// decode checks code against the legal set of f.
func (e *Enum) decode(f Field, code uint64) error {
	if _, ok := e.Lookup(code); ok {
		return nil
	}
	recordDecodeError()
	return &FieldValueError{CSR: f.CSR, Field: f.Name, Enum: e.Name, Code: code}
}

// Layout is the field map of one CSR.
type Layout struct {
	CSR    CSR
	Doc    string
	Fields []Field
}

// Name returns the register name.
func (l *Layout) Name() string { return l.CSR.String() }

// Mask returns the union of all field masks. A register without named
// fields is a plain word and every bit is significant.
func (l *Layout) Mask() uint64 {
	if len(l.Fields) == 0 {
		return ^uint64(0)
	}
	var m uint64
	for _, f := range l.Fields {
		m |= f.Mask()
	}
	return m
}

// Field looks up a field by case-insensitive name.
func (l *Layout) Field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Field{}, false
}

// FieldValue is one decoded field of a raw register value.
type FieldValue struct {
	Field   Field  `json:"-"`
	Name    string `json:"name"`
	Value   uint64 `json:"value"`
	Variant string `json:"variant,omitempty"`
}

// Decode splits raw into its fields. Enumerated fields holding an illegal
// code are still returned, alongside the first decode error.
func (l *Layout) Decode(raw uint64) ([]FieldValue, error) {
	var firstErr error
	b := Bits(raw)
	out := make([]FieldValue, 0, len(l.Fields))
	for _, f := range l.Fields {
		fv := FieldValue{Field: f, Name: f.Name, Value: b.Field(f.Lo, f.Hi)}
		if f.Enum != nil {
			if v, ok := f.Enum.Lookup(fv.Value); ok {
				fv.Variant = v.Name
			} else {
				err := f.Enum.decode(f, fv.Value)
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		out = append(out, fv)
	}
	return out, firstErr
}

// Encode applies "field=value" assignments on top of base. Values are
// numbers (any Go integer literal) or, for enumerated fields, variant names.
func (l *Layout) Encode(base uint64, assignments map[string]string) (uint64, error) {
	b := Bits(base)
	names := make([]string, 0, len(assignments))
	for name := range assignments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, ok := l.Field(name)
		if !ok {
			return 0, fmt.Errorf("%s has no field %q", l.CSR, name)
		}
		v, err := f.parse(assignments[name])
		if err != nil {
			return 0, err
		}
		b.SetField(f.Lo, f.Hi, v)
	}
	return uint64(b), nil
}

// parse converts s into a legal value for f.
func (f Field) parse(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if f.Enum != nil {
		if v, ok := f.Enum.Parse(s); ok {
			return v.Code, nil
		}
	}
	if f.Lo == f.Hi {
		if b, err := strconv.ParseBool(s); err == nil {
			if b {
				return 1, nil
			}
			return 0, nil
		}
	}
	v, err := parseUint(s)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s: %w", s, f, err)
	}
	if v > f.Max() {
		return 0, fmt.Errorf("value 0x%x does not fit %s (max 0x%x)", v, f, f.Max())
	}
	if f.Enum != nil {
		if err := f.Enum.decode(f, v); err != nil {
			return 0, err
		}
	}
	return v, nil
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 64)
}

var layouts = map[CSR]*Layout{}

// mustLayout validates and registers the field map of csr. A field outside
// the word, on the wrong CSR, or overlapping another field panics: layouts
// are package-level tables, so this fires at init.
func mustLayout(csr CSR, doc string, fields ...Field) *Layout {
	var seen uint64
	for _, f := range fields {
		if f.CSR != csr {
			panic(fmt.Sprintf("riscvh: field %s registered on %s", f, csr))
		}
		m := f.Mask()
		if seen&m != 0 {
			panic(fmt.Sprintf("riscvh: field %s overlaps another field of %s", f, csr))
		}
		seen |= m
	}
	sorted := append([]Field(nil), fields...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Lo > sorted[j].Lo })
	l := &Layout{CSR: csr, Doc: doc, Fields: sorted}
	if _, dup := layouts[csr]; dup {
		panic(fmt.Sprintf("riscvh: duplicate layout for %s", csr))
	}
	layouts[csr] = l
	return l
}

// rawLayout registers a CSR that holds a plain word.
func rawLayout(csr CSR, doc string) *Layout {
	return mustLayout(csr, doc)
}

// LayoutOf returns the field map of csr.
func LayoutOf(csr CSR) (*Layout, bool) {
	l, ok := layouts[csr]
	return l, ok
}

// Layouts returns every register layout in address order.
func Layouts() []*Layout {
	out := make([]*Layout, 0, len(layouts))
	for _, c := range CSRs() {
		if l, ok := layouts[c]; ok {
			out = append(out, l)
		}
	}
	return out
}

func flagFields(flags []Flag) []Field {
	out := make([]Field, len(flags))
	for i, f := range flags {
		out[i] = f.Field
	}
	return out
}
