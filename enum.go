package riscvh

import "fmt"

// TranslationMode selects the address-translation scheme of hgatp and vsatp.
type TranslationMode uint8

const (
	ModeBare   TranslationMode = 0 // No translation or protection
	ModeSv39x4 TranslationMode = 8 // Page-based 41-bit guest physical addressing
	ModeSv48x4 TranslationMode = 9 // Page-based 50-bit guest physical addressing
)

// TranslationModes is the descriptor of TranslationMode.
var TranslationModes = &Enum{
	Name: "translation mode",
	Variants: []Variant{
		{Name: "Bare", Code: uint64(ModeBare), Doc: "no translation or protection"},
		{Name: "Sv39x4", Code: uint64(ModeSv39x4), Doc: "page-based 41-bit virtual addressing"},
		{Name: "Sv48x4", Code: uint64(ModeSv48x4), Doc: "page-based 50-bit virtual addressing"},
	},
}

// TranslationModeFromCode decodes a MODE field value.
func TranslationModeFromCode(code uint64) (TranslationMode, error) {
	return decodeCode[TranslationMode](TranslationModes, code)
}

// Code returns the field encoding of m.
func (m TranslationMode) Code() uint64 { return uint64(m) }

func (m TranslationMode) String() string { return variantName(TranslationModes, uint64(m)) }

// VSXL is the effective XLEN of VS-mode (hstatus.VSXL).
type VSXL uint8

const (
	VSXL32  VSXL = 1
	VSXL64  VSXL = 2
	VSXL128 VSXL = 3
)

// VSXLs is the descriptor of VSXL.
var VSXLs = &Enum{
	Name: "VSXL",
	Variants: []Variant{
		{Name: "VSXL32", Code: uint64(VSXL32), Doc: "32-bit VS-mode"},
		{Name: "VSXL64", Code: uint64(VSXL64), Doc: "64-bit VS-mode"},
		{Name: "VSXL128", Code: uint64(VSXL128), Doc: "128-bit VS-mode"},
	},
}

// VSXLFromCode decodes a VSXL field value.
func VSXLFromCode(code uint64) (VSXL, error) {
	return decodeCode[VSXL](VSXLs, code)
}

// Code returns the field encoding of x.
func (x VSXL) Code() uint64 { return uint64(x) }

func (x VSXL) String() string { return variantName(VSXLs, uint64(x)) }

// UXL is the effective XLEN of VU-mode (vsstatus.UXL).
type UXL uint8

const (
	UXL32  UXL = 1
	UXL64  UXL = 2
	UXL128 UXL = 3
)

// UXLs is the descriptor of UXL.
var UXLs = &Enum{
	Name: "UXL",
	Variants: []Variant{
		{Name: "UXL32", Code: uint64(UXL32), Doc: "32-bit U-mode"},
		{Name: "UXL64", Code: uint64(UXL64), Doc: "64-bit U-mode"},
		{Name: "UXL128", Code: uint64(UXL128), Doc: "128-bit U-mode"},
	},
}

// UXLFromCode decodes a UXL field value.
func UXLFromCode(code uint64) (UXL, error) {
	return decodeCode[UXL](UXLs, code)
}

// Code returns the field encoding of x.
func (x UXL) Code() uint64 { return uint64(x) }

func (x UXL) String() string { return variantName(UXLs, uint64(x)) }

func decodeCode[T ~uint8](e *Enum, code uint64) (T, error) {
	if err := e.decode(Field{}, code); err != nil {
		return 0, err
	}
	return T(code), nil
}

func variantName(e *Enum, code uint64) string {
	if v, ok := e.Lookup(code); ok {
		return v.Name
	}
	return fmt.Sprintf("illegal %s %d", e.Name, code)
}
