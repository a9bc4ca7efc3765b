package sql

import "strconv"

// DataType represents the logical type of a value in a column.
type DataType int

const (
	TypeInt DataType = iota
	TypeText
	TypeNull
)

func (d DataType) String() string {
	switch d {
	case TypeInt:
		return "INT"
	case TypeText:
		return "TEXT"
	default:
		return "NULL"
	}
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; other fields remain at their
// zero values to keep the struct compact and easy to inspect while debugging.
type Value struct {
	Type DataType

	I64 int64  // for TypeInt
	S   string // for TypeText
}

// IntValue builds an integer Value.
func IntValue(i int64) Value { return Value{Type: TypeInt, I64: i} }

// TextValue builds a text Value.
func TextValue(s string) Value { return Value{Type: TypeText, S: s} }

// NullValue builds a null Value.
func NullValue() Value { return Value{Type: TypeNull} }

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool { return v.Type == TypeNull }

// String renders the value for display: integers in decimal form, text
// verbatim, nulls as "NULL".
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.I64, 10)
	case TypeText:
		return v.S
	default:
		return "NULL"
	}
}

// Row represents one record in a table: a slice of Values, one per column.
type Row []Value

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Column describes metadata for a single column in a table.
type Column struct {
	Name string
	Type DataType
}

// Coerce converts the raw text of a literal into a Value for the given
// destination column type. All literals arrive as text (the quoting
// convention treats '1' and 'Alice' uniformly); the destination type decides
// the stored variant. Text that does not read as an integer coerces to NULL
// under an INT column rather than failing, so a bad literal never leaves a
// statement half-applied.
func Coerce(dt DataType, raw string) Value {
	switch dt {
	case TypeInt:
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(i)
		}
		return NullValue()
	default:
		return TextValue(raw)
	}
}

// Convert reinterprets an existing stored value under a new column type.
// Used by ALTER TABLE MODIFY: integers always have a decimal text form,
// text converts to an integer only when it reads as one, anything else
// becomes NULL under the new type. The migration is lossy, never an error.
func Convert(v Value, dt DataType) Value {
	if v.IsNull() {
		return v
	}
	switch dt {
	case TypeInt:
		if v.Type == TypeInt {
			return v
		}
		return Coerce(TypeInt, v.S)
	case TypeText:
		if v.Type == TypeText {
			return v
		}
		return TextValue(strconv.FormatInt(v.I64, 10))
	default:
		return NullValue()
	}
}
