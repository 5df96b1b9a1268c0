package schema

//go:generate go tool stringer -type=FieldKind -output=fieldkind_string.go

// FieldKind classifies how a record field is populated.
type FieldKind int

const (
	_ FieldKind = iota // skip zero value, use it as a default (invalid) value for FieldKind

	// FieldLeaf is a scalar text field populated by one source lookup.
	FieldLeaf
	// FieldNested references another generated record type.
	FieldNested
)

// Field is one field of a generated record.
type Field struct {
	// Name is the normalized field identifier.
	Name string
	// Kind says whether the field is a lookup leaf or a nested record.
	Kind FieldKind
	// SourceKey is the full original dotted name, set for leaf fields only.
	SourceKey string
	// ChildType is the generated record type name, set for nested fields only.
	ChildType string
}

// Record is one generated record type with its ordered field list.
// The type name is the concatenation of normalized fragments from the root
// down to the node it was derived from, which keeps names unique as long as
// sibling segments stay distinct after normalization.
type Record struct {
	TypeName string
	// Path is the dotted namespace this record covers, in the original raw
	// spelling ("" for the root).
	Path   string
	IsRoot bool
	Fields []Field
}
