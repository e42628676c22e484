// Package types defines the cross-package data structures and enumerations used by the grman CLI.
package types

const (
	// NoID is the sentinel identifier carried by grammar nodes that were never assigned one.
	NoID = ""

	typeNameStr    = "str"
	typeNameUint   = "uint"
	typeNameInt    = "int"
	typeNameDyn    = "dyn"
	typeNameRe     = "re"
	typeNameOr     = "or"
	typeNameSeq    = "seq"
	typeNameCmd    = "cmd"
	typeNameOption = "option"
	typeNameMany   = "many"
	typeNameSubset = "subset"
)

// NodeKind classifies a grammar node into the closed set of kinds the renderer understands.
type NodeKind int

const (
	// KindUnknown covers every type name the renderer does not recognize.
	KindUnknown NodeKind = iota
	// KindStr is a literal token.
	KindStr
	// KindUint is an unsigned integer argument.
	KindUint
	// KindInt is a signed integer argument.
	KindInt
	// KindDyn is a dynamically completed argument.
	KindDyn
	// KindRe is a regular-expression argument.
	KindRe
	// KindOr is an alternation between mutually exclusive children.
	KindOr
	// KindSeq is an ordered concatenation of children.
	KindSeq
	// KindCmd is a full command expression.
	KindCmd
	// KindOption is an optional group.
	KindOption
	// KindMany is a repeated group.
	KindMany
	// KindSubset is an unordered subset whose members are individually optional.
	KindSubset
)

var kindsByTypeName = map[string]NodeKind{
	typeNameStr:    KindStr,
	typeNameUint:   KindUint,
	typeNameInt:    KindInt,
	typeNameDyn:    KindDyn,
	typeNameRe:     KindRe,
	typeNameOr:     KindOr,
	typeNameSeq:    KindSeq,
	typeNameCmd:    KindCmd,
	typeNameOption: KindOption,
	typeNameMany:   KindMany,
	typeNameSubset: KindSubset,
}

var typeNamesByKind = map[NodeKind]string{
	KindStr:    typeNameStr,
	KindUint:   typeNameUint,
	KindInt:    typeNameInt,
	KindDyn:    typeNameDyn,
	KindRe:     typeNameRe,
	KindOr:     typeNameOr,
	KindSeq:    typeNameSeq,
	KindCmd:    typeNameCmd,
	KindOption: typeNameOption,
	KindMany:   typeNameMany,
	KindSubset: typeNameSubset,
}

// KindFromTypeName maps the type-name string carried by the external grammar to a NodeKind.
// Unrecognized names map to KindUnknown.
func KindFromTypeName(typeName string) NodeKind {
	if kind, recognized := kindsByTypeName[typeName]; recognized {
		return kind
	}
	return KindUnknown
}

// String returns the grammar type name for the kind, or "unknown".
func (kind NodeKind) String() string {
	if typeName, recognized := typeNamesByKind[kind]; recognized {
		return typeName
	}
	return "unknown"
}
