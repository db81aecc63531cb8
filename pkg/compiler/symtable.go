package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// Classifier tells the parser how to treat an identifier. Names that are
// neither functions nor bindings pass through as plain operands.
type Classifier interface {
	IsFunction(name string) bool
	IsBinding(name string) bool
}

type SymbolClass int

const (
	SymbolNone SymbolClass = iota
	SymbolFunction
	SymbolBinding
)

func (c SymbolClass) String() string {
	switch c {
	case SymbolFunction:
		return "function"
	case SymbolBinding:
		return "binding"
	default:
		return "none"
	}
}

// SymbolTable is a Classifier backed by two name sets.
type SymbolTable struct {
	functions map[string]struct{}
	bindings  map[string]struct{}
}

// NewSymbolTable declares every name in functions and bindings.
func NewSymbolTable(functions, bindings []string) *SymbolTable {
	s := &SymbolTable{
		functions: make(map[string]struct{}, len(functions)),
		bindings:  make(map[string]struct{}, len(bindings)),
	}
	for _, name := range functions {
		s.DeclareFunction(name)
	}
	for _, name := range bindings {
		s.DeclareBinding(name)
	}
	return s
}

// DeclareFunction adds name to the known functions.
func (s *SymbolTable) DeclareFunction(name string) {
	s.functions[name] = struct{}{}
}

// DeclareBinding adds name to the known bindings.
func (s *SymbolTable) DeclareBinding(name string) {
	s.bindings[name] = struct{}{}
}

// IsFunction reports whether name was declared as a function.
func (s *SymbolTable) IsFunction(name string) bool {
	_, ok := s.functions[name]
	return ok
}

// IsBinding reports whether name was declared as a binding.
func (s *SymbolTable) IsBinding(name string) bool {
	_, ok := s.bindings[name]
	return ok
}

// Classify reports what name denotes. A name declared as both is a binding,
// matching the order in which the parser checks.
func (s *SymbolTable) Classify(name string) SymbolClass {
	switch {
	case s.IsBinding(name):
		return SymbolBinding
	case s.IsFunction(name):
		return SymbolFunction
	default:
		return SymbolNone
	}
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *SymbolTable) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol Table:\n")
	for _, name := range sortedKeys(s.functions) {
		sb.WriteString(fmt.Sprintf("  %-16s function\n", name))
	}
	for _, name := range sortedKeys(s.bindings) {
		sb.WriteString(fmt.Sprintf("  %-16s binding\n", name))
	}
	return sb.String()
}
