package builtins

import "github.com/techzen-lang/techzen/internal/interp"

// NewGlobalSymbolTable builds the root scope every TechZen program starts
// with: the null/false/true Number singletons and the full built-in
// function table, bound by name (original_source/TechZen's
// global_symbol_table_ module, reconstructed here since the retrieval
// pack did not include it verbatim).
func NewGlobalSymbolTable(env *Env) *interp.SymbolTable {
	table := interp.NewSymbolTable(nil)
	table.Set("null", interp.NumberNull)
	table.Set("false", interp.NumberFalse)
	table.Set("true", interp.NumberTrue)

	registry := NewRegistry(All(env))
	for _, fn := range registry.All() {
		table.Set(fn.Name, fn)
	}
	return table
}
