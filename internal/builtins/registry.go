package builtins

import "strings"

// Category groups built-ins for introspection/listing purposes, the way
// go-dws's Registry buckets its (much larger) built-in set.
type Category string

const (
	CategoryIO     Category = "io"
	CategoryList   Category = "list"
	CategoryString Category = "string"
	CategoryType   Category = "type"
	CategorySystem Category = "system"
)

var categoryOf = map[string]Category{
	"print":        CategoryIO,
	"print_ret":    CategoryIO,
	"input":        CategoryIO,
	"input_int":    CategoryIO,
	"clear":        CategoryIO,
	"is_number":    CategoryType,
	"is_string":    CategoryType,
	"is_list":      CategoryType,
	"is_function":  CategoryType,
	"append":       CategoryList,
	"pop":          CategoryList,
	"extend":       CategoryList,
	"update_list":  CategoryList,
	"len":          CategoryList,
	"lower":        CategoryString,
	"upper":        CategoryString,
	"string":       CategoryString,
	"run":          CategorySystem,
	"exit":         CategorySystem,
}

// Registry is a case-insensitive lookup table over a fixed set of
// built-in functions, mirroring go-dws's internal/interp/builtins Registry
// (minus the mutability TechZen's fixed table has no need for).
type Registry struct {
	functions  map[string]*BuiltInFunction
	categories map[Category][]string
}

// NewRegistry builds a Registry over fns, tagging each by categoryOf.
func NewRegistry(fns []*BuiltInFunction) *Registry {
	r := &Registry{
		functions:  make(map[string]*BuiltInFunction, len(fns)),
		categories: make(map[Category][]string),
	}
	for _, fn := range fns {
		name := strings.ToLower(fn.Name)
		r.functions[name] = fn
		cat := categoryOf[fn.Name]
		r.categories[cat] = append(r.categories[cat], fn.Name)
	}
	return r
}

// Lookup finds a built-in by name (case-insensitive).
func (r *Registry) Lookup(name string) (*BuiltInFunction, bool) {
	fn, ok := r.functions[strings.ToLower(name)]
	return fn, ok
}

// GetByCategory returns the built-in names tagged with category.
func (r *Registry) GetByCategory(category Category) []string {
	return r.categories[category]
}

// All returns every built-in registered, in no particular order.
func (r *Registry) All() []*BuiltInFunction {
	out := make([]*BuiltInFunction, 0, len(r.functions))
	for _, fn := range r.functions {
		out = append(out, fn)
	}
	return out
}
