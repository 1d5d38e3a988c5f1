package filter

// defaultCompiler is shared by Compile so repeated expressions hit the cache
var defaultCompiler = NewExprCompiler()

// Compile compiles expression with the default compiler
func Compile(expression string) (CompiledFilter, error) {
	return defaultCompiler.Compile(expression)
}

// Apply returns the items matching f, in their original order. A nil filter matches everything.
func Apply[T any](f Filter, items []T, view func(T) Item) []T {
	if f == nil {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if f.Match(view(item)) {
			matched = append(matched, item)
		}
	}
	return matched
}
