package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// defaultCacheSize bounds the number of compiled programs kept by NewExprCompiler
const defaultCacheSize = 32

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	compiler   *exprCompiler
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache sets the size of the compiled program cache. Zero disables it.
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.cacheSize = size
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: make(map[string]any),
		cacheSize:   defaultCacheSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cacheSize > 0 {
		c.cache = newLRUCache[CompiledFilter](c.cacheSize)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cacheSize   int
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Type-check against an empty item so unknown fields fail here
	program, err := expr.Compile(expression,
		expr.Env(c.environment(Item{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
		compiler:   c,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// environment builds the runtime environment for one item
func (c *exprCompiler) environment(item Item) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)
	maps.Copy(env, c.helperFuncs)

	env["Item"] = item
	env["Kind"] = string(item.Kind)
	env["ID"] = item.ID
	env["Title"] = item.Title
	env["Year"] = item.Year
	env["Released"] = item.Released
	env["Overview"] = item.Overview
	env["Language"] = item.Language
	env["Popularity"] = item.Popularity
	env["VoteAverage"] = item.VoteAverage
	env["VoteCount"] = item.VoteCount
	env["GenreIDs"] = item.GenreIDs
	env["Department"] = item.Department
	env["Adult"] = item.Adult

	genres := item.GenreIDs
	env["hasGenre"] = func(id int) bool {
		return slices.Contains(genres, id)
	}

	return env
}

// Match evaluates the filter against an item. Evaluation errors count as no match.
func (f *exprFilter) Match(item Item) bool {
	ok, err := f.Evaluate(item)
	return err == nil && ok
}

// Evaluate runs the program and reports evaluation failures
func (f *exprFilter) Evaluate(item Item) (bool, error) {
	env := f.compiler.environment(item)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			ItemTitle:  item.Title,
			Err:        err,
		}
	}

	// AsBool guarantees a bool result
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the static helper functions
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["yearsAgo"] = func(years int) int {
		return time.Now().Year() - years
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers. contains and startsWith are expr operators, so the
	// case-insensitive variants get their own names.
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = time.Now
}
