package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'precedence.grammar', the compiler-side counterpart
// to the core's 'precedence.earley', following lr/tables.go's per-package
// tracer() convention of logging table/network construction at Debug level.
func tracer() tracing.Trace {
	return tracing.Select("precedence.grammar")
}
