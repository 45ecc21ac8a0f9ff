package normalize

// Options controls which rewrites Normalize applies. The zero value is the
// default configuration.
type Options struct {
	// BackwardsCompatible forces ReferenceErrors=false, UnifyRet=false,
	// UnfoldIfs=true, uses an empty block instead of an empty statement
	// for an if arm with no statements, and appends a trailing empty
	// statement after any if that ends a block.
	BackwardsCompatible bool
	// ReferenceErrors causes reads of globals that are not
	// declared-global to be guarded by a runtime "in" check against the
	// global object, throwing a ReferenceError when absent.
	ReferenceErrors bool
	// UnifyRet collapses every return in a function body into a single
	// labeled break plus one trailing return statement.
	UnifyRet bool
	// UnfoldIfs splits every two-armed if with non-empty arms into two
	// one-armed ifs sharing a captured test value.
	UnfoldIfs bool
}

// canonicalize applies the cross-effects of BackwardsCompatible and returns
// the resolved option set used throughout normalization.
func (o Options) canonicalize() Options {
	if o.BackwardsCompatible {
		o.ReferenceErrors = false
		o.UnifyRet = false
		o.UnfoldIfs = true
	}
	return o
}
