// Package filter provides a parser and matching engine for filter strings
// used to select hierarchical, slash-delimited test-node paths.
//
// # Overview
//
// The package implements a three-stage architecture:
//  1. Lexer: tokenizes the filter string, escaping literals for pattern compilation
//  2. Parser: builds one expression tree per path segment using a shunting-yard algorithm
//  3. Matcher: evaluates candidate node paths and their property bags against the trees
//
// Parsing happens once per filter; the resulting Filter is immutable and safe
// to match against concurrently.
//
// # Filter Syntax
//
// A filter is a slash-separated list of segment expressions, matched against
// node paths such as '/Assembly/Namespace/Class/TestMethod':
//
//	/A/B          # node B under node A
//	/A/B*         # '*' matches any run of characters
//	/A/**         # node A and everything below it ('**' must be last)
//
// ## Logical Operators
//
// Segment expressions combine with '&' (and), '|' (or), '!' (not), and
// parentheses. '&' binds tighter than '|'; repeated operators of the same
// kind form one flat n-ary expression:
//
//	/A|B          # segment matching A or B
//	/!Slow*       # any segment not starting with "Slow"
//	/(A|B)&!C     # A or B, but not C
//
// ## Property Filters
//
// A bracketed predicate after a value matches against the node's property
// bag. A predicate is satisfied when any key/value property matches both
// patterns:
//
//	/Test[Category=fast]            # node Test with a fast Category
//	/Test[Category=fast&Owner=qa]   # both predicates over the same bag
//	/Test[Key=a/b]                  # slashes inside brackets are literal
//
// ## Escaping
//
// A backslash escapes the character after it, turning structural characters
// into literals:
//
//	/A\[1\]       # matches the node named "A[1]"
//	/a\/b         # matches the node named "a/b"
//
// # Matching Semantics
//
// A filter matches any node at or below the depth it explicitly constrains:
// the path '/A' matches the filter '/A/B', because filter depth beyond the
// path is ignored. A path deeper than the filter matches only when the
// filter ends in '**'.
package filter
