// Package jsx rewrites JSX tag syntax into element-factory calls by mutating
// a token buffer in place. It never builds a syntax tree: the transformer is
// a small recursive state machine over an external token cursor, replacing
// and removing tokens as it walks one element and its descendants.
//
// Everything that is not JSX-specific (expressions inside braces, the tag
// name's identifier tokens) is delegated back to the generic token processor
// through the Processor interface, which may in turn re-enter this package
// for nested elements. Recursion depth equals JSX nesting depth; no explicit
// bound is enforced.
//
// All state is scoped to one file-transformation pass: the line cursor and
// the file-name binding are owned by the orchestrating pass object and
// passed in, never package-level.
package jsx
