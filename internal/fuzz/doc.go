// Package fuzztests houses Go fuzz harnesses that exercise the
// source -> lexer -> rewrite pipeline on arbitrary inputs. Its goal is to
// smoke test robustness: no panics, guaranteed termination, and the
// byte-preservation guarantees the rewriter makes for non-JSX input.
package fuzztests
