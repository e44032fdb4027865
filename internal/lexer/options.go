package lexer

import "jsxc/internal/diag"

// Options configures a lexer run.
type Options struct {
	// Reporter receives lexical diagnostics. Defaults to diag.NopReporter.
	Reporter diag.Reporter
}

func (o Options) reporter() diag.Reporter {
	if o.Reporter == nil {
		return diag.NopReporter{}
	}
	return o.Reporter
}
