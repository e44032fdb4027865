package jsx

import "strings"

// DefaultPragma is the factory expression used when none is configured.
const DefaultPragma = "React.createElement"

// Options configures one transformation pass.
type Options struct {
	// Pragma is the element-factory expression, e.g. "React.createElement"
	// or "h". The part before the first dot is resolved through the import
	// resolver; the remainder is appended verbatim.
	Pragma string
	// Production omits the __self/__source debug props.
	Production bool
}

func (o Options) pragma() string {
	if o.Pragma == "" {
		return DefaultPragma
	}
	return o.Pragma
}

// factoryBase returns the identifier to resolve through imports.
func (o Options) factoryBase() string {
	p := o.pragma()
	if i := strings.IndexByte(p, '.'); i >= 0 {
		return p[:i]
	}
	return p
}

// factorySuffix returns the member access appended after the resolved base,
// including its leading dot, or "".
func (o Options) factorySuffix() string {
	p := o.pragma()
	if i := strings.IndexByte(p, '.'); i >= 0 {
		return p[i:]
	}
	return ""
}
