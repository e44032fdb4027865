package fuzztests

import "testing"

// languageSeeds covers the syntactic territory the harnesses care about:
// plain JavaScript, every JSX construct, and the constructs whose lexing is
// context sensitive (templates, regexes, comparison '<').
var languageSeeds = []string{
	"",
	"const a = 1;\n",
	"a < b && b > c",
	"x = /a[/]b/g;",
	"let t = `a${x}b${`nested${y}`}c`;",
	"// comment\n/* block */",
	"let v = <div/>;",
	"let v = <Foo.Bar a=\"1\" b={x} {...rest} c />;",
	"let v = <ul>\n  <li>one</li>\n  <li>{two}</li>\n</ul>;",
	"let v = <a>{/* comment child */}</a>;",
	"import { h as createEl } from 'preact';\nlet v = <p>text</p>;",
	"let v = `before${<b/>}after`;",
	"let broken = <div",
	"let broken = <div>text",
	"\"unterminated",
	"`unterminated ${x",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}
