package rewrite_test

import (
	"testing"

	"jsxc/internal/lexer"
	"jsxc/internal/rewrite"
	"jsxc/internal/source"
)

func bindingsFor(t *testing.T, src string) *rewrite.ImportBindings {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("imports.jsx", []byte(src)))
	return rewrite.ScanImports(lexer.Tokenize(file, lexer.Options{}))
}

func expectBinding(t *testing.T, b *rewrite.ImportBindings, imported, local string) {
	t.Helper()
	got, ok := b.Resolve(imported)
	if !ok {
		t.Errorf("%q: not bound", imported)
		return
	}
	if got != local {
		t.Errorf("%q: want %q, got %q", imported, local, got)
	}
}

func expectUnbound(t *testing.T, b *rewrite.ImportBindings, imported string) {
	t.Helper()
	if got, ok := b.Resolve(imported); ok {
		t.Errorf("%q: unexpectedly bound to %q", imported, got)
	}
}

func TestDefaultImport(t *testing.T) {
	b := bindingsFor(t, "import React from 'react';")
	expectBinding(t, b, "React", "React")
}

func TestNamedImports(t *testing.T) {
	b := bindingsFor(t, "import { h, Fragment as F } from 'preact';")
	expectBinding(t, b, "h", "h")
	expectBinding(t, b, "Fragment", "F")
	expectUnbound(t, b, "F")
}

func TestNamespaceImport(t *testing.T) {
	b := bindingsFor(t, "import * as RD from 'react-dom';")
	expectBinding(t, b, "RD", "RD")
}

func TestDefaultPlusNamed(t *testing.T) {
	b := bindingsFor(t, "import React, { useState } from 'react';")
	expectBinding(t, b, "React", "React")
	expectBinding(t, b, "useState", "useState")
}

func TestSideEffectImport(t *testing.T) {
	b := bindingsFor(t, "import './styles.css';")
	expectUnbound(t, b, "styles")
}

func TestDynamicImportIgnored(t *testing.T) {
	b := bindingsFor(t, "const m = import('react');")
	expectUnbound(t, b, "react")
	expectUnbound(t, b, "m")
}

func TestImportMetaIgnored(t *testing.T) {
	b := bindingsFor(t, "const u = import.meta.url;")
	expectUnbound(t, b, "meta")
	expectUnbound(t, b, "url")
}

func TestMultipleImports(t *testing.T) {
	b := bindingsFor(t, "import A from 'a';\nimport { b as c } from 'b';\n")
	expectBinding(t, b, "A", "A")
	expectBinding(t, b, "b", "c")
}
