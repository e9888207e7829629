package analysis

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
)

// autoimportMarker is the comment that hands a var block over to the
// tool. The block is rewritten wholesale on --fix, so only alias
// declarations belong inside it.
const autoimportMarker = "autoimport"

// findAutoimport locates the var block carrying the marker comment.
// The first marker in the file wins, and any var declaration whose
// lines span it is the block, so both of these work:
//
//	var (
//		DIV = choc.DIV
//	) //autoimport
//
//	var ( //autoimport
//		DIV = choc.DIV
//	)
func findAutoimport(fset *token.FileSet, f *ast.File) *ast.GenDecl {
	line := -1
	for _, cg := range f.Comments {
		for _, c := range cg.List {
			text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
			if text == autoimportMarker {
				line = fset.Position(c.Pos()).Line
				break
			}
		}
		if line >= 0 {
			break
		}
	}
	if line < 0 {
		return nil
	}
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		start := fset.Position(gd.Pos()).Line
		end := fset.Position(gd.End()).Line
		if start <= line && line <= end {
			return gd
		}
	}
	return nil
}

// parseAutoimport reads the existing aliases out of the block. Entries
// the tool did not write, and cannot regenerate, are preserved
// verbatim through rewrites.
func (w *walker) parseAutoimport() {
	for _, sp := range w.autoDecl.Specs {
		vs, ok := sp.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if len(vs.Names) != 1 || len(vs.Values) != 1 {
			w.preserved = append(w.preserved, w.nodeText(vs))
			continue
		}
		name := vs.Names[0].Name
		al, ok := w.parseAliasValue(name, vs.Values[0])
		if !ok {
			w.preserved = append(w.preserved, w.nodeText(vs))
			continue
		}
		al.Name = name
		w.got[name] = al
		w.namespaces[name] = al.Namespace
	}
}

// parseAliasValue recognizes the two alias forms the tool writes:
// pkg.NAME for plain constructors and pkg.NSTag("ns", "tag") for
// namespaced ones. Anything else, including an alias bound to a
// differently named constructor, is not regenerable.
func (w *walker) parseAliasValue(name string, v ast.Expr) (Alias, bool) {
	switch val := v.(type) {
	case *ast.SelectorExpr:
		if id, ok := val.X.(*ast.Ident); ok && id.Name == w.pkgLocal && val.Sel.Name == name {
			return Alias{}, true
		}
	case *ast.CallExpr:
		sel, ok := val.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "NSTag" || len(val.Args) != 2 {
			return Alias{}, false
		}
		id, ok := sel.X.(*ast.Ident)
		if !ok || id.Name != w.pkgLocal {
			return Alias{}, false
		}
		ns, ok1 := stringLit(val.Args[0])
		tag, ok2 := stringLit(val.Args[1])
		if ok1 && ok2 {
			return Alias{Namespace: ns, Tag: tag}, true
		}
	}
	return Alias{}, false
}

func stringLit(e ast.Expr) (string, bool) {
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}

// nodeText returns a node's source text.
func (w *walker) nodeText(n ast.Node) string {
	start := w.fset.Position(n.Pos()).Offset
	end := w.fset.Position(n.End()).Offset
	return string(w.src[start:end])
}

// decl renders the alias as a block entry.
func (a Alias) decl(pkg string) string {
	if a.Namespace != "" {
		return fmt.Sprintf("%s = %s.NSTag(%q, %q)", a.Name, pkg, a.Namespace, a.Tag)
	}
	return fmt.Sprintf("%s = %s.%s", a.Name, pkg, a.Name)
}

// renderAutoimport builds the replacement block, marker included.
func renderAutoimport(pkg string, want []Alias, preserved []string) string {
	var b strings.Builder
	b.WriteString("var (")
	for _, al := range want {
		b.WriteString("\n\t")
		b.WriteString(al.decl(pkg))
	}
	for _, p := range preserved {
		b.WriteString("\n\t")
		b.WriteString(p)
	}
	if len(want)+len(preserved) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(") //")
	b.WriteString(autoimportMarker)
	return b.String()
}

// spliceAutoimport replaces the block's source range with a rendered
// replacement. The range runs to the end of the closing line, so that
// a trailing marker comment is consumed rather than duplicated.
func spliceAutoimport(src []byte, fset *token.FileSet, decl *ast.GenDecl, block string) []byte {
	start := fset.Position(decl.Pos()).Offset
	end := fset.Position(decl.End()).Offset
	for end < len(src) && src[end] != '\n' {
		end++
	}
	out := make([]byte, 0, len(src)+len(block))
	out = append(out, src[:start]...)
	out = append(out, block...)
	out = append(out, src[end:]...)
	return out
}
