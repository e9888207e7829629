package analysis

import (
	"go/ast"
	"go/token"
	"sort"
	"strings"
	"unicode"

	choc "github.com/Rosuav/Choc"
	"github.com/Rosuav/Choc/internal/config"
	"github.com/Rosuav/Choc/internal/errors"
)

// mode says what the walker is doing with the current node.
type mode int

const (
	// modeProbe scans for SetContent calls without collecting anything.
	modeProbe mode = iota

	// modeReturn marks the body of a called function: its return values
	// are content.
	modeReturn

	// modeContent marks an expression whose value becomes content.
	modeContent
)

// visit keys deduplicate descents. Any given node need only be walked
// once per mode; a stash may have gained entries since it was last
// resolved, so the check applies to the entries, not the stash.
type visit struct {
	node ast.Node
	m    mode
}

// scope maps a name to the expressions assigned to it. Static analysis
// keeps every assignment, the way a value could have arrived from any
// of several branches.
type scope map[string][]ast.Node

// contentMethods are the Node methods whose arguments are new content.
var contentMethods = map[string]bool{
	"Append":       true,
	"Prepend":      true,
	"AppendChild":  true,
	"InsertChild":  true,
	"InsertBefore": true,
}

type walker struct {
	fset *token.FileSet
	file string
	src  []byte
	cfg  *config.Config

	// pkgLocal is the local name of the Choc import; dotImport is set
	// when the file dot-imports it instead.
	pkgLocal  string
	dotImport bool

	// autoDecl is the var block carrying the autoimport marker. Its
	// entries are aliases, not assignments, so the walk skips it.
	autoDecl *ast.GenDecl

	got        map[string]Alias
	want       map[string]Alias
	namespaces map[string]string
	preserved  []string

	visited  map[visit]bool
	reported map[string]bool
	diags    []*errors.ChocError
}

func newWalker(fset *token.FileSet, file string, src []byte, cfg *config.Config) *walker {
	return &walker{
		fset:       fset,
		file:       file,
		src:        src,
		cfg:        cfg,
		got:        make(map[string]Alias),
		want:       make(map[string]Alias),
		namespaces: make(map[string]string),
		visited:    make(map[visit]bool),
		reported:   make(map[string]bool),
	}
}

// descend walks a node looking for content. ns carries the namespace
// of the surrounding constructor, if any.
func (w *walker) descend(n ast.Node, scopes []scope, m mode, ns string) {
	if n == nil {
		return
	}
	key := visit{n, m}
	if w.visited[key] {
		return
	}
	w.visited[key] = true

	switch el := n.(type) {
	case *ast.BlockStmt:
		w.descendStmts(el.List, scopes, m, ns)
	case *ast.ExprStmt:
		w.descend(el.X, scopes, m, ns)
	case *ast.ReturnStmt:
		// Returning from a called function hands content back to the
		// caller.
		if m == modeReturn {
			m = modeContent
		}
		w.descendExprs(el.Results, scopes, m, ns)
	case *ast.AssignStmt:
		w.assign(el, scopes, m, ns)
	case *ast.DeclStmt:
		if gd, ok := el.Decl.(*ast.GenDecl); ok {
			w.genDecl(gd, scopes, m, ns)
		}
	case *ast.IfStmt:
		w.descend(el.Init, scopes, m, ns)
		w.descend(el.Body, scopes, m, ns)
		w.descend(el.Else, scopes, m, ns)
	case *ast.ForStmt:
		w.descend(el.Init, scopes, m, ns)
		w.descend(el.Body, scopes, m, ns)
	case *ast.RangeStmt:
		w.descend(el.X, scopes, m, ns)
		w.descend(el.Body, scopes, m, ns)
	case *ast.SwitchStmt:
		w.descend(el.Init, scopes, m, ns)
		w.descend(el.Body, scopes, m, ns)
	case *ast.TypeSwitchStmt:
		w.descend(el.Init, scopes, m, ns)
		w.descend(el.Assign, scopes, m, ns)
		w.descend(el.Body, scopes, m, ns)
	case *ast.CaseClause:
		w.descendStmts(el.Body, scopes, m, ns)
	case *ast.SelectStmt:
		w.descend(el.Body, scopes, m, ns)
	case *ast.CommClause:
		w.descend(el.Comm, scopes, m, ns)
		w.descendStmts(el.Body, scopes, m, ns)
	case *ast.LabeledStmt:
		w.descend(el.Stmt, scopes, m, ns)
	case *ast.GoStmt:
		w.descend(el.Call, scopes, m, ns)
	case *ast.DeferStmt:
		w.descend(el.Call, scopes, m, ns)
	case *ast.SendStmt:
		w.descend(el.Value, scopes, m, ns)

	case *ast.CallExpr:
		w.call(el, scopes, m, ns)
	case *ast.Ident:
		w.resolve(el.Name, scopes, m, ns)
	case *ast.SelectorExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.CompositeLit:
		w.descendExprs(el.Elts, scopes, m, ns)
	case *ast.KeyValueExpr:
		w.descend(el.Key, scopes, m, ns)
		w.descend(el.Value, scopes, m, ns)
	case *ast.ParenExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.UnaryExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.StarExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.BinaryExpr:
		w.descend(el.X, scopes, m, ns)
		w.descend(el.Y, scopes, m, ns)
	case *ast.IndexExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.SliceExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.TypeAssertExpr:
		w.descend(el.X, scopes, m, ns)
	case *ast.FuncLit:
		w.funcBody(el.Body, scopes, m, ns)
	case *ast.FuncDecl:
		if el.Body != nil {
			w.funcBody(el.Body, scopes, m, ns)
		}
	}
}

func (w *walker) descendStmts(list []ast.Stmt, scopes []scope, m mode, ns string) {
	for _, st := range list {
		w.descend(st, scopes, m, ns)
	}
}

func (w *walker) descendExprs(list []ast.Expr, scopes []scope, m mode, ns string) {
	for _, e := range list {
		w.descend(e, scopes, m, ns)
	}
}

func (w *walker) descendStash(list []ast.Node, scopes []scope, m mode, ns string) {
	for _, n := range list {
		w.descend(n, scopes, m, ns)
	}
}

// funcBody walks a function body in its own scope. Unless the function
// is being called for its value, the body is only probed; a function
// value sitting in content position is not itself content.
func (w *walker) funcBody(body *ast.BlockStmt, scopes []scope, m mode, ns string) {
	if m != modeReturn {
		m = modeProbe
	}
	w.descend(body, append(scopes, scope{}), m, ns)
}

// resolve follows an identifier to the expressions assigned to it. The
// stash is walked with the scope stack cut down to where the name was
// declared.
func (w *walker) resolve(name string, scopes []scope, m mode, ns string) {
	if m != modeContent && m != modeReturn {
		return
	}
	for i := len(scopes) - 1; i >= 0; i-- {
		if stash, ok := scopes[i][name]; ok {
			w.descendStash(stash, scopes[:i+1], m, ns)
			return
		}
	}
}

func (w *walker) call(el *ast.CallExpr, scopes []scope, m mode, ns string) {
	if fn, ok := el.Fun.(*ast.Ident); ok {
		w.identCall(el, fn.Name, scopes, m, ns)
		return
	}

	// A call's arguments can be incorporated into its return value.
	w.descendExprs(el.Args, scopes, m, ns)

	switch fn := el.Fun.(type) {
	case *ast.SelectorExpr:
		// chain(...).Append(...) starts out by evaluating chain(...).
		om := m
		if m == modeContent {
			om = modeReturn
		}
		w.descend(fn.X, scopes, om, ns)
		switch {
		case contentMethods[fn.Sel.Name]:
			w.descendExprs(el.Args, scopes, modeContent, ns)
		case fn.Sel.Name == "SetContent" || fn.Sel.Name == "ReplaceContent":
			w.markContentArgs(el, scopes, ns)
		}
	case *ast.FuncLit:
		// Function literal called in place.
		cm := m
		if m == modeContent {
			cm = modeReturn
		}
		w.descend(fn, scopes, cm, ns)
	default:
		w.descend(el.Fun, scopes, modeProbe, ns)
	}
}

func (w *walker) identCall(el *ast.CallExpr, name string, scopes []scope, m mode, ns string) {
	// The namespace of a constructor's arguments is the namespace of
	// the constructor itself; unrecognized names inherit the
	// surrounding one.
	argNS := ns
	if v, ok := w.namespaces[name]; ok {
		argNS = v
	} else if v, ok := w.cfg.NamespaceFor(name); ok {
		argNS = v
	}
	w.descendExprs(el.Args, scopes, m, argNS)

	if name == "SetContent" || name == "ReplaceContent" {
		w.markContentArgs(el, scopes, ns)
	}

	if m != modeContent {
		return
	}

	// A name in scope shadows any constructor: descend into whatever
	// was assigned to it, scanning for return values.
	for i := len(scopes) - 1; i >= 0; i-- {
		if stash, ok := scopes[i][name]; ok {
			w.descendStash(stash, scopes[:1], modeReturn, ns)
			return
		}
	}

	if isAllCaps(name) {
		w.wantConstructor(name, argNS, el)
	}
}

// markContentArgs handles a SetContent or ReplaceContent call: the
// first argument is the target, everything after it is content.
func (w *walker) markContentArgs(el *ast.CallExpr, scopes []scope, ns string) {
	if len(el.Args) < 2 {
		return
	}
	for _, arg := range el.Args[1:] {
		w.descend(arg, scopes, modeContent, ns)
	}
}

// wantConstructor records a constructor used as content. Inside a
// namespace the alias becomes an NSTag binding; outside, the name must
// be a recognized element.
func (w *walker) wantConstructor(name, ns string, el *ast.CallExpr) {
	if ns != "" {
		if _, ok := w.want[name]; !ok {
			w.want[name] = Alias{Name: name, Namespace: ns, Tag: namespaceTag(ns, name)}
		}
		if _, ok := w.namespaces[name]; !ok {
			w.namespaces[name] = ns
		}
		return
	}
	if !choc.KnownElement(name) && !w.cfg.HasElement(name) {
		w.reportUnknown(name, el)
		return
	}
	w.want[name] = Alias{Name: name}
}

func (w *walker) reportUnknown(name string, el *ast.CallExpr) {
	if w.reported[name] {
		return
	}
	w.reported[name] = true

	pos := w.fset.Position(el.Pos())
	suggestion := "Use choc.CustomElement for a custom tag, choc.NSTag for a namespaced one, or list the name under elements in " + config.ConfigFileName + "."
	if near := nearestElement(name); near != "" {
		suggestion = "Did you mean " + near + "? " + suggestion
	}
	w.diags = append(w.diags, errors.New("E201").
		WithLocation(pos.Filename, pos.Line, pos.Column).
		WithDetail(name+" is not a recognized element constructor, so it cannot be aliased.").
		WithSuggestion(suggestion))
}

func (w *walker) assign(el *ast.AssignStmt, scopes []scope, m mode, ns string) {
	w.descendExprs(el.Lhs, scopes, m, ns)
	w.descendExprs(el.Rhs, scopes, m, ns)

	// Assigning to a simple name stashes the expression in the scope
	// that declared it. This is lexical analysis, not control-flow
	// analysis: an assignment below the corresponding SetContent call
	// is missed, and augmented assignment is treated like assignment.
	for i, lhs := range el.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok || id.Name == "_" {
			continue
		}
		rhs := el.Rhs[0]
		if i < len(el.Rhs) {
			rhs = el.Rhs[i]
		}
		if el.Tok == token.DEFINE {
			cur := scopes[len(scopes)-1]
			cur[id.Name] = append(cur[id.Name], rhs)
			continue
		}
		w.stash(id.Name, rhs, scopes)
	}
}

func (w *walker) stash(name string, rhs ast.Expr, scopes []scope) {
	for i := len(scopes) - 1; i >= 0; i-- {
		if _, ok := scopes[i][name]; ok {
			scopes[i][name] = append(scopes[i][name], rhs)
			return
		}
	}
	// Nothing declared the name; it probably lands at file scope.
	scopes[0][name] = []ast.Node{rhs}
}

func (w *walker) genDecl(d *ast.GenDecl, scopes []scope, m mode, ns string) {
	if d == w.autoDecl {
		return
	}
	if d.Tok != token.VAR && d.Tok != token.CONST {
		return
	}
	cur := scopes[len(scopes)-1]
	for _, sp := range d.Specs {
		vs, ok := sp.(*ast.ValueSpec)
		if !ok {
			continue
		}
		if len(vs.Values) == 0 {
			// Mark the names as declared here without attaching code,
			// so later assignments stash into the right scope.
			for _, id := range vs.Names {
				if id.Name == "_" {
					continue
				}
				if _, exists := cur[id.Name]; !exists {
					cur[id.Name] = nil
				}
			}
			continue
		}
		w.descendExprs(vs.Values, scopes, m, ns)
		for i, id := range vs.Names {
			if id.Name == "_" {
				continue
			}
			val := vs.Values[0]
			if i < len(vs.Values) {
				val = vs.Values[i]
			}
			cur[id.Name] = append(cur[id.Name], val)
		}
	}
}

// isAllCaps reports whether name has at least one letter and no
// lowercase ones. Digits and underscores are allowed, so H1 and
// NAV_BAR qualify.
func isAllCaps(name string) bool {
	hasUpper := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// namespaceTag derives the tag an NSTag alias should build. SVG tags
// are lowercase; other namespaces keep the name as written.
func namespaceTag(ns, name string) string {
	if ns == "svg" {
		return strings.ToLower(name)
	}
	return name
}

// nearestElement finds a known constructor within edit distance two of
// name, for use in diagnostics.
func nearestElement(name string) string {
	best := ""
	bestDist := 3
	for _, candidate := range choc.ElementNames() {
		if d := editDistance(name, candidate); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// sortedNames returns a map's keys in order.
func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
