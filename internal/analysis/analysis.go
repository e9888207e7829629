package analysis

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/Rosuav/Choc/internal/config"
	"github.com/Rosuav/Choc/internal/errors"
)

// modulePath identifies the library whose constructors the tool
// maintains aliases for.
const modulePath = "github.com/Rosuav/Choc"

// Alias is one entry of an autoimport block.
type Alias struct {
	// Name is the local identifier the constructor is bound to.
	Name string

	// Namespace and Tag are set for NSTag aliases; plain constructor
	// aliases leave both empty.
	Namespace string
	Tag       string
}

// String renders the alias for reports: DIV, or PATH (svg:path).
func (a Alias) String() string {
	if a.Namespace != "" {
		return fmt.Sprintf("%s (%s:%s)", a.Name, a.Namespace, a.Tag)
	}
	return a.Name
}

// Options configures analysis behavior.
type Options struct {
	// Extcalls names component functions called from outside the
	// analyzed file. Their return values are treated as content.
	Extcalls []string

	// Config supplies extra extcalls, namespaces, and element names.
	// Nil means the defaults.
	Config *config.Config

	// Fix enables rewriting the autoimport block in place.
	Fix bool
}

// Report describes one file's alias state.
type Report struct {
	// File is the path analyzed.
	File string

	// Gain lists constructors used as content but not aliased; Lose
	// lists aliases no remaining usage wants.
	Gain []string
	Lose []string

	// Want is the full desired block, sorted by name. Aliases already
	// declared keep their declared form.
	Want []Alias

	// Diagnostics carries coded problems found along the way.
	Diagnostics []*errors.ChocError

	// Fixed is set when Output holds the rewritten source.
	Fixed  bool
	Output []byte
}

// InSync reports whether the block already matches usage.
func (r *Report) InSync() bool {
	return len(r.Gain) == 0 && len(r.Lose) == 0
}

// WantString renders the full desired alias list on one line.
func (r *Report) WantString() string {
	parts := make([]string, len(r.Want))
	for i, al := range r.Want {
		parts[i] = al.String()
	}
	return strings.Join(parts, ", ")
}

// Analyzer scans Go source for constructors used as content and
// reconciles them against the file's autoimport block.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	return &Analyzer{opts: opts}
}

// AnalyzeFile analyzes one file, writing back the fixed source when
// Options.Fix produced one.
func (a *Analyzer) AnalyzeFile(path string) (*Report, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rep, err := a.Analyze(path, src)
	if err != nil {
		return nil, err
	}
	if rep.Fixed {
		if err := os.WriteFile(path, rep.Output, 0644); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

// Analyze analyzes src without touching the filesystem. The path names
// the file in positions and reports.
func (a *Analyzer) Analyze(path string, src []byte) (*Report, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, errors.FromError(err, "E101").WithLocationFromError(err)
	}

	rep := &Report{File: path}

	w := newWalker(fset, path, src, a.opts.Config)
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil || p != modulePath {
			continue
		}
		switch {
		case imp.Name == nil:
			w.pkgLocal = "choc"
		case imp.Name.Name == ".":
			w.dotImport = true
		default:
			w.pkgLocal = imp.Name.Name
		}
	}
	// Files that never import the library have nothing to maintain.
	if w.pkgLocal == "" && !w.dotImport {
		return rep, nil
	}

	w.autoDecl = findAutoimport(fset, f)
	if w.autoDecl != nil && !w.dotImport {
		w.parseAutoimport()
	}

	// First pass: hoist top-level functions so calls can resolve
	// forward references.
	fileScope := scope{}
	for _, decl := range f.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Recv == nil {
			fileScope[fd.Name.Name] = []ast.Node{fd}
		}
	}
	scopes := []scope{fileScope}

	// Second pass: recursively look for all SetContent calls.
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			w.descend(d, scopes, modeProbe, "")
		case *ast.GenDecl:
			w.genDecl(d, scopes, modeProbe, "")
		}
	}

	// Externally called component functions return content even though
	// no call appears in this file. ALL-CAPS functions are components
	// by convention; the rest need naming via Extcalls.
	for _, name := range a.extcalls() {
		if stash, ok := fileScope[name]; ok {
			w.descendStash(stash, scopes, modeReturn, "")
		}
	}
	for _, decl := range f.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Recv == nil && isAllCaps(fd.Name.Name) {
			w.descend(fd, scopes, modeReturn, "")
		}
	}

	rep.Diagnostics = w.diags

	// A dot import puts every constructor in scope already; there is
	// no block to reconcile.
	if w.dotImport {
		return rep, nil
	}

	for _, name := range sortedNames(w.got) {
		if _, ok := w.want[name]; !ok {
			rep.Lose = append(rep.Lose, name)
		}
	}
	for _, name := range sortedNames(w.want) {
		al, ok := w.got[name]
		if !ok {
			al = w.want[name]
			rep.Gain = append(rep.Gain, name)
		}
		rep.Want = append(rep.Want, al)
	}

	if rep.InSync() {
		return rep, nil
	}

	if w.autoDecl == nil {
		rep.Diagnostics = append(rep.Diagnostics, errors.New("E102").
			WithSuggestion("Declare a block for the tool to maintain.").
			WithExample("var (\n\tDIV = "+w.pkgLocal+".DIV\n) //autoimport"))
		return rep, nil
	}

	if !a.opts.Fix {
		return rep, nil
	}

	block := renderAutoimport(w.pkgLocal, rep.Want, w.preserved)
	out, err := imports.Process(path, spliceAutoimport(src, fset, w.autoDecl, block), nil)
	if err != nil {
		return nil, errors.FromError(err, "E101")
	}
	rep.Fixed = true
	rep.Output = out
	return rep, nil
}

// extcalls merges the option-supplied names with the configured ones.
func (a *Analyzer) extcalls() []string {
	merged := append([]string{}, a.opts.Extcalls...)
	return append(merged, a.opts.Config.Extcalls...)
}
