// Package analysis scans Go source for element constructors used as
// content and keeps the file's autoimport block in step with them.
//
// A file using the constructor DSL declares its aliases in a var block
// ending with an //autoimport marker:
//
//	var (
//		DIV  = choc.DIV
//		PATH = choc.NSTag("svg", "path")
//	) //autoimport
//
// The analyzer finds every ALL-CAPS constructor reachable from a
// SetContent or ReplaceContent call, from a content-adding Node method
// (Append, AppendChild, and friends), or from the return value of a
// component function, then reports the difference against the block:
// GAIN for constructors used but not aliased, LOSE for aliases nothing
// uses anymore, WANT for the full desired list. With Options.Fix the
// block is rewritten in place and the result run through goimports.
//
// This is primitive static analysis, not control-flow analysis. It
// resolves identifiers lexically through the scopes that assigned
// them, descends into local functions when they are called for
// content, and follows values through composite literals, append
// calls, and function literals called in place. An assignment below
// the SetContent call that consumes it is missed. Analysis is per
// file: constructors defined in sibling files of the same package are
// not visible and should be listed in the configuration instead.
//
// # Usage
//
//	analyzer := analysis.NewAnalyzer(analysis.Options{Fix: true})
//	rep, err := analyzer.AnalyzeFile("menu.go")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !rep.InSync() {
//	    fmt.Println(rep.File)
//	    fmt.Println("WANT:", rep.WantString())
//	}
package analysis
