// Package errors provides structured, actionable error messages for Choc.
//
// The errors package implements an error system that:
//   - Shows exact source locations (file, line, column)
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with code examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: chocimport configuration errors (malformed .chocimport.yaml)
//   - analysis: source analysis errors (parse failures, unknown constructors)
//   - query: selector errors (invalid or ambiguous CSS selectors)
//   - cli: command-line errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E201") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E201").
//	    WithLocation("web/menu.go", 15, 12).
//	    WithSuggestion("Use choc.CustomElement for nonstandard tags")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E201: Unknown element constructor
//	//
//	//   web/menu.go:15:12
//	//
//	//     13 │ func menu(items []string) *choc.Node {
//	//     14 │     return UL(
//	//   → 15 │         WIDGET("hello"),
//	//        │             ^
//	//     16 │     )
//	//     17 │ }
//	//
//	//   Hint: Use choc.CustomElement for nonstandard tags
//	//
//	//   Learn more: https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e201
package errors
