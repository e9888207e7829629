package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryConfig,
		Message:  "Invalid chocimport configuration",
		Detail:   "The .chocimport.yaml configuration file could not be read or parsed. Check the YAML syntax; the recognized keys are extcalls, namespaces, and elements.",
		DocURL:   "https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e001",
	},

	// ============================================
	// Analysis Errors (E101-E199)
	// ============================================

	"E101": {
		Category: CategoryAnalysis,
		Message:  "Go source file could not be parsed",
		Detail:   "The file is not valid Go source. Fix the syntax errors before running chocimport over it.",
		DocURL:   "https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e101",
	},
	"E102": {
		Category: CategoryAnalysis,
		Message:  "No autoimport block found",
		Detail:   "The file uses element constructors but has no var block ending with an //autoimport marker, so there is nothing to rewrite. Add an empty block and rerun with --fix.",
		DocURL:   "https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e102",
	},

	// ============================================
	// Constructor Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategoryAnalysis,
		Message:  "Unknown element constructor",
		Detail:   "An ALL-CAPS name is used as a content constructor but no such element is defined. Aliasing it would not compile.",
		DocURL:   "https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e201",
	},

	// ============================================
	// Query Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategoryQuery,
		Message:  "Invalid selector",
		Detail:   "The CSS selector could not be compiled. Check the selector syntax.",
		DocURL:   "https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e301",
	},
	"E302": {
		Category: CategoryQuery,
		Message:  "Selector matched more than one element",
		Detail:   "First requires the selector to identify at most one element. Narrow the selector, or use Find to accept multiple matches.",
		DocURL:   "https://github.com/Rosuav/Choc/blob/main/docs/errors.md#e302",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
