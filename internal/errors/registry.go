package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// Error codes.
const (
	CodeConfigNotFound   = "O101"
	CodeConfigParse      = "O102"
	CodeConfigFormat     = "O103"
	CodeConfigAddr       = "O104"
	CodeConfigWrite      = "O105"
	CodeManifestID       = "O201"
	CodeManifestPreset   = "O202"
	CodeManifestMode     = "O203"
	CodeManifestParams   = "O204"
	CodeCLIArgs          = "O301"
	CodeCLIServe         = "O302"
	CodeCLIRender        = "O303"
	CodeRenderRegion     = "O401"
	CodeRenderMissingArg = "O402"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (O101-O199)
	// ============================================

	CodeConfigNotFound: {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No overridable.json or overridable.toml was found at the given path.",
		Suggestion: "Pass --config with the path to your configuration file, or run without one to use defaults.",
	},
	CodeConfigParse: {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "The configuration file could not be parsed.",
		Suggestion: "Check the file for syntax errors at the reported position.",
	},
	CodeConfigFormat: {
		Category: CategoryConfig,
		Message:  "Unsupported configuration format",
		Detail:   "Configuration files must end in .json or .toml.",
	},
	CodeConfigAddr: {
		Category: CategoryConfig,
		Message:  "Invalid listen address",
		Detail:   "The addr setting must be a host:port pair such as \"localhost:3100\" or \":3100\".",
	},
	CodeConfigWrite: {
		Category:   CategoryConfig,
		Message:    "Could not write configuration file",
		Suggestion: "Check that the directory exists and is writable.",
	},

	// ============================================
	// Manifest Errors (O201-O299)
	// ============================================

	CodeManifestID: {
		Category:   CategoryManifest,
		Message:    "Override without identifier",
		Detail:     "Every [[overrides]] entry needs a non-empty id naming the region or component it replaces.",
		Suggestion: "Set id to one of the identifiers listed by `overridable list`.",
	},
	CodeManifestPreset: {
		Category:   CategoryManifest,
		Message:    "Unknown override preset",
		Detail:     "The preset does not name a registered replacement.",
		Suggestion: "Use one of: hidden, text, wrap, badge.",
	},
	CodeManifestMode: {
		Category: CategoryManifest,
		Message:  "Invalid override mode",
		Detail:   "The mode must be \"add\" (single replacement) or \"append\" (expand into a list).",
	},
	CodeManifestParams: {
		Category: CategoryManifest,
		Message:  "Invalid preset parameters",
		Detail:   "The preset rejected the params given for this override.",
	},

	// ============================================
	// CLI Errors (O301-O399)
	// ============================================

	CodeCLIArgs: {
		Category: CategoryCLI,
		Message:  "Invalid arguments",
	},
	CodeCLIServe: {
		Category: CategoryCLI,
		Message:  "Preview server failed",
	},
	CodeCLIRender: {
		Category: CategoryCLI,
		Message:  "Could not write rendered page",
	},

	// ============================================
	// Render Errors (O401-O499)
	// ============================================

	CodeRenderRegion: {
		Category:   CategoryRender,
		Message:    "Ambiguous override target",
		Detail:     "A region was given more than one child, so there is no single element to clone or replace.",
		Suggestion: "Wrap the children in one element, or split them into separate regions with their own ids.",
	},
	CodeRenderMissingArg: {
		Category: CategoryRender,
		Message:  "Component rejected its parameters",
		Detail:   "A default or replacement component returned an error for the parameters it was rendered with.",
	},
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
