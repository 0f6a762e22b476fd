// Package errors provides structured, coded errors for the overridable
// command-line tool and its configuration layer.
//
// # Error Categories
//
// Errors are organized into categories:
//   - config: configuration file errors (missing file, syntax, bad address)
//   - manifest: override manifest errors (unknown preset, bad mode)
//   - cli: command-line usage and I/O errors
//   - render: failures surfaced while rendering a page
//
// # Error Codes
//
// Each error has a unique code (e.g., "O202") that maps to a short message,
// a detailed explanation and, for most codes, a hint.
//
// # Usage
//
//	err := errors.New(errors.CodeManifestPreset).
//	    WithLocation("overridable.toml", 7, 10).
//	    WithDetail(`preset "shout" is not registered`)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR O202: Unknown override preset
//	//
//	//   overridable.toml:7:10
//	//
//	//      5 │ [[overrides]]
//	//      6 │ id = "Card.header"
//	//   →  7 │ preset = "shout"
//	//        │          ^
//	//
//	//   preset "shout" is not registered
//	//
//	//   Hint: Use one of: hidden, text, wrap, badge.
package errors
