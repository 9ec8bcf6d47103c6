// Package scss pulls design-token definitions out of RexBox SCSS sources.
//
// Extraction is purely textual: each Extract function applies a regular expression
// to file content and collects the matches into an ordered Table or slice. Nothing
// here evaluates SCSS; a declaration that does not match is skipped.
package scss
