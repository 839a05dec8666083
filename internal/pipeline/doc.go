// Package pipeline implements the Markdown-to-HTML fragment pipeline used for
// legal pages.
//
// The default engine is line oriented and runs three stages:
//   - Classify: each physical line becomes a header (levels 1-3), list item,
//     blank, pre-tagged HTML, or paragraph
//   - TransformInline: **bold** and [label](target) spans are rewritten
//   - Assemble: consecutive list items are wrapped in a single <ul>, and
//     paragraphs in <p>
//
// It is not a CommonMark parser: there is no nesting, escaping or
// sanitization, and embedded HTML is passed through untouched. An optional
// goldmark engine is available for documents that need full CommonMark.
//
// Page templating happens in the root legalsite package; this package only
// produces the fragment that goes inside the page body.
package pipeline
