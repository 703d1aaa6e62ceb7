// Package markdown prepares PM documents for submission as issue and comment
// bodies. It strips the leading YAML frontmatter block, reports whether a
// body remains, decodes the declared metadata, and renders previews and
// heading outlines through goldmark.
package markdown
