package labelconf

// defaultDocument is shown when no config file is given.
const defaultDocument = `
text = """
hyperlabel turns spans of a terminal label into links.
Click the docs, the issue tracker or the changelog.
Taps that land just beside a link still count, unless you turn that off."""
wrap = "word"

[[link]]
name = "docs"
text = "docs"

[[link]]
name = "issues"
text = "issue tracker"

[[link]]
name = "changelog"
text = "changelog"

[[link]]
name = "tolerance"
text = "just beside a link"
`

// Default returns the built-in demo document.
func Default() Document {
	doc, err := Parse([]byte(defaultDocument))
	if err != nil {
		panic("labelconf: built-in document: " + err.Error())
	}
	return doc
}
