// Package output abstracts where rendered HTML files land. The filesystem
// target honors the converter's write discipline: byte-identical content is
// never rewritten, and replacements happen atomically via a temp file and
// rename.
package output

// Target is a destination for rendered files.
type Target interface {
	// Write stores content under name. It reports true when the file was
	// created or replaced and false when an existing file already held
	// exactly this content and was left untouched.
	Write(name string, content []byte) (bool, error)
}
