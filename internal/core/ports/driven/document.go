package driven

// DocumentOpener opens paged documents for reading.
type DocumentOpener interface {
	// Open opens the document at path.
	// The caller must Close the returned source.
	Open(path string) (PageSource, error)
}

// PageSource is an open paged document.
type PageSource interface {
	// NumPages returns the number of pages.
	NumPages() int

	// PageText extracts the text of page i (1-based).
	// A page with no extractable text returns an empty string and no error.
	PageText(i int) (string, error)

	// Close releases the underlying file.
	Close() error
}
