package report

import "time"

// FitPolicy controls what happens when a content block is wider than the
// active frame.
type FitPolicy int

const (
	// FitShrink scales over-wide blocks down to the frame width, keeping
	// their aspect ratio. This is the default.
	FitShrink FitPolicy = iota
	// FitError makes Build fail with ErrContentTooLarge instead of scaling.
	FitError
)

// Option is a functional option for configuring a new Document.
type Option func(*Document)

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(d *Document) {
		d.title = title
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(d *Document) {
		d.author = author
	}
}

// WithSubject sets the document subject metadata.
func WithSubject(subject string) Option {
	return func(d *Document) {
		d.subject = subject
	}
}

// WithDefaultFont sets the font used by text blocks that do not carry their
// own font. The default is Helvetica 11.
func WithDefaultFont(f FontSpec) Option {
	return func(d *Document) {
		d.font = f
	}
}

// WithFitPolicy sets the oversize handling policy for content blocks.
func WithFitPolicy(p FitPolicy) Option {
	return func(d *Document) {
		d.fit = p
	}
}

// WithCompression enables or disables content stream compression.
// Compression is on by default; tests disable it to inspect page content.
func WithCompression(on bool) Option {
	return func(d *Document) {
		d.compress = on
	}
}

// WithCreationDate pins the PDF creation date, making repeated builds of the
// same story byte-identical. When not set the current time is used.
func WithCreationDate(t time.Time) Option {
	return func(d *Document) {
		d.created = t
	}
}

// WithLetterhead stamps the given page of an existing PDF file under the
// content of every rendered page, before decoration runs.
func WithLetterhead(path string, page int) Option {
	return func(d *Document) {
		d.letterhead = &letterhead{path: path, page: page}
	}
}
