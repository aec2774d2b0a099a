package report

import (
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
)

const sizeEpsilon = 1e-6

// Document binds an ordered set of page templates to build options and
// produces one output file per Build call. Content renders into the first
// registered template until a NextTemplate directive selects another.
type Document struct {
	templates map[string]*PageTemplate
	order     []string

	title   string
	author  string
	subject string
	font    FontSpec
	fit     FitPolicy

	compress   bool
	created    time.Time
	letterhead *letterhead

	pages int
}

// NewDocument creates a document with the given options.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		templates: make(map[string]*PageTemplate),
		font:      FontSpec{Family: "Helvetica", Size: 11},
		compress:  true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AddTemplate registers a page template. The first registered template is
// the one the document opens with. Registering a duplicate id is an error.
func (d *Document) AddTemplate(t *PageTemplate) error {
	if _, ok := d.templates[t.ID]; ok {
		return newError("AddTemplate", ErrDuplicateTemplate)
	}
	d.templates[t.ID] = t
	d.order = append(d.order, t.ID)
	return nil
}

// PageCount reports the number of pages emitted by the most recent
// successful Build.
func (d *Document) PageCount() int {
	return d.pages
}

// Build consumes the story exactly once, in order, laying content into the
// active template's frames, flowing across pages as needed, and writes the
// finished PDF to w. On error no usable output is written.
func (d *Document) Build(w io.Writer, story Story) error {
	if len(d.order) == 0 {
		return newError("Build", ErrNoTemplates)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(d.compress)
	if d.title != "" {
		pdf.SetTitle(d.title, true)
	}
	if d.author != "" {
		pdf.SetAuthor(d.author, true)
	}
	if d.subject != "" {
		pdf.SetSubject(d.subject, true)
	}
	if !d.created.IsZero() {
		pdf.SetCreationDate(d.created)
		pdf.SetModificationDate(d.created)
	}
	pdf.SetFont(d.font.Family, d.font.Style, d.font.Size)

	b := &builder{
		doc:    d,
		pdf:    pdf,
		canvas: &Canvas{pdf: pdf, docFont: d.font},
		tpl:    d.templates[d.order[0]],
	}
	if d.letterhead != nil {
		if err := b.openLetterhead(); err != nil {
			return err
		}
	}
	b.startPage()

	for _, block := range story {
		switch v := block.(type) {
		case NextTemplate:
			tpl, ok := d.templates[v.ID]
			if !ok {
				return newError("Build", ErrUnknownTemplate)
			}
			b.next = tpl
		case PageBreak:
			b.startPage()
		default:
			if err := b.place(v); err != nil {
				return err
			}
		}
	}

	if pdf.Err() {
		return newError("Build", pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return newError("Build", err)
	}
	d.pages = b.page
	return nil
}

// BuildFile assembles the story into the file at path.
func (d *Document) BuildFile(path string, story Story) error {
	f, err := os.Create(path)
	if err != nil {
		return newError("BuildFile", err)
	}
	defer f.Close()
	if err := d.Build(f, story); err != nil {
		return err
	}
	return f.Close()
}

// builder holds the per-Build render state. Flowables stay untouched; every
// cursor lives here.
type builder struct {
	doc    *Document
	pdf    *fpdf.Fpdf
	canvas *Canvas

	tpl      *PageTemplate // active template
	next     *PageTemplate // pending template switch, applied at page start
	frameIdx int
	y        float64 // cursor within the active frame
	page     int

	lh *letterheadStamp
}

// startPage begins a new page under the pending template, if any, stamps the
// letterhead, runs decoration, and resets the frame cursor.
func (b *builder) startPage() {
	if b.next != nil {
		b.tpl = b.next
		b.next = nil
	}
	b.pdf.AddPageFormat("P", fpdf.SizeType{Wd: b.tpl.Size.W, Ht: b.tpl.Size.H})
	b.page++
	b.frameIdx = 0
	_, y, _, _ := b.tpl.Frames[0].content()
	b.y = y

	if b.lh != nil {
		b.lh.stamp(b.pdf, b.tpl.Size)
	}
	if b.tpl.Decorate != nil {
		b.tpl.Decorate(b.canvas, PageInfo{
			Number:   b.page,
			Size:     b.tpl.Size,
			Template: b.tpl.ID,
		})
	}
	b.pdf.SetFont(b.doc.font.Family, b.doc.font.Style, b.doc.font.Size)
}

// advance moves the cursor to the next frame on the page, or to a new page
// when the template's frames are exhausted.
func (b *builder) advance() {
	if b.frameIdx+1 < len(b.tpl.Frames) && b.next == nil {
		b.frameIdx++
		_, y, _, _ := b.tpl.Frames[b.frameIdx].content()
		b.y = y
		return
	}
	b.startPage()
}

// place lays out a single content block, flowing into following frames and
// pages until it is fully rendered.
func (b *builder) place(f Flowable) error {
	for {
		fx, fy, fw, fh := b.tpl.Frames[b.frameIdx].content()
		avail := fy + fh - b.y

		if b.doc.fit == FitError {
			if nw, ok := f.(interface{ NaturalWidth() float64 }); ok {
				if nw.NaturalWidth() > fw+sizeEpsilon {
					return newError("Build", ErrContentTooLarge)
				}
			}
		}

		h := f.Measure(b.canvas, fw)
		if h <= avail+sizeEpsilon {
			if err := f.Render(b.canvas, fx, b.y, fw); err != nil {
				return newError("Build", err)
			}
			b.y += h
			return nil
		}

		if sp, ok := f.(Splitter); ok {
			if fit, rest, ok := sp.Split(b.canvas, fw, avail); ok {
				if err := fit.Render(b.canvas, fx, b.y, fw); err != nil {
					return newError("Build", err)
				}
				b.advance()
				if rest == nil {
					return nil
				}
				f = rest
				continue
			}
			// Not even the leading slice fits here. A fresh frame may
			// still take it, unless this frame was already empty.
			if avail >= fh-sizeEpsilon {
				return newError("Build", ErrContentTooLarge)
			}
			b.advance()
			continue
		}

		// Taller than a whole empty frame: no page break can help.
		if h > fh+sizeEpsilon {
			return newError("Build", ErrContentTooLarge)
		}
		b.advance()
	}
}
