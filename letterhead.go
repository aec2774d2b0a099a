package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/phpdave11/gofpdi"
)

// letterhead identifies a page of an existing PDF to stamp under every
// rendered page.
type letterhead struct {
	path string
	page int
}

// letterheadStamp is the imported template, ready to place on each page.
type letterheadStamp struct {
	imp *gofpdi.Importer
	tpl int
}

// openLetterhead imports the configured source page into the build's PDF.
// The import happens once; the resulting template is reused on every page.
func (b *builder) openLetterhead() (err error) {
	// gofpdi reports failure by panicking.
	defer func() {
		if r := recover(); r != nil {
			err = newError("Build", fmt.Errorf("importing letterhead %s: %v",
				b.doc.letterhead.path, r))
		}
	}()

	imp := gofpdi.NewImporter()
	imp.SetSourceFile(b.doc.letterhead.path)
	page := b.doc.letterhead.page
	if page < 1 {
		page = 1
	}
	tpl := imp.ImportPage(page, "/MediaBox")
	b.pdf.ImportTemplates(imp.PutFormXobjectsUnordered())
	b.pdf.ImportObjects(imp.GetImportedObjectsUnordered())
	b.pdf.ImportObjPos(imp.GetImportedObjHashPos())
	b.lh = &letterheadStamp{imp: imp, tpl: tpl}
	return nil
}

// stamp places the imported page so it covers the full target page.
func (s *letterheadStamp) stamp(pdf *fpdf.Fpdf, page Size) {
	name, sx, sy, tx, ty := s.imp.UseTemplate(s.tpl, 0, 0, page.W, page.H)
	pdf.UseImportedTemplate(name, sx, sy, tx, ty)
}
