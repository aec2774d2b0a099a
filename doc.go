// Package report assembles paginated PDF reports from an ordered story of
// content blocks.
//
// A Document owns a set of named page templates, each a page size plus one
// or more frames that content flows through and an optional per-page
// decoration callback. A Story is an ordered list of flowables - headings,
// paragraphs, images, tables - interleaved with flow-control directives:
// NextTemplate selects the template that subsequent pages use, and PageBreak
// forces a new page under it.
//
// Build consumes the story exactly once, front to back. Flowables are
// immutable values; all layout state lives in the build, so the same story
// can be assembled any number of times with identical output.
//
//	doc := report.NewDocument(report.WithTitle("Quarterly report"))
//	doc.AddTemplate(report.NewPageTemplate("portrait", report.A4, 15, nil))
//	doc.AddTemplate(report.NewPageTemplate("landscape", report.A4.Landscape(), 15, nil))
//
//	var story report.Story
//	story.Add(
//	    report.Heading{Text: "Results", Level: 1},
//	    report.Paragraph{Text: "Summary of the quarter."},
//	    report.NextTemplate{ID: "landscape"},
//	    report.PageBreak{},
//	    report.Heading{Text: "Detail", Level: 2},
//	)
//	err := doc.BuildFile("out.pdf", story)
//
// Charts and dataframes become flowables through the figure and table
// packages.
package report
