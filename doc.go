// Package pdfrender turns a folder of template and data files into a PDF by
// delegating rendering to a remote HTTP service.
//
// # Folder Bundle
//
// A job lives in one directory named after the job. For a folder "invoice1":
//
//	invoice1/invoice1.hbr    main template (required)
//	invoice1/data.json       data tree (required, must parse)
//	invoice1/header.hbr      header template (optional)
//	invoice1/footer.hbr      footer template (optional)
//	invoice1/pdfoptions.json option overrides (optional, parse failure tolerated)
//
// The result is written to invoice1/invoice1.pdf.
//
// # Quick Start
//
//	b, err := pdfrender.ResolveFolder(baseDir, "invoice1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	in, err := pdfrender.LoadInputs(b)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	body, err := pdfrender.NewDocument(in).Encode()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf, err := pdfrender.NewClient().Render(ctx, body, apiKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := pdfrender.WriteOutput(b, pdf)
//
// # Options Merge
//
// Overrides from pdfoptions.json are merged shallowly over DefaultOptions:
// a top-level key in the file replaces the default value for that key as a
// whole. A partial "margin" object therefore drops the default sibling
// margins.
//
// # Errors
//
// All failures wrap one of the sentinel errors in this package so callers
// can branch with errors.Is. A non-200 answer is a *RemoteError.
package pdfrender
