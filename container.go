package epub

// Fixed archive layout. Every path written into the archive is derived from
// these constants; the package document's hrefs are relative to rootDir.
const (
	mimetypePath  = "mimetype"
	containerPath = "META-INF/container.xml"

	rootDir = "OEBPS"
	opfName = "content.opf"
	navName = "nav.xhtml"

	opfPath = rootDir + "/" + opfName
	navPath = rootDir + "/" + navName

	textDir   = "Text"
	imagesDir = "Images"
	stylesDir = "Styles"

	stylesheetHref = stylesDir + "/style.css"
)

// mimetypeContent is the required content of the mimetype entry. It must be
// the first entry in the archive and stored without compression.
const mimetypeContent = "application/epub+zip"

// containerXML is the fixed container-pointer document. It has no variable
// content: full-path always points at the package document's fixed location.
const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="OEBPS/content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>
`

// defaultStylesheet is written to OEBPS/Styles/style.css in every archive
// and referenced by the fixed "style" manifest entry.
const defaultStylesheet = `body {
  font-family: serif;
  line-height: 1.5;
  margin: 0 5%;
  text-align: justify;
}

h1, h2, h3, h4, h5, h6 {
  font-family: sans-serif;
  line-height: 1.2;
  text-align: left;
}

img {
  max-width: 100%;
  height: auto;
}
`
