package epub

import "encoding/xml"

const (
	xhtmlNamespace = "http://www.w3.org/1999/xhtml"
	epubNamespace  = "http://www.idpf.org/2007/ops"
)

// xhtmlDoctype precedes every serialized XHTML document.
const xhtmlDoctype = "<!DOCTYPE html>\n"

// navDocument models the nav.xhtml navigation document: a toc-typed nav
// element holding a single ordered list of chapter links.
type navDocument struct {
	XMLName   xml.Name `xml:"html"`
	Xmlns     string   `xml:"xmlns,attr"`
	XmlnsEpub string   `xml:"xmlns:epub,attr"`
	XMLLang   string   `xml:"xml:lang,attr"`
	Lang      string   `xml:"lang,attr"`
	Head      navHead  `xml:"head"`
	Body      navBody  `xml:"body"`
}

type navHead struct {
	Title string `xml:"title"`
}

type navBody struct {
	Nav navElement `xml:"nav"`
}

type navElement struct {
	Type string  `xml:"epub:type,attr"`
	List navList `xml:"ol"`
}

type navList struct {
	Items []navItem `xml:"li"`
}

type navItem struct {
	Link navLink `xml:"a"`
}

type navLink struct {
	Href  string `xml:"href,attr"`
	Label string `xml:",chardata"`
}

// buildNav produces the table-of-contents document: one link per chapter in
// spine order, targeting the chapter's manifest href. Language attributes
// on the root are set from the metadata language.
func buildNav(md Metadata, chapters []Chapter) ([]byte, error) {
	items := make([]navItem, 0, len(chapters))
	for _, ch := range chapters {
		items = append(items, navItem{Link: navLink{
			Href:  textDir + "/" + ch.Filename,
			Label: chapterLabel(ch, md.Language),
		}})
	}

	doc := navDocument{
		Xmlns:     xhtmlNamespace,
		XmlnsEpub: epubNamespace,
		XMLLang:   md.Language,
		Lang:      md.Language,
		Head:      navHead{Title: md.Title},
		Body: navBody{Nav: navElement{
			Type: "toc",
			List: navList{Items: items},
		}},
	}

	return marshalDocument(doc, xml.Header+xhtmlDoctype)
}

// chapterLabel returns the navigation label for a chapter: the explicit
// title when present, otherwise the first title or heading of the rendered
// markup, otherwise the filename.
func chapterLabel(ch Chapter, language string) string {
	if ch.Title != "" {
		return ch.Title
	}
	if ch.Content != nil {
		if title := extractTitle([]byte(ch.Content(language))); title != "" {
			return title
		}
	}
	return ch.Filename
}
