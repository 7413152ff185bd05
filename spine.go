package epub

// buildSpine orders chapter references into the reading sequence: one entry
// per chapter, referencing chapterN in chapter order. The spine element
// itself carries a toc reference to the fixed navigation id.
func buildSpine(chapters []Chapter) []spineEntry {
	entries := make([]spineEntry, 0, len(chapters))
	for i := range chapters {
		entries = append(entries, spineEntry{IDRef: chapterID(i + 1)})
	}
	return entries
}
