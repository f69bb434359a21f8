package ports

// DocumentViewer shows a document file in an application outside docdesk
type DocumentViewer interface {
	View(path string) error
}
