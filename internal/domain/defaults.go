package domain

// DefaultDocumentPath is the user documentation validated when no path is configured.
const DefaultDocumentPath = "docs/felhasznaloi-dokumentacio.docx"
