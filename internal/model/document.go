package model

// DocumentKind says which extractor a document is routed to.
type DocumentKind string

const (
	KindBankStatement DocumentKind = "bank_statement"
	KindCreditReport  DocumentKind = "credit_report"
)

// Document is one uploaded file: its name and raw bytes.
type Document struct {
	Name string
	Data []byte
}
