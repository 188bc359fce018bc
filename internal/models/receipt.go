package models

import (
	"time"
)

// ParsedReceipt is the result of OCR'ing a grocery receipt
type ParsedReceipt struct {
	Items   []ParsedItem `json:"items"`
	Date    *time.Time   `json:"date,omitempty"`
	RawText string       `json:"raw_text,omitempty"`
}

// ParsedItem is one item line extracted from a receipt
type ParsedItem struct {
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	LineNumber int     `json:"line_number"`

	// Name of an existing pantry item this line appears to restock,
	// empty when nothing matched
	PantryMatch string `json:"pantry_match,omitempty"`
}

// ScanReceiptResponse is returned after a receipt upload
type ScanReceiptResponse struct {
	StorageKey string       `json:"storage_key"`
	ImageURL   string       `json:"image_url,omitempty"`
	Receipt    *ParsedReceipt `json:"receipt"`
}
