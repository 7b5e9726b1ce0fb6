package models

import "github.com/shopspring/decimal"

// ProductImage is one entry of an article's image gallery.
type ProductImage struct {
	Path string `json:"path"`
	Sort int    `json:"sort"`
}

// ProductSummary is the list-view projection of an article.
type ProductSummary struct {
	ID           int             `json:"id"`
	Nummer       string          `json:"nummer"`
	Bezeichnung  string          `json:"bezeichnung"`
	BrandID      int             `json:"brand_id"`
	BrandName    *string         `json:"brand_name"`
	CategoryID   *int            `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	NettoEUR     decimal.Decimal `json:"netto_eur"`
	EAN          *string         `json:"ean"`
	Active       bool            `json:"active"`
}

// ProductDetail is the full projection returned by the single-article lookup.
// Everything beyond the summary fields is optional in the store and stays
// null on the wire when absent.
type ProductDetail struct {
	ProductSummary
	BruttoEUR       *decimal.Decimal `json:"brutto_eur"`
	HEKEUR          *decimal.Decimal `json:"hek_eur"`
	NettoCHF        *decimal.Decimal `json:"netto_chf"`
	NettoUSD        *decimal.Decimal `json:"netto_usd"`
	GewichtGramm    *decimal.Decimal `json:"gewicht_gramm"`
	Zolltarifnummer *string          `json:"zolltarifnummer"`
	Herkunftsland   *string          `json:"herkunftsland"`
	Hauptbild       *string          `json:"hauptbild"`
	Images          []ProductImage   `json:"images"`
	ArtikeltextKurz *string          `json:"artikeltext_kurz"`
	ArtikeltextLang *string          `json:"artikeltext_lang"`
	Modelljahr      *int             `json:"modelljahr"`
	ASIN            *string          `json:"asin"`
	CreatedAt       *string          `json:"created_at"`
}

// ProductList is one page of a filtered product listing.
type ProductList struct {
	Items   []ProductSummary `json:"items"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	HasMore bool             `json:"has_more"`
}
