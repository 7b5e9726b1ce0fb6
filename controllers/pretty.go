package controllers

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/apopovic77/gsg-api/models"
)

// Compact text renderings for AI/MCP clients. Layout and wording are frozen;
// consumers parse these lines.

var countPrinter = message.NewPrinter(language.English)

// grouped renders a count with thousands separators (1,234,567).
func grouped(n int) string {
	return countPrinter.Sprintf("%d", n)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func orNA(s *string) string {
	if s == nil {
		return "N/A"
	}
	return *s
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatProductPretty renders one product detail as compact text.
func FormatProductPretty(p *models.ProductDetail) string {
	lines := []string{
		fmt.Sprintf("%s | %s", p.Nummer, p.Bezeichnung),
		fmt.Sprintf("Marke: %s | Kat: %s", orNA(p.BrandName), orNA(p.CategoryName)),
		fmt.Sprintf("Preis: €%s netto", p.NettoEUR.StringFixed(2)),
	}

	if p.BruttoEUR != nil {
		lines[len(lines)-1] += fmt.Sprintf(" / €%s brutto", p.BruttoEUR.StringFixed(2))
	}

	if p.EAN != nil {
		lines = append(lines, "EAN: "+*p.EAN)
	}

	if len(p.Images) > 0 {
		paths := make([]string, 0, 3)
		for _, img := range p.Images {
			paths = append(paths, img.Path)
			if len(paths) == 3 {
				break
			}
		}
		lines = append(lines, "Bilder: "+strings.Join(paths, ", "))
	}

	if p.ArtikeltextKurz != nil {
		lines = append(lines, "Info: "+truncateRunes(*p.ArtikeltextKurz, 100))
	}

	status := "lieferbar"
	if !p.Active {
		status = "nicht lieferbar"
	}
	lines = append(lines, "Status: "+status)

	return strings.Join(lines, "\n")
}

// FormatListPretty renders one page of a product listing as compact text.
func FormatListPretty(list *models.ProductList) string {
	lines := []string{
		fmt.Sprintf("Produkte: %d gefunden (zeige %d)", list.Total, len(list.Items)),
		strings.Repeat("-", 50),
	}

	for _, p := range list.Items {
		status := "✓"
		if !p.Active {
			status = "✗"
		}
		lines = append(lines, fmt.Sprintf("%s %s | %s | %s | €%s",
			status, p.Nummer, truncateRunes(p.Bezeichnung, 40),
			orEmpty(p.BrandName), p.NettoEUR.StringFixed(2)))
	}

	if list.HasMore {
		remaining := list.Total - list.Offset - len(list.Items)
		lines = append(lines, fmt.Sprintf("... und %d weitere", remaining))
	}

	return strings.Join(lines, "\n")
}

// FormatBrandsPretty renders the brand list as compact text.
func FormatBrandsPretty(brands []models.Brand) string {
	lines := []string{"Marken:", strings.Repeat("-", 30)}
	for _, b := range brands {
		lines = append(lines, fmt.Sprintf("  [%2d] %s: %d Artikel", b.ID, b.Name, b.ArticleCount))
	}
	return strings.Join(lines, "\n")
}

// FormatCategoriesPretty renders the category list as compact text.
func FormatCategoriesPretty(categories []models.Category) string {
	lines := []string{"Kategorien:", strings.Repeat("-", 30)}
	for _, c := range categories {
		nameEN := ""
		if c.NameEN != nil {
			nameEN = fmt.Sprintf(" (%s)", *c.NameEN)
		}
		lines = append(lines, fmt.Sprintf("  [%3d] %s%s", c.ID, c.Name, nameEN))
	}
	return strings.Join(lines, "\n")
}

// FormatStatsPretty renders the catalog overview as compact text.
func FormatStatsPretty(stats *models.Stats) string {
	lines := []string{
		"GSG Datenbank Statistiken",
		strings.Repeat("=", 40),
		fmt.Sprintf("Artikel gesamt:  %s", grouped(stats.TotalArticles)),
		fmt.Sprintf("Artikel aktiv:   %s", grouped(stats.ActiveArticles)),
		fmt.Sprintf("Marken:          %d", stats.TotalBrands),
		fmt.Sprintf("Kunden:          %s", grouped(stats.TotalCustomers)),
		"",
		"Top Marken:",
	}
	for _, b := range stats.Brands {
		pct := 0.0
		if stats.ActiveArticles > 0 {
			pct = float64(b.Count) / float64(stats.ActiveArticles) * 100
		}
		lines = append(lines, fmt.Sprintf("  %s: %s (%.1f%%)", b.Name, grouped(b.Count), pct))
	}
	return strings.Join(lines, "\n")
}
