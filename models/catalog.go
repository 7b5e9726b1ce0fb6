package models

// Brand is a manufacturer/label (listMarken). ArticleCount is the number of
// currently available articles referencing the brand.
type Brand struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ArticleCount int    `json:"article_count"`
}

// Category is an article group (listArtikelgruppen).
type Category struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	NameEN *string `json:"name_en"`
}

// BrandCount is a (brand name, active article count) pair used in Stats.
type BrandCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatsCounts holds the four scalar counts of the stats endpoint.
type StatsCounts struct {
	TotalArticles  int
	ActiveArticles int
	TotalBrands    int
	TotalCustomers int
}

// Stats is the catalog-wide overview.
type Stats struct {
	TotalArticles  int          `json:"total_articles"`
	ActiveArticles int          `json:"active_articles"`
	TotalBrands    int          `json:"total_brands"`
	TotalCustomers int          `json:"total_customers"`
	Brands         []BrandCount `json:"brands"`
}
