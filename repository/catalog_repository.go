package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/apopovic77/gsg-api/models"
)

// stmt is the statement builder for SQL Server (@p1, @p2, ... placeholders).
var stmt = sq.StatementBuilder.PlaceholderFormat(sq.AtP)

// CatalogRepository defines read access to the product catalog.
type CatalogRepository interface {
	CountProducts(ctx context.Context, filter ProductFilter) (int, error)
	FindProducts(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.ProductSummary, error)
	FindProductByNummer(ctx context.Context, nummer string) (*models.ProductDetail, error)
	FindProductImages(ctx context.Context, articleID int) ([]models.ProductImage, error)
	ListBrands(ctx context.Context) ([]models.Brand, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	StatsCounts(ctx context.Context) (models.StatsCounts, error)
	Ping(ctx context.Context) error
}

// SQLCatalogRepository implements CatalogRepository against SQL Server.
type SQLCatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLCatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &SQLCatalogRepository{db: db}
}

var summaryColumns = []string{
	"a.lngA_Key AS id",
	"a.strA_Nummer AS nummer",
	"a.strA_Bezeichnung AS bezeichnung",
	"a.lngA_Marke_FKey AS brand_id",
	"m.strMk_Marke AS brand_name",
	"a.lngA_AGruppe_FKey AS category_id",
	"g.strAGruppe_Name AS category_name",
	"a.decA_Netto AS netto_eur",
	"a.strA_EAN AS ean",
	"CASE WHEN a.boolA_NichtMehrLieferbar = 0 THEN 1 ELSE 0 END AS active",
}

// summaryRow is the typed shape of one list-query row; nullability is
// resolved here, once, instead of in the service layer.
type summaryRow struct {
	id           int
	nummer       string
	bezeichnung  string
	brandID      sql.NullInt64
	brandName    sql.NullString
	categoryID   sql.NullInt64
	categoryName sql.NullString
	nettoEUR     decimal.NullDecimal
	ean          sql.NullString
	active       int
}

func (r *summaryRow) toModel() models.ProductSummary {
	return models.ProductSummary{
		ID:           r.id,
		Nummer:       r.nummer,
		Bezeichnung:  r.bezeichnung,
		BrandID:      int(r.brandID.Int64),
		BrandName:    nullStr(r.brandName),
		CategoryID:   nullInt(r.categoryID),
		CategoryName: nullStr(r.categoryName),
		NettoEUR:     r.nettoEUR.Decimal, // absent net price defaults to zero
		EAN:          nullStr(r.ean),
		Active:       r.active == 1,
	}
}

func (r *SQLCatalogRepository) CountProducts(ctx context.Context, filter ProductFilter) (int, error) {
	query, args, err := stmt.
		Select("COUNT(*)").
		From("dbo.tblArtikel a").
		Where(filter.Conditions()).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("counting products: %w", err)
	}
	return total, nil
}

func (r *SQLCatalogRepository) FindProducts(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.ProductSummary, error) {
	query, args, err := stmt.
		Select(summaryColumns...).
		From("dbo.tblArtikel a").
		LeftJoin("dbo.listMarken m ON a.lngA_Marke_FKey = m.lngMk_Key").
		LeftJoin("dbo.listArtikelgruppen g ON a.lngA_AGruppe_FKey = g.lngAGruppe_Key").
		Where(filter.Conditions()).
		OrderBy("a.strA_Nummer").
		Suffix("OFFSET ? ROWS FETCH NEXT ? ROWS ONLY", offset, limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building product query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	items := []models.ProductSummary{}
	for rows.Next() {
		var row summaryRow
		if err := rows.Scan(
			&row.id, &row.nummer, &row.bezeichnung,
			&row.brandID, &row.brandName,
			&row.categoryID, &row.categoryName,
			&row.nettoEUR, &row.ean, &row.active,
		); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		items = append(items, row.toModel())
	}
	return items, rows.Err()
}

// detailRow is the typed shape of the single-article join across article,
// brand, category, pricing, extended info and country tables.
type detailRow struct {
	summaryRow
	bruttoEUR       decimal.NullDecimal
	hekEUR          decimal.NullDecimal
	nettoCHF        decimal.NullDecimal
	nettoUSD        decimal.NullDecimal
	gewichtGramm    decimal.NullDecimal
	zolltarifnummer sql.NullString
	herkunftsland   sql.NullString
	hauptbild       sql.NullString
	artikeltextKurz sql.NullString
	artikeltextLang sql.NullString
	modelljahr      sql.NullInt64
	asin            sql.NullString
	createdAt       sql.NullTime
}

func (r *detailRow) toModel() *models.ProductDetail {
	d := &models.ProductDetail{
		ProductSummary:  r.summaryRow.toModel(),
		BruttoEUR:       nullDec(r.bruttoEUR),
		HEKEUR:          nullDec(r.hekEUR),
		NettoCHF:        nullDec(r.nettoCHF),
		NettoUSD:        nullDec(r.nettoUSD),
		GewichtGramm:    nullDec(r.gewichtGramm),
		Zolltarifnummer: nullStr(r.zolltarifnummer),
		Herkunftsland:   nullStr(r.herkunftsland),
		Hauptbild:       nullStr(r.hauptbild),
		Images:          []models.ProductImage{},
		ArtikeltextKurz: nullStr(r.artikeltextKurz),
		ArtikeltextLang: nullStr(r.artikeltextLang),
		Modelljahr:      nullInt(r.modelljahr),
		ASIN:            nullStr(r.asin),
	}
	if r.createdAt.Valid {
		created := r.createdAt.Time.Format("2006-01-02 15:04:05")
		d.CreatedAt = &created
	}
	return d
}

func (r *SQLCatalogRepository) FindProductByNummer(ctx context.Context, nummer string) (*models.ProductDetail, error) {
	query, args, err := stmt.
		Select(
			"a.lngA_Key AS id",
			"a.strA_Nummer AS nummer",
			"a.strA_Bezeichnung AS bezeichnung",
			"a.lngA_Marke_FKey AS brand_id",
			"m.strMk_Marke AS brand_name",
			"a.lngA_AGruppe_FKey AS category_id",
			"g.strAGruppe_Name AS category_name",
			"a.decA_Netto AS netto_eur",
			"a.strA_EAN AS ean",
			"CASE WHEN a.boolA_NichtMehrLieferbar = 0 THEN 1 ELSE 0 END AS active",
			"a.decA_Brutto AS brutto_eur",
			"a.decA_HEK AS hek_eur",
			"p.decA_Netto_SFR AS netto_chf",
			"p.decA_Netto_USD AS netto_usd",
			"a.decA_GewichtInGramm AS gewicht_gramm",
			"a.strA_Zolltarifnummer AS zolltarifnummer",
			"l.strLand_Name AS herkunftsland",
			"a.strA_Bildpfad AS hauptbild",
			"a.strA_Artikeltext_kurz AS artikeltext_kurz",
			"a.strA_Artikeltext_lang AS artikeltext_lang",
			"z.lngAZI_Modelljahr AS modelljahr",
			"z.strAZI_ASIN AS asin",
			"a.datA_Anlagedatum AS created_at",
		).
		From("dbo.tblArtikel a").
		LeftJoin("dbo.listMarken m ON a.lngA_Marke_FKey = m.lngMk_Key").
		LeftJoin("dbo.listArtikelgruppen g ON a.lngA_AGruppe_FKey = g.lngAGruppe_Key").
		LeftJoin("dbo.tblArtikelPreise p ON a.lngA_Key = p.lngAPR_A_FKey").
		LeftJoin("dbo.tblArtikelZusatzInfo z ON a.lngA_Key = z.lngAZI_A_FKey").
		LeftJoin("dbo.listLaender l ON a.lngA_Herkunftsland_FKey = l.lngLand_Key").
		Where(sq.Eq{"a.strA_Nummer": nummer}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building detail query: %w", err)
	}

	var row detailRow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&row.id, &row.nummer, &row.bezeichnung,
		&row.brandID, &row.brandName,
		&row.categoryID, &row.categoryName,
		&row.nettoEUR, &row.ean, &row.active,
		&row.bruttoEUR, &row.hekEUR, &row.nettoCHF, &row.nettoUSD,
		&row.gewichtGramm, &row.zolltarifnummer, &row.herkunftsland,
		&row.hauptbild, &row.artikeltextKurz, &row.artikeltextLang,
		&row.modelljahr, &row.asin, &row.createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("querying product %s: %w", nummer, err)
	}
	return row.toModel(), nil
}

func (r *SQLCatalogRepository) FindProductImages(ctx context.Context, articleID int) ([]models.ProductImage, error) {
	// Ties on the sort value keep the order the store returns them in.
	query, args, err := stmt.
		Select("strAB_Bildpfad AS path", "lngAB_Sortierung AS sort").
		From("dbo.tblArtikelBildpfade").
		Where(sq.Eq{"lngAB_A_FKey": articleID}).
		OrderBy("lngAB_Sortierung").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building image query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying images for article %d: %w", articleID, err)
	}
	defer rows.Close()

	images := []models.ProductImage{}
	for rows.Next() {
		var path string
		var sort sql.NullInt64
		if err := rows.Scan(&path, &sort); err != nil {
			return nil, fmt.Errorf("scanning image row: %w", err)
		}
		img := models.ProductImage{Path: path, Sort: 1}
		if sort.Valid && sort.Int64 != 0 {
			img.Sort = int(sort.Int64)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *SQLCatalogRepository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	// Only currently available articles count; brands without any are
	// dropped entirely.
	query, _, err := stmt.
		Select("m.lngMk_Key", "m.strMk_Marke", "COUNT(a.lngA_Key) AS article_count").
		From("dbo.listMarken m").
		LeftJoin("dbo.tblArtikel a ON m.lngMk_Key = a.lngA_Marke_FKey AND a.boolA_NichtMehrLieferbar = 0").
		GroupBy("m.lngMk_Key", "m.strMk_Marke").
		Having("COUNT(a.lngA_Key) > 0").
		OrderBy("COUNT(a.lngA_Key) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building brand query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	defer rows.Close()

	brands := []models.Brand{}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.ArticleCount); err != nil {
			return nil, fmt.Errorf("scanning brand row: %w", err)
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *SQLCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	query, _, err := stmt.
		Select("lngAGruppe_Key", "strAGruppe_Name", "strAGruppe_Name_GB").
		From("dbo.listArtikelgruppen").
		OrderBy("strAGruppe_Name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building category query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		var nameEN sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &nameEN); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		c.NameEN = nullStr(nameEN)
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *SQLCatalogRepository) StatsCounts(ctx context.Context) (models.StatsCounts, error) {
	var counts models.StatsCounts
	scalars := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM dbo.tblArtikel", &counts.TotalArticles},
		{"SELECT COUNT(*) FROM dbo.tblArtikel WHERE boolA_NichtMehrLieferbar = 0", &counts.ActiveArticles},
		{"SELECT COUNT(*) FROM dbo.listMarken", &counts.TotalBrands},
		{"SELECT COUNT(*) FROM tbl.Trans_tblKunden", &counts.TotalCustomers},
	}
	for _, s := range scalars {
		if err := r.db.QueryRowContext(ctx, s.query).Scan(s.dest); err != nil {
			return models.StatsCounts{}, fmt.Errorf("counting (%s): %w", s.query, err)
		}
	}
	return counts, nil
}

func (r *SQLCatalogRepository) Ping(ctx context.Context) error {
	var one int
	return r.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullDec(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}
