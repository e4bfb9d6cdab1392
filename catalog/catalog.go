package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
)

// Catalog is the canonical product list. ImportCatalog swaps the whole
// snapshot, so a re-import can never leak rows for item numbers that
// disappeared from the source.
type Catalog struct {
	products map[string]models.Product
}

func New() *Catalog {
	return &Catalog{products: map[string]models.Product{}}
}

func (c *Catalog) ImportCatalog(rows []models.Product) {
	fresh := make(map[string]models.Product, len(rows))
	for _, p := range rows {
		fresh[p.ItemNumber] = p
	}
	c.products = fresh
}

// ImportTable builds the snapshot from the vendor's full product export.
func (c *Catalog) ImportTable(t loader.Table, report *models.ValidationReport) {
	rows := make([]models.Product, 0, len(t.Rows))
	for i := range t.Rows {
		p := models.Product{
			ItemNumber:  strings.TrimSpace(t.Get(i, "Product Number")),
			Description: strings.TrimSpace(t.Get(i, "Product Description")),
			Brand:       strings.TrimSpace(t.Get(i, "Product Brand")),
			GroupName:   strings.TrimSpace(t.Get(i, "Group Name")),
			PackageSize: strings.TrimSpace(t.Get(i, "Product Package Size")),
		}
		if p.ItemNumber == "" {
			continue
		}
		if n := t.DecimalCell(i, "Line Number", report); !n.IsZero() {
			p.LineNumber = int(n.IntPart())
		}
		if t.HasColumn("Unit Cost") {
			p.UnitCost = t.DecimalCell(i, "Unit Cost", report)
		}
		p.UnitsPerPack = UnitsPerPack(p, report)
		rows = append(rows, p)
	}
	c.ImportCatalog(rows)
}

func (c *Catalog) Get(itemNumber string) (models.Product, error) {
	p, ok := c.products[itemNumber]
	if !ok {
		return models.Product{}, &models.UnknownProductError{ItemNumber: itemNumber}
	}
	return p, nil
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// ItemNumbers returns every known item number in sorted order.
func (c *Catalog) ItemNumbers() []string {
	out := make([]string, 0, len(c.products))
	for k := range c.products {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var (
	packCountPattern  = regexp.MustCompile(`^(\d+)\s*/\s*([\d.]+)\s*([A-Za-z]+)`)
	singleUnitPattern = regexp.MustCompile(`^(\d+)\s*(?:[A-Za-z]+)`)
)

// UnitsPerPack derives the base-unit count from a package size like
// "36/1 LB". A leading count with no slash ("12 EA") is a single unit.
// Anything else defaults to 1 with a warning.
func UnitsPerPack(p models.Product, report *models.ValidationReport) int {
	size := strings.TrimSpace(p.PackageSize)
	if m := packCountPattern.FindStringSubmatch(size); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n
		}
	}
	if singleUnitPattern.MatchString(size) {
		return 1
	}
	if report != nil {
		report.Addf(models.IssuePackingSize, "catalog", 0, "Product Package Size", size,
			"package size for %s does not describe a pack count, assuming 1", p.ItemNumber)
	}
	return 1
}
