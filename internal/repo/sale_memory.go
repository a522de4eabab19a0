package repo

import (
	"sort"
	"time"

	"github.com/estolo/spaza-backend/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
// It applies the same paired stock mutations as the SQL ledger so the handler
// and ledger tests exercise identical semantics.
type InMemorySaleRepository struct {
	sales    []models.Sale
	products *InMemoryProductRepository
}

func NewInMemorySaleRepository(products *InMemoryProductRepository) *InMemorySaleRepository {
	return &InMemorySaleRepository{products: products}
}

func (r *InMemorySaleRepository) Create(s models.Sale) (models.Sale, error) {
	for _, existing := range r.sales {
		if existing.ID == s.ID {
			return models.Sale{}, ErrDuplicateID
		}
	}
	r.sales = append(r.sales, s)
	r.products.adjustStock(s.ProductID, -s.Quantity)
	return s, nil
}

func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	out := make([]models.Sale, len(r.sales))
	copy(out, r.sales)
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *InMemorySaleRepository) Update(id string, s models.Sale) (models.Sale, error) {
	for i, existing := range r.sales {
		if existing.ID != id {
			continue
		}
		if s.ProductID != existing.ProductID {
			return models.Sale{}, ErrSaleProductImmutable
		}
		delta := s.Quantity - existing.Quantity
		if delta != 0 {
			product, err := r.products.GetByID(s.ProductID)
			if err != nil {
				return models.Sale{}, err
			}
			if delta > 0 && product.Stock < delta {
				return models.Sale{}, ErrInsufficientStock
			}
			r.products.adjustStock(s.ProductID, -delta)
		}
		s.ID = id
		r.sales[i] = s
		return s, nil
	}
	return models.Sale{}, ErrSaleNotFound
}

func (r *InMemorySaleRepository) Delete(id string) error {
	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			r.products.adjustStock(s.ProductID, s.Quantity)
			return nil
		}
	}
	return ErrSaleNotFound
}

func (r *InMemorySaleRepository) Summary(since time.Time) ([]models.SaleSummary, error) {
	cutoff := since.UTC().Format(time.RFC3339)

	quantities := map[string]int{}
	days := map[string]map[string]bool{}
	var order []string
	for _, s := range r.sales {
		if s.Date < cutoff {
			continue
		}
		if _, seen := quantities[s.ProductID]; !seen {
			order = append(order, s.ProductID)
			days[s.ProductID] = map[string]bool{}
		}
		quantities[s.ProductID] += s.Quantity
		day := s.Date
		if len(day) > 10 {
			day = day[:10]
		}
		days[s.ProductID][day] = true
	}

	var summaries []models.SaleSummary
	for _, productID := range order {
		summaries = append(summaries, models.SaleSummary{
			ProductID:     productID,
			TotalQuantity: quantities[productID],
			DaysWithSales: len(days[productID]),
		})
	}
	return summaries, nil
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = nil
}
