package product

import (
	"context"

	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetProductByID(ctx context.Context, id uint) (*entities.Product, error)
		GetOrCreateProduct(ctx context.Context, filter ProductFilter) (*entities.Product, bool, error)
		SearchProducts(ctx context.Context, name string) ([]*entities.Product, error)
	}

	// ProductFilter identifies a product by its full content. Products with
	// equal names but different facts are distinct rows.
	ProductFilter struct {
		Name     string
		Kcal     float64
		Carbs    float64
		Proteins float64
		Fat      float64
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (f ProductFilter) conditions() store.Conditions {
	return store.Conditions{
		"name":     f.Name,
		"kcal":     f.Kcal,
		"carbs":    f.Carbs,
		"proteins": f.Proteins,
		"fat":      f.Fat,
	}
}

func (r *productRepository) GetProductByID(ctx context.Context, id uint) (*entities.Product, error) {
	return store.GetOne[entities.Product](ctx, r.db, store.Conditions{"id": id})
}

func (r *productRepository) GetOrCreateProduct(ctx context.Context, filter ProductFilter) (*entities.Product, bool, error) {
	return store.GetOrCreate(ctx, r.db, filter.conditions(), func() *entities.Product {
		return &entities.Product{
			Name:     filter.Name,
			Kcal:     filter.Kcal,
			Carbs:    filter.Carbs,
			Proteins: filter.Proteins,
			Fat:      filter.Fat,
		}
	})
}

// SearchProducts returns products whose name contains name, ignoring ASCII
// case.
func (r *productRepository) SearchProducts(ctx context.Context, name string) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Where(store.Contains(r.db, "name"), store.ContainsPattern(name)).
		Order("id").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
