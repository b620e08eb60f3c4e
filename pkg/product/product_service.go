package product

import (
	"context"

	"diet-diary/domain"
)

type (
	ProductService interface {
		GetProduct(ctx context.Context, req domain.IDRequest) (domain.ProductResponse, error)
		CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.ProductCreatedResponse, error)
		SearchProducts(ctx context.Context, req domain.ProductSearchRequest) ([]domain.ProductListItem, error)
	}

	productService struct {
		productRepository ProductRepository
	}
)

func NewProductService(productRepository ProductRepository) ProductService {
	return &productService{productRepository: productRepository}
}

func (s *productService) GetProduct(ctx context.Context, req domain.IDRequest) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, req.ID)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	return domain.ProductResponse{
		Name:     product.Name,
		Kcal:     product.Kcal,
		Carbs:    product.Carbs,
		Proteins: product.Proteins,
		Fat:      product.Fat,
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, req domain.ProductCreateRequest) (domain.ProductCreatedResponse, error) {
	product, _, err := s.productRepository.GetOrCreateProduct(ctx, ProductFilter{
		Name:     req.Name,
		Kcal:     req.Kcal,
		Carbs:    req.Carbs,
		Proteins: req.Proteins,
		Fat:      req.Fat,
	})
	if err != nil {
		return domain.ProductCreatedResponse{}, err
	}
	return domain.ProductCreatedResponse{ProductID: product.ID}, nil
}

func (s *productService) SearchProducts(ctx context.Context, req domain.ProductSearchRequest) ([]domain.ProductListItem, error) {
	products, err := s.productRepository.SearchProducts(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, domain.ProductListItem{ProductID: p.ID, Name: p.Name})
	}
	return items, nil
}
