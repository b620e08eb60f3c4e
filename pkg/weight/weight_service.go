package weight

import (
	"context"

	"diet-diary/domain"
	"diet-diary/pkg/user"
)

type (
	WeightService interface {
		GetWeight(ctx context.Context, req domain.WeightRequest) (domain.WeightResponse, error)
		CreateWeight(ctx context.Context, req domain.WeightCreateRequest) (domain.WeightResponse, error)
		DeleteWeight(ctx context.Context, req domain.IDRequest) error
		GetWeights(ctx context.Context, req domain.WeightsRequest) ([]domain.WeightListItem, error)
	}

	weightService struct {
		weightRepository WeightRepository
		userRepository   user.UserRepository
	}
)

func NewWeightService(weightRepository WeightRepository, userRepository user.UserRepository) WeightService {
	return &weightService{
		weightRepository: weightRepository,
		userRepository:   userRepository,
	}
}

func (s *weightService) GetWeight(ctx context.Context, req domain.WeightRequest) (domain.WeightResponse, error) {
	weight, err := s.weightRepository.GetWeight(ctx, WeightFilter{UserID: req.UserID, Date: req.Date})
	if err != nil {
		return domain.WeightResponse{}, err
	}
	return domain.WeightResponse{WeightID: weight.ID}, nil
}

func (s *weightService) CreateWeight(ctx context.Context, req domain.WeightCreateRequest) (domain.WeightResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, req.UserID); err != nil {
		return domain.WeightResponse{}, err
	}

	weight, _, err := s.weightRepository.GetOrCreateWeight(ctx, WeightFilter{UserID: req.UserID, Date: req.Date}, req.Value)
	if err != nil {
		return domain.WeightResponse{}, err
	}
	return domain.WeightResponse{WeightID: weight.ID}, nil
}

func (s *weightService) DeleteWeight(ctx context.Context, req domain.IDRequest) error {
	return s.weightRepository.DeleteWeights(ctx, req.ID)
}

func (s *weightService) GetWeights(ctx context.Context, req domain.WeightsRequest) ([]domain.WeightListItem, error) {
	weights, err := s.weightRepository.GetWeightsByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.WeightListItem, 0, len(weights))
	for _, w := range weights {
		items = append(items, domain.WeightListItem{
			Value: w.Value,
			Date:  domain.FormatDate(w.Date),
		})
	}
	return items, nil
}
