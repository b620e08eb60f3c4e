package activity

import (
	"context"

	"diet-diary/domain"
)

type (
	DisciplineService interface {
		GetDiscipline(ctx context.Context, req domain.IDRequest) (domain.DisciplineResponse, error)
		SearchDisciplines(ctx context.Context, req domain.DisciplineSearchRequest) ([]domain.DisciplineListItem, error)
		CreateDiscipline(ctx context.Context, req domain.DisciplineCreateRequest) (domain.DisciplineListItem, bool, error)
	}

	disciplineService struct {
		disciplineRepository DisciplineRepository
	}
)

func NewDisciplineService(disciplineRepository DisciplineRepository) DisciplineService {
	return &disciplineService{disciplineRepository: disciplineRepository}
}

func (s *disciplineService) GetDiscipline(ctx context.Context, req domain.IDRequest) (domain.DisciplineResponse, error) {
	discipline, err := s.disciplineRepository.GetDisciplineByID(ctx, req.ID)
	if err != nil {
		return domain.DisciplineResponse{}, err
	}
	return domain.DisciplineResponse{
		Name:         discipline.Name,
		CaloriesBurn: discipline.CaloriesBurn,
	}, nil
}

func (s *disciplineService) SearchDisciplines(ctx context.Context, req domain.DisciplineSearchRequest) ([]domain.DisciplineListItem, error) {
	disciplines, err := s.disciplineRepository.SearchDisciplines(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	items := make([]domain.DisciplineListItem, 0, len(disciplines))
	for _, d := range disciplines {
		items = append(items, domain.DisciplineListItem{
			ID:           d.ID,
			Name:         d.Name,
			CaloriesBurn: d.CaloriesBurn,
		})
	}
	return items, nil
}

// CreateDiscipline is get-or-create on the full content; the boolean reports
// whether a row was inserted.
func (s *disciplineService) CreateDiscipline(ctx context.Context, req domain.DisciplineCreateRequest) (domain.DisciplineListItem, bool, error) {
	discipline, created, err := s.disciplineRepository.GetOrCreateDiscipline(ctx, DisciplineFilter{
		Name:         req.Name,
		CaloriesBurn: req.CaloriesBurn,
	})
	if err != nil {
		return domain.DisciplineListItem{}, false, err
	}
	return domain.DisciplineListItem{
		ID:           discipline.ID,
		Name:         discipline.Name,
		CaloriesBurn: discipline.CaloriesBurn,
	}, created, nil
}
