package activity

import (
	"context"

	"diet-diary/entities"
	"diet-diary/pkg/store"

	"gorm.io/gorm"
)

type (
	DisciplineRepository interface {
		GetDisciplineByID(ctx context.Context, id uint) (*entities.Discipline, error)
		GetOrCreateDiscipline(ctx context.Context, filter DisciplineFilter) (*entities.Discipline, bool, error)
		SearchDisciplines(ctx context.Context, name string) ([]*entities.Discipline, error)
	}

	DisciplineFilter struct {
		Name         string
		CaloriesBurn float64
	}

	disciplineRepository struct {
		db *gorm.DB
	}
)

func NewDisciplineRepository(db *gorm.DB) DisciplineRepository {
	return &disciplineRepository{db: db}
}

func (r *disciplineRepository) GetDisciplineByID(ctx context.Context, id uint) (*entities.Discipline, error) {
	return store.GetOne[entities.Discipline](ctx, r.db, store.Conditions{"id": id})
}

func (r *disciplineRepository) GetOrCreateDiscipline(ctx context.Context, filter DisciplineFilter) (*entities.Discipline, bool, error) {
	conds := store.Conditions{"name": filter.Name, "calories_burn": filter.CaloriesBurn}
	return store.GetOrCreate(ctx, r.db, conds, func() *entities.Discipline {
		return &entities.Discipline{Name: filter.Name, CaloriesBurn: filter.CaloriesBurn}
	})
}

func (r *disciplineRepository) SearchDisciplines(ctx context.Context, name string) ([]*entities.Discipline, error) {
	var disciplines []*entities.Discipline
	if err := r.db.WithContext(ctx).
		Where(store.Contains(r.db, "name"), store.ContainsPattern(name)).
		Order("id").
		Find(&disciplines).Error; err != nil {
		return nil, err
	}
	return disciplines, nil
}
