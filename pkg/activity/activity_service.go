package activity

import (
	"context"

	"diet-diary/domain"
	"diet-diary/entities"
	"diet-diary/pkg/diary"
)

type (
	ActivityService interface {
		GetActivity(ctx context.Context, req domain.IDRequest) (domain.ActivityResponse, error)
		CreateActivity(ctx context.Context, req domain.ActivityCreateRequest) error
		DeleteActivity(ctx context.Context, req domain.IDRequest) error
		GetActivities(ctx context.Context, req domain.ActivitiesRequest) ([]domain.ActivityResponse, error)
	}

	activityService struct {
		activityRepository   ActivityRepository
		disciplineRepository DisciplineRepository
		diaryRepository      diary.DiaryRepository
	}
)

func NewActivityService(
	activityRepository ActivityRepository,
	disciplineRepository DisciplineRepository,
	diaryRepository diary.DiaryRepository,
) ActivityService {
	return &activityService{
		activityRepository:   activityRepository,
		disciplineRepository: disciplineRepository,
		diaryRepository:      diaryRepository,
	}
}

func (s *activityService) GetActivity(ctx context.Context, req domain.IDRequest) (domain.ActivityResponse, error) {
	activity, err := s.activityRepository.GetActivityByID(ctx, req.ID)
	if err != nil {
		return domain.ActivityResponse{}, err
	}
	return toActivityResponse(activity), nil
}

func (s *activityService) CreateActivity(ctx context.Context, req domain.ActivityCreateRequest) error {
	if _, err := s.diaryRepository.GetDiaryByID(ctx, req.DiaryID); err != nil {
		return err
	}
	if _, err := s.disciplineRepository.GetDisciplineByID(ctx, req.DisciplineID); err != nil {
		return err
	}

	_, _, err := s.activityRepository.GetOrCreateActivity(ctx, ActivityFilter{
		DiaryID:      req.DiaryID,
		DisciplineID: req.DisciplineID,
		Time:         req.Time,
	})
	return err
}

func (s *activityService) DeleteActivity(ctx context.Context, req domain.IDRequest) error {
	return s.activityRepository.DeleteActivities(ctx, req.ID)
}

func (s *activityService) GetActivities(ctx context.Context, req domain.ActivitiesRequest) ([]domain.ActivityResponse, error) {
	activities, err := s.activityRepository.GetActivitiesByDiary(ctx, req.DiaryID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, toActivityResponse(a))
	}
	return items, nil
}

func toActivityResponse(activity *entities.Activity) domain.ActivityResponse {
	res := domain.ActivityResponse{Time: domain.FormatTime(activity.Time)}
	if activity.Discipline != nil {
		res.Name = activity.Discipline.Name
		res.CaloriesBurn = activity.Discipline.CaloriesBurn
	}
	return res
}
