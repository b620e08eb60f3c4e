package diary

import (
	"context"

	"diet-diary/domain"
	"diet-diary/pkg/user"
)

type (
	DiaryService interface {
		GetDiary(ctx context.Context, req domain.DiaryRequest) (domain.DiaryResponse, error)
		CreateDiary(ctx context.Context, req domain.DiaryRequest) (domain.DiaryResponse, error)
	}

	diaryService struct {
		diaryRepository DiaryRepository
		userRepository  user.UserRepository
	}
)

func NewDiaryService(diaryRepository DiaryRepository, userRepository user.UserRepository) DiaryService {
	return &diaryService{
		diaryRepository: diaryRepository,
		userRepository:  userRepository,
	}
}

func (s *diaryService) GetDiary(ctx context.Context, req domain.DiaryRequest) (domain.DiaryResponse, error) {
	diary, err := s.diaryRepository.GetDiary(ctx, DiaryFilter{UserID: req.UserID, Date: req.Date})
	if err != nil {
		return domain.DiaryResponse{}, err
	}
	return domain.DiaryResponse{DiaryID: diary.ID}, nil
}

// CreateDiary returns the existing diary for the user and date, creating it
// on first use.
func (s *diaryService) CreateDiary(ctx context.Context, req domain.DiaryRequest) (domain.DiaryResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, req.UserID); err != nil {
		return domain.DiaryResponse{}, err
	}

	diary, _, err := s.diaryRepository.GetOrCreateDiary(ctx, DiaryFilter{UserID: req.UserID, Date: req.Date})
	if err != nil {
		return domain.DiaryResponse{}, err
	}
	return domain.DiaryResponse{DiaryID: diary.ID}, nil
}
