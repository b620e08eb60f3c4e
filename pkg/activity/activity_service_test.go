package activity_test

import (
	"context"
	"testing"

	"diet-diary/domain"
	"diet-diary/entities"
	"diet-diary/internal/testutil"
	"diet-diary/pkg/activity"
	"diet-diary/pkg/diary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func setup(t *testing.T) (activity.ActivityService, *gorm.DB, *entities.Diary, *entities.Discipline) {
	t.Helper()
	db := testutil.NewTestDB(t)

	u := testutil.NewUser(t, db, "jkowalski")
	d := &entities.Diary{UserID: u.ID, Date: testutil.Date(t, "2017-12-13")}
	discipline := &entities.Discipline{Name: "Bieganie", CaloriesBurn: 600}
	testutil.Create(t, db, d, discipline)

	svc := activity.NewActivityService(
		activity.NewActivityRepository(db),
		activity.NewDisciplineRepository(db),
		diary.NewDiaryRepository(db),
	)
	return svc, db, d, discipline
}

func TestActivityService(t *testing.T) {
	svc, db, d, discipline := setup(t)
	ctx := context.Background()

	req := domain.ActivityCreateRequest{DiaryID: d.ID, DisciplineID: discipline.ID, Time: datatypes.NewTime(0, 20, 0, 0)}
	require.NoError(t, svc.CreateActivity(ctx, req))
	require.NoError(t, svc.CreateActivity(ctx, req))
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.Activity{}))

	req.Time = datatypes.NewTime(1, 5, 30, 250000000)
	require.NoError(t, svc.CreateActivity(ctx, req))

	list, err := svc.GetActivities(ctx, domain.ActivitiesRequest{DiaryID: d.ID})
	require.NoError(t, err)
	assert.Equal(t, []domain.ActivityResponse{
		{Name: "Bieganie", CaloriesBurn: 600, Time: "00:20:00"},
		{Name: "Bieganie", CaloriesBurn: 600, Time: "01:05:30.250000"},
	}, list)

	var first entities.Activity
	require.NoError(t, db.Order("id").First(&first).Error)

	got, err := svc.GetActivity(ctx, domain.IDRequest{ID: first.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityResponse{Name: "Bieganie", CaloriesBurn: 600, Time: "00:20:00"}, got)

	require.NoError(t, svc.DeleteActivity(ctx, domain.IDRequest{ID: first.ID}))
	_, err = svc.GetActivity(ctx, domain.IDRequest{ID: first.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityService_MissingParents(t *testing.T) {
	svc, db, d, discipline := setup(t)
	ctx := context.Background()

	err := svc.CreateActivity(ctx, domain.ActivityCreateRequest{DiaryID: d.ID + 10, DisciplineID: discipline.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.CreateActivity(ctx, domain.ActivityCreateRequest{DiaryID: d.ID, DisciplineID: discipline.ID + 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Zero(t, testutil.Count(t, db, &entities.Activity{}))
}

func TestActivityService_EmptyDiary(t *testing.T) {
	svc, _, d, _ := setup(t)

	list, err := svc.GetActivities(context.Background(), domain.ActivitiesRequest{DiaryID: d.ID})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDisciplineService(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := activity.NewDisciplineService(activity.NewDisciplineRepository(db))

	run, created, err := svc.CreateDiscipline(ctx, domain.DisciplineCreateRequest{Name: "Bieganie", CaloriesBurn: 600})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = svc.CreateDiscipline(ctx, domain.DisciplineCreateRequest{Name: "Bieganie", CaloriesBurn: 600})
	require.NoError(t, err)
	assert.False(t, created)

	bike, _, err := svc.CreateDiscipline(ctx, domain.DisciplineCreateRequest{Name: "Rower", CaloriesBurn: 450})
	require.NoError(t, err)

	got, err := svc.GetDiscipline(ctx, domain.IDRequest{ID: run.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.DisciplineResponse{Name: "Bieganie", CaloriesBurn: 600}, got)

	_, err = svc.GetDiscipline(ctx, domain.IDRequest{ID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	items, err := svc.SearchDisciplines(ctx, domain.DisciplineSearchRequest{Name: "e"})
	require.NoError(t, err)
	assert.Equal(t, []domain.DisciplineListItem{run, bike}, items)

	items, err = svc.SearchDisciplines(ctx, domain.DisciplineSearchRequest{Name: "rower"})
	require.NoError(t, err)
	assert.Equal(t, []domain.DisciplineListItem{bike}, items)

	items, err = svc.SearchDisciplines(ctx, domain.DisciplineSearchRequest{Name: "pływanie"})
	require.NoError(t, err)
	assert.Empty(t, items)
}
