package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"diet-diary/domain"
	"diet-diary/entities"
	"diet-diary/internal/testutil"
	"diet-diary/internal/testutil/apptest"
	"diet-diary/internal/utils/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func id(n uint) string { return strconv.FormatUint(uint64(n), 10) }

func createUser(t *testing.T, app *apptest.App, username string) uint {
	t.Helper()
	status, body := app.Do(t, http.MethodPost, "/user", url.Values{
		"username": {username},
		"password": {"tajne"},
		"email":    {username + "@example.com"},
	})
	require.Equal(t, http.StatusOK, status, body)
	return apptest.ID(t, body, "user_id")
}

func createDiary(t *testing.T, app *apptest.App, userID uint, date string) uint {
	t.Helper()
	status, body := app.Do(t, http.MethodPost, "/diary", url.Values{"user_id": {id(userID)}, "date": {date}})
	require.Equal(t, http.StatusOK, status, body)
	return apptest.ID(t, body, "diary_id")
}

func create(t *testing.T, app *apptest.App, path, key string, values url.Values) uint {
	t.Helper()
	status, body := app.Do(t, http.MethodPost, path, values)
	require.Equal(t, http.StatusOK, status, body)
	return apptest.ID(t, body, key)
}

func TestPing(t *testing.T) {
	app := apptest.New(t)

	status, body := app.Do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"pong"}`, body)
}

func TestUnknownRoute(t *testing.T) {
	app := apptest.New(t)

	status, body := app.Do(t, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{}`, body)
}

func TestSuccessMessagesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := apptest.NewWithLogger(t, zap.New(core))
	userID := createUser(t, app, "jkowalski")
	createDiary(t, app, userID, "2017-12-13")

	assert.Equal(t, 1, logs.FilterMessage(domain.MessageSuccessCreateUser).Len())
	assert.Equal(t, 1, logs.FilterMessage(domain.MessageSuccessCreateDiary).Len())

	app.Do(t, http.MethodGet, "/diary", url.Values{"user_id": {id(userID)}, "date": {"2018-01-01"}})
	assert.Equal(t, 1, logs.FilterMessage(domain.MessageFailedGetDiary).Len())
}

func TestDiary_PostIsIdempotent(t *testing.T) {
	app := apptest.New(t)
	userID := createUser(t, app, "jkowalski")

	first := createDiary(t, app, userID, "2017-12-13")
	second := createDiary(t, app, userID, "2017-12-13")
	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), testutil.Count(t, app.DB, &entities.Diary{}))

	status, body := app.Do(t, http.MethodGet, "/diary", url.Values{"user_id": {id(userID)}, "date": {"2017-12-13"}})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{"diary_id":%d}`, first), body)
}

func TestDiary_Errors(t *testing.T) {
	app := apptest.New(t)
	userID := createUser(t, app, "jkowalski")

	t.Run("malformed date", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPost, "/diary", url.Values{"user_id": {id(userID)}, "date": {"kanapka"}})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, fmt.Sprintf(`{"date":[%q]}`, form.MsgInvalidDate), body)
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		status, body := app.Do(t, http.MethodGet, "/diary", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, fmt.Sprintf(`{"user_id":[%q],"date":[%q]}`, form.MsgRequired, form.MsgRequired), body)
	})

	t.Run("not found", func(t *testing.T) {
		status, body := app.Do(t, http.MethodGet, "/diary", url.Values{"user_id": {id(userID)}, "date": {"2017-12-13"}})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{}`, body)
	})

	t.Run("unknown user", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPost, "/diary", url.Values{"user_id": {id(userID + 1)}, "date": {"2017-12-13"}})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{}`, body)
	})
}

func TestMeal_Lifecycle(t *testing.T) {
	app := apptest.New(t)
	diaryID := createDiary(t, app, createUser(t, app, "jkowalski"), "2017-12-13")

	mealTypeID := create(t, app, "/meal-type", "meal_type_id", url.Values{"diary_id": {id(diaryID)}, "name": {"Śniadanie"}})
	mealID := create(t, app, "/meal", "meal_id", url.Values{"meal_type_id": {id(mealTypeID)}})
	kaszanka := create(t, app, "/product", "product_id", url.Values{
		"name": {"Kaszanka"}, "kcal": {"300"}, "carbs": {"10"}, "proteins": {"12"}, "fat": {"25"},
	})
	chleb := create(t, app, "/product", "product_id", url.Values{
		"name": {"Chleb"}, "kcal": {"250"}, "carbs": {"50"}, "proteins": {"8"}, "fat": {"3"},
	})
	first := create(t, app, "/ingredient", "ingredient_id", url.Values{
		"product_id": {id(kaszanka)}, "meal_id": {id(mealID)}, "amount": {"150"},
	})
	second := create(t, app, "/ingredient", "ingredient_id", url.Values{
		"product_id": {id(chleb)}, "meal_id": {id(mealID)}, "amount": {"50.5"},
	})

	status, body := app.Do(t, http.MethodGet, "/meal", url.Values{"id": {id(mealID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{
		"total_kcal": null, "total_carbs": null, "total_proteins": null, "total_fat": null,
		"ingredients": [
			{"ingredient_id": %d, "name": "Kaszanka", "amount": 150},
			{"ingredient_id": %d, "name": "Chleb", "amount": 50.5}
		]
	}`, first, second), body)

	status, body = app.Do(t, http.MethodPut, "/meal", url.Values{"id": {id(mealID)}, "total_kcal": {"575"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{"id":%d}`, mealID), body)

	status, body = app.Do(t, http.MethodGet, "/meal-type", url.Values{"id": {id(mealTypeID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{
		"name": "Śniadanie",
		"total_kcal": 575, "total_carbs": null, "total_proteins": null, "total_fat": null,
		"ingredients": [
			{"ingredient_id": %d, "name": "Kaszanka", "amount": 150},
			{"ingredient_id": %d, "name": "Chleb", "amount": 50.5}
		]
	}`, first, second), body)

	status, body = app.Do(t, http.MethodDelete, "/meal", url.Values{"id": {id(mealID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)
	assert.Zero(t, testutil.Count(t, app.DB, &entities.Ingredient{}))

	status, body = app.Do(t, http.MethodGet, "/meal", url.Values{"id": {id(mealID)}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{}`, body)
}

func TestMeal_UpdateErrors(t *testing.T) {
	app := apptest.New(t)

	status, body := app.Do(t, http.MethodPut, "/meal", url.Values{"total_kcal": {"dużo"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, fmt.Sprintf(`{"id":[%q],"total_kcal":[%q]}`, form.MsgRequired, form.MsgInvalidNumber), body)

	status, body = app.Do(t, http.MethodPut, "/meal", url.Values{"id": {"77"}, "total_kcal": {"1"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{}`, body)
}

func TestMealTypes_List(t *testing.T) {
	app := apptest.New(t)
	diaryID := createDiary(t, app, createUser(t, app, "jkowalski"), "2017-12-13")

	breakfast := create(t, app, "/meal-type", "meal_type_id", url.Values{"diary_id": {id(diaryID)}, "name": {"Śniadanie"}})
	supper := create(t, app, "/meal-type", "meal_type_id", url.Values{"diary_id": {id(diaryID)}, "name": {"Kolacja"}})
	mealID := create(t, app, "/meal", "meal_id", url.Values{"meal_type_id": {id(breakfast)}})
	product := create(t, app, "/product", "product_id", url.Values{
		"name": {"Chleb"}, "kcal": {"250"}, "carbs": {"50"}, "proteins": {"8"}, "fat": {"3"},
	})
	ingredient := create(t, app, "/ingredient", "ingredient_id", url.Values{
		"product_id": {id(product)}, "meal_id": {id(mealID)}, "amount": {"80"},
	})

	status, body := app.Do(t, http.MethodGet, "/meal-types", url.Values{"diary_id": {id(diaryID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`[
		{
			"meal_type_id": %d, "name": "Śniadanie",
			"total_kcal": null, "total_carbs": null, "total_proteins": null, "total_fat": null,
			"ingredients": [{"ingredient_id": %d, "name": "Chleb", "amount": 80}]
		},
		{
			"meal_type_id": %d, "name": "Kolacja",
			"total_kcal": null, "total_carbs": null, "total_proteins": null, "total_fat": null,
			"ingredients": []
		}
	]`, breakfast, ingredient, supper), body)

	status, body = app.Do(t, http.MethodDelete, "/meal-type", url.Values{"id": {id(breakfast)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)
	assert.Zero(t, testutil.Count(t, app.DB, &entities.Meal{}))
}

func TestProducts_Search(t *testing.T) {
	app := apptest.New(t)
	kaszanka := create(t, app, "/product", "product_id", url.Values{
		"name": {"Kaszanka"}, "kcal": {"300"}, "carbs": {"10"}, "proteins": {"12"}, "fat": {"25"},
	})
	sledziki := create(t, app, "/product", "product_id", url.Values{
		"name": {"Śledziki"}, "kcal": {"180"}, "carbs": {"0"}, "proteins": {"17"}, "fat": {"12"},
	})

	status, body := app.Do(t, http.MethodGet, "/products", url.Values{"name": {"kasza"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`[{"product_id":%d,"name":"Kaszanka"}]`, kaszanka), body)

	status, body = app.Do(t, http.MethodGet, "/products", url.Values{"name": {"k"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`[{"product_id":%d,"name":"Kaszanka"},{"product_id":%d,"name":"Śledziki"}]`, kaszanka, sledziki), body)

	status, body = app.Do(t, http.MethodGet, "/products", url.Values{"name": {"pierogi"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, body = app.Do(t, http.MethodGet, "/products", url.Values{"name": {"  "}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, fmt.Sprintf(`{"name":[%q]}`, form.MsgBlank), body)

	status, body = app.Do(t, http.MethodGet, "/product", url.Values{"id": {id(kaszanka)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"name":"Kaszanka","kcal":300,"carbs":10,"proteins":12,"fat":25}`, body)
}

func TestProduct_CreateIsGetOrCreate(t *testing.T) {
	app := apptest.New(t)
	values := url.Values{"name": {"Kaszanka"}, "kcal": {"300"}, "carbs": {"10"}, "proteins": {"12"}, "fat": {"25"}}

	first := create(t, app, "/product", "product_id", values)
	assert.Equal(t, first, create(t, app, "/product", "product_id", values))

	values.Set("kcal", "300.01")
	assert.NotEqual(t, first, create(t, app, "/product", "product_id", values))
	assert.Equal(t, int64(2), testutil.Count(t, app.DB, &entities.Product{}))
}

func TestProfile_Scenario(t *testing.T) {
	app := apptest.New(t)
	userID := createUser(t, app, "jkowalski")

	status, body := app.Do(t, http.MethodPost, "/profile", url.Values{"id": {id(userID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{
		"username": "jkowalski", "height": null, "gender": "",
		"daily_carbs": null, "daily_proteins": null, "daily_fat": null
	}`, body)

	status, body = app.Do(t, http.MethodPut, "/user", url.Values{
		"id":             {id(userID)},
		"height":         {"180"},
		"gender":         {"M"},
		"daily_carbs":    {"20"},
		"daily_fat":      {"20"},
		"daily_proteins": {"20"},
	})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)

	status, body = app.Do(t, http.MethodPost, "/profile", url.Values{"id": {id(userID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{
		"username": "jkowalski", "height": 180, "gender": "M",
		"daily_carbs": 20, "daily_proteins": 20, "daily_fat": 20
	}`, body)
}

func TestUser_Errors(t *testing.T) {
	app := apptest.New(t)
	createUser(t, app, "jkowalski")

	t.Run("duplicate username", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPost, "/user", url.Values{
			"username": {"jkowalski"}, "password": {"inne"}, "email": {"jan@kowalski.pl"},
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{}`, body)
		assert.Equal(t, int64(1), testutil.Count(t, app.DB, &entities.User{}))
	})

	t.Run("bad email", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPost, "/user", url.Values{
			"username": {"anowak"}, "password": {"tajne"}, "email": {"anowak"},
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, fmt.Sprintf(`{"email":[%q]}`, form.MsgInvalidEmail), body)
	})

	t.Run("gender too long", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPut, "/user", url.Values{"id": {"1"}, "gender": {"MF"}})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{"gender":["Ensure this field has no more than 1 characters."]}`, body)
	})

	t.Run("unknown id on update", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPut, "/user", url.Values{"id": {"99"}, "height": {"170"}})
		assert.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{}`, body)
	})
}

func TestUser_LoginAndDelete(t *testing.T) {
	app := apptest.New(t)
	userID := createUser(t, app, "jkowalski")

	status, body := app.Do(t, http.MethodPost, "/login", url.Values{"username": {"jkowalski"}, "password": {"tajne"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{"user_id":%d}`, userID), body)

	status, body = app.Do(t, http.MethodPost, "/login", url.Values{"username": {"jkowalski"}, "password": {"zle"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{}`, body)

	status, body = app.Do(t, http.MethodPost, "/login", url.Values{"username": {"jkowalski"}, "password": {""}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, fmt.Sprintf(`{"password":[%q]}`, form.MsgBlank), body)

	status, _ = app.Do(t, http.MethodDelete, "/user", url.Values{"id": {id(userID)}, "password": {"zle"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), testutil.Count(t, app.DB, &entities.User{}))

	status, _ = app.Do(t, http.MethodDelete, "/user", url.Values{"id": {id(userID)}, "password": {"tajne"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, testutil.Count(t, app.DB, &entities.User{}))

	status, body = app.Do(t, http.MethodDelete, "/user", url.Values{"id": {id(userID)}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, fmt.Sprintf(`{"password":[%q]}`, form.MsgRequired), body)
}

func TestActivity(t *testing.T) {
	app := apptest.New(t)
	diaryID := createDiary(t, app, createUser(t, app, "jkowalski"), "2017-12-13")
	discipline := &entities.Discipline{Name: "Bieganie", CaloriesBurn: 600}
	testutil.Create(t, app.DB, discipline)

	status, body := app.Do(t, http.MethodPost, "/activity", url.Values{
		"diary_id": {id(diaryID)}, "discipline_id": {id(discipline.ID)}, "time": {"00:20"},
	})
	require.Equal(t, http.StatusOK, status, body)
	assert.JSONEq(t, `{}`, body)

	t.Run("malformed time leaves the count unchanged", func(t *testing.T) {
		before := testutil.Count(t, app.DB, &entities.Activity{})
		status, body := app.Do(t, http.MethodPost, "/activity", url.Values{
			"diary_id": {id(diaryID)}, "discipline_id": {id(discipline.ID)}, "time": {"00200:00"},
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, fmt.Sprintf(`{"time":[%q]}`, form.MsgInvalidTime), body)
		assert.Equal(t, before, testutil.Count(t, app.DB, &entities.Activity{}))
	})

	status, body = app.Do(t, http.MethodGet, "/activities", url.Values{"diary_id": {id(diaryID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"name":"Bieganie","calories_burn":600,"time":"00:20:00"}]`, body)

	var activity entities.Activity
	require.NoError(t, app.DB.First(&activity).Error)

	status, body = app.Do(t, http.MethodGet, "/activity", url.Values{"id": {id(activity.ID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"name":"Bieganie","calories_burn":600,"time":"00:20:00"}`, body)

	status, body = app.Do(t, http.MethodGet, "/discipline", url.Values{"id": {id(discipline.ID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"name":"Bieganie","calories_burn":600}`, body)

	status, body = app.Do(t, http.MethodGet, "/disciplines", url.Values{"name": {"bieg"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`[{"id":%d,"name":"Bieganie","calories_burn":600}]`, discipline.ID), body)

	status, body = app.Do(t, http.MethodDelete, "/activity", url.Values{"id": {id(activity.ID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)

	status, body = app.Do(t, http.MethodGet, "/activity", url.Values{"id": {id(activity.ID)}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{}`, body)
}

func TestDisciplines_SearchErrors(t *testing.T) {
	app := apptest.New(t)

	tests := []struct {
		name   string
		values url.Values
		body   string
	}{
		{"absent", nil, fmt.Sprintf(`{"name":[%q]}`, form.MsgRequired)},
		{"blank", url.Values{"name": {"  "}}, fmt.Sprintf(`{"name":[%q]}`, form.MsgBlank)},
		{"too long", url.Values{"name": {strings.Repeat("a", 31)}}, `{"name":["Ensure this field has no more than 30 characters."]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := app.Do(t, http.MethodGet, "/disciplines", tt.values)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.JSONEq(t, tt.body, body)
		})
	}
}

func TestNegativeIDsMatchNothing(t *testing.T) {
	app := apptest.New(t)
	createUser(t, app, "jkowalski")

	tests := []struct {
		method string
		path   string
		values url.Values
		status int
	}{
		{http.MethodGet, "/diary", url.Values{"user_id": {"-1"}, "date": {"2017-12-13"}}, http.StatusBadRequest},
		{http.MethodGet, "/meal", url.Values{"id": {"-1"}}, http.StatusBadRequest},
		{http.MethodPut, "/meal", url.Values{"id": {"-1"}, "total_kcal": {"1"}}, http.StatusBadRequest},
		{http.MethodDelete, "/activity", url.Values{"id": {"-1"}}, http.StatusOK},
		{http.MethodDelete, "/meal-type", url.Values{"id": {"-1"}}, http.StatusOK},
		{http.MethodPut, "/user", url.Values{"id": {"-1"}, "height": {"170"}}, http.StatusOK},
		{http.MethodDelete, "/user", url.Values{"id": {"-1"}, "password": {"tajne"}}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			status, body := app.Do(t, tt.method, tt.path, tt.values)
			assert.Equal(t, tt.status, status)
			assert.JSONEq(t, `{}`, body)
		})
	}
	assert.Equal(t, int64(1), testutil.Count(t, app.DB, &entities.User{}))
}

func TestWeight(t *testing.T) {
	app := apptest.New(t)
	userID := createUser(t, app, "jkowalski")

	weightID := create(t, app, "/weight", "weight_id", url.Values{"user_id": {id(userID)}, "date": {"2017-12-13"}, "value": {"80.5"}})

	status, body := app.Do(t, http.MethodGet, "/weight", url.Values{"user_id": {id(userID)}, "date": {"2017-12-13"}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, fmt.Sprintf(`{"weight_id":%d}`, weightID), body)

	status, body = app.Do(t, http.MethodGet, "/weights", url.Values{"user_id": {id(userID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"value":80.5,"date":"2017-12-13"}]`, body)

	status, body = app.Do(t, http.MethodPost, "/weight", url.Values{"user_id": {id(userID)}, "date": {"13.12.2017"}, "value": {"ciężko"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, fmt.Sprintf(`{"date":[%q],"value":[%q]}`, form.MsgInvalidDate, form.MsgInvalidNumber), body)

	status, body = app.Do(t, http.MethodDelete, "/weight", url.Values{"id": {"abc"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, fmt.Sprintf(`{"id":[%q]}`, form.MsgInvalidInteger), body)
	assert.Equal(t, int64(1), testutil.Count(t, app.DB, &entities.Weight{}))

	status, body = app.Do(t, http.MethodDelete, "/weight", url.Values{"id": {"-1"}})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)
	assert.Equal(t, int64(1), testutil.Count(t, app.DB, &entities.Weight{}))

	status, body = app.Do(t, http.MethodDelete, "/weight", url.Values{"id": {id(weightID)}})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{}`, body)
	assert.Zero(t, testutil.Count(t, app.DB, &entities.Weight{}))
}

func TestRequestBodies(t *testing.T) {
	app := apptest.New(t)
	userID := createUser(t, app, "jkowalski")

	t.Run("json body", func(t *testing.T) {
		status, body := app.DoJSON(t, http.MethodPost, "/diary", fmt.Sprintf(`{"user_id": %d, "date": "2017-12-14"}`, userID))
		require.Equal(t, http.StatusOK, status, body)
		apptest.ID(t, body, "diary_id")
	})

	t.Run("json null counts as absent", func(t *testing.T) {
		status, body := app.DoJSON(t, http.MethodPost, "/diary", `{"user_id": null, "date": "2017-12-14"}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, fmt.Sprintf(`{"user_id":[%q]}`, form.MsgRequired), body)
	})

	t.Run("malformed json", func(t *testing.T) {
		status, body := app.DoJSON(t, http.MethodPost, "/diary", `{"user_id": `)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.JSONEq(t, `{}`, body)
	})

	t.Run("integer with zero fraction", func(t *testing.T) {
		status, body := app.Do(t, http.MethodPost, "/diary", url.Values{"user_id": {id(userID) + ".0"}, "date": {"2017-12-15"}})
		require.Equal(t, http.StatusOK, status, body)
	})

	t.Run("body overrides query", func(t *testing.T) {
		status, body := app.DoJSON(t, http.MethodPost, "/diary?user_id=999&date=2017-12-16", fmt.Sprintf(`{"user_id": %d}`, userID))
		require.Equal(t, http.StatusOK, status, body)
	})
}

func TestMetrics(t *testing.T) {
	app := apptest.New(t)
	app.Do(t, http.MethodGet, "/ping", nil)

	status, body := app.Do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `diet_diary_http_requests_total{method="GET",path="/ping",status="200"} 1`)
}
