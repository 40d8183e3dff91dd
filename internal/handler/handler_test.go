package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Hanikakadiya/Master-Quiz/internal/domain/entity"
	"github.com/Hanikakadiya/Master-Quiz/internal/middleware"
	"github.com/Hanikakadiya/Master-Quiz/internal/repository/memory"
	"github.com/Hanikakadiya/Master-Quiz/internal/repository/postgres"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
	"github.com/Hanikakadiya/Master-Quiz/internal/websocket"
	"github.com/Hanikakadiya/Master-Quiz/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	jwt    *auth.JWTService
	hub    *websocket.Hub
	jar    []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Category{}, &entity.Question{}, &entity.Option{}, &entity.Result{}))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	jwtService, err := auth.NewJWTService("handler-test-secret-0123", 1, "master-quiz")
	require.NoError(t, err)

	categoryRepo := postgres.NewCategoryRepo(db)
	questionRepo := postgres.NewQuestionRepo(db)
	resultRepo := postgres.NewResultRepo(db)
	userRepo := postgres.NewUserRepo(db)

	hub := websocket.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	quizService := service.NewQuizService(categoryRepo, questionRepo)
	resultService := service.NewResultService(categoryRepo, questionRepo, resultRepo, memory.NewGuestSessionRepo(), hub, time.Hour)
	adminService := service.NewAdminService(categoryRepo, questionRepo)
	authService := service.NewAuthService(userRepo, jwtService)

	limiter := middleware.NewRateLimiter(nil)
	router := gin.New()
	RegisterRoutes(router, Handlers{
		Quiz:   NewQuizHandler(quizService, resultService),
		Result: NewResultHandler(resultService),
		Auth:   NewAuthHandler(authService, jwtService.Expiration(), false),
		Admin:  NewAdminHandler(adminService, resultService),
		WS:     NewWSHandler(hub, nil),
	}, Middlewares{
		Auth:        middleware.NewAuthMiddleware(jwtService),
		Session:     middleware.Session(middleware.SessionConfig{CookieName: "quiz_session"}),
		SubmitLimit: limiter.Limit(middleware.SubmitRateLimitConfig(100, time.Minute)),
		LoginLimit:  limiter.Limit(middleware.LoginRateLimitConfig(100, time.Minute)),
	})

	return &testApp{t: t, db: db, router: router, jwt: jwtService, hub: hub}
}

// do выполняет запрос, сохраняя cookie между вызовами как браузер
func (a *testApp) do(method, path, contentType string, body io.Reader, headers ...string) *httptest.ResponseRecorder {
	a.t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	for _, c := range a.jar {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		a.setCookie(c)
	}
	return w
}

func (a *testApp) setCookie(c *http.Cookie) {
	for i, existing := range a.jar {
		if existing.Name == c.Name {
			if c.MaxAge < 0 {
				a.jar = append(a.jar[:i], a.jar[i+1:]...)
			} else {
				a.jar[i] = c
			}
			return
		}
	}
	if c.MaxAge >= 0 {
		a.jar = append(a.jar, c)
	}
}

func (a *testApp) get(path string, headers ...string) *httptest.ResponseRecorder {
	return a.do(http.MethodGet, path, "", nil, headers...)
}

func (a *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

func (a *testApp) postJSON(path, body string, headers ...string) *httptest.ResponseRecorder {
	return a.do(http.MethodPost, path, "application/json", strings.NewReader(body), headers...)
}

func (a *testApp) adminHeader() []string {
	a.t.Helper()
	admin := &entity.User{Username: "admin", Email: "admin@quiz.local", Password: "secret123", Role: entity.RoleAdmin}
	require.NoError(a.t, a.db.Create(admin).Error)
	token, err := a.jwt.GenerateToken(admin)
	require.NoError(a.t, err)
	return []string{"Authorization", "Bearer " + token}
}

// seedQuiz создаёт категорию с вопросами; правильный вариант каждого вопроса — первый
func (a *testApp) seedQuiz(name string, questions int) (*entity.Category, []entity.Question) {
	a.t.Helper()
	category := &entity.Category{Name: name, Description: name + " questions"}
	require.NoError(a.t, a.db.Create(category).Error)

	created := make([]entity.Question, 0, questions)
	for i := 0; i < questions; i++ {
		q := entity.Question{
			CategoryID: category.ID,
			Text:       fmt.Sprintf("%s %d?", name, i+1),
			Difficulty: entity.DifficultyEasy,
			Options:    []entity.Option{{Text: "right", IsCorrect: true}, {Text: "w1"}, {Text: "w2"}, {Text: "w3"}},
		}
		require.NoError(a.t, a.db.Create(&q).Error)
		created = append(created, q)
	}
	return category, created
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "Ответ должен быть JSON: %s", w.Body.String())
}

func TestQuizPages(t *testing.T) {
	app := newTestApp(t)
	category, _ := app.seedQuiz("Math", 2)

	t.Run("список категорий", func(t *testing.T) {
		w := app.get("/categories")

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Categories []struct {
				ID   uint   `json:"id"`
				Name string `json:"name"`
				Icon string `json:"icon"`
			} `json:"categories"`
		}
		decode(t, w, &resp)
		require.Len(t, resp.Categories, 1)
		assert.Equal(t, "Math", resp.Categories[0].Name)
		assert.Equal(t, entity.DefaultCategoryIcon, resp.Categories[0].Icon)
	})

	t.Run("викторина не раскрывает правильные ответы", func(t *testing.T) {
		w := app.get(fmt.Sprintf("/quiz/%d", category.ID))

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "is_correct")
		assert.Contains(t, w.Body.String(), `"text":"right"`)
	})

	t.Run("неизвестная категория перенаправляет на список", func(t *testing.T) {
		for _, path := range []string{"/quiz/999", "/quiz/abc"} {
			w := app.get(path)
			assert.Equal(t, http.StatusFound, w.Code, path)
			assert.Equal(t, CategoriesPath, w.Header().Get("Location"), path)
		}
	})

	t.Run("слишком длинное гостевое имя", func(t *testing.T) {
		w := app.postForm(fmt.Sprintf("/quiz/%d", category.ID), url.Values{"name": {strings.Repeat("я", 101)}})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestSubmitFlow_GuestAndAnonymous(t *testing.T) {
	app := newTestApp(t)
	category, questions := app.seedQuiz("Science", 3)
	quizPath := fmt.Sprintf("/quiz/%d", category.ID)
	submitPath := fmt.Sprintf("/submit/%d", category.ID)

	// Arrange: гость вводит имя
	w := app.postForm(quizPath, url.Values{"name": {"Alice"}})
	require.Equal(t, http.StatusOK, w.Code)

	// Act: два правильных ответа, один неправильный, один мусорный id
	answers := url.Values{
		fmt.Sprintf("question_%d", questions[0].ID): {fmt.Sprint(questions[0].Options[0].ID)},
		fmt.Sprintf("question_%d", questions[1].ID): {fmt.Sprint(questions[1].Options[0].ID)},
		fmt.Sprintf("question_%d", questions[2].ID): {fmt.Sprint(questions[2].Options[1].ID)},
		"question_abc": {"1"},
		"time_taken":   {"75.6"},
	}
	w = app.postForm(submitPath, answers)

	// Assert
	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/results/"), location)

	w = app.get(location)
	require.Equal(t, http.StatusOK, w.Code)
	var view struct {
		Result struct {
			Participant string `json:"participant"`
			IsGuest     bool   `json:"is_guest"`
		} `json:"result"`
		Category struct {
			Name string `json:"name"`
		} `json:"category"`
		Percentage float64 `json:"percentage"`
		Score      int     `json:"score"`
		Total      int     `json:"total"`
		Correct    int     `json:"correct"`
		Incorrect  int     `json:"incorrect"`
		TimeTaken  string  `json:"time_taken"`
	}
	decode(t, w, &view)
	assert.Equal(t, "Alice (Guest)", view.Result.Participant)
	assert.True(t, view.Result.IsGuest)
	assert.Equal(t, "Science", view.Category.Name)
	assert.Equal(t, 2, view.Score)
	assert.Equal(t, 3, view.Total)
	assert.Equal(t, 1, view.Incorrect)
	assert.InDelta(t, 66.67, view.Percentage, 0.01)
	assert.Equal(t, "01:15", view.TimeTaken)

	// Имя одноразовое: следующая попытка той же сессии анонимна
	w = app.postForm(submitPath, url.Values{"time_taken": {"oops"}})
	require.Equal(t, http.StatusFound, w.Code)
	w = app.get(w.Header().Get("Location"))
	decode(t, w, &view)
	assert.Equal(t, "Anonymous", view.Result.Participant)
	assert.Equal(t, 0, view.Score)
	assert.Equal(t, 0, view.Incorrect, "Пропущенные вопросы не считаются неправильными")
	assert.Equal(t, "00:00", view.TimeTaken)
}

func TestStartQuiz_UnknownCategoryKeepsNoGuestName(t *testing.T) {
	app := newTestApp(t)
	category, questions := app.seedQuiz("Music", 1)

	// Arrange: имя отправлено в несуществующую категорию
	w := app.postForm("/quiz/9999", url.Values{"name": {"Ghost"}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, CategoriesPath, w.Header().Get("Location"))

	// Act: та же сессия проходит существующую викторину
	w = app.postForm(fmt.Sprintf("/submit/%d", category.ID), url.Values{
		fmt.Sprintf("question_%d", questions[0].ID): {fmt.Sprint(questions[0].Options[0].ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)

	// Assert
	w = app.get(w.Header().Get("Location"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"participant":"Anonymous"`, "Имя для несуществующей категории не должно сохраняться")

	var result entity.Result
	require.NoError(t, app.db.Last(&result).Error)
	assert.Nil(t, result.GuestName)
}

func TestSubmit_AuthenticatedUser(t *testing.T) {
	app := newTestApp(t)
	category, questions := app.seedQuiz("History", 1)

	w := app.postJSON("/api/auth/register", `{"username":"bob","email":"bob@quiz.local","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.postForm(fmt.Sprintf("/submit/%d", category.ID), url.Values{
		fmt.Sprintf("question_%d", questions[0].ID): {fmt.Sprint(questions[0].Options[0].ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)

	w = app.get(w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), `"participant":"bob"`)
}

func TestSubmit_RedirectsForMissingOrEmptyCategory(t *testing.T) {
	app := newTestApp(t)
	empty, _ := app.seedQuiz("Empty", 0)

	for _, path := range []string{"/submit/999", fmt.Sprintf("/submit/%d", empty.ID)} {
		w := app.postForm(path, url.Values{})
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, CategoriesPath, w.Header().Get("Location"), path)
	}

	var count int64
	require.NoError(t, app.db.Model(&entity.Result{}).Count(&count).Error)
	assert.Zero(t, count, "Результаты не должны сохраняться")
}

func TestGetResult_UnknownRedirects(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/results/12345")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, CategoriesPath, w.Header().Get("Location"))
}

func TestLeaderboard_Pagination(t *testing.T) {
	app := newTestApp(t)
	category, _ := app.seedQuiz("Geo", 1)
	for i := 0; i < 12; i++ {
		require.NoError(t, app.db.Create(&entity.Result{
			CategoryID: category.ID,
			Score:      i % 3,
			TimeTaken:  time.Duration(i) * time.Second,
		}).Error)
	}

	type page struct {
		Results []struct {
			Rank  int `json:"rank"`
			Score int `json:"score"`
		} `json:"results"`
		Page       int  `json:"page"`
		TotalPages int  `json:"total_pages"`
		HasNext    bool `json:"has_next"`
	}

	var second page
	decode(t, app.get("/leaderboard?page=2"), &second)
	assert.Equal(t, 2, second.Page)
	assert.Equal(t, 2, second.TotalPages)
	require.Len(t, second.Results, 2)
	assert.Equal(t, 11, second.Results[0].Rank)
	assert.False(t, second.HasNext)

	for _, raw := range []string{"0", "abc", "99"} {
		var first page
		decode(t, app.get("/leaderboard?page="+raw), &first)
		assert.Equal(t, 1, first.Page, raw)
		require.Len(t, first.Results, 10, raw)
		assert.Equal(t, 1, first.Results[0].Rank)
		assert.Equal(t, 2, first.Results[0].Score)
	}
}

func TestQuizExport(t *testing.T) {
	app := newTestApp(t)
	category, questions := app.seedQuiz("Art", 1)
	admin := app.adminHeader()
	q := questions[0]

	t.Run("игровой вариант", func(t *testing.T) {
		w := app.get(fmt.Sprintf("/api/quiz_data/%d", category.ID))
		require.Equal(t, http.StatusOK, w.Code)
		expected := fmt.Sprintf(`{"category":"Art","questions":[{"id":%d,"text":"Art 1?","options":[
			{"id":%d,"text":"right"},{"id":%d,"text":"w1"},{"id":%d,"text":"w2"},{"id":%d,"text":"w3"}]}]}`,
			q.ID, q.Options[0].ID, q.Options[1].ID, q.Options[2].ID, q.Options[3].ID)
		assert.JSONEq(t, expected, w.Body.String())
	})

	t.Run("неизвестная категория", func(t *testing.T) {
		for _, path := range []string{"/api/quiz_data/999", "/api/get_questions/999"} {
			w := app.get(path, admin...)
			assert.Equal(t, http.StatusNotFound, w.Code, path)
			assert.JSONEq(t, `{"error":"Category not found"}`, w.Body.String(), path)
		}
	})

	t.Run("административный вариант требует админа", func(t *testing.T) {
		w := app.get(fmt.Sprintf("/api/get_questions/%d", category.ID))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = app.get(fmt.Sprintf("/api/get_questions/%d", category.ID), admin...)
		require.Equal(t, http.StatusOK, w.Code)
		expected := fmt.Sprintf(`{"category":"Art","questions":[{"id":%d,"text":"Art 1?","difficulty":"easy","options":[
			{"id":%d,"text":"right","is_correct":true},{"id":%d,"text":"w1","is_correct":false},
			{"id":%d,"text":"w2","is_correct":false},{"id":%d,"text":"w3","is_correct":false}]}]}`,
			q.ID, q.Options[0].ID, q.Options[1].ID, q.Options[2].ID, q.Options[3].ID)
		assert.JSONEq(t, expected, w.Body.String())
	})
}

func TestAuthEndpoints(t *testing.T) {
	app := newTestApp(t)

	w := app.postJSON("/api/auth/register", `{"username":"carol","email":"carol@quiz.local","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.postJSON("/api/auth/register", `{"username":"carol","email":"carol2@quiz.local","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, w.Code, "Повторный username")

	w = app.do(http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusUnauthorized, app.get("/api/users/me").Code)

	w = app.postJSON("/api/auth/login", `{"email":"carol@quiz.local","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.postJSON("/api/auth/login", `{"email":"Carol@Quiz.local","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token"`)

	w = app.get("/api/users/me")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"carol"`)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAdminEndpoints(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminHeader()

	// Категории
	w := app.postJSON("/api/admin/categories", `{"name":"Music"}`, admin...)
	require.Equal(t, http.StatusCreated, w.Code)
	var category struct {
		ID   uint   `json:"id"`
		Icon string `json:"icon"`
	}
	decode(t, w, &category)
	assert.Equal(t, entity.DefaultCategoryIcon, category.Icon)

	w = app.postJSON("/api/admin/categories", `{"name":"Music"}`, admin...)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Вопросы
	questionsPath := fmt.Sprintf("/api/admin/categories/%d/questions", category.ID)
	w = app.postJSON(questionsPath, `{"text":"Q?","options":[{"text":"a","is_correct":true},{"text":"b"},{"text":"c"}]}`, admin...)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "Три варианта недопустимы")

	w = app.postJSON(questionsPath, `{"text":"Q?","options":[{"text":"a","is_correct":true},{"text":"b","is_correct":true},{"text":"c"},{"text":"d"}]}`, admin...)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "Два правильных варианта недопустимы")

	w = app.postJSON(questionsPath, `{"text":"Q?","difficulty":"hard","options":[{"text":"a"},{"text":"b","is_correct":true},{"text":"c"},{"text":"d"}]}`, admin...)
	require.Equal(t, http.StatusCreated, w.Code)
	var question struct {
		ID         uint   `json:"id"`
		Difficulty string `json:"difficulty"`
	}
	decode(t, w, &question)
	assert.Equal(t, "hard", question.Difficulty)

	w = app.postJSON("/api/admin/categories/999/questions", `{"text":"Q?","options":[{"text":"a","is_correct":true},{"text":"b"},{"text":"c"},{"text":"d"}]}`, admin...)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Результаты и выгрузка
	guest := "=cmd()"
	require.NoError(t, app.db.Create(&entity.Result{CategoryID: category.ID, GuestName: &guest, Score: 1, CorrectAnswers: 1, TimeTaken: 65 * time.Second}).Error)

	w = app.get("/api/admin/results/export?format=csv", admin...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Contains(t, w.Body.String(), "'=cmd() (Guest)")
	assert.Contains(t, w.Body.String(), "01:05")

	w = app.get("/api/admin/results/export?format=xlsx", admin...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "XLSX — zip-архив")

	var results struct {
		Results []struct {
			ResultID uint `json:"result_id"`
		} `json:"results"`
	}
	decode(t, app.get("/api/admin/results", admin...), &results)
	require.Len(t, results.Results, 1)

	w = app.do(http.MethodDelete, fmt.Sprintf("/api/admin/results/%d", results.Results[0].ResultID), "", nil, admin...)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Удаление категории каскадно удаляет вопросы
	w = app.do(http.MethodDelete, fmt.Sprintf("/api/admin/categories/%d", category.ID), "", nil, admin...)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = app.get(fmt.Sprintf("/api/admin/questions/%d", question.ID), admin...)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminEndpoints_RequireAdminRole(t *testing.T) {
	app := newTestApp(t)
	user := &entity.User{Username: "plain", Email: "plain@quiz.local", Password: "secret123", Role: entity.RoleUser}
	require.NoError(t, app.db.Create(user).Error)
	token, err := app.jwt.GenerateToken(user)
	require.NoError(t, err)

	w := app.postJSON("/api/admin/categories", `{"name":"X"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.postJSON("/api/admin/categories", `{"name":"X"}`, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaderboardFeed(t *testing.T) {
	// Arrange
	app := newTestApp(t)
	category, questions := app.seedQuiz("Feed", 1)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	conn, _, err := gorillaws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/leaderboard", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return app.hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Act
	w := app.postForm(fmt.Sprintf("/submit/%d", category.ID), url.Values{
		fmt.Sprintf("question_%d", questions[0].ID): {fmt.Sprint(questions[0].Options[0].ID)},
	})
	require.Equal(t, http.StatusFound, w.Code)

	// Assert
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type string `json:"type"`
		Data struct {
			ResultID   uint `json:"result_id"`
			CategoryID uint `json:"category_id"`
			Score      int  `json:"score"`
		} `json:"data"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, websocket.RESULT_RECORDED, msg.Type)
	assert.Equal(t, category.ID, msg.Data.CategoryID)
	assert.Equal(t, 1, msg.Data.Score)
	assert.Equal(t, "/results/"+fmt.Sprint(msg.Data.ResultID), w.Header().Get("Location"))
}

func TestLeaderboardFeed_RejectsForeignOrigin(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.router)
	defer srv.Close()

	header := http.Header{"Origin": {"https://evil.example"}}
	_, resp, err := gorillaws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/leaderboard", header)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
