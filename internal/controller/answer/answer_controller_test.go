package answer_test

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/lshigami/answerboard/internal/model"
	"github.com/lshigami/answerboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countAnswers(t *testing.T, app *testutil.App) int64 {
	t.Helper()
	var n int64
	require.NoError(t, app.DB.Model(&model.Answer{}).Count(&n).Error)
	return n
}

func loadAnswer(t *testing.T, app *testutil.App, id uint) model.Answer {
	t.Helper()
	var a model.Answer
	require.NoError(t, app.DB.First(&a, id).Error)
	return a
}

func TestCreateAnswer_StoresAnswerAndRedirects(t *testing.T) {
	app := testutil.NewApp(t)
	app.SignUp(t, "alice")
	app.SignUp(t, "bob")
	carol, user := app.SignUp(t, "carol")
	require.Equal(t, uint(3), user.ID)
	app.CreateQuestion(t, 7, 1, "What is the answer?")

	resp, _ := carol.Submit("/answers/7/create", url.Values{"body": {"42"}})

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questions/7", testutil.Location(t, resp))

	var answers []model.Answer
	require.NoError(t, app.DB.Find(&answers).Error)
	require.Len(t, answers, 1)
	assert.NotZero(t, answers[0].ID)
	assert.Equal(t, "42", answers[0].Body)
	assert.Equal(t, uint(7), answers[0].QuestionID)
	assert.Equal(t, uint(3), answers[0].UserID)
}

func TestCreateAnswer_BlankBodyRerendersForm(t *testing.T) {
	app := testutil.NewApp(t)
	client, _ := app.SignUp(t, "carol")
	app.CreateQuestion(t, 7, 1, "What is the answer?")

	for _, body := range []string{"", "   ", "\n\t"} {
		resp, page := client.Submit("/answers/7/create", url.Values{"body": {body}})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, page, "Please provide an answer")
		assert.Contains(t, page, "Submit an Answer")
		assert.Contains(t, page, `action="/answers/7/create"`)
		assert.Contains(t, page, `name="_csrf"`)
	}
	assert.Zero(t, countAnswers(t, app))
}

func TestCreateAnswer_IgnoresClientSuppliedOwner(t *testing.T) {
	app := testutil.NewApp(t)
	app.SignUp(t, "alice")
	client, user := app.SignUp(t, "bob")
	app.CreateQuestion(t, 7, 1, "Q")

	resp, _ := client.Submit("/answers/7/create", url.Values{"body": {"mine"}, "userId": {"1"}, "questionId": {"99"}})
	require.Equal(t, http.StatusFound, resp.StatusCode)

	var a model.Answer
	require.NoError(t, app.DB.First(&a).Error)
	assert.Equal(t, user.ID, a.UserID)
	assert.Equal(t, uint(7), a.QuestionID)
}

func TestCreateAnswer_RequiresLogin(t *testing.T) {
	app := testutil.NewApp(t)
	app.CreateQuestion(t, 7, 1, "Q")
	anon := app.NewClient(t)

	resp, _ := anon.Get("/answers/7/create")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/login", testutil.Location(t, resp))

	resp, _ = anon.Submit("/answers/7/create", url.Values{"body": {"sneaky"}})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users/login", testutil.Location(t, resp))
	assert.Zero(t, countAnswers(t, app))
}

func TestCreateAnswer_RejectsMissingToken(t *testing.T) {
	app := testutil.NewApp(t)
	client, _ := app.SignUp(t, "carol")
	app.CreateQuestion(t, 7, 1, "Q")

	resp, _ := client.Post("/answers/7/create", url.Values{"body": {"42"}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = client.Post("/answers/7/create", url.Values{"body": {"42"}, "_csrf": {"forged"}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, countAnswers(t, app))
}

func TestCreateAnswer_UnknownQuestion(t *testing.T) {
	app := testutil.NewApp(t)
	client, _ := app.SignUp(t, "carol")

	resp, _ := client.Get("/answers/404/create")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = client.Submit("/answers/404/create", url.Values{"body": {"42"}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, countAnswers(t, app))
}

func TestCreateForm_Renders(t *testing.T) {
	app := testutil.NewApp(t)
	client, _ := app.SignUp(t, "carol")
	app.CreateQuestion(t, 7, 1, "Q")

	resp, page := client.Get("/answers/7/create")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Submit an Answer")
	assert.Contains(t, page, `action="/answers/7/create"`)
	assert.Regexp(t, `name="_csrf" value="[^"]+"`, page)
	assert.Zero(t, countAnswers(t, app))
}

func TestListAnswers_OnlyThatQuestion(t *testing.T) {
	app := testutil.NewApp(t)
	app.CreateQuestion(t, 7, 1, "Seven")
	app.CreateQuestion(t, 8, 1, "Eight")
	app.CreateAnswer(t, 7, 1, "first for seven")
	app.CreateAnswer(t, 8, 1, "only for eight")
	app.CreateAnswer(t, 7, 2, "second for seven")

	resp, page := app.NewClient(t).Get("/answers/7")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "first for seven")
	assert.Contains(t, page, "second for seven")
	assert.NotContains(t, page, "only for eight")
}

func TestListAnswers_Empty(t *testing.T) {
	app := testutil.NewApp(t)

	resp, page := app.NewClient(t).Get("/answers/12")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "No answers yet.")
}

func TestAnswerRoutes_NonNumericIDsAreNotFound(t *testing.T) {
	app := testutil.NewApp(t)
	client, _ := app.SignUp(t, "carol")

	for _, path := range []string{"/answers/abc", "/answers/7x/create", "/answers/edit/abc", "/answers/delete/-1"} {
		resp, _ := client.Get(path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}

func TestEditForm_Owner(t *testing.T) {
	app := testutil.NewApp(t)
	client, user := app.SignUp(t, "alice")
	app.CreateQuestion(t, 7, user.ID, "Q")
	ans := app.CreateAnswer(t, 7, user.ID, "draft answer")

	resp, page := client.Get("/answers/edit/" + strconv.Itoa(int(ans.ID)))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Edit Answer")
	assert.Contains(t, page, "draft answer")
	assert.Contains(t, page, `name="questionId" value="7"`)
}

func TestEditForm_MissingAnswer(t *testing.T) {
	app := testutil.NewApp(t)
	client, _ := app.SignUp(t, "alice")

	resp, _ := client.Get("/answers/edit/999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = client.Submit("/answers/delete/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOtherUsersAnswer_IsForbidden(t *testing.T) {
	app := testutil.NewApp(t)
	_, author := app.SignUp(t, "alice")
	intruder, _ := app.SignUp(t, "bob")
	app.CreateQuestion(t, 7, author.ID, "Q")
	ans := app.CreateAnswer(t, 7, author.ID, "original")
	id := strconv.Itoa(int(ans.ID))

	resp, page := intruder.Get("/answers/edit/" + id)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, page, "Illegal operation.")

	resp, _ = intruder.Get("/answers/delete/" + id)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = intruder.Submit("/answers/edit/"+id, url.Values{"body": {"hijacked"}, "questionId": {"7"}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = intruder.Submit("/answers/delete/"+id, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	stored := loadAnswer(t, app, ans.ID)
	assert.Equal(t, "original", stored.Body)
	assert.Equal(t, author.ID, stored.UserID)
}

func TestOtherUsersAnswer_ForbiddenBeforeValidation(t *testing.T) {
	app := testutil.NewApp(t)
	_, author := app.SignUp(t, "alice")
	intruder, _ := app.SignUp(t, "bob")
	app.CreateQuestion(t, 7, author.ID, "Q")
	ans := app.CreateAnswer(t, 7, author.ID, "original")

	resp, page := intruder.Submit("/answers/edit/"+strconv.Itoa(int(ans.ID)), url.Values{"body": {""}})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NotContains(t, page, "Please provide an answer")
}

func TestUpdateAnswer_ChangesBodyAndQuestion(t *testing.T) {
	app := testutil.NewApp(t)
	client, user := app.SignUp(t, "alice")
	app.CreateQuestion(t, 7, user.ID, "Seven")
	app.CreateQuestion(t, 8, user.ID, "Eight")
	ans := app.CreateAnswer(t, 7, user.ID, "old")

	resp, _ := client.Submit("/answers/edit/"+strconv.Itoa(int(ans.ID)), url.Values{"body": {"new"}, "questionId": {"8"}})

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questions/8", testutil.Location(t, resp))
	stored := loadAnswer(t, app, ans.ID)
	assert.Equal(t, ans.ID, stored.ID)
	assert.Equal(t, "new", stored.Body)
	assert.Equal(t, uint(8), stored.QuestionID)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestUpdateAnswer_KeepsQuestionWhenOmitted(t *testing.T) {
	app := testutil.NewApp(t)
	client, user := app.SignUp(t, "alice")
	app.CreateQuestion(t, 7, user.ID, "Seven")
	ans := app.CreateAnswer(t, 7, user.ID, "old")

	resp, _ := client.Submit("/answers/edit/"+strconv.Itoa(int(ans.ID)), url.Values{"body": {"new"}})

	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questions/7", testutil.Location(t, resp))
	assert.Equal(t, uint(7), loadAnswer(t, app, ans.ID).QuestionID)
}

func TestUpdateAnswer_BlankBodyLeavesRecord(t *testing.T) {
	app := testutil.NewApp(t)
	client, user := app.SignUp(t, "alice")
	app.CreateQuestion(t, 7, user.ID, "Seven")
	app.CreateQuestion(t, 8, user.ID, "Eight")
	ans := app.CreateAnswer(t, 7, user.ID, "keep me")
	id := strconv.Itoa(int(ans.ID))

	resp, page := client.Submit("/answers/edit/"+id, url.Values{"body": {"  "}, "questionId": {"8"}})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Please provide an answer")
	assert.Contains(t, page, `action="/answers/edit/`+id+`"`)
	assert.Contains(t, page, `name="questionId" value="8"`)

	stored := loadAnswer(t, app, ans.ID)
	assert.Equal(t, "keep me", stored.Body)
	assert.Equal(t, uint(7), stored.QuestionID)
}

func TestDeleteAnswer_ConfirmThenDelete(t *testing.T) {
	app := testutil.NewApp(t)
	client, user := app.SignUp(t, "alice")
	app.CreateQuestion(t, 7, user.ID, "Seven")
	ans := app.CreateAnswer(t, 7, user.ID, "short-lived")
	id := strconv.Itoa(int(ans.ID))

	resp, page := client.Get("/answers/delete/" + id)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Delete Answer")
	assert.Contains(t, page, "short-lived")

	resp, _ = client.Submit("/answers/delete/"+id, nil)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/questions/7", testutil.Location(t, resp))
	assert.Zero(t, countAnswers(t, app))

	resp, _ = client.Get("/answers/edit/" + id)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
