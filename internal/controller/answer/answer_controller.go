package answer

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/jinzhu/copier"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/controller"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/middleware"
	"github.com/lshigami/answerboard/internal/service"
	"github.com/lshigami/answerboard/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	titleCreate = "Submit an Answer"
	titleList   = "Answers"
	titleEdit   = "Edit Answer"
	titleDelete = "Delete Answer"
)

type AnswerController struct {
	answers   service.AnswerService
	validator *validation.Validator
}

func NewAnswerController(answers service.AnswerService, v *validation.Validator) *AnswerController {
	return &AnswerController{answers: answers, validator: v}
}

// RegisterRoutes mounts the answer pages under /answers.
func (ctl *AnswerController) RegisterRoutes(router gin.IRouter) {
	answers := router.Group("/answers", middleware.NumericParam("questionId", "id"))
	requireAuth := middleware.RequireAuth()

	answers.GET("/:questionId/create", requireAuth, controller.Handle(ctl.CreateForm))
	answers.POST("/:questionId/create", requireAuth, controller.Handle(ctl.Create))
	answers.GET("/:questionId", controller.Handle(ctl.List))
	answers.GET("/edit/:id", requireAuth, controller.Handle(ctl.EditForm))
	answers.POST("/edit/:id", requireAuth, controller.Handle(ctl.Update))
	answers.GET("/delete/:id", requireAuth, controller.Handle(ctl.DeleteForm))
	answers.POST("/delete/:id", requireAuth, controller.Handle(ctl.Delete))
}

// CreateForm godoc
// @Summary Show the answer form for a question
// @Tags Answers
// @Produce html
// @Param questionId path int true "Question ID"
// @Success 200 {string} string "answer-create page"
// @Failure 302 {string} string "Redirect to login when not authenticated"
// @Failure 404 {string} string "Question not found"
// @Router /answers/{questionId}/create [get]
func (ctl *AnswerController) CreateForm(c *gin.Context) error {
	if _, err := controller.RequireUser(c); err != nil {
		return err
	}
	questionID, err := controller.UintParam(c, "questionId")
	if err != nil {
		return err
	}
	if err := ctl.answers.EnsureQuestion(c.Request.Context(), questionID); err != nil {
		return err
	}

	c.HTML(http.StatusOK, "answer-create", dto.AnswerFormView{
		Page:       middleware.NewPage(c, titleCreate),
		Answer:     dto.AnswerView{QuestionID: questionID},
		QuestionID: questionID,
	})
	return nil
}

// Create godoc
// @Summary Submit a new answer
// @Description The author is the logged-in user. A blank body re-renders the form with messages.
// @Tags Answers
// @Accept x-www-form-urlencoded
// @Produce html
// @Param questionId path int true "Question ID"
// @Param body formData string true "Answer text"
// @Param _csrf formData string true "Form token"
// @Success 200 {string} string "answer-create page with validation messages"
// @Success 302 {string} string "Redirect to the question page"
// @Failure 403 {string} string "Missing or invalid form token"
// @Failure 404 {string} string "Question not found"
// @Router /answers/{questionId}/create [post]
func (ctl *AnswerController) Create(c *gin.Context) error {
	user, err := controller.RequireUser(c)
	if err != nil {
		return err
	}
	questionID, err := controller.UintParam(c, "questionId")
	if err != nil {
		return err
	}

	var form dto.AnswerForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		return apperror.BadRequest("Invalid form submission.", err)
	}

	if messages := ctl.validator.Validate(form); len(messages) > 0 {
		log.Ctx(c.Request.Context()).Debug().Strs("errors", messages).Uint("questionID", questionID).Msg("Answer rejected by validation")
		c.HTML(http.StatusOK, "answer-create", dto.AnswerFormView{
			Page: middleware.NewPage(c, titleCreate),
			Answer: dto.AnswerView{
				Body:       form.Body,
				QuestionID: questionID,
				UserID:     user.ID,
			},
			QuestionID: questionID,
			Errors:     messages,
		})
		return nil
	}

	if _, err := ctl.answers.Create(c.Request.Context(), questionID, user, form); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, controller.QuestionPath(questionID))
	return nil
}

// List godoc
// @Summary List the answers of a question
// @Tags Answers
// @Produce html
// @Param questionId path int true "Question ID"
// @Success 200 {string} string "answer-list page"
// @Router /answers/{questionId} [get]
func (ctl *AnswerController) List(c *gin.Context) error {
	questionID, err := controller.UintParam(c, "questionId")
	if err != nil {
		return err
	}
	answers, err := ctl.answers.ListByQuestion(c.Request.Context(), questionID)
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "answer-list", dto.AnswerListView{
		Page:       middleware.NewPage(c, titleList),
		QuestionID: questionID,
		Answers:    answers,
	})
	return nil
}

// EditForm godoc
// @Summary Show the edit form of one of your answers
// @Tags Answers
// @Produce html
// @Param id path int true "Answer ID"
// @Success 200 {string} string "answer-edit page"
// @Failure 403 {string} string "Answer belongs to another user"
// @Failure 404 {string} string "Answer not found"
// @Router /answers/edit/{id} [get]
func (ctl *AnswerController) EditForm(c *gin.Context) error {
	user, err := controller.RequireUser(c)
	if err != nil {
		return err
	}
	id, err := controller.UintParam(c, "id")
	if err != nil {
		return err
	}
	answer, err := ctl.answers.GetOwned(c.Request.Context(), id, user)
	if err != nil {
		return err
	}

	var view dto.AnswerView
	if err := copier.Copy(&view, answer); err != nil {
		return errors.Wrap(err, "copy answer")
	}
	c.HTML(http.StatusOK, "answer-edit", dto.AnswerFormView{
		Page:       middleware.NewPage(c, titleEdit),
		Answer:     view,
		QuestionID: answer.QuestionID,
	})
	return nil
}

// Update godoc
// @Summary Submit changes to one of your answers
// @Description Ownership is checked before the input is validated. A blank body re-renders the form and leaves the stored answer untouched.
// @Tags Answers
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Answer ID"
// @Param body formData string true "Answer text"
// @Param questionId formData int false "Question the answer belongs to"
// @Param _csrf formData string true "Form token"
// @Success 200 {string} string "answer-edit page with validation messages"
// @Success 302 {string} string "Redirect to the question page"
// @Failure 403 {string} string "Answer belongs to another user, or bad form token"
// @Failure 404 {string} string "Answer not found"
// @Router /answers/edit/{id} [post]
func (ctl *AnswerController) Update(c *gin.Context) error {
	user, err := controller.RequireUser(c)
	if err != nil {
		return err
	}
	id, err := controller.UintParam(c, "id")
	if err != nil {
		return err
	}
	answer, err := ctl.answers.GetOwned(c.Request.Context(), id, user)
	if err != nil {
		return err
	}

	var form dto.AnswerForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		return apperror.BadRequest("Invalid form submission.", err)
	}
	if form.QuestionID == 0 {
		form.QuestionID = answer.QuestionID
	}

	if messages := ctl.validator.Validate(form); len(messages) > 0 {
		c.HTML(http.StatusOK, "answer-edit", dto.AnswerFormView{
			Page: middleware.NewPage(c, titleEdit),
			Answer: dto.AnswerView{
				ID:         id,
				Body:       form.Body,
				QuestionID: form.QuestionID,
				UserID:     answer.UserID,
			},
			QuestionID: form.QuestionID,
			Errors:     messages,
		})
		return nil
	}

	if err := ctl.answers.Update(c.Request.Context(), answer, form); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, controller.QuestionPath(answer.QuestionID))
	return nil
}

// DeleteForm godoc
// @Summary Ask for confirmation before deleting one of your answers
// @Tags Answers
// @Produce html
// @Param id path int true "Answer ID"
// @Success 200 {string} string "answer-delete page"
// @Failure 403 {string} string "Answer belongs to another user"
// @Failure 404 {string} string "Answer not found"
// @Router /answers/delete/{id} [get]
func (ctl *AnswerController) DeleteForm(c *gin.Context) error {
	user, err := controller.RequireUser(c)
	if err != nil {
		return err
	}
	id, err := controller.UintParam(c, "id")
	if err != nil {
		return err
	}
	answer, err := ctl.answers.GetOwned(c.Request.Context(), id, user)
	if err != nil {
		return err
	}

	var view dto.AnswerView
	if err := copier.Copy(&view, answer); err != nil {
		return errors.Wrap(err, "copy answer")
	}
	c.HTML(http.StatusOK, "answer-delete", dto.AnswerDeleteView{
		Page:   middleware.NewPage(c, titleDelete),
		Answer: view,
	})
	return nil
}

// Delete godoc
// @Summary Delete one of your answers
// @Tags Answers
// @Accept x-www-form-urlencoded
// @Param id path int true "Answer ID"
// @Param _csrf formData string true "Form token"
// @Success 302 {string} string "Redirect to the page of the question the answer belonged to"
// @Failure 403 {string} string "Answer belongs to another user, or bad form token"
// @Failure 404 {string} string "Answer not found"
// @Router /answers/delete/{id} [post]
func (ctl *AnswerController) Delete(c *gin.Context) error {
	user, err := controller.RequireUser(c)
	if err != nil {
		return err
	}
	id, err := controller.UintParam(c, "id")
	if err != nil {
		return err
	}
	answer, err := ctl.answers.GetOwned(c.Request.Context(), id, user)
	if err != nil {
		return err
	}

	questionID := answer.QuestionID
	if err := ctl.answers.Delete(c.Request.Context(), answer); err != nil {
		return err
	}
	c.Redirect(http.StatusFound, controller.QuestionPath(questionID))
	return nil
}
