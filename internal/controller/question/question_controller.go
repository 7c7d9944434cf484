package question

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/lshigami/answerboard/internal/apperror"
	"github.com/lshigami/answerboard/internal/controller"
	"github.com/lshigami/answerboard/internal/dto"
	"github.com/lshigami/answerboard/internal/middleware"
	"github.com/lshigami/answerboard/internal/service"
	"github.com/lshigami/answerboard/internal/validation"
)

type QuestionController struct {
	questions service.QuestionService
	validator *validation.Validator
}

func NewQuestionController(questions service.QuestionService, v *validation.Validator) *QuestionController {
	return &QuestionController{questions: questions, validator: v}
}

func (ctl *QuestionController) RegisterRoutes(router gin.IRouter) {
	questions := router.Group("/questions", middleware.NumericParam("id"))
	questions.GET("", controller.Handle(ctl.List))
	questions.GET("/new", middleware.RequireAuth(), controller.Handle(ctl.CreateForm))
	questions.POST("/new", middleware.RequireAuth(), controller.Handle(ctl.Create))
	questions.GET("/:id", controller.Handle(ctl.Show))
}

// List godoc
// @Summary List questions, newest first
// @Tags Questions
// @Produce html
// @Success 200 {string} string "question-list page"
// @Router /questions [get]
func (ctl *QuestionController) List(c *gin.Context) error {
	questions, err := ctl.questions.GetAllQuestions(c.Request.Context())
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "question-list", dto.QuestionListView{
		Page:      middleware.NewPage(c, "Questions"),
		Questions: questions,
	})
	return nil
}

// Show godoc
// @Summary Show a question and its answers
// @Tags Questions
// @Produce html
// @Param id path int true "Question ID"
// @Success 200 {string} string "question-show page"
// @Failure 404 {string} string "Question not found"
// @Router /questions/{id} [get]
func (ctl *QuestionController) Show(c *gin.Context) error {
	id, err := controller.UintParam(c, "id")
	if err != nil {
		return err
	}
	question, err := ctl.questions.GetQuestion(c.Request.Context(), id)
	if err != nil {
		return err
	}
	c.HTML(http.StatusOK, "question-show", dto.QuestionShowView{
		Page:     middleware.NewPage(c, question.Title),
		Question: *question,
	})
	return nil
}

// CreateForm godoc
// @Summary Show the form to ask a question
// @Tags Questions
// @Produce html
// @Success 200 {string} string "question-create page"
// @Router /questions/new [get]
func (ctl *QuestionController) CreateForm(c *gin.Context) error {
	c.HTML(http.StatusOK, "question-create", dto.QuestionFormView{
		Page: middleware.NewPage(c, "Ask a Question"),
	})
	return nil
}

// Create godoc
// @Summary Ask a question
// @Tags Questions
// @Accept x-www-form-urlencoded
// @Produce html
// @Param title formData string true "Title"
// @Param body formData string false "Details"
// @Param _csrf formData string true "Form token"
// @Success 200 {string} string "question-create page with validation messages"
// @Success 302 {string} string "Redirect to the new question"
// @Router /questions/new [post]
func (ctl *QuestionController) Create(c *gin.Context) error {
	user, err := controller.RequireUser(c)
	if err != nil {
		return err
	}
	var form dto.QuestionForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		return apperror.BadRequest("Invalid form submission.", err)
	}
	if messages := ctl.validator.Validate(form); len(messages) > 0 {
		c.HTML(http.StatusOK, "question-create", dto.QuestionFormView{
			Page:     middleware.NewPage(c, "Ask a Question"),
			Question: form,
			Errors:   messages,
		})
		return nil
	}

	question, err := ctl.questions.CreateQuestion(c.Request.Context(), user, form)
	if err != nil {
		return err
	}
	c.Redirect(http.StatusFound, controller.QuestionPath(question.ID))
	return nil
}
