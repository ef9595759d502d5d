package handlers

import (
	"strconv"

	"qna-board/helper"
	"qna-board/models"
	"qna-board/services"

	"github.com/gin-gonic/gin"
)

// pageWindowRadius bounds the pager to 2*radius+1 page numbers.
const pageWindowRadius = 2

type QuestionHandler struct {
	questionService services.QuestionService
	Helper          *helper.HTTPHelper
}

func NewQuestionHandler(questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, Helper: helper.NewHTTPHelper()}
}

func (h *QuestionHandler) List(c *gin.Context) {
	var params models.QuestionListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	page, err := h.questionService.List(params.Page, params.Keyword)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Questions loaded", map[string]interface{}{
		"questions": page.Items,
		"keyword":   params.Keyword,
		"paging":    h.Helper.GeneratePaging(page, pageWindowRadius),
	})
}

func (h *QuestionHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	question, err := h.questionService.Get(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	answers, err := h.questionService.Answers(question.ID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question loaded", map[string]interface{}{
		"question":   question,
		"vote_count": len(question.Voters),
		"answers":    answers,
	})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	username, _ := c.Get("username")

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, req, err)
		return
	}

	question, err := h.questionService.Create(req, username.(string))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question created", question)
}

func (h *QuestionHandler) Update(c *gin.Context) {
	username, _ := c.Get("username")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, req, err)
		return
	}

	question, err := h.questionService.Update(uint(id), req, username.(string))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question updated", question)
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	username, _ := c.Get("username")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.questionService.Delete(uint(id), username.(string)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Question deleted", h.Helper.EmptyJsonMap())
}

func (h *QuestionHandler) Vote(c *gin.Context) {
	username, _ := c.Get("username")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	votes, err := h.questionService.Vote(uint(id), username.(string))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Vote recorded", map[string]interface{}{"vote_count": votes})
}
