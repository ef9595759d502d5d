package handlers

import (
	"strconv"

	"qna-board/helper"
	"qna-board/models"
	"qna-board/services"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	answerService services.AnswerService
	Helper        *helper.HTTPHelper
}

func NewAnswerHandler(answerService services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService, Helper: helper.NewHTTPHelper()}
}

func (h *AnswerHandler) Create(c *gin.Context) {
	username, _ := c.Get("username")
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid question ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, req, err)
		return
	}

	answer, err := h.answerService.Create(uint(questionID), req, username.(string))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer created", answer)
}

func (h *AnswerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid answer ID", h.Helper.EmptyJsonMap())
		return
	}

	answer, err := h.answerService.Get(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer loaded", answer)
}

func (h *AnswerHandler) Update(c *gin.Context) {
	username, _ := c.Get("username")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid answer ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, req, err)
		return
	}

	answer, err := h.answerService.Update(uint(id), req, username.(string))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer updated", answer)
}

func (h *AnswerHandler) Delete(c *gin.Context) {
	username, _ := c.Get("username")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid answer ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.answerService.Delete(uint(id), username.(string)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Answer deleted", h.Helper.EmptyJsonMap())
}

func (h *AnswerHandler) Vote(c *gin.Context) {
	username, _ := c.Get("username")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid answer ID", h.Helper.EmptyJsonMap())
		return
	}

	votes, err := h.answerService.Vote(uint(id), username.(string))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Vote recorded", map[string]interface{}{"vote_count": votes})
}
