package httpapi

import (
	"net/http"

	"emojifeed/internal/adapters/httpapi/middleware"
	"emojifeed/internal/core/apperr"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid input"))
		return
	}

	// an empty author id is rejected by the service as unauthenticated
	authorID := c.GetString(middleware.UserIDKey)

	res, err := ctl.pc.CreatePost(c.Request.Context(), authorID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
