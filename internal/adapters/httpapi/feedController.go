package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

func (ctl *FeedController) GetFeed(c *gin.Context) {
	entries, err := ctl.fc.GetFeed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": entries})
}

func (ctl *FeedController) GetFeedByAuthor(c *gin.Context) {
	entries, err := ctl.fc.GetFeedByAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": entries})
}

func (ctl *FeedController) GetPostByID(c *gin.Context) {
	entry, err := ctl.fc.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
