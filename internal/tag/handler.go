package tag

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodgram/recipe-service/internal/dto"
	"foodgram/recipe-service/pkg/response"
)

type TagHandler struct {
	repo *TagRepository
}

func NewTagHandler(db *gorm.DB) *TagHandler {
	return &TagHandler{repo: NewTagRepository(db)}
}

// List returns all tags.
// @Summary List tags
// @Tags Tag
// @Produce json
// @Success 200 {object} response.Response{data=[]dto.TagView}
// @Router /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.repo.List()
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("failed to list tags"),
		))
		return
	}

	views := make([]dto.TagView, 0, len(tags))
	for i := range tags {
		views = append(views, dto.NewTagView(&tags[i]))
	}
	dto.SuccessResponse(c, views)
}

// Get returns one tag.
// @Summary Get tag
// @Tags Tag
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} response.Response{data=dto.TagView}
// @Router /tags/{id} [get]
func (h *TagHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("invalid tag id"),
		))
		return
	}

	t, err := h.repo.GetByID(uint(id))
	if err != nil {
		dto.ErrorResponse(c, response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("tag not found"),
		))
		return
	}
	dto.SuccessResponse(c, dto.NewTagView(t))
}

// RegisterRoutes mounts the tag endpoints, all public.
func RegisterRoutes(rg *gin.RouterGroup, db *gorm.DB) {
	handler := NewTagHandler(db)
	tags := rg.Group("/tags")
	{
		tags.GET("", handler.List)
		tags.GET("/:id", handler.Get)
	}
}
