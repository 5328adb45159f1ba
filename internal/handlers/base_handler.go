package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/validator"
	"jobboard/pkg/apperrors"
	"jobboard/pkg/contextkeys"
)

// BaseHandler carries the pieces every handler needs: the request-scoped
// database handle, input validation, and the authenticated user.
type BaseHandler struct {
	validator   *validator.Validator
	userService services.UserService
}

func NewBaseHandler(v *validator.Validator, userService services.UserService) BaseHandler {
	return BaseHandler{validator: v, userService: userService}
}

// GetDB returns the database handle injected by DBMiddleware. Tests replace
// it with a transaction.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.MustGet(string(contextkeys.DBContextKey)).(*gorm.DB)
	if !ok {
		panic("database handle missing from context")
	}
	return db
}

// BindJSON decodes and validates a JSON body. On failure the error response
// has already been written and the caller should return.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.validate(c, obj)
}

// BindQuery decodes and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, err)
		}
		return false
	}
	return true
}

// CurrentUser loads the authenticated user. Services that enforce ownership
// or role rules take the full model.
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return nil, false
	}
	user, err := h.userService.GetModel(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return nil, false
	}
	return user, true
}

// OptionalUser resolves the user when a token was presented, nil otherwise.
func (h *BaseHandler) OptionalUser(c *gin.Context) *models.User {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return nil
	}
	user, err := h.userService.GetModel(h.GetDB(c), userID)
	if err != nil {
		return nil
	}
	return user
}

func (h *BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// PageParams reads page/page_size with sane fallbacks.
func (h *BaseHandler) PageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "0"))
	if page < 1 {
		page = 1
	}
	return page, pageSize
}
