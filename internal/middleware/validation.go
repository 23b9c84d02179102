package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// BindAndValidate binds a JSON body into obj and runs its binding rules.
// On failure it writes a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.JSON)
}

// BindFormAndValidate is BindAndValidate for multipart form uploads
func BindFormAndValidate(c *gin.Context, obj interface{}) bool {
	return bindWith(c, obj, binding.FormMultipart)
}

func bindWith(c *gin.Context, obj interface{}, b binding.Binding) bool {
	if err := c.ShouldBindWith(obj, b); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
