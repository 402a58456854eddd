package router

import "github.com/gin-gonic/gin"

// Module is one routable feature area. Each module registers its own routes
// and middleware on the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
