package main

import (
	"os"

	"roomescape/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// Never expose debug output on a misconfigured host.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           roomescape
// @version         1.0
// @description     Room escape reservation API.

// @BasePath  /
// @schemes http https
// @in header
func main() {
	cli.Execute()
}
