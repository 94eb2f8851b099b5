package rest

import "github.com/gin-gonic/gin"

// The SPA expects every body wrapped in a {success, message?, data?}
// envelope.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, code int, message string, data any) {
	c.JSON(code, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondList(c *gin.Context, code int, count int, data any) {
	c.JSON(code, gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	})
}
