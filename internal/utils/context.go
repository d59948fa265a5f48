package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/liftlog-dev/liftlog/internal/types"
)

// GetCurrentSubject returns the authenticated external subject ID
// stored by the auth middleware.
func GetCurrentSubject(ctx *gin.Context) (string, error) {
	subject, exists := ctx.Get(types.ContextSubjectKey)

	if !exists {
		return "", fmt.Errorf("user not authenticated")
	}

	subjectStr, ok := subject.(string)

	if !ok || subjectStr == "" {
		return "", fmt.Errorf("invalid subject in context")
	}

	return subjectStr, nil
}
