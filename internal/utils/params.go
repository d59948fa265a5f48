package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetWorkoutID(ctx *gin.Context) (uint, error) {
	workoutIDStr := ctx.Param("workout_id")

	if workoutIDStr == "" {
		return 0, errors.New("workout ID not found")
	}

	workoutID, err := strconv.ParseUint(workoutIDStr, 10, 32)

	if err != nil {
		return 0, errors.New("invalid workout ID")
	}

	return uint(workoutID), nil
}
