package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// bindUpdates reads a partial-update JSON body into a field map and
// strips the keys the record layer owns.
func bindUpdates(c *gin.Context) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		return nil, errors.New("Invalid request: " + err.Error())
	}

	delete(updates, "_id")
	delete(updates, "id")
	delete(updates, "created_at")
	delete(updates, "updated_at")

	if len(updates) == 0 {
		return nil, errors.New("No fields to update")
	}

	return updates, nil
}
