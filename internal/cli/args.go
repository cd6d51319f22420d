package cli

import (
	"strconv"

	"github.com/jerrytigerxu/go-projects/internal/errors"
)

// parseTaskID parses a task ID argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("id", arg, "must be an integer")
	}
	return id, nil
}
