package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rubenagostinho/taskr/pkg/models"
)

// NextID returns the next task id for the collection: the highest
// integer-parseable id plus one, or "1" for an empty collection. Ids that do
// not parse as integers are ignored. Deleted ids are never reused because
// the maximum only grows.
func NextID(tasks []models.Task) string {
	max := 0
	for _, t := range tasks {
		n, err := strconv.Atoi(t.ID)
		if err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// Resolve finds the task a user token refers to and returns its index in the
// collection. Exact id matches take priority. Failing that, the first task
// (in collection order) whose name contains the token or is contained in it,
// case-insensitively, wins. First match, not best match.
func Resolve(token string, tasks []models.Task) (int, error) {
	for i := range tasks {
		if tasks[i].ID == token {
			return i, nil
		}
	}

	needle := strings.ToLower(token)
	for i := range tasks {
		name := strings.ToLower(tasks[i].Name)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return i, nil
		}
	}

	return -1, fmt.Errorf("resolving %q: %w", token, ErrTaskNotFound)
}
