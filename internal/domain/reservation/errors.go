package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

// PartialGroupError reports a group action that left some members short
// of the target state after verification. It is surfaced explicitly,
// never squashed into a success response.
type PartialGroupError struct {
	GroupID   string
	FailedIDs []uint
}

func (e *PartialGroupError) Error() string {
	ids := make([]string, len(e.FailedIDs))
	for i, id := range e.FailedIDs {
		ids[i] = strconv.FormatUint(uint64(id), 10)
	}
	return fmt.Sprintf(
		"group %s: members %s did not reach the target state",
		e.GroupID, strings.Join(ids, ", "),
	)
}
