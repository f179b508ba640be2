package common

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorNotifier receives internal failures out of band, on top of the
// server-side log. *communication.Slack satisfies it.
type ErrorNotifier interface {
	Error(message string) error
}

var errorNotifier ErrorNotifier

// SetErrorNotifier installs the notifier used by Internal. A nil
// notifier disables out-of-band reporting.
func SetErrorNotifier(n ErrorNotifier) {
	errorNotifier = n
}

// Internal logs the failure server-side with the operation name and
// answers with a generic message only. The notifier post runs off the
// request goroutine so a slow channel cannot hold up the response.
func Internal(c *gin.Context, op string, err error) {
	log.Printf("%s: %v", op, err)
	if n := errorNotifier; n != nil {
		go func(msg string) {
			if nerr := n.Error(msg); nerr != nil {
				log.Printf("error notification failed: %v", nerr)
			}
		}(fmt.Sprintf("%s: %v", op, err))
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse("Internal server error"))
}
