package application

import (
	"fmt"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/golang/protobuf/proto"
)

type loggingEventHandler struct {
	logger log.Logger
	next   EventHandler
}

// NewLoggingEventHandler returns a new instance of a logging EventHandler.
func NewLoggingEventHandler(logger log.Logger, next EventHandler) EventHandler {
	return &loggingEventHandler{logger, next}
}

func (eh *loggingEventHandler) Handle(event proto.Message) (err error) {
	defer func(begin time.Time) {
		eh.logger.Log(
			"event", fmt.Sprintf("%v", event),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return eh.next.Handle(event)
}
