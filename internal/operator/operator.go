package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/operator/actions"
)

// Operator is the worker that processes items from its queue.
type Operator struct {
	id     int
	queue  chan ActionItem
	logger *logrus.Logger
}

func NewOperator(id int, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		id:     id,
		queue:  queue,
		logger: logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx)
	if err != nil {
		o.logger.WithError(err).WithFields(logrus.Fields{
			"operator": o.id,
			"key":      item.action.Key(),
		}).Warn("Operator.processItem.failed")
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
