package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const publishTimeout = 5 * time.Second

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("events publisher closed")

type dialFunc func() (*amqp091.Connection, *amqp091.Channel, error)

// AMQPPublisher publishes events to a durable topic exchange, routed by event type.
// A dropped connection is redialled on the next Publish.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	closed   bool

	dial   dialFunc
	logger *logrus.Logger
}

var _ Publisher = (*AMQPPublisher)(nil)

func NewAMQPPublisher(url, exchange string, logger *logrus.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		exchange: exchange,
		logger:   logger,
		dial: func() (*amqp091.Connection, *amqp091.Channel, error) {
			return dialExchange(url, exchange)
		},
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialExchange(url, exchange string) (*amqp091.Connection, *amqp091.Channel, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare exchange: %w", err)
	}
	return conn, channel, nil
}

// connect dials a fresh connection. Callers hold mu, except the constructor.
func (p *AMQPPublisher) connect() error {
	conn, channel, err := p.dial()
	if err != nil {
		return err
	}
	p.conn, p.channel = conn, channel
	go p.watch(conn.NotifyClose(make(chan *amqp091.Error, 1)))
	return nil
}

// watch logs an unexpected disconnect once. A clean Close sends nothing.
func (p *AMQPPublisher) watch(closed <-chan *amqp091.Error) {
	if amqpErr, ok := <-closed; ok && amqpErr != nil {
		p.logger.WithError(amqpErr).WithField("exchange", p.exchange).Warn("AMQPPublisher.connection.lost")
	}
}

func (p *AMQPPublisher) connected() bool {
	return p.conn != nil && !p.conn.IsClosed() &&
		p.channel != nil && !p.channel.IsClosed()
}

func (p *AMQPPublisher) release() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.channel = nil, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	messageID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("generate message id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if !p.connected() {
		p.release()
		if err := p.connect(); err != nil {
			return fmt.Errorf("reconnect AMQP: %w", err)
		}
		p.logger.WithField("exchange", p.exchange).Info("AMQPPublisher.reconnected")
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		event.Type, // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    messageID.String(),
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var err error
	if p.channel != nil && !p.channel.IsClosed() {
		err = p.channel.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	p.conn, p.channel = nil, nil
	return err
}
