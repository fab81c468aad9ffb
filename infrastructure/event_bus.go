package infrastructure

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/golang/protobuf/proto"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "shipping"
	queueName    = "handling.queue"
)

// ErrPublish is used when an event could not be handed to the broker.
var ErrPublish = errors.New("publish error")

// errDecode marks a delivery whose payload could not be unmarshaled.
var errDecode = errors.New("message decoding error")

// EventHandler handles a decoded inbound integration event. Handlers must
// be safe for concurrent invocation.
type EventHandler interface {
	Handle(event proto.Message) error
}

// EventBus connects the service to the platform's integration event
// exchange. Outbound events are published under their type name as routing
// key; inbound deliveries are dispatched to the handler subscribed for
// their declared type.
type EventBus interface {
	Publish(message proto.Message) error
	Subscribe(event proto.Message, handler EventHandler) error
	Close()
}

type eventBus struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	consumer *consumer
}

// NewEventBus declares the shipping exchange and the handling queue, and
// starts consuming deliveries. Subscriptions can be added while the
// consumer is already running.
func NewEventBus(uri string, logger log.Logger) (EventBus, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err := channel.ExchangeDeclare(
		exchangeName,        // name
		amqp.ExchangeDirect, // type
		true,                // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	); err != nil {
		return nil, err
	}

	if _, err := channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	); err != nil {
		return nil, err
	}

	// No prefetch limit. Unknown or undecodable deliveries are left
	// unsettled until the channel closes, and a capped prefetch window
	// would let a single such delivery stall the whole consumer.
	msgs, err := channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto ack
		false,     // exclusive
		false,     // no local
		false,     // no wait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	con := &consumer{
		handlers: make(map[string]handlerFunc),
		logger:   logger,
	}
	con.process(msgs)

	return &eventBus{conn, channel, con}, nil
}

func (eb *eventBus) Publish(message proto.Message) error {
	routingKey := typeName(message)

	body, err := proto.Marshal(message)
	if err != nil {
		return err
	}

	if err := eb.channel.Publish(
		exchangeName, // publish to an exchange
		routingKey,   // routing to 0 or more queues
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/x-protobuf",
			Type:         routingKey,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}

func (eb *eventBus) Subscribe(event proto.Message, handler EventHandler) error {
	routingKey := typeName(event)

	// The handler is registered before the binding takes effect, so no
	// delivery can arrive for a type the consumer does not know yet.
	eb.consumer.addHandler(routingKey, newHandlerFunc(event, handler))

	return eb.channel.QueueBind(
		queueName,    // queue name
		routingKey,   // routing key
		exchangeName, // exchange
		false,
		nil,
	)
}

// newHandlerFunc returns a closure decoding the payload into a fresh copy
// of the subscribed event type and passing it to the handler.
func newHandlerFunc(event proto.Message, handler EventHandler) handlerFunc {
	return func(body []byte) error {
		message := proto.Clone(event)
		if err := proto.Unmarshal(body, message); err != nil {
			return fmt.Errorf("%w: %v", errDecode, err)
		}
		return handler.Handle(message)
	}
}

// Close closes the channel and the connection. The consumer goroutine
// stops once the delivery channel is drained.
func (eb *eventBus) Close() {
	eb.channel.Close()
	eb.conn.Close()
}

// typeName derives the routing key from the message's Go type, e.g.
// *pb.HandlingEvent -> "HandlingEvent".
func typeName(message proto.Message) string {
	return strings.Split(reflect.TypeOf(message).String(), ".")[1]
}

type handlerFunc func(body []byte) error

type consumer struct {
	mtx      sync.RWMutex
	handlers map[string]handlerFunc
	logger   log.Logger
}

func (con *consumer) addHandler(msgType string, h handlerFunc) {
	con.mtx.Lock()
	defer con.mtx.Unlock()
	con.handlers[msgType] = h
}

func (con *consumer) handler(msgType string) (handlerFunc, bool) {
	con.mtx.RLock()
	defer con.mtx.RUnlock()
	h, ok := con.handlers[msgType]
	return h, ok
}

func (con *consumer) process(msgs <-chan amqp.Delivery) {
	go func() {
		for d := range msgs {
			con.dispatch(d)
		}
	}()
}

// dispatch routes a single delivery by its declared type and settles it
// according to the outcome:
//
//	unknown type or undecodable payload: logged, left unacknowledged
//	handler error: negatively acknowledged without requeue (dead-letter)
//	handler success: acknowledged
func (con *consumer) dispatch(d amqp.Delivery) {
	h, ok := con.handler(d.Type)
	if !ok {
		con.logger.Log("msg", "no handler for received message", "type", d.Type)
		return
	}

	if err := h(d.Body); err != nil {
		con.logger.Log("type", d.Type, "err", err)
		if !errors.Is(err, errDecode) {
			if err := d.Nack(false, false); err != nil {
				con.logger.Log("msg", "nack failed", "type", d.Type, "err", err)
			}
		}
		return
	}

	if err := d.Ack(false); err != nil {
		con.logger.Log("msg", "ack failed", "type", d.Type, "err", err)
	}
}
