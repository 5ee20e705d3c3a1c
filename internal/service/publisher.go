// Package service provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package service

import (
    "context"
    "encoding/json"
    "log"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"

    "github.com/iliyamo/ice-cream-parlor/internal/model"
    q "github.com/iliyamo/ice-cream-parlor/internal/queue"
)

const defaultDialTimeout = 5 * time.Second

// Publisher sends flavor.created events to a RabbitMQ broker.  Each call
// opens its own connection, so a Publisher is safe for concurrent use and
// holds no state besides the URL.
type Publisher struct {
    url string
}

// NewPublisher returns a Publisher for the given broker URL.
func NewPublisher(url string) *Publisher {
    return &Publisher{url: url}
}

// PublishFlavorCreated publishes a FlavorCreatedEvent to the
// "flavor.created" queue. Any error is logged and returned so the caller
// can choose to ignore it. Messages are marked as persistent.
func (p *Publisher) PublishFlavorCreated(ctx context.Context, f *model.Flavor) error {
    conn, err := amqp.DialConfig(p.url, amqp.Config{
        Heartbeat: 10 * time.Second,
        Locale:    "en_US",
        Dial:      amqp.DefaultDial(dialTimeout(ctx)),
    })
    if err != nil {
        log.Printf("rabbitmq: dial failed: %v", err)
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        log.Printf("rabbitmq: channel open failed: %v", err)
        return err
    }
    defer func() { _ = ch.Close() }()

    // Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
    if _, err := ch.QueueDeclare(
        q.FlavorCreatedQueue, // name
        true,                 // durable
        false,                // autoDelete
        false,                // exclusive
        false,                // noWait
        nil,                  // args
    ); err != nil {
        log.Printf("rabbitmq: queue declare failed: %v", err)
        return err
    }

    now := time.Now().UTC()
    body, err := json.Marshal(q.NewFlavorCreatedEvent(f, now))
    if err != nil {
        log.Printf("rabbitmq: marshal event failed: %v", err)
        return err
    }

    pub := amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent, // store on disk
        Timestamp:    now,
        Body:         body,
    }

    if err := ch.PublishWithContext(ctx,
        "",                   // default exchange
        q.FlavorCreatedQueue, // routing key = queue name
        false,                // mandatory
        false,                // immediate
        pub,
    ); err != nil {
        log.Printf("rabbitmq: publish failed: %v", err)
        return err
    }
    return nil
}

// dialTimeout lets the caller's deadline bound the TCP dial, which amqp
// does not take a context for.
func dialTimeout(ctx context.Context) time.Duration {
    if dl, ok := ctx.Deadline(); ok {
        if d := time.Until(dl); d > 0 {
            return d
        }
        return time.Millisecond
    }
    return defaultDialTimeout
}

// Discard drops every event.  It is used when EVENTS_ENABLED is off.
type Discard struct{}

// PublishFlavorCreated implements the publisher contract and does nothing.
func (Discard) PublishFlavorCreated(context.Context, *model.Flavor) error { return nil }
