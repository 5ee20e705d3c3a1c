// Package queue contains the background consumer that listens to the
// flavor.created queue and writes structured logs to logs/flavors.log.
package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// LogDir and LogFile locate the append-only event log.
const (
    LogDir  = "logs"
    LogFile = "flavors.log"
)

// StartFlavorConsumer connects to RabbitMQ, declares the flavor.created
// queue (durable), and starts consuming messages. Each message is appended
// to logs/flavors.log in a single-line, human-friendly format. The function
// runs a reconnect loop and only returns when ctx is cancelled; processing
// errors are logged and the offending message is rejected.
func StartFlavorConsumer(ctx context.Context, url string) error {
    backoff := time.Second
    for {
        if err := ctx.Err(); err != nil {
            return err
        }
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("flavor-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        err = consumeLoop(ctx, conn, LogDir)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        log.Printf("flavor-consumer: consume loop ended: %v; reconnecting", err)
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, dir string) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("flavor-consumer: set QoS failed: %v", err)
    }

    if _, err := ch.QueueDeclare(FlavorCreatedQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.ConsumeWithContext(ctx, FlavorCreatedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(dir, d.Body); err != nil {
            log.Printf("flavor-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
            continue
        }
        _ = d.Ack(false)
    }
    return errors.New("deliveries channel closed")
}

func handleMessage(dir string, body []byte) error {
    var ev FlavorCreatedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.FlavorID == 0 || ev.Name == "" {
        return errors.New("event without flavor id or name")
    }
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()

    if _, err := f.WriteString(formatLine(ev)); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}

func formatLine(ev FlavorCreatedEvent) string {
    desc := "-"
    if ev.Description != nil {
        desc = fmt.Sprintf("%q", *ev.Description)
    }
    return fmt.Sprintf("[%s] Flavor created | flavor_id=%d | name=%q | description=%s | created_at=%s\n",
        ev.PublishedAt, ev.FlavorID, ev.Name, desc, ev.CreatedAt)
}
