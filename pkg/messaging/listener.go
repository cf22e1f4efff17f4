package messaging

import (
	"log"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
)

func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	err = ch.QueueBind(q.Name, name, name, false, nil)
	if err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// ListenToTopic decodes every delivery on topic into V and hands it to fn.
// Deliveries fn fails on are rejected without requeue; the listener keeps going.
func ListenToTopic[V any](ch *amqp.Channel, prefix string, topic ChangeTopic, fn func(V) error) error {
	msgs, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func() {
		defer ch.Close()
		for d := range msgs {
			var value V
			if err := sonic.Unmarshal(d.Body, &value); err != nil {
				log.Printf("could not decode %s message: %v", topic, err)
				_ = d.Nack(false, false)
				continue
			}
			if err := fn(value); err != nil {
				log.Printf("error processing %s message: %v", topic, err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}()
	return nil
}
