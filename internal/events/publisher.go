package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeName = "woodpantry.topic"
	routingKey   = "recipes.searched"
)

// RecipesSearchedPublisher publishes recipes.searched events.
type RecipesSearchedPublisher struct {
	conn *amqp.Connection
}

type recipesSearchedEvent struct {
	Timestamp   string   `json:"timestamp"`
	Terms       []string `json:"terms"`
	Phase       string   `json:"phase"`
	ResultCount int      `json:"result_count"`
	RecipeIDs   []string `json:"recipe_ids"`
}

// NewRecipesSearchedPublisher creates a RabbitMQ publisher and ensures the
// shared topic exchange exists.
func NewRecipesSearchedPublisher(rabbitmqURL string) (*RecipesSearchedPublisher, error) {
	conn, err := amqp.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(
		exchangeName,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchangeName, err)
	}

	return &RecipesSearchedPublisher{conn: conn}, nil
}

// PublishRecipesSearched publishes one search outcome.
func (p *RecipesSearchedPublisher) PublishRecipesSearched(
	ctx context.Context,
	terms []string,
	phase string,
	recipeIDs []string,
) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	now := time.Now().UTC()
	msg, err := newRecipesSearchedMessage(now, terms, phase, recipeIDs)
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish recipes.searched: %w", err)
	}

	return nil
}

// Close closes the RabbitMQ connection.
func (p *RecipesSearchedPublisher) Close() error {
	return p.conn.Close()
}

func newRecipesSearchedMessage(now time.Time, terms []string, phase string, recipeIDs []string) (amqp.Publishing, error) {
	if recipeIDs == nil {
		recipeIDs = []string{}
	}
	body, err := json.Marshal(recipesSearchedEvent{
		Timestamp:   now.Format(time.RFC3339),
		Terms:       terms,
		Phase:       phase,
		ResultCount: len(recipeIDs),
		RecipeIDs:   recipeIDs,
	})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal recipes.searched event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Transient,
		Timestamp:    now,
		Body:         body,
	}, nil
}
