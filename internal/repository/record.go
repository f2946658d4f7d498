package repository

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/xiaot623/chatshare/internal/domain"
)

// sessionRecord is the stored shape of a session, shared by every backend.
// Optional fields are pointers so that absent keys pick up the domain defaults.
type sessionRecord struct {
	SessionID    string          `json:"session_id" dynamodbav:"session_id"`
	ChatConfigID *string         `json:"chat_config_id,omitempty" dynamodbav:"chat_config_id,omitempty"`
	Title        *string         `json:"title,omitempty" dynamodbav:"title,omitempty"`
	Model        *string         `json:"model,omitempty" dynamodbav:"model,omitempty"`
	SystemPrompt *string         `json:"system_prompt,omitempty" dynamodbav:"system_prompt,omitempty"`
	Temperature  *exactDecimal   `json:"temperature,omitempty" dynamodbav:"temperature,omitempty"`
	Messages     []messageRecord `json:"messages" dynamodbav:"messages"`
	CreatedAt    string          `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    *string         `json:"updated_at,omitempty" dynamodbav:"updated_at,omitempty"`
}

type messageRecord struct {
	Role    string `json:"role" dynamodbav:"role"`
	Content string `json:"content" dynamodbav:"content"`
}

func newSessionRecord(s *domain.Session) *sessionRecord {
	messages := make([]messageRecord, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, messageRecord{Role: m.Role, Content: m.Content})
	}
	updatedAt := domain.FormatTimestamp(s.UpdatedAt)
	return &sessionRecord{
		SessionID:    s.SessionID,
		ChatConfigID: &s.ChatConfigID,
		Title:        &s.Title,
		Model:        &s.Model,
		SystemPrompt: &s.SystemPrompt,
		Temperature:  &exactDecimal{s.Temperature},
		Messages:     messages,
		CreatedAt:    domain.FormatTimestamp(s.CreatedAt),
		UpdatedAt:    &updatedAt,
	}
}

func (r *sessionRecord) toDomain() (*domain.Session, error) {
	createdAt, err := domain.ParseTimestamp(r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("session %s created_at: %w", r.SessionID, err)
	}
	updatedAt := createdAt
	if r.UpdatedAt != nil && *r.UpdatedAt != "" {
		if updatedAt, err = domain.ParseTimestamp(*r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("session %s updated_at: %w", r.SessionID, err)
		}
	}

	temperature := domain.DefaultTemperatureValue
	if r.Temperature != nil {
		temperature = r.Temperature.Decimal
	}

	messages := make([]domain.Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		messages = append(messages, domain.Message{Role: m.Role, Content: m.Content})
	}

	return &domain.Session{
		SessionID:    r.SessionID,
		ChatConfigID: stringOr(r.ChatConfigID, domain.DefaultChatConfigID),
		Title:        stringOr(r.Title, domain.DefaultSessionTitle),
		Model:        stringOr(r.Model, domain.DefaultModel),
		SystemPrompt: stringOr(r.SystemPrompt, domain.DefaultSystemPrompt),
		Temperature:  temperature,
		Messages:     messages,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// exactDecimal stores a decimal as a JSON number literal or a DynamoDB N
// attribute, never through float64.
type exactDecimal struct {
	decimal.Decimal
}

func (d exactDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

func (d *exactDecimal) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return d.Decimal.UnmarshalJSON(data)
}

func (d exactDecimal) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.Decimal.String()}, nil
}

func (d *exactDecimal) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	case *types.AttributeValueMemberNULL:
		return nil
	default:
		return fmt.Errorf("unexpected attribute type %T for decimal", av)
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parse decimal %q: %w", raw, err)
	}
	d.Decimal = parsed
	return nil
}
