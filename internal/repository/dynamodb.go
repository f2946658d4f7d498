package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	pkgerrors "github.com/pkg/errors"

	"github.com/xiaot623/chatshare/internal/domain"
)

// DynamoDBAPI is the subset of the DynamoDB client used by DynamoDBStore.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoDBStore implements SessionStore on a table keyed by session_id.
type DynamoDBStore struct {
	client DynamoDBAPI
	table  string
}

// NewDynamoDBStore creates a store over table.
func NewDynamoDBStore(client DynamoDBAPI, table string) *DynamoDBStore {
	return &DynamoDBStore{client: client, table: table}
}

// GetSession retrieves a session by ID.
func (s *DynamoDBStore) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"session_id": &types.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "dynamodb get session %s", sessionID)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var record sessionRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, pkgerrors.Wrapf(err, "decode session %s", sessionID)
	}
	return record.toDomain()
}

// PutSession writes the whole item, replacing any previous version.
func (s *DynamoDBStore) PutSession(ctx context.Context, session *domain.Session) error {
	item, err := attributevalue.MarshalMap(newSessionRecord(session))
	if err != nil {
		return pkgerrors.Wrapf(err, "encode session %s", session.SessionID)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return pkgerrors.Wrapf(err, "dynamodb put session %s", session.SessionID)
	}
	return nil
}

// Close is a no-op; the SDK client holds no connections that need closing.
func (s *DynamoDBStore) Close() error {
	return nil
}
