package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

var _ signup.SessionStore = &DB{}

type sessionDynamo struct {
	PK            string
	SK            string
	ID            string
	Version       int
	Phase         signup.Phase
	InFlight      signup.Operation
	InFlightSince time.Time
	GivenName     string
	FamilyName    string
	EmailAddress  string
	PhoneNumber   string
	CreatedAt     time.Time
	ExpiresAt     time.Time
	TTL           int64 `dynamodbav:"TTL"`
}

const (
	sessionEntityName = "SIGNUP_SESSION"
)

func sessionPK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", sessionEntityName, id)
}

func sessionSK(id uuid.UUID) string {
	return fmt.Sprintf("%s#%s", sessionEntityName, id)
}

func sessionToDynamo(session signup.Session) sessionDynamo {
	return sessionDynamo{
		PK:            sessionPK(session.ID),
		SK:            sessionSK(session.ID),
		ID:            session.ID.String(),
		Version:       session.Version,
		Phase:         session.Phase,
		InFlight:      session.InFlight,
		InFlightSince: session.InFlightSince,
		GivenName:     session.GivenName,
		FamilyName:    session.FamilyName,
		EmailAddress:  session.EmailAddress,
		PhoneNumber:   session.PhoneNumber,
		CreatedAt:     session.CreatedAt,
		ExpiresAt:     session.ExpiresAt,
		TTL:           session.ExpiresAt.Unix(),
	}
}

func dynamoSessionToSession(session sessionDynamo) signup.Session {
	return signup.Session{
		ID:            uuid.MustParse(session.ID),
		Version:       session.Version,
		Phase:         session.Phase,
		InFlight:      session.InFlight,
		InFlightSince: session.InFlightSince,
		GivenName:     session.GivenName,
		FamilyName:    session.FamilyName,
		EmailAddress:  session.EmailAddress,
		PhoneNumber:   session.PhoneNumber,
		CreatedAt:     session.CreatedAt,
		ExpiresAt:     session.ExpiresAt,
	}
}

func sessionKey(id uuid.UUID) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: sessionPK(id)},
		"SK": &types.AttributeValueMemberS{Value: sessionSK(id)},
	}
}

func (d *DB) GetSession(ctx context.Context, id uuid.UUID) (signup.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            sessionKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return signup.Session{}, signup.NewTimeoutError("GetSession timed out")
		}
		return signup.Session{}, signup.NewFailedToFetchError(fmt.Sprintf("Failed to fetch session with ID %q", id), err)
	}

	if len(resp.Item) == 0 {
		return signup.Session{}, signup.NewSessionDoesNotExistError(fmt.Sprintf("Session with ID %q not found", id), nil)
	}

	var session sessionDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &session)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal session from DB: %s", err))
	}
	return dynamoSessionToSession(session), nil
}

func (d *DB) CreateSession(ctx context.Context, session signup.Session) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	dynamoItem := sessionToDynamo(session)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return signup.NewFailedToTranslateToDBModelError("Failed to convert Session to sessionDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(newEntityVersionConditional(dynamoItem.Version)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			if session.Version != 1 {
				return signup.NewVersionConflictError(fmt.Sprintf("New session %q must be version 1, got %d", session.ID, session.Version), err)
			}
			return signup.NewSessionAlreadyExistsError(fmt.Sprintf("Session with ID %q already exists", session.ID), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return signup.NewTimeoutError("CreateSession timed out")
		} else {
			return signup.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}

func (d *DB) UpdateSession(ctx context.Context, session signup.Session) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	dynamoItem := sessionToDynamo(session)

	item, err := attributevalue.MarshalMap(dynamoItem)
	if err != nil {
		return signup.NewFailedToTranslateToDBModelError("Failed to convert Session to sessionDynamo", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(existingEntityVersionConditional(dynamoItem.Version)))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return sessionWriteError("UpdateSession", session, err)
	}

	return nil
}

func (d *DB) DeleteSession(ctx context.Context, session signup.Session) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(existingEntityVersionConditional(session.Version)))

	_, err := d.dynamoClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       sessionKey(session.ID),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return sessionWriteError("DeleteSession", session, err)
	}

	return nil
}

// A failed condition on an existing session means either a concurrent write
// or a concurrent delete. Both surface as a version conflict.
func sessionWriteError(op string, session signup.Session, err error) error {
	var condCheckFailedErr *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailedErr) {
		return signup.NewVersionConflictError(fmt.Sprintf("Session with ID %q is not at version %d", session.ID, session.Version-1), err)
	} else if errors.Is(err, context.DeadlineExceeded) {
		return signup.NewTimeoutError(fmt.Sprintf("%s timed out", op))
	}
	return signup.NewFailedToWriteError(fmt.Sprintf("Failed %s call", op), err)
}
