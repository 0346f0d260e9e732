package dynamo

import (
	"context"
	"testing"
	"time"

	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireReason(t *testing.T, err error, reason signup.ErrorReason) {
	t.Helper()

	var signupErr *signup.Error
	require.ErrorAs(t, err, &signupErr)
	assert.Equal(t, reason, signupErr.Reason)
}

func testSession() signup.Session {
	now := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)
	return signup.NewSession(uuid.New(), now, 24*time.Hour)
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()

		require.NoError(t, db.CreateSession(ctx, session))

		got, err := db.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("ttl attribute is epoch seconds of expiry", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		require.NoError(t, db.CreateSession(ctx, session))

		resp, err := dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(tableName),
			Key:       sessionKey(session.ID),
		})
		require.NoError(t, err)

		ttl, ok := resp.Item[ttlAttribute].(*types.AttributeValueMemberN)
		require.True(t, ok)
		assert.Equal(t, "1742051366", ttl.Value)
	})

	t.Run("already exists", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		require.NoError(t, db.CreateSession(ctx, session))

		err := db.CreateSession(ctx, session)
		requireReason(t, err, signup.REASON_SESSION_ALREADY_EXISTS)
	})

	t.Run("must start at version 1", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		session.Version = 2

		err := db.CreateSession(ctx, session)
		requireReason(t, err, signup.REASON_VERSION_CONFLICT)
	})
}

func TestGetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("does not exist", func(t *testing.T) {
		resetTable(ctx)

		_, err := db.GetSession(ctx, uuid.New())
		requireReason(t, err, signup.REASON_SESSION_DOES_NOT_EXIST)
	})

	t.Run("round trips every field", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		require.NoError(t, db.CreateSession(ctx, session))

		session.Version = 2
		session.Phase = signup.AWAITING_CONFIRMATION
		session.InFlight = signup.RESENDING
		session.InFlightSince = time.Date(2025, time.March, 14, 16, 0, 0, 0, time.UTC)
		session.GivenName = "Robin"
		session.FamilyName = "Hood"
		session.EmailAddress = "robin@example.com"
		session.PhoneNumber = "+15551234567"
		require.NoError(t, db.UpdateSession(ctx, session))

		got, err := db.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})
}

func TestUpdateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the next version", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		require.NoError(t, db.CreateSession(ctx, session))

		next := session
		next.Version = 2
		next.GivenName = "first"
		require.NoError(t, db.UpdateSession(ctx, next))

		stale := session
		stale.Version = 2
		stale.GivenName = "stale"
		err := db.UpdateSession(ctx, stale)
		requireReason(t, err, signup.REASON_VERSION_CONFLICT)

		got, err := db.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", got.GivenName)
	})

	t.Run("missing session", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		session.Version = 2

		err := db.UpdateSession(ctx, session)
		requireReason(t, err, signup.REASON_VERSION_CONFLICT)
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("delete with next version", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		require.NoError(t, db.CreateSession(ctx, session))

		deleted := session
		deleted.Version = 2
		require.NoError(t, db.DeleteSession(ctx, deleted))

		_, err := db.GetSession(ctx, session.ID)
		requireReason(t, err, signup.REASON_SESSION_DOES_NOT_EXIST)
	})

	t.Run("stale version is refused", func(t *testing.T) {
		resetTable(ctx)
		session := testSession()
		require.NoError(t, db.CreateSession(ctx, session))

		err := db.DeleteSession(ctx, session)
		requireReason(t, err, signup.REASON_VERSION_CONFLICT)

		_, err = db.GetSession(ctx, session.ID)
		require.NoError(t, err)
	})
}
