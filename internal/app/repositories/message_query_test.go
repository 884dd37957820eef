package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/serkank/amora/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderContainer(t *testing.T, memberID int64, container models.MessageContainer) (string, []interface{}) {
	t.Helper()

	sql, args, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("m.id").From("messages m").
		Where(containerCondition(memberID, container)).
		ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestContainerCondition_Inbox(t *testing.T) {
	sql, args := renderContainer(t, 11, models.ContainerInbox)

	assert.Contains(t, sql, "m.recipient_id = $1")
	assert.Contains(t, sql, "m.recipient_deleted = $2")
	assert.NotContains(t, sql, "date_read")
	assert.Equal(t, []interface{}{int64(11), false}, args)
}

func TestContainerCondition_Outbox(t *testing.T) {
	sql, args := renderContainer(t, 11, models.ContainerOutbox)

	assert.Contains(t, sql, "m.sender_id = $1")
	assert.Contains(t, sql, "m.sender_deleted = $2")
	assert.Equal(t, []interface{}{int64(11), false}, args)
}

func TestMutualDeleteComplete(t *testing.T) {
	// Physical removal requires both independent flags, never one flag twice
	assert.False(t, mutualDeleteComplete(false, false))
	assert.False(t, mutualDeleteComplete(true, false))
	assert.False(t, mutualDeleteComplete(false, true))
	assert.True(t, mutualDeleteComplete(true, true))
}

func TestContainerCondition_DefaultsToUnread(t *testing.T) {
	for _, container := range []models.MessageContainer{models.ContainerUnread, "", "Anything"} {
		sql, args := renderContainer(t, 11, container)

		assert.Contains(t, sql, "m.recipient_id = $1")
		assert.Contains(t, sql, "m.recipient_deleted = $2")
		assert.Contains(t, sql, "m.date_read IS NULL")
		assert.Equal(t, []interface{}{int64(11), false}, args)
	}
}
