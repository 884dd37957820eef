package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/helpers"
)

// IMessageRepository defines the interface for message-related database operations
type IMessageRepository interface {
	Create(ctx context.Context, message *models.Message) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	GetForMember(ctx context.Context, filter models.MessageFilter) ([]*models.Message, int64, error)
	GetThread(ctx context.Context, currentID, otherID int64) ([]*models.Message, error)
	MarkRead(ctx context.Context, id int64) error
	MarkDeleted(ctx context.Context, id int64, bySender bool) error
}

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, recipient_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, message_sent
	`

	err := r.db.QueryRow(ctx, query,
		message.SenderID,
		message.RecipientID,
		message.Content,
	).Scan(&message.ID, &message.MessageSent)
	if err != nil {
		return 0, fmt.Errorf("error creating message: %w", err)
	}

	return message.ID, nil
}

// GetByID retrieves a message by ID, including its per-side delete flags
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	var m models.Message
	err := r.db.QueryRow(ctx,
		`SELECT id, sender_id, recipient_id, content, is_read, date_read, message_sent,
		        sender_deleted, recipient_deleted
		 FROM messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.IsRead, &m.DateRead,
		&m.MessageSent, &m.SenderDeleted, &m.RecipientDeleted)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("error retrieving message: %w", err)
	}

	return &m, nil
}

// containerCondition yields the WHERE predicate for a message container view.
// Messages a side has deleted never show up in that side's containers.
func containerCondition(memberID int64, container models.MessageContainer) squirrel.Sqlizer {
	switch container {
	case models.ContainerInbox:
		return squirrel.And{
			squirrel.Eq{"m.recipient_id": memberID},
			squirrel.Eq{"m.recipient_deleted": false},
		}
	case models.ContainerOutbox:
		return squirrel.And{
			squirrel.Eq{"m.sender_id": memberID},
			squirrel.Eq{"m.sender_deleted": false},
		}
	default: // unread
		return squirrel.And{
			squirrel.Eq{"m.recipient_id": memberID},
			squirrel.Eq{"m.recipient_deleted": false},
			squirrel.Eq{"m.date_read": nil},
		}
	}
}

const messageJoinColumns = `m.id, m.sender_id, m.recipient_id, m.content, m.is_read,
	m.date_read, m.message_sent,
	s.username, s.known_as, sp.url,
	rec.username, rec.known_as, rp.url`

func scanJoinedMessage(rows pgx.Rows) (*models.Message, error) {
	var (
		m                           models.Message
		sender, recipient           models.Member
		senderPhoto, recipientPhoto *string
	)

	err := rows.Scan(
		&m.ID, &m.SenderID, &m.RecipientID, &m.Content, &m.IsRead,
		&m.DateRead, &m.MessageSent,
		&sender.Username, &sender.KnownAs, &senderPhoto,
		&recipient.Username, &recipient.KnownAs, &recipientPhoto,
	)
	if err != nil {
		return nil, err
	}

	sender.ID = m.SenderID
	recipient.ID = m.RecipientID
	if senderPhoto != nil {
		sender.Photos = []*models.Photo{{MemberID: sender.ID, URL: *senderPhoto, IsMain: true, IsApproved: true}}
	}
	if recipientPhoto != nil {
		recipient.Photos = []*models.Photo{{MemberID: recipient.ID, URL: *recipientPhoto, IsMain: true, IsApproved: true}}
	}
	m.Sender = &sender
	m.Recipient = &recipient

	return &m, nil
}

// GetForMember returns one page of a member's container view plus the total
// match count, newest messages first.
func (r *MessageRepository) GetForMember(ctx context.Context, filter models.MessageFilter) ([]*models.Message, int64, error) {
	cond := containerCondition(filter.MemberID, filter.Container)

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("messages m").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building message count SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting messages: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)

	listSQL, listArgs, err := r.sb.Select(messageJoinColumns).
		From("messages m").
		Join("members s ON s.id = m.sender_id").
		Join("members rec ON rec.id = m.recipient_id").
		LeftJoin("photos sp ON sp.member_id = s.id AND sp.is_main = TRUE").
		LeftJoin("photos rp ON rp.member_id = rec.id AND rp.is_main = TRUE").
		Where(cond).
		OrderBy("m.message_sent DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building message list SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing message list query: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m, err := scanJoinedMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, total, nil
}

// GetThread returns the full conversation between two members, newest first
// and unpaged. Messages the current member deleted on their side are excluded.
func (r *MessageRepository) GetThread(ctx context.Context, currentID, otherID int64) ([]*models.Message, error) {
	threadCond := squirrel.Or{
		squirrel.And{
			squirrel.Eq{"m.sender_id": currentID},
			squirrel.Eq{"m.recipient_id": otherID},
			squirrel.Eq{"m.sender_deleted": false},
		},
		squirrel.And{
			squirrel.Eq{"m.sender_id": otherID},
			squirrel.Eq{"m.recipient_id": currentID},
			squirrel.Eq{"m.recipient_deleted": false},
		},
	}

	sql, args, err := r.sb.Select(messageJoinColumns).
		From("messages m").
		Join("members s ON s.id = m.sender_id").
		Join("members rec ON rec.id = m.recipient_id").
		LeftJoin("photos sp ON sp.member_id = s.id AND sp.is_main = TRUE").
		LeftJoin("photos rp ON rp.member_id = rec.id AND rp.is_main = TRUE").
		Where(threadCond).
		OrderBy("m.message_sent DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building thread SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing thread query: %w", err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		m, err := scanJoinedMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}

	return messages, nil
}

// MarkRead stamps a single message as read
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE, date_read = NOW() WHERE id = $1 AND date_read IS NULL`, id)
	if err != nil {
		return fmt.Errorf("error marking message read: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Already read or missing; the service decides which it was
		return nil
	}

	return nil
}

// mutualDeleteComplete reports whether both sides have independently deleted
// the message, which is the point it is physically removed. Both flags must be
// true; one side deleting alone never removes the row.
func mutualDeleteComplete(senderDeleted, recipientDeleted bool) bool {
	return senderDeleted && recipientDeleted
}

// MarkDeleted flips one side's delete flag. When both sides have deleted the
// message, the row is physically removed; flag flip and removal share one
// transaction so a concurrent delete from the other side cannot strand the row.
func (r *MessageRepository) MarkDeleted(ctx context.Context, id int64, bySender bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	column := "recipient_deleted"
	if bySender {
		column = "sender_deleted"
	}

	var senderDeleted, recipientDeleted bool
	err = tx.QueryRow(ctx,
		fmt.Sprintf(`UPDATE messages SET %s = TRUE WHERE id = $1
		 RETURNING sender_deleted, recipient_deleted`, column),
		id,
	).Scan(&senderDeleted, &recipientDeleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrMessageNotFound
		}
		return fmt.Errorf("error marking message deleted: %w", err)
	}

	if mutualDeleteComplete(senderDeleted, recipientDeleted) {
		if _, err := tx.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error removing mutually deleted message: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing message delete: %w", err)
	}

	return nil
}
