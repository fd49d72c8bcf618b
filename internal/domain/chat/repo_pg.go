package chat

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelink/carelink/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const convCols = `id, user_id, title, status, created_at, updated_at`

func (r *repoPG) scanConversation(row pgx.Row) (*Conversation, error) {
	var conv Conversation
	err := row.Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.Status,
		&conv.CreatedAt, &conv.UpdatedAt)
	return &conv, err
}

func (r *repoPG) CreateConversation(ctx context.Context, conv *Conversation) error {
	conv.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO conversation (id, user_id, title, status)
		VALUES ($1,$2,$3,$4)`,
		conv.ID, conv.UserID, conv.Title, conv.Status)
	return err
}

func (r *repoPG) GetConversation(ctx context.Context, id uuid.UUID) (*Conversation, error) {
	return r.scanConversation(r.conn(ctx).QueryRow(ctx,
		`SELECT `+convCols+` FROM conversation WHERE id = $1`, id))
}

func (r *repoPG) ListConversations(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Conversation, int, error) {
	q := r.conn(ctx)
	var total int
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM conversation WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `
		SELECT `+convCols+` FROM conversation
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var convs []*Conversation
	for rows.Next() {
		conv, err := r.scanConversation(rows)
		if err != nil {
			return nil, 0, err
		}
		convs = append(convs, conv)
	}
	return convs, total, rows.Err()
}

func (r *repoPG) UpdateConversation(ctx context.Context, conv *Conversation) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE conversation SET title=$2, status=$3, updated_at=NOW()
		WHERE id = $1`,
		conv.ID, conv.Title, conv.Status)
	return err
}

func (r *repoPG) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM conversation WHERE id = $1`, id)
	return err
}

const msgCols = `id, conversation_id, role, content, severity, emergency, symptoms, source, created_at`

func (r *repoPG) CreateMessage(ctx context.Context, msg *Message) error {
	msg.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO message
			(id, conversation_id, role, content, severity, emergency, symptoms, source)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		msg.ID, msg.ConversationID, msg.Role, msg.Content,
		msg.Severity, msg.Emergency, msg.Symptoms, msg.Source)
	return err
}

func (r *repoPG) ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*Message, int, error) {
	q := r.conn(ctx)
	var total int
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM message WHERE conversation_id = $1`, conversationID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := q.Query(ctx, `
		SELECT `+msgCols+` FROM message
		WHERE conversation_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3`, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var msgs []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content,
			&m.Severity, &m.Emergency, &m.Symptoms, &m.Source, &m.CreatedAt); err != nil {
			return nil, 0, err
		}
		msgs = append(msgs, &m)
	}
	return msgs, total, rows.Err()
}
