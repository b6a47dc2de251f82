package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Draft carries the fields required to create a new content item. Status is
// always draft on creation; the id and timestamps are assigned here.
type Draft struct {
	Kind             Kind
	Title            string
	MetaDescription  string
	Body             string
	LongDescription  string
	ShortDescription string
	AuthorID         string
}

// CreateDraft inserts a new content item in draft status.
func (s *Store) CreateDraft(ctx context.Context, draft Draft) (*Item, error) {
	if draft.Title == "" {
		return nil, errors.New("draft title required")
	}
	if draft.AuthorID == "" {
		return nil, errors.New("draft author required")
	}
	if _, ok := ParseKind(string(draft.Kind)); !ok {
		return nil, fmt.Errorf("unknown content kind %q", draft.Kind)
	}

	id := uuid.NewString()
	timestamp := formatTimestamp(time.Now())

	_, err := s.execWithRetry(
		ctx,
		`INSERT INTO items (
            id, kind, title, meta_description, body, long_description,
            short_description, status, author_id, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		draft.Kind,
		draft.Title,
		nullableString(draft.MetaDescription),
		nullableString(draft.Body),
		nullableString(draft.LongDescription),
		nullableString(draft.ShortDescription),
		StatusDraft,
		draft.AuthorID,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert draft: %w", err)
	}

	return s.GetItem(ctx, id)
}

// GetItem fetches a content item by identifier. A missing item returns
// (nil, nil) so callers can distinguish absence from infrastructure errors.
func (s *Store) GetItem(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// UpdateItem persists changes to an existing item and refreshes UpdatedAt.
// The boolean result reports whether the row still existed; writing back to
// a deleted item is a no-op, not an error.
func (s *Store) UpdateItem(ctx context.Context, item *Item) (bool, error) {
	if item == nil {
		return false, errors.New("item is nil")
	}
	item.UpdatedAt = time.Now().UTC()
	res, err := s.execWithRetry(
		ctx,
		`UPDATE items
         SET kind = ?, title = ?, meta_description = ?, body = ?,
             long_description = ?, short_description = ?, status = ?,
             author_id = ?, site_id = ?, external_post_id = ?, external_url = ?,
             scheduled_for = ?, updated_at = ?
         WHERE id = ?`,
		item.Kind,
		item.Title,
		nullableString(item.MetaDescription),
		nullableString(item.Body),
		nullableString(item.LongDescription),
		nullableString(item.ShortDescription),
		item.Status,
		item.AuthorID,
		nullableString(item.SiteID),
		nullableString(item.ExternalPostID),
		nullableString(item.ExternalURL),
		nullableTime(item.ScheduledFor),
		formatTimestamp(item.UpdatedAt),
		item.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListItems returns content items in creation order, optionally filtered by
// status.
func (s *Store) ListItems(ctx context.Context, statuses ...Status) ([]*Item, error) {
	var (
		rows *sql.Rows
		err  error
	)

	baseQuery := `SELECT ` + itemColumns + ` FROM items`
	orderClause := ` ORDER BY created_at`

	if len(statuses) == 0 {
		rows, err = s.db.QueryContext(ctx, baseQuery+orderClause)
	} else {
		placeholders := makePlaceholders(len(statuses))
		args := make([]any, len(statuses))
		for i, status := range statuses {
			args[i] = status
		}
		query := baseQuery + ` WHERE status IN (` + placeholders + `)` + orderClause
		rows, err = s.db.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// RemoveItem deletes an item by identifier and reports whether a row was
// removed.
func (s *Store) RemoveItem(ctx context.Context, id string) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Stats returns a count of items grouped by status.
func (s *Store) Stats(ctx context.Context) (map[Status]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(1) FROM items GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("item stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[Status]int)
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

const itemColumns = "id, kind, title, meta_description, body, long_description, short_description, status, author_id, site_id, external_post_id, external_url, scheduled_for, created_at, updated_at"

func scanItem(scanner interface{ Scan(dest ...any) error }) (*Item, error) {
	var (
		id           string
		kind         string
		title        string
		metaDesc     sql.NullString
		body         sql.NullString
		longDesc     sql.NullString
		shortDesc    sql.NullString
		statusStr    string
		authorID     string
		siteID       sql.NullString
		externalPost sql.NullString
		externalURL  sql.NullString
		scheduledRaw sql.NullString
		createdRaw   sql.NullString
		updatedRaw   sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&kind,
		&title,
		&metaDesc,
		&body,
		&longDesc,
		&shortDesc,
		&statusStr,
		&authorID,
		&siteID,
		&externalPost,
		&externalURL,
		&scheduledRaw,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	item := &Item{
		ID:               id,
		Kind:             Kind(kind),
		Title:            title,
		MetaDescription:  metaDesc.String,
		Body:             body.String,
		LongDescription:  longDesc.String,
		ShortDescription: shortDesc.String,
		Status:           Status(statusStr),
		AuthorID:         authorID,
		SiteID:           siteID.String,
		ExternalPostID:   externalPost.String,
		ExternalURL:      externalURL.String,
	}

	if scheduledRaw.Valid {
		if scheduled, err := parseTimeString(scheduledRaw.String); err == nil {
			item.ScheduledFor = &scheduled
		}
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		item.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		item.UpdatedAt = updated
	}
	return item, nil
}

func makePlaceholders(count int) string {
	if count <= 0 {
		return ""
	}
	placeholders := make([]byte, 0, count*2)
	for i := 0; i < count; i++ {
		if i > 0 {
			placeholders = append(placeholders, ',')
		}
		placeholders = append(placeholders, '?')
	}
	return string(placeholders)
}
