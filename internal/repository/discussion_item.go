package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/daymark-app/daymark/internal/model"
)

var (
	ErrDiscussionItemNotFound = errors.New("discussion item not found")
)

type DiscussionItemRepository interface {
	Create(item *model.DiscussionItem) error
	ByID(userID, itemID string) (*model.DiscussionItem, error)
	ByDay(dayID string) ([]*model.DiscussionItem, error)
	Update(userID string, item *model.DiscussionItem) error
	Delete(userID, itemID string) error
}

type discussionItemRepository struct {
	db *sqlx.DB
}

func NewDiscussionItemRepository(db *sqlx.DB) DiscussionItemRepository {
	return &discussionItemRepository{db: db}
}

func (r *discussionItemRepository) Create(item *model.DiscussionItem) error {
	query := `INSERT INTO discussion_items (id, day_id, person, topic, done, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		item.ID,
		item.DayID,
		item.Person,
		item.Topic,
		item.Done,
		item.CreatedAt,
	)

	return err
}

func (r *discussionItemRepository) ByID(userID, itemID string) (*model.DiscussionItem, error) {
	item := &model.DiscussionItem{}
	query := `SELECT i.* FROM discussion_items i
	          JOIN days d ON d.id = i.day_id
	          WHERE i.id = $1 AND d.user_id = $2`

	err := r.db.Get(item, query, itemID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDiscussionItemNotFound
	}

	return item, err
}

func (r *discussionItemRepository) ByDay(dayID string) ([]*model.DiscussionItem, error) {
	var items []*model.DiscussionItem
	query := `SELECT * FROM discussion_items WHERE day_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&items, query, dayID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *discussionItemRepository) Update(userID string, item *model.DiscussionItem) error {
	query := `UPDATE discussion_items
	          SET person = $1, topic = $2, done = $3
	          WHERE id = $4 AND day_id IN (SELECT id FROM days WHERE user_id = $5)`

	result, err := r.db.Exec(query, item.Person, item.Topic, item.Done, item.ID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDiscussionItemNotFound
	}

	return nil
}

func (r *discussionItemRepository) Delete(userID, itemID string) error {
	query := `DELETE FROM discussion_items
	          WHERE id = $1 AND day_id IN (SELECT id FROM days WHERE user_id = $2)`

	result, err := r.db.Exec(query, itemID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDiscussionItemNotFound
	}

	return nil
}
