package dict

import (
	"database/sql"
	"strings"
)

type SQLDictStore struct {
	DB *sql.DB
}

func NewSQLDictStore(db *sql.DB) DictStore {
	return &SQLDictStore{DB: db}
}

func (s *SQLDictStore) Add(word string) error {
	_, err := s.DB.Exec(`
		INSERT INTO custom_words(word) VALUES (?)
		ON CONFLICT(word) DO NOTHING
	`, strings.ToLower(word))
	return err
}

func (s *SQLDictStore) Remove(word string) error {
	_, err := s.DB.Exec(`DELETE FROM custom_words WHERE word = ?`, strings.ToLower(word))
	return err
}

func (s *SQLDictStore) All() ([]string, error) {
	rows, err := s.DB.Query(`SELECT word FROM custom_words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			continue
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
