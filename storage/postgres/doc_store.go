// Package postgres stores documents in PostgreSQL through database/sql
// and lib/pq. The layout mirrors the sqlite store: a docs table, one
// row per sentence segment, and a lemma index for searches.
package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS docs (
    id     SERIAL PRIMARY KEY,
    title  TEXT NOT NULL UNIQUE,
    labels TEXT[] NOT NULL DEFAULT '{}',
    text   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sentences (
    id         BIGSERIAL PRIMARY KEY,
    doc_id     INTEGER NOT NULL REFERENCES docs(id) ON DELETE CASCADE,
    sent_index INTEGER NOT NULL,
    data       JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sentences_doc
    ON sentences(doc_id, sent_index);

CREATE TABLE IF NOT EXISTS sentence_lemmas (
    lemma       TEXT NOT NULL,
    sentence_id BIGINT NOT NULL REFERENCES sentences(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_sentence_lemmas_lemma
    ON sentence_lemmas(lemma, sentence_id);
`

type DocStore struct {
	db *sql.DB
}

var _ storage.DocRepository = (*DocStore)(nil)

// Open connects to the database behind the DSN and applies the schema.
func Open(dsn string) (*DocStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &DocStore{db: db}, nil
}

func (s *DocStore) Close() error {
	return s.db.Close()
}

func (s *DocStore) List(labelMatch string) ([]corpus.Doc, error) {
	rows, err := s.db.Query("SELECT id, title, labels FROM docs ORDER BY title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []corpus.Doc
	for rows.Next() {
		var doc corpus.Doc
		var labels pq.StringArray
		if err := rows.Scan(&doc.Id, &doc.Title, &labels); err != nil {
			return nil, err
		}
		doc.Labels = labels
		if labelMatch != "" && !hasLabel(doc.Labels, labelMatch) {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *DocStore) Read(id int) (corpus.Doc, error) {
	doc := corpus.Doc{Id: id}
	var labels pq.StringArray

	err := s.db.QueryRow("SELECT title, labels, text FROM docs WHERE id = $1", id).
		Scan(&doc.Title, &labels, &doc.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return corpus.Doc{}, fmt.Errorf("doc not found: %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return corpus.Doc{}, err
	}
	doc.Labels = labels

	rows, err := s.db.Query("SELECT data FROM sentences WHERE doc_id = $1 ORDER BY sent_index", id)
	if err != nil {
		return corpus.Doc{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return corpus.Doc{}, err
		}
		var tokens []container.TokenData
		if err := json.Unmarshal(data, &tokens); err != nil {
			return corpus.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
		}
		doc.Tokens = append(doc.Tokens, tokens...)
	}
	return doc, rows.Err()
}

func (s *DocStore) FindLemma(lemmas []string, after storage.Cursor, limit int, onHit func(corpus.Sentence) error) (storage.Cursor, error) {
	if len(lemmas) == 0 || limit <= 0 {
		return after, nil
	}

	// INTERSECT keeps only the sentence ids that contain ALL lemmas.
	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		fmt.Fprintf(&queryBuilder, "SELECT sentence_id FROM sentence_lemmas WHERE lemma = $%d AND sentence_id > $%d", len(args)+1, len(args)+2)
		args = append(args, lemma, int64(after))
	}
	fmt.Fprintf(&queryBuilder, " ORDER BY sentence_id LIMIT $%d", len(args)+1)
	args = append(args, limit)

	idRows, err := s.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return after, err
	}
	var ids []int64
	for idRows.Next() {
		var id int64
		if err := idRows.Scan(&id); err != nil {
			idRows.Close()
			return after, err
		}
		ids = append(ids, id)
	}
	idRows.Close()
	if err := idRows.Err(); err != nil {
		return after, err
	}
	if len(ids) == 0 {
		return after, nil
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.doc_id, s.sent_index, s.data, d.title
		 FROM sentences s JOIN docs d ON d.id = s.doc_id
		 WHERE s.id = ANY($1) ORDER BY s.id`, pq.Array(ids))
	if err != nil {
		return after, err
	}
	defer rows.Close()

	newCursor := after
	for rows.Next() {
		var sentID int64
		var data []byte
		hit := corpus.Sentence{}
		if err := rows.Scan(&sentID, &hit.DocId, &hit.Index, &data, &hit.DocTitle); err != nil {
			return after, err
		}
		if err := json.Unmarshal(data, &hit.Tokens); err != nil {
			return after, fmt.Errorf("JSON decoding error: %w", err)
		}
		if storage.Cursor(sentID) > newCursor {
			newCursor = storage.Cursor(sentID)
		}
		if err := onHit(hit); err != nil {
			return after, err
		}
	}
	if err := rows.Err(); err != nil {
		return after, err
	}
	return newCursor, nil
}

func (s *DocStore) Labels(pattern string) ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT unnest(labels) AS label FROM docs ORDER BY label")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		if pattern != "" && !strings.Contains(label, pattern) {
			continue
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

// Write upserts the document by title and replaces its sentence and
// lemma index rows in one transaction.
func (s *DocStore) Write(doc corpus.Doc) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// pq.Array maps a nil slice to NULL, the column wants '{}'.
	labels := doc.Labels
	if labels == nil {
		labels = []string{}
	}

	var docID int64
	err = tx.QueryRow(
		`INSERT INTO docs (title, labels, text) VALUES ($1, $2, $3)
		 ON CONFLICT (title) DO UPDATE SET labels = excluded.labels, text = excluded.text
		 RETURNING id`,
		doc.Title, pq.Array(labels), doc.Text).Scan(&docID)
	if err != nil {
		return fmt.Errorf("failed to upsert doc: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM sentences WHERE doc_id = $1", docID); err != nil {
		return err
	}

	for sentIdx, segment := range corpus.SplitSentences(doc.Tokens) {
		data, err := json.Marshal(segment)
		if err != nil {
			return err
		}

		var sentID int64
		err = tx.QueryRow(
			"INSERT INTO sentences (doc_id, sent_index, data) VALUES ($1, $2, $3) RETURNING id",
			docID, sentIdx, data).Scan(&sentID)
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}

		uniqueLemmas := make(map[string]bool)
		for _, token := range segment {
			if token.Lemma != "" {
				uniqueLemmas[token.Lemma] = true
			}
		}
		for lemma := range uniqueLemmas {
			if _, err := tx.Exec("INSERT INTO sentence_lemmas (lemma, sentence_id) VALUES ($1, $2)", lemma, sentID); err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return tx.Commit()
}

func hasLabel(labels []string, match string) bool {
	for _, label := range labels {
		if strings.Contains(label, match) {
			return true
		}
	}
	return false
}
