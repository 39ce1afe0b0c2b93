package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/languagetoys/spacy4j/container"
	"github.com/languagetoys/spacy4j/corpus"
	"github.com/languagetoys/spacy4j/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]corpus.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []corpus.Doc
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := corpus.Doc{
				Id:     stmt.ColumnInt(0),
				Title:  stmt.ColumnText(1),
				Labels: splitLabels(stmt.ColumnText(2)),
			}
			if labelMatch != "" && !hasLabel(doc.Labels, labelMatch) {
				return nil
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (h *DocStore) Read(id int) (corpus.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return corpus.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := corpus.Doc{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT title, labels, text FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(0)
			doc.Labels = splitLabels(stmt.ColumnText(1))
			doc.Text = stmt.ColumnText(2)
			return nil
		},
	})
	if err != nil {
		return corpus.Doc{}, err
	}
	if !found {
		return corpus.Doc{}, fmt.Errorf("doc not found: %d: %w", id, storage.ErrNotFound)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY sent_index", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var tokens []container.TokenData
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &tokens); err != nil {
				return err
			}
			doc.Tokens = append(doc.Tokens, tokens...)
			return nil
		},
	})
	if err != nil {
		return corpus.Doc{}, err
	}

	return doc, nil
}

func (h *DocStore) FindLemma(lemmas []string, after storage.Cursor, limit int, onHit func(corpus.Sentence) error) (storage.Cursor, error) {
	if len(lemmas) == 0 || limit <= 0 {
		return after, nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	// Build the rowid query dynamically based on the number of lemmas.
	// INTERSECT keeps only the sentence rowids that contain ALL lemmas
	// and guarantees that the resulting set is unique.
	var queryBuilder strings.Builder
	var args []interface{}

	for i, lemma := range lemmas {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM sentence_lemmas WHERE lemma = ? AND sentence_rowid > ?")
		args = append(args, lemma, int64(after))
	}
	queryBuilder.WriteString(" ORDER BY sentence_rowid LIMIT ?")
	args = append(args, limit)

	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}
	if len(rowIDs) == 0 {
		return after, nil
	}

	// Second bulk query for the sentence data of the matched rowids.
	idStrings := make([]string, len(rowIDs))
	for i, id := range rowIDs {
		idStrings[i] = strconv.FormatInt(id, 10)
	}
	query := fmt.Sprintf(
		"SELECT s.rowid, s.doc_id, s.sent_index, s.data, d.title FROM sentences s JOIN docs d ON d.id = s.doc_id WHERE s.rowid IN (%s) ORDER BY s.rowid",
		strings.Join(idStrings, ","))

	newCursor := after
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowID := stmt.ColumnInt64(0)
			if storage.Cursor(rowID) > newCursor {
				newCursor = storage.Cursor(rowID)
			}

			hit := corpus.Sentence{
				DocId:    stmt.ColumnInt(1),
				Index:    stmt.ColumnInt(2),
				DocTitle: stmt.ColumnText(4),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(3)), &hit.Tokens); err != nil {
				return err
			}
			return onHit(hit)
		},
	})
	if err != nil {
		return after, err
	}

	return newCursor, nil
}

func (h *DocStore) Labels(pattern string) ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	seen := make(map[string]bool)
	err = sqlitex.Execute(conn, "SELECT labels FROM docs", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			for _, label := range splitLabels(stmt.ColumnText(0)) {
				if pattern != "" && !strings.Contains(label, pattern) {
					continue
				}
				seen[label] = true
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

// Write upserts the document by title and replaces its sentence and
// lemma index rows.
func (h *DocStore) Write(doc corpus.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")
	err = sqlitex.Execute(conn,
		"INSERT INTO docs (title, labels, text) VALUES (?, ?, ?) ON CONFLICT(title) DO UPDATE SET labels = excluded.labels, text = excluded.text",
		&sqlitex.ExecOptions{
			Args: []interface{}{doc.Title, labels, doc.Text},
		})
	if err != nil {
		return fmt.Errorf("failed to upsert doc: %w", err)
	}

	var docID int64
	err = sqlitex.Execute(conn, "SELECT id FROM docs WHERE title = ?", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docID = stmt.ColumnInt64(0)
			return nil
		},
	})
	if err != nil {
		return err
	}

	// Clear previous rows so a re-import replaces instead of appending.
	err = sqlitex.Execute(conn,
		"DELETE FROM sentence_lemmas WHERE sentence_rowid IN (SELECT rowid FROM sentences WHERE doc_id = ?)",
		&sqlitex.ExecOptions{Args: []interface{}{docID}})
	if err != nil {
		return err
	}
	err = sqlitex.Execute(conn, "DELETE FROM sentences WHERE doc_id = ?",
		&sqlitex.ExecOptions{Args: []interface{}{docID}})
	if err != nil {
		return err
	}

	for sentIdx, segment := range corpus.SplitSentences(doc.Tokens) {
		data, marshalErr := json.Marshal(segment)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, sent_index, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, sentIdx, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentRowID := conn.LastInsertRowID()

		// Extract unique lemmas
		uniqueLemmas := make(map[string]bool)
		for _, token := range segment {
			if token.Lemma != "" {
				uniqueLemmas[token.Lemma] = true
			}
		}

		for lemma := range uniqueLemmas {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_lemmas (lemma, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{lemma, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert lemma: %w", err)
			}
		}
	}

	return nil
}

func splitLabels(csv string) []string {
	if csv == "" {
		return nil
	}
	return strings.Split(csv, ",")
}

func hasLabel(labels []string, match string) bool {
	for _, label := range labels {
		if strings.Contains(label, match) {
			return true
		}
	}
	return false
}
