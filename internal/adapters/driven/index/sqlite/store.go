// Package sqlite provides the persisted VectorStore implementation.
//
// Chunks and their embeddings live in a single SQLite database file.
// Every mutation is durable as soon as the transaction commits, which
// satisfies the persist-after-every-successful-mutation contract without
// a separate save step. A missing or corrupted database file is treated
// as "no index yet": the store moves the damaged file aside and starts
// empty rather than failing.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/scribe-labs/scribe-cli/internal/adapters/driven/index/vecmath"
	"github.com/scribe-labs/scribe-cli/internal/core/domain"
	"github.com/scribe-labs/scribe-cli/internal/core/ports/driven"
	"github.com/scribe-labs/scribe-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// dbFilename is the index file within the data directory.
const dbFilename = "vectorstore.db"

const schema = `
CREATE TABLE IF NOT EXISTS chunks (
	id          TEXT PRIMARY KEY,
	document_id TEXT NOT NULL,
	position    INTEGER NOT NULL,
	content     TEXT NOT NULL,
	embedding   BLOB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_chunks_document ON chunks(document_id);
`

// Store is a SQLite-backed vector store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (or creates) the vector index in the given data
// directory. If dataDir is empty, defaults to ~/.scribe/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".scribe", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFilename)

	db, err := open(dbPath)
	if err != nil {
		// Corrupted index: move it aside and start from scratch.
		logger.Warn("vector index unreadable (%v), starting empty", err)
		if renameErr := os.Rename(dbPath, dbPath+".corrupt"); renameErr != nil && !os.IsNotExist(renameErr) {
			return nil, fmt.Errorf("moving corrupt index aside: %w", renameErr)
		}
		db, err = open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("recreating vector index: %w", err)
		}
	}

	return &Store{db: db, path: dbPath}, nil
}

// open opens the database file and verifies it is usable.
func open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	// A corrupt file typically surfaces on the first real statement.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM chunks").Scan(&count); err != nil {
		db.Close()
		return nil, fmt.Errorf("verifying index: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the index file path.
func (s *Store) Path() string {
	return s.path
}

// Add appends chunks and their embeddings in a single transaction.
func (s *Store) Add(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO chunks (id, document_id, position, content, embedding) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, chunk := range chunks {
		if _, err := stmt.ExecContext(ctx,
			chunk.ID, chunk.DocumentID, chunk.Position, chunk.Content, encodeVector(chunk.Embedding),
		); err != nil {
			return fmt.Errorf("insert chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Search loads all stored vectors and ranks them by cosine similarity.
// The index sizes this store serves (one topic's crawled corpus) stay
// small enough that a linear scan beats maintaining an ANN structure.
func (s *Store) Search(ctx context.Context, query []float32, k int) ([]domain.ScoredChunk, error) {
	if k <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, document_id, position, content, embedding FROM chunks")
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var scored []domain.ScoredChunk
	for rows.Next() {
		var chunk domain.Chunk
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.DocumentID, &chunk.Position, &chunk.Content, &blob); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		chunk.Embedding = decodeVector(blob)

		scored = append(scored, domain.ScoredChunk{
			Chunk:      chunk,
			Similarity: vecmath.Cosine(query, chunk.Embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chunks: %w", err)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}

// Count reports the number of stored chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count); err != nil {
		return 0, fmt.Errorf("count chunks: %w", err)
	}
	return count, nil
}

// Rebuild discards all stored chunks, leaving an empty index.
func (s *Store) Rebuild(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return fmt.Errorf("clear chunks: %w", err)
	}
	return nil
}

// encodeVector packs a float32 slice as little-endian bytes.
func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// decodeVector unpacks little-endian bytes into a float32 slice.
// A truncated blob yields the vectors that fit; similarity scoring
// treats a length mismatch as zero similarity.
func decodeVector(buf []byte) []float32 {
	v := make([]float32, len(buf)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return v
}
