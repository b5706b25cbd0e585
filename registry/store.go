package registry

import (
	"database/sql"
	"encoding/json"

	"go.uber.org/zap"

	lattixdb "github.com/teranos/lattix/db"
	"github.com/teranos/lattix/errors"
	"github.com/teranos/lattix/logger"
)

// Store persists trait declarations to SQLite in registration order, so a
// universe can be rebuilt by replaying them. Only the declarative form is
// stored; layouts and path indexes are recomputed on load.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore creates a declaration store over an already-migrated database.
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{db: db, logger: logger}
}

const (
	declarationInsertQuery = `
		INSERT INTO trait_declarations (name, supertraits, attributes)
		VALUES (?, ?, ?)`

	declarationSelectQuery = `
		SELECT name, supertraits, attributes
		FROM trait_declarations
		ORDER BY id`

	declarationExistsQuery = `
		SELECT EXISTS(SELECT 1 FROM trait_declarations WHERE name = ?)`
)

// storeErr marks driver failures caused by a closed handle, so callers can
// check db.IsDatabaseClosed on anything the store returns.
func storeErr(err error) error {
	if lattixdb.IsDatabaseClosed(err) {
		return errors.Mark(err, lattixdb.ErrDatabaseClosed)
	}
	return err
}

// Save persists one declaration. Fails with ErrDuplicateType when the name is
// already stored.
func (s *Store) Save(d Declaration) error {
	var exists bool
	if err := s.db.QueryRow(declarationExistsQuery, d.Name).Scan(&exists); err != nil {
		return errors.Wrapf(storeErr(err), "checking for existing declaration %s", d.Name)
	}
	if exists {
		return errors.Wrapf(errors.ErrDuplicateType, "declaration %s already stored", d.Name)
	}

	supersJSON, err := json.Marshal(d.SuperTraits)
	if err != nil {
		return errors.Wrapf(err, "marshaling supertraits of %s", d.Name)
	}
	attrsJSON, err := json.Marshal(d.Attributes)
	if err != nil {
		return errors.Wrapf(err, "marshaling attributes of %s", d.Name)
	}

	if _, err := s.db.Exec(declarationInsertQuery, d.Name, string(supersJSON), string(attrsJSON)); err != nil {
		return errors.Wrapf(storeErr(err), "inserting declaration %s", d.Name)
	}

	if s.logger != nil {
		s.logger.Debugw("Stored trait declaration",
			logger.FieldName, d.Name,
			logger.FieldSupertraits, len(d.SuperTraits),
			logger.FieldAttributes, len(d.Attributes),
		)
	}
	return nil
}

// List returns every stored declaration in registration order.
func (s *Store) List() ([]Declaration, error) {
	rows, err := s.db.Query(declarationSelectQuery)
	if err != nil {
		return nil, errors.Wrap(storeErr(err), "querying trait declarations")
	}
	defer rows.Close()

	var decls []Declaration
	for rows.Next() {
		var d Declaration
		var supersJSON, attrsJSON string
		if err := rows.Scan(&d.Name, &supersJSON, &attrsJSON); err != nil {
			return nil, errors.Wrap(err, "scanning trait declaration")
		}
		if err := json.Unmarshal([]byte(supersJSON), &d.SuperTraits); err != nil {
			return nil, errors.Wrapf(err, "unmarshaling supertraits of %s", d.Name)
		}
		if err := json.Unmarshal([]byte(attrsJSON), &d.Attributes); err != nil {
			return nil, errors.Wrapf(err, "unmarshaling attributes of %s", d.Name)
		}
		decls = append(decls, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating trait declarations")
	}
	return decls, nil
}

// Load rebuilds a TypeSystem by replaying every stored declaration in
// registration order. A declaration that no longer builds (should not happen
// for a store written through Save) fails the whole load.
func (s *Store) Load() (*TypeSystem, error) {
	decls, err := s.List()
	if err != nil {
		return nil, err
	}

	ts := New()
	for _, d := range decls {
		if _, err := ts.RegisterDeclaration(d); err != nil {
			return nil, errors.Wrapf(err, "replaying declaration %s", d.Name)
		}
	}

	if s.logger != nil {
		s.logger.Infow("Loaded trait universe", logger.FieldNumTypes, ts.Len())
	}
	return ts, nil
}
