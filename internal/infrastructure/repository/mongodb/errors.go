package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sumitgupta24/eventxpert-backend/internal/domain/contract"
)

// mapError translates driver errors into the repository sentinels.
func mapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return contract.ErrDocumentNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, contract.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
