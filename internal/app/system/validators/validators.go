// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/launchlane/mentorhub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	// helper: ensure collection exists (with truthful logging) and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", usersSchema())
	ensure("mentor_profiles", mentorProfilesSchema())
	ensure("mentor_assignments", mentorAssignmentsSchema())
	ensure("impact_logs", impactLogsSchema())
	ensure("chat_annotations", chatAnnotationsSchema())

	// Audit events are free-form; we still ensure the collection exists.
	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		zap.L().Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			zap.L().Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		zap.L().Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	zap.L().Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	zap.L().Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"display_name", "role"},
			"properties": bson.M{
				"display_name":    bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"display_name_ci": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"email":           bson.M{"bsonType": bson.A{"string", "null"}},
				"role":            bson.M{"enum": bson.A{"founder", "mentor", "admin", "superadmin"}},
			},
		},
	}
}

func mentorProfilesSchema() bson.M {
	pricingEnum := bson.A{""}
	for _, p := range models.PricingModels {
		pricingEnum = append(pricingEnum, p)
	}

	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"display_name", "visibility", "created_at"},
			"properties": bson.M{
				"display_name":     bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"display_name_ci":  bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"headline":         bson.M{"bsonType": "string"},
				"bio":              bson.M{"bsonType": "string"},
				"industries":       bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"skills":           bson.M{"bsonType": "array", "items": bson.M{"bsonType": "string"}},
				"pricing_model":    bson.M{"enum": pricingEnum},
				"hourly_rate":      bson.M{"bsonType": bson.A{"int", "long", "null"}},
				"profile_strength": bson.M{"bsonType": "int", "minimum": 0, "maximum": 100},
				"visibility":       bson.M{"enum": bson.A{"public", "private"}},
				"created_at":       bson.M{"bsonType": "date"},
				"updated_at":       bson.M{"bsonType": "date"},
			},
		},
	}
}

func mentorAssignmentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"mentor_id", "founder_id", "status", "created_at"},
			"properties": bson.M{
				"mentor_id":   bson.M{"bsonType": "string", "minLength": 1},
				"founder_id":  bson.M{"bsonType": "string", "minLength": 1},
				"status":      bson.M{"enum": bson.A{"pending", "active", "rejected"}},
				"assigned_by": bson.M{"bsonType": "string"},
				"created_at":  bson.M{"bsonType": "date"},
				"updated_at":  bson.M{"bsonType": "date"},
			},
		},
	}
}

func impactLogsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"founder_id", "mentor_id", "created_at"},
			"properties": bson.M{
				"founder_id": bson.M{"bsonType": "string", "minLength": 1},
				"mentor_id":  bson.M{"bsonType": "string", "minLength": 1},
				"notes":      bson.M{"bsonType": "string"},
				"metrics":    bson.M{"bsonType": "object"},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func chatAnnotationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"chat_id", "author_id", "comment", "created_at"},
			"properties": bson.M{
				"chat_id":    bson.M{"bsonType": "string", "minLength": 1},
				"author_id":  bson.M{"bsonType": "string", "minLength": 1},
				"comment":    bson.M{"bsonType": "string", "minLength": 1},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}
