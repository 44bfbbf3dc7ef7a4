package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/biharidelicacies/marketplace-api/apperr"
	"github.com/biharidelicacies/marketplace-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// requiredFields is the per-collection schema the document backend enforces on insert.
// Collections not listed accept any shape.
var requiredFields = map[string][]string{
	models.CollectionUsers:    {"email", "password", "firstName", "lastName"},
	models.CollectionSellers:  {"businessName"},
	models.CollectionProducts: {"name"},
}

// MongoStore stores each collection as a MongoDB collection. Ids are driver ObjectIDs,
// exposed to callers as their hex string under "id".
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.SugaredLogger
}

// NewMongoStore connects and pings within timeout; an unreachable server is an error.
func NewMongoStore(ctx context.Context, uri, database string, timeout time.Duration, log *zap.SugaredLogger) (*MongoStore, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Infow("connected to MongoDB", "database", database)
	return &MongoStore{client: client, db: client.Database(database), log: log}, nil
}

func (s *MongoStore) Backend() string { return BackendMongo }

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) ReadAll(ctx context.Context, collection string) ([]models.Record, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		s.log.Warnw("failed to query collection, treating as empty", "collection", collection, "error", err)
		return []models.Record{}, nil
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		s.log.Warnw("failed to decode collection, treating as empty", "collection", collection, "error", err)
		return []models.Record{}, nil
	}

	records := make([]models.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, fromDocument(doc))
	}
	return records, nil
}

// WriteAll replaces the collection contents. It is two round trips, not a transaction.
func (s *MongoStore) WriteAll(ctx context.Context, collection string, records []models.Record) error {
	coll := s.db.Collection(collection)
	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, toDocument(r))
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, rec models.Record) (models.Record, error) {
	if err := validateRequired(collection, rec); err != nil {
		return nil, err
	}

	body := rec.Clone()
	delete(body, models.IDField)
	delete(body, "_id")

	res, err := s.db.Collection(collection).InsertOne(ctx, toDocument(body))
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}

	out := body
	out[models.IDField] = normalize(res.InsertedID)
	return out, nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, pred func(models.Record) bool) (models.Record, error) {
	records, _ := s.ReadAll(ctx, collection)
	return findIn(records, pred), nil
}

func validateRequired(collection string, rec models.Record) error {
	var missing []string
	for _, field := range requiredFields[collection] {
		v, ok := rec[field]
		if s, isStr := v.(string); !ok || v == nil || (isStr && strings.TrimSpace(s) == "") {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperr.Validation(fmt.Sprintf("%s validation failed: %s required", collection, strings.Join(missing, ", ")))
	}
	return nil
}

// toDocument maps "id" back to "_id" when it is an ObjectID hex string.
func toDocument(rec models.Record) bson.M {
	doc := bson.M{}
	for k, v := range rec {
		doc[k] = v
	}
	if hex, ok := rec[models.IDField].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
			delete(doc, models.IDField)
			doc["_id"] = oid
		}
	}
	return doc
}

func fromDocument(doc bson.M) models.Record {
	rec := make(models.Record, len(doc))
	for k, v := range doc {
		rec[k] = normalize(v)
	}
	if id, ok := rec["_id"]; ok {
		delete(rec, "_id")
		if _, has := rec[models.IDField]; !has {
			rec[models.IDField] = id
		}
	}
	return rec
}

// normalize turns driver types into the plain values encoding/json produces,
// so the query engine sees one representation whatever the backend.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.M:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = normalize(val)
		}
		return m
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = normalize(val)
		}
		return m
	case primitive.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	case primitive.Decimal128:
		return t.String()
	default:
		return v
	}
}
