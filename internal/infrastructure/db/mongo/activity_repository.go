package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quicknote/notes-api/internal/core/domain"
)

const activityCollection = "note_activity"

type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NoteID    primitive.ObjectID `bson:"note_id"`
	Owner     primitive.ObjectID `bson:"user"`
	Action    string             `bson:"action"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.NoteActivity) error {
	nid, err := primitive.ObjectIDFromHex(activity.NoteID)
	if err != nil {
		return domain.ErrInvalidNoteID
	}
	oid, err := ownerID(activity.OwnerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoActivity{
		NoteID:    nid,
		Owner:     oid,
		Action:    string(activity.Action),
		Timestamp: activity.Timestamp,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListByNote(ctx context.Context, owner, noteID string) ([]*domain.NoteActivity, error) {
	nid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, domain.ErrInvalidNoteID
	}
	oid, err := ownerID(owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"note_id": nid, "user": oid}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	records := make([]*domain.NoteActivity, 0)
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		records = append(records, &domain.NoteActivity{
			ID:        ma.ID.Hex(),
			NoteID:    ma.NoteID.Hex(),
			OwnerID:   ma.Owner.Hex(),
			Action:    domain.ActivityAction(ma.Action),
			Timestamp: ma.Timestamp.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return records, nil
}

// EnsureIndexes creates the per-note trail index.
func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "note_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
