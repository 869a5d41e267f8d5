package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quicknote/notes-api/internal/core/domain"
)

const notesCollection = "notes"

type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(notesCollection)}
}

type mongoNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Owner     primitive.ObjectID `bson:"user"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (r *NoteRepository) Insert(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	owner, err := ownerID(note.OwnerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNote{
		Title:     note.Title,
		Content:   note.Content,
		Owner:     owner,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	created := *note
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *NoteRepository) FindByOwner(ctx context.Context, owner, search string) ([]*domain.Note, error) {
	oid, err := ownerID(owner)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user": oid}
	if search != "" {
		filter["$text"] = bson.M{"$search": search}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cur.Close(ctx)

	notes := make([]*domain.Note, 0)
	for cur.Next(ctx) {
		var mn mongoNote
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, owner, noteID string) (*domain.Note, error) {
	filter, err := scopedFilter(owner, noteID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	if err := r.coll.FindOne(ctx, filter).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	filter, err := scopedFilter(note.OwnerID, note.ID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":      note.Title,
		"content":    note.Content,
		"updated_at": note.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, owner, noteID string) error {
	filter, err := scopedFilter(owner, noteID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// EnsureIndexes creates the owner listing index and the title/content text
// index used by search.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// scopedFilter builds the owner-scoped _id filter. A note id that is not
// valid ObjectID hex is a client error; an invalid owner id can match
// nothing, so it reads as not-found.
func scopedFilter(owner, noteID string) (bson.M, error) {
	nid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, domain.ErrInvalidNoteID
	}
	oid, err := ownerID(owner)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": nid, "user": oid}, nil
}

func ownerID(owner string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(owner)
	if err != nil {
		return primitive.NilObjectID, domain.ErrNoteNotFound
	}
	return oid, nil
}

func (mn *mongoNote) toDomain() *domain.Note {
	return &domain.Note{
		ID:        mn.ID.Hex(),
		Title:     mn.Title,
		Content:   mn.Content,
		OwnerID:   mn.Owner.Hex(),
		CreatedAt: mn.CreatedAt.UTC(),
		UpdatedAt: mn.UpdatedAt.UTC(),
	}
}
