package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harentsoaR/tattoo-studio-api/internal/models"
)

const (
	usersCollection    = "users"
	artistsCollection  = "artists"
	servicesCollection = "services"
	bookingsCollection = "bookings"
)

// NewMongoSet builds the Mongo-backed repositories over db.
func NewMongoSet(db *mongo.Database) Set {
	return Set{
		Users:    &MongoUserRepository{coll: db.Collection(usersCollection)},
		Artists:  &MongoArtistRepository{coll: db.Collection(artistsCollection)},
		Services: &MongoServiceRepository{coll: db.Collection(servicesCollection)},
		Bookings: &MongoBookingRepository{coll: db.Collection(bookingsCollection)},
	}
}

// EnsureIndexes creates the lookup and uniqueness indexes. It is safe to call
// on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		artistsCollection:  {{Keys: bson.D{{Key: "artist_id", Value: 1}}, Options: unique}},
		servicesCollection: {{Keys: bson.D{{Key: "service_id", Value: 1}}, Options: unique}},
		bookingsCollection: {
			{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
	}
	for name, idx := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// insertion order
var storageOrder = bson.D{{Key: "_id", Value: 1}}

func insertOne(ctx context.Context, coll *mongo.Collection, doc interface{}) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
		}
		return fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	return nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	if err := coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, limit int64) ([]T, error) {
	findOptions := options.Find().SetSort(storageOrder).SetLimit(limit)
	cursor, err := coll.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	if err = cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

type MongoUserRepository struct {
	coll *mongo.Collection
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	return insertOne(ctx, r.coll, user)
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"email": email})
}

func (r *MongoUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return findOne[models.User](ctx, r.coll, bson.M{"user_id": userID})
}

type MongoArtistRepository struct {
	coll *mongo.Collection
}

func (r *MongoArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	return insertOne(ctx, r.coll, artist)
}

func (r *MongoArtistRepository) GetByID(ctx context.Context, artistID string) (*models.Artist, error) {
	return findOne[models.Artist](ctx, r.coll, bson.M{"artist_id": artistID})
}

func (r *MongoArtistRepository) List(ctx context.Context, limit int64) ([]models.Artist, error) {
	return findMany[models.Artist](ctx, r.coll, bson.M{}, limit)
}

func (r *MongoArtistRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count artists: %w", err)
	}
	return n, nil
}

type MongoServiceRepository struct {
	coll *mongo.Collection
}

func (r *MongoServiceRepository) Create(ctx context.Context, service *models.Service) error {
	return insertOne(ctx, r.coll, service)
}

func (r *MongoServiceRepository) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	return findOne[models.Service](ctx, r.coll, bson.M{"service_id": serviceID})
}

func (r *MongoServiceRepository) List(ctx context.Context, limit int64) ([]models.Service, error) {
	return findMany[models.Service](ctx, r.coll, bson.M{}, limit)
}

type MongoBookingRepository struct {
	coll *mongo.Collection
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return insertOne(ctx, r.coll, booking)
}

func (r *MongoBookingRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]models.Booking, error) {
	return findMany[models.Booking](ctx, r.coll, bson.M{"user_id": userID}, limit)
}

func (r *MongoBookingRepository) List(ctx context.Context, limit int64) ([]models.Booking, error) {
	return findMany[models.Booking](ctx, r.coll, bson.M{}, limit)
}
