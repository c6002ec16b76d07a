package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// mongoUserRepository is the MongoDB-backed implementation of
// [UserRepository]. Users are stored with their id as the document _id.
type mongoUserRepository struct {
	logger *logger.Logger
	coll   *mongo.Collection
}

// NewMongoUserRepository constructs a [UserRepository] over the users
// collection of database.
func NewMongoUserRepository(database *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return newMongoUserRepository(database.Collection(usersCollection), logger)
}

func newMongoUserRepository(coll *mongo.Collection, logger *logger.Logger) *mongoUserRepository {
	return &mongoUserRepository{
		coll:   coll,
		logger: logger,
	}
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*mongoUserRepository.FindUserByEmail", bson.M{"email": email})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*mongoUserRepository.FindUserByID", bson.M{"_id": userID})
}

func (r *mongoUserRepository) UpdateLoginActivity(ctx context.Context, userID string, at time.Time, streak int) (models.User, error) {
	log := logger.FromContext(ctx)

	update := bson.M{"$set": bson.M{
		"last_login":     at,
		"current_streak": streak,
		"updated_at":     at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&user)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.UpdateLoginActivity").Msg("error updating login activity")
		return models.User{}, mongoError(err)
	}

	return user, nil
}

// AddShieldCoins relies on $inc so concurrent rewards are applied
// atomically on the server.
func (r *mongoUserRepository) AddShieldCoins(ctx context.Context, userID string, amount int64) (int64, error) {
	log := logger.FromContext(ctx)

	update := bson.M{
		"$inc": bson.M{"shield_coins": amount},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"shield_coins": 1})

	var doc struct {
		ShieldCoins int64 `bson:"shield_coins"`
	}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&doc)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.AddShieldCoins").Msg("error adding shield coins")
		return 0, mongoError(err)
	}

	return doc.ShieldCoins, nil
}

func (r *mongoUserRepository) TopByShieldCoins(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "shield_coins", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 0, "username": 1, "shield_coins": 1, "current_level": 1})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.TopByShieldCoins").Msg("error querying leaderboard")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entries := make([]models.LeaderboardEntry, 0, limit)
	if err = cursor.All(ctx, &entries); err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.TopByShieldCoins").Msg("error decoding leaderboard")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, fn string, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Err(err).Str("func", fn).Msg("error querying user")
		}
		return models.User{}, mongoError(err)
	}

	return user, nil
}

func mongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrUserNotFound
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}
