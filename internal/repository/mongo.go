package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-market/internal/marketerrors"
	model "campus-market/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connect establishes the process-lifetime MongoDB client and verifies the
// connection with a ping. The client is acquired once and reused.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// MongoRepo is the MongoDB-backed implementation of CatalogStore,
// AccountStore and MessageStore. Every multi-field collection mutation is
// issued as a single update document so the server applies it atomically
// per user document.
type MongoRepo struct {
	listings *mongo.Collection
	users    *mongo.Collection
	messages *mongo.Collection
}

// NewMongoRepo creates a repository over the named database
func NewMongoRepo(client *mongo.Client, dbName string) *MongoRepo {
	db := client.Database(dbName)
	return &MongoRepo{
		listings: db.Collection("listings"),
		users:    db.Collection("users"),
		messages: db.Collection("messages"),
	}
}

// EnsureIndexes creates the unique indexes the account model relies on
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "account_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

func (r *MongoRepo) CreateListing(ctx context.Context, l model.Listing) error {
	if _, err := r.listings.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("insert listing %s: %w", l.ID, err)
	}
	return nil
}

func (r *MongoRepo) GetListing(ctx context.Context, id string) (model.Listing, error) {
	var l model.Listing
	err := r.listings.FindOne(ctx, bson.M{"_id": id}).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, err)
	}
	return l, nil
}

func (r *MongoRepo) AllListings(ctx context.Context) ([]model.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.listings.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cursor.Close(ctx)
	var out []model.Listing
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) ListingsByOwner(ctx context.Context, accountID string) ([]model.Listing, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.listings.Find(ctx, bson.M{"owner_account_id": accountID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings by owner %s: %w", accountID, err)
	}
	defer cursor.Close(ctx)
	var out []model.Listing
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode listings by owner %s: %w", accountID, err)
	}
	return out, nil
}

func (r *MongoRepo) ReplaceListing(ctx context.Context, l model.Listing) error {
	res, err := r.listings.ReplaceOne(ctx, bson.M{"_id": l.ID}, l)
	if err != nil {
		return fmt.Errorf("replace listing %s: %w", l.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("replace listing %s: %w", l.ID, marketerrors.ErrListingNotFound)
	}
	return nil
}

func (r *MongoRepo) AppendBid(ctx context.Context, id string, bid model.Bid) (model.Listing, error) {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$push": bson.M{"bids": bid},
		"$set":  bson.M{"updated_at": bid.PlacedAt},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var l model.Listing
	err := r.listings.FindOneAndUpdate(ctx, filter, update, opts).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Listing{}, fmt.Errorf("append bid for listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("append bid for listing %s: %w", id, err)
	}
	return l, nil
}

// DecrementQuantity issues a guarded update: the filter only matches a Sale
// listing with stock remaining, so concurrent purchases can never drive the
// quantity below zero.
func (r *MongoRepo) DecrementQuantity(ctx context.Context, id string) (model.Listing, error) {
	filter := bson.M{
		"_id":          id,
		"selling_mode": model.ModeSale,
		"quantity":     bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc": bson.M{"quantity": -1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var l model.Listing
	err := r.listings.FindOneAndUpdate(ctx, filter, update, opts).Decode(&l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Not eligible for decrement: a no-op for auction listings or zero
		// stock, not-found if the listing does not exist at all.
		return r.GetListing(ctx, id)
	}
	if err != nil {
		return model.Listing{}, fmt.Errorf("decrement quantity for listing %s: %w", id, err)
	}
	return l, nil
}

func (r *MongoRepo) DeleteListing(ctx context.Context, id string) error {
	res, err := r.listings.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete listing %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("delete listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return nil
}

func (r *MongoRepo) CreateUser(ctx context.Context, u model.User) error {
	if _, err := r.users.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("insert user %s: %w", u.ID, err)
	}
	return nil
}

func (r *MongoRepo) GetUser(ctx context.Context, id string) (model.User, error) {
	return r.findUser(ctx, bson.M{"_id": id}, id)
}

func (r *MongoRepo) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findUser(ctx, bson.M{"email": email}, email)
}

func (r *MongoRepo) GetUserByAccountID(ctx context.Context, accountID string) (model.User, error) {
	return r.findUser(ctx, bson.M{"account_id": accountID}, accountID)
}

func (r *MongoRepo) findUser(ctx context.Context, filter bson.M, ref string) (model.User, error) {
	var u model.User
	err := r.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, fmt.Errorf("find user %s: %w", ref, marketerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user %s: %w", ref, err)
	}
	return u, nil
}

func (r *MongoRepo) UpdateProfile(ctx context.Context, id string, p model.ProfileUpdate) error {
	update := bson.M{"$set": bson.M{
		"email":           p.Email,
		"phone":           p.Phone,
		"on_campus":       p.OnCampus,
		"building_number": p.BuildingNumber,
		"room_number":     p.RoomNumber,
		"updated_at":      time.Now().UTC(),
	}}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update profile %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("update profile %s: %w", id, marketerrors.ErrUserNotFound)
	}
	return nil
}

func (r *MongoRepo) AppendListingRef(ctx context.Context, userID, listingID string) error {
	update := bson.M{"$push": bson.M{"my_listings": listingID}}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("append listing ref for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("append listing ref for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return nil
}

// SetPlacement adds the listing id to the target collection and pulls it
// from the other two in one update document. MongoDB applies the document
// atomically, so no reader observes the id in two collections.
func (r *MongoRepo) SetPlacement(ctx context.Context, userID, listingID, collection string) error {
	pull := bson.M{}
	for _, col := range []string{model.CollectionCart, model.CollectionWatchlist, model.CollectionBidlist} {
		if col != collection {
			pull[col] = listingID
		}
	}
	update := bson.M{
		"$addToSet": bson.M{collection: listingID},
		"$pull":     pull,
	}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("set placement for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("set placement for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return nil
}

func (r *MongoRepo) ClearPlacement(ctx context.Context, userID, listingID, collection string) error {
	update := bson.M{"$pull": bson.M{collection: listingID}}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return fmt.Errorf("clear placement for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("clear placement for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return nil
}

func (r *MongoRepo) ListingRefs(ctx context.Context, userID, collection string) ([]string, error) {
	opts := options.FindOne().SetProjection(bson.M{collection: 1})
	var u model.User
	err := r.users.FindOne(ctx, bson.M{"_id": userID}, opts).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("listing refs for user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("listing refs for user %s: %w", userID, err)
	}
	switch collection {
	case model.CollectionCart:
		return u.Cart, nil
	case model.CollectionWatchlist:
		return u.Watchlist, nil
	default:
		return u.Bidlist, nil
	}
}

// PurgeListingRefs removes the listing id from every user's collections and
// myListings, so a deleted listing leaves no dangling references behind.
func (r *MongoRepo) PurgeListingRefs(ctx context.Context, listingID string) error {
	update := bson.M{"$pull": bson.M{
		model.CollectionCart:      listingID,
		model.CollectionWatchlist: listingID,
		model.CollectionBidlist:   listingID,
		"my_listings":             listingID,
	}}
	if _, err := r.users.UpdateMany(ctx, bson.M{}, update); err != nil {
		return fmt.Errorf("purge listing refs %s: %w", listingID, err)
	}
	return nil
}

func (r *MongoRepo) AppendMessage(ctx context.Context, m model.Message) error {
	if _, err := r.messages.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert message %s: %w", m.ID, err)
	}
	return nil
}

func (r *MongoRepo) MessagesBetween(ctx context.Context, a, b string) ([]model.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"from": a, "to": b},
		bson.M{"from": b, "to": a},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})
	cursor, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find messages between %s and %s: %w", a, b, err)
	}
	defer cursor.Close(ctx)
	var out []model.Message
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode messages between %s and %s: %w", a, b, err)
	}
	return out, nil
}

// LatestByCounterpart groups the user's messages by counterpart and keeps
// the newest one per conversation, joining the counterpart's display fields.
func (r *MongoRepo) LatestByCounterpart(ctx context.Context, userID string) ([]model.Conversation, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"from": userID},
			bson.M{"to": userID},
		}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"other": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$from", userID}},
				"$to",
				"$from",
			}},
			"content": 1,
			"sent_at": 1,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"sent_at": -1}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          "$other",
			"last_message": bson.M{"$first": "$content"},
			"timestamp":    bson.M{"$first": "$sent_at"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":          0,
			"user_id":      "$user._id",
			"name":         "$user.name",
			"account_id":   "$user.account_id",
			"last_message": 1,
			"timestamp":    1,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"timestamp": -1}}},
	}
	cursor, err := r.messages.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate conversations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)
	var out []model.Conversation
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode conversations for user %s: %w", userID, err)
	}
	return out, nil
}
