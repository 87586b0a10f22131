package mesto

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(c *mongo.Collection) UserRepository {
	return &mongoUserRepository{collection: c}
}

// EnsureUserIndexes creates the unique email index that backs the
// registration conflict semantics.
func EnsureUserIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "creating email index")
}

func (m *mongoUserRepository) Store(u *User) error {
	_, err := m.collection.InsertOne(context.TODO(), u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailTaken
	}
	return errors.Wrap(err, "storing user")
}

func (m *mongoUserRepository) FindByID(id primitive.ObjectID) (*User, error) {
	return m.findUserBy(bson.M{"_id": id})
}

func (m *mongoUserRepository) FindByEmail(email string) (*User, error) {
	return m.findUserBy(bson.M{"email": email})
}

func (m *mongoUserRepository) findUserBy(filter bson.M) (*User, error) {
	var u User
	sr := m.collection.FindOne(context.TODO(), filter)

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}

	if err := sr.Decode(&u); err != nil {
		return nil, errors.Wrap(err, "decoding user")
	}
	return &u, nil
}

func (m *mongoUserRepository) FindByIDs(ids []primitive.ObjectID) ([]User, error) {
	users := []User{}
	if len(ids) == 0 {
		return users, nil
	}

	cur, err := m.collection.Find(context.TODO(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "finding users by ids")
	}

	if err := cur.All(context.TODO(), &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (m *mongoUserRepository) FindAll() ([]User, error) {
	cur, err := m.collection.Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "finding users")
	}

	users := []User{}
	if err := cur.All(context.TODO(), &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (m *mongoUserRepository) UpdateProfile(id primitive.ObjectID, name, about string) (*User, error) {
	return m.updateUser(id, bson.M{"$set": bson.M{"name": name, "about": about}})
}

func (m *mongoUserRepository) UpdateAvatar(id primitive.ObjectID, avatar string) (*User, error) {
	return m.updateUser(id, bson.M{"$set": bson.M{"avatar": avatar}})
}

func (m *mongoUserRepository) updateUser(id primitive.ObjectID, update bson.M) (*User, error) {
	var u User
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	sr := m.collection.FindOneAndUpdate(context.TODO(), bson.M{"_id": id}, update, opts)

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}

	if err := sr.Decode(&u); err != nil {
		return nil, errors.Wrap(err, "decoding user")
	}
	return &u, nil
}

type mongoCardRepository struct {
	collection *mongo.Collection
}

func NewMongoCardRepository(c *mongo.Collection) CardRepository {
	return &mongoCardRepository{collection: c}
}

func (m *mongoCardRepository) Store(c *Card) error {
	_, err := m.collection.InsertOne(context.TODO(), c)
	return errors.Wrap(err, "storing card")
}

func (m *mongoCardRepository) FindByID(id primitive.ObjectID) (*Card, error) {
	var c Card
	sr := m.collection.FindOne(context.TODO(), bson.M{"_id": id})

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrCardNotFound
	}

	if err := sr.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decoding card")
	}
	return &c, nil
}

func (m *mongoCardRepository) FindAll() ([]Card, error) {
	cur, err := m.collection.Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "finding cards")
	}

	cards := []Card{}
	if err := cur.All(context.TODO(), &cards); err != nil {
		return nil, errors.Wrap(err, "decoding cards")
	}
	return cards, nil
}

func (m *mongoCardRepository) Delete(id primitive.ObjectID) error {
	res, err := m.collection.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "deleting card")
	}
	if res.DeletedCount == 0 {
		return ErrCardNotFound
	}
	return nil
}

// AddLike and RemoveLike lean on the store's conditional-update
// primitives, so concurrent likes from different callers cannot race or
// double-count.
func (m *mongoCardRepository) AddLike(cardID, userID primitive.ObjectID) (*Card, error) {
	return m.updateLikes(cardID, bson.M{"$addToSet": bson.M{"likes": userID}})
}

func (m *mongoCardRepository) RemoveLike(cardID, userID primitive.ObjectID) (*Card, error) {
	return m.updateLikes(cardID, bson.M{"$pull": bson.M{"likes": userID}})
}

func (m *mongoCardRepository) updateLikes(cardID primitive.ObjectID, update bson.M) (*Card, error) {
	var c Card
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	sr := m.collection.FindOneAndUpdate(context.TODO(), bson.M{"_id": cardID}, update, opts)

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrCardNotFound
	}

	if err := sr.Decode(&c); err != nil {
		return nil, errors.Wrap(err, "decoding card")
	}
	return &c, nil
}
